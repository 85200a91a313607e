package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"tscs-pipeline/models"
)

// PostgresWriter persists classified respondent records to PostgreSQL so
// the classifications can be queried with plain SQL alongside the JSON
// artifacts.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS classified_records (
			id         SERIAL PRIMARY KEY,
			year       INT          NOT NULL,
			subjective VARCHAR(30)  NOT NULL,
			objective  VARCHAR(10)  NOT NULL,
			happiness  NUMERIC(6,2),
			zip        INT,
			created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_records_year       ON classified_records(year);
		CREATE INDEX IF NOT EXISTS idx_records_subjective ON classified_records(subjective);
		CREATE INDEX IF NOT EXISTS idx_records_objective  ON classified_records(objective);
		CREATE INDEX IF NOT EXISTS idx_records_zip        ON classified_records(zip);
	`)
	return err
}

// clearYear deletes any previously stored records for the given wave, so
// re-runs replace rather than duplicate.
func (pw *PostgresWriter) clearYear(year int) error {
	_, err := pw.db.Exec("DELETE FROM classified_records WHERE year = $1", year)
	if err != nil {
		return fmt.Errorf("postgres: clear year %d: %w", year, err)
	}
	return nil
}

// WriteYear batch-inserts one wave's classified records, clearing that
// wave's old rows first.
func (pw *PostgresWriter) WriteYear(year int, records []*models.ClassifiedRecord) error {
	if err := pw.clearYear(year); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	const batchSize = 100
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := pw.insertBatch(year, records[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(year int, batch []*models.ClassifiedRecord) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*5)

	for idx, r := range batch {
		base := idx * 5
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5))
		valueArgs = append(valueArgs, year, r.Subjective, r.Objective, r.Happiness, r.Zip)
	}

	query := fmt.Sprintf(`
		INSERT INTO classified_records (year, subjective, objective, happiness, zip)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	if err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
