// Package survey reads one wave's exported respondent table and its
// value-label codebook. The table is a CSV export (optionally gzipped)
// with a variable-name header row; the codebook is a YAML sidecar
// mapping each variable's raw codes to display text.
package survey

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tscs-pipeline/config"
	"tscs-pipeline/utils"
)

// Loader reads wave data files from a fixed directory.
type Loader struct {
	dataPath string
	logger   *utils.Logger
}

// NewLoader creates a Loader rooted at dataPath.
func NewLoader(dataPath string, logger *utils.Logger) *Loader {
	return &Loader{dataPath: dataPath, logger: logger}
}

// LoadYear reads the table and codebook for one wave. The table file is
// <DataFile>.csv or <DataFile>.csv.gz, the codebook <DataFile>.labels.yaml.
func (l *Loader) LoadYear(cfg *config.YearConfig) (*Table, *Meta, error) {
	table, err := l.readTable(cfg.DataFile)
	if err != nil {
		return nil, nil, fmt.Errorf("survey: load %d: %w", cfg.Year, err)
	}

	meta, err := l.readCodebook(cfg.DataFile)
	if err != nil {
		return nil, nil, fmt.Errorf("survey: load %d: %w", cfg.Year, err)
	}

	l.logger.Info("[survey] Loaded %s: %d records, %d variables",
		cfg.DataFile, table.Len(), len(table.cols))
	return table, meta, nil
}

func (l *Loader) readTable(base string) (*Table, error) {
	r, closeFn, err := l.openData(base)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	cols := make(map[string][]float64, len(names))
	for _, n := range names {
		cols[n] = nil
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		for i, n := range names {
			v := math.NaN()
			if i < len(row) {
				cell := strings.TrimSpace(row[i])
				if cell != "" {
					if f, perr := strconv.ParseFloat(cell, 64); perr == nil {
						v = f
					}
				}
			}
			cols[n] = append(cols[n], v)
		}
	}

	return NewTable(cols), nil
}

// openData opens <base>.csv, falling back to the gzipped export.
func (l *Loader) openData(base string) (io.Reader, func(), error) {
	plain := filepath.Join(l.dataPath, base+".csv")
	if f, err := os.Open(plain); err == nil {
		return f, func() { _ = f.Close() }, nil
	}

	gzPath := filepath.Join(l.dataPath, base+".csv.gz")
	f, err := os.Open(gzPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open data file %q (or .gz): %w", plain, err)
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("open gzip %q: %w", gzPath, err)
	}
	return zr, func() {
		_ = zr.Close()
		_ = f.Close()
	}, nil
}

type codebookFile struct {
	Variables map[string]map[int]string `yaml:"variables"`
}

func (l *Loader) readCodebook(base string) (*Meta, error) {
	path := filepath.Join(l.dataPath, base+".labels.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open codebook %q: %w", path, err)
	}

	var cb codebookFile
	if err := yaml.Unmarshal(raw, &cb); err != nil {
		return nil, fmt.Errorf("parse codebook %q: %w", path, err)
	}
	if cb.Variables == nil {
		cb.Variables = map[string]map[int]string{}
	}

	return &Meta{VariableValueLabels: cb.Variables}, nil
}
