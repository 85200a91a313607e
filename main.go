package main

import (
	"os"

	"tscs-pipeline/config"
	"tscs-pipeline/models"
	"tscs-pipeline/services"
	"tscs-pipeline/storage"
	"tscs-pipeline/survey"
	"tscs-pipeline/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(utils.ParseLevel(cfg.LogLevel))

	logger.Info("=== TSCS Wealth Pipeline starting ===")
	logger.Info("Config — data: %s | output: %s | waves: %d", cfg.DataPath, cfg.OutputPath, len(config.Years))

	writer, err := storage.NewJSONWriter(cfg.OutputPath)
	if err != nil {
		logger.Error("Failed to create JSON writer: %v", err)
		os.Exit(1)
	}

	var sink storage.RecordSink
	if cfg.PostgresEnabled {
		pg, err := storage.NewPostgresWriter(cfg.DSN())
		if err != nil {
			logger.Warn("PostgreSQL unavailable, continuing without record sink: %v", err)
		} else {
			sink = pg
			defer sink.Close()
		}
	}

	loader := survey.NewLoader(cfg.DataPath, logger)
	pipeline := services.NewPipeline(logger)
	sankeyAgg := services.NewSankeyAggregator(logger)
	gridAgg := services.NewGridAggregator(logger)

	// Slices start non-nil so an empty run still serializes as [].
	comparison := &models.ComparisonData{
		Years:         []int{},
		SubjectiveAvg: []*float64{},
		ObjectiveAvg:  []*float64{},
		HappinessAvg:  []*float64{},
		HappinessStd:  []*float64{},
	}
	validByYear := make(map[int]int)

	for _, year := range config.Years {
		ycfg := config.ForYear(year)

		table, meta, err := loader.LoadYear(ycfg)
		if err != nil {
			logger.Error("Skipping %d: %v", year, err)
			continue
		}

		// Flow/comparison stage.
		records, _ := pipeline.BuildRecords(ycfg, table, meta)
		sankey := sankeyAgg.Build(year, records)
		if err := writer.WriteSankey(sankey); err != nil {
			logger.Error("Sankey output for %d failed: %v", year, err)
		} else {
			logger.Info("Saved wealth_data_%d.json (%d samples)", year, sankey.TotalSamples)
			scores := sankeyAgg.Scores(records)
			comparison.Years = append(comparison.Years, year)
			comparison.SubjectiveAvg = append(comparison.SubjectiveAvg, scores.SubjectiveAvg)
			comparison.ObjectiveAvg = append(comparison.ObjectiveAvg, scores.ObjectiveAvg)
			comparison.HappinessAvg = append(comparison.HappinessAvg, scores.HappinessAvg)
			comparison.HappinessStd = append(comparison.HappinessStd, scores.HappinessStd)
			validByYear[year] = len(records)
		}

		if sink != nil {
			if err := sink.WriteYear(year, records); err != nil {
				logger.Warn("PostgreSQL write for %d failed: %v", year, err)
			}
		}

		// Grid stage, independent of the flow stage.
		grid := gridAgg.Build(ycfg, table, meta)
		if err := writer.WriteGrid(grid); err != nil {
			logger.Error("Grid output for %d failed: %v", year, err)
		} else {
			logger.Info("Saved grid_viz_data_%d.json (%d zip codes)", year, len(grid.ZipCodes))
		}
	}

	if err := writer.WriteComparison(comparison); err != nil {
		logger.Error("Comparison output failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Saved comparison_data.json (%d waves)", len(comparison.Years))

	logger.Info("=== Processing complete ===")
	for _, year := range config.Years {
		if count, ok := validByYear[year]; ok {
			logger.Info("  %d: %d valid records", year, count)
		}
	}
}
