package services

import (
	"math"
	"testing"

	"tscs-pipeline/config"
	"tscs-pipeline/survey"
)

func Test1992LowIncomeFemaleExclusion(t *testing.T) {
	cfg := config.ForYear(1992)
	// Code 2: 5000/month → 60000/year, below the NT$117,876 cutoff.
	// Code 7: 55000/month → 660000/year, above it.
	table := survey.NewTable(map[string][]float64{
		"v1":   {2, 1, 2},
		"v80":  {2, 2, 7},
		"v81":  {math.NaN(), math.NaN(), math.NaN()},
		"v65a": {1, 1, 1},
	})
	meta := &survey.Meta{VariableValueLabels: map[string]map[int]string{
		"v65a": {1: "下層階級"},
	}}

	records, stats := NewPipeline(testLogger()).BuildRecords(cfg, table, meta)

	if stats.Excluded != 1 {
		t.Errorf("excluded: got %d, want 1", stats.Excluded)
	}
	if len(records) != 2 {
		t.Fatalf("records: got %d, want 2 (male kept, high-income female kept)", len(records))
	}
}

func TestExclusionOnlyAppliesTo1992(t *testing.T) {
	cfg := config.ForYear(2022)
	table := survey.NewTable(map[string][]float64{
		"a1":  {2},
		"f14": {2}, // 5000/month → 60000/year
		"e2":  {1},
	})
	meta := &survey.Meta{VariableValueLabels: map[string]map[int]string{
		"e2": {1: "下層階級"},
	}}

	records, stats := NewPipeline(testLogger()).BuildRecords(cfg, table, meta)
	if stats.Excluded != 0 || len(records) != 1 {
		t.Errorf("got %d records, %d excluded; want 1 record, 0 excluded", len(records), stats.Excluded)
	}
}

func TestHappinessExtraction(t *testing.T) {
	cfg := config.ForYear(2022)
	table := survey.NewTable(map[string][]float64{
		"f14":  {10, 10, 10},
		"e2":   {1, 1, 1},
		"f9":   {7, 95, math.NaN()},
		"zipr": {100, 100, math.NaN()},
	})
	meta := &survey.Meta{VariableValueLabels: map[string]map[int]string{
		"e2": {1: "中層階級"},
	}}

	records, _ := NewPipeline(testLogger()).BuildRecords(cfg, table, meta)
	if len(records) != 3 {
		t.Fatalf("records: got %d, want 3", len(records))
	}

	if records[0].Happiness == nil || *records[0].Happiness != 7 {
		t.Errorf("row 0 happiness: got %v, want 7", records[0].Happiness)
	}
	// Codes ≥ 90 are non-responses.
	if records[1].Happiness != nil {
		t.Errorf("row 1 happiness: got %v, want nil", *records[1].Happiness)
	}
	if records[2].Happiness != nil {
		t.Errorf("row 2 happiness: got %v, want nil", *records[2].Happiness)
	}

	if records[0].Zip == nil || *records[0].Zip != 100 {
		t.Errorf("row 0 zip: got %v, want 100", records[0].Zip)
	}
	if records[2].Zip != nil {
		t.Errorf("row 2 zip: got %v, want nil", *records[2].Zip)
	}
}

func TestMissingCountsReported(t *testing.T) {
	cfg := config.ForYear(2012)
	table := survey.NewTable(map[string][]float64{
		"v108": {10, math.NaN()},
		"v94":  {math.NaN(), 3},
	})
	meta := &survey.Meta{VariableValueLabels: map[string]map[int]string{
		"v94": {3: "中層階級"},
	}}

	records, stats := NewPipeline(testLogger()).BuildRecords(cfg, table, meta)

	if len(records) != 0 {
		t.Errorf("records: got %d, want 0", len(records))
	}
	if stats.MissingSubjective != 1 || stats.MissingObjective != 1 {
		t.Errorf("missing counts: got (%d, %d), want (1, 1)",
			stats.MissingSubjective, stats.MissingObjective)
	}
	if stats.TotalRows != 2 {
		t.Errorf("TotalRows: got %d, want 2", stats.TotalRows)
	}
}
