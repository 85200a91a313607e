package services

import (
	"math"
	"testing"

	"tscs-pipeline/config"
	"tscs-pipeline/models"
	"tscs-pipeline/survey"
	"tscs-pipeline/utils"
)

func testLogger() *utils.Logger { return utils.NewLogger(utils.LevelError) }

// scenarioConfig is a minimal synthetic wave: income code 1 maps below
// the bottom threshold, code 2 above the top one.
func scenarioConfig() *config.YearConfig {
	return &config.YearConfig{
		Year:          2022,
		SubjectiveVar: "class",
		IncomeVars:    []string{"inc"},
		ZipVar:        "zip",
		GenderVar:     "sex",
		IncomeTable:   map[int]float64{1: 10000, 2: 200000},
		Thresholds:    []float64{364876, 672906, 954383, 1306283, 2244401},
	}
}

func TestSankeyEndToEnd(t *testing.T) {
	cfg := scenarioConfig()
	table := survey.NewTable(map[string][]float64{
		"inc":   {1, 2, math.NaN()},
		"class": {1, 5, math.NaN()},
	})
	meta := &survey.Meta{VariableValueLabels: map[string]map[int]string{
		"class": {1: "下層階級", 5: "中上層階級"},
	}}

	records, stats := NewPipeline(testLogger()).BuildRecords(cfg, table, meta)
	if stats.ValidRecords != 2 {
		t.Fatalf("valid records: got %d, want 2", stats.ValidRecords)
	}

	sankey := NewSankeyAggregator(testLogger()).Build(cfg.Year, records)

	if sankey.TotalSamples != 2 {
		t.Errorf("TotalSamples: got %d, want 2", sankey.TotalSamples)
	}
	if len(sankey.Links) != 2 {
		t.Fatalf("links: got %d, want 2", len(sankey.Links))
	}

	// Links are ordered by canonical subjective rank.
	if sankey.Links[0].Source != "下層階級" || sankey.Links[0].Target != "低" {
		t.Errorf("link 0: got %s → %s", sankey.Links[0].Source, sankey.Links[0].Target)
	}
	if sankey.Links[1].Source != "中上層階級" || sankey.Links[1].Target != "高" {
		t.Errorf("link 1: got %s → %s", sankey.Links[1].Source, sankey.Links[1].Target)
	}

	wantSubj := []string{"下層階級", "中上層階級"}
	if len(sankey.Nodes.Subjective) != 2 || sankey.Nodes.Subjective[0] != wantSubj[0] || sankey.Nodes.Subjective[1] != wantSubj[1] {
		t.Errorf("subjective nodes: got %v, want %v", sankey.Nodes.Subjective, wantSubj)
	}
	wantObj := []string{"低", "高"}
	if len(sankey.Nodes.Objective) != 2 || sankey.Nodes.Objective[0] != wantObj[0] || sankey.Nodes.Objective[1] != wantObj[1] {
		t.Errorf("objective nodes: got %v, want %v", sankey.Nodes.Objective, wantObj)
	}
}

func TestSankeyLinkValuesSumToTotal(t *testing.T) {
	records := []*models.ClassifiedRecord{
		{Subjective: "勞工階級", Objective: "低"},
		{Subjective: "勞工階級", Objective: "低"},
		{Subjective: "勞工階級", Objective: "中等"},
		{Subjective: "中層階級", Objective: "中等"},
		{Subjective: "上層階級", Objective: "高"},
	}

	sankey := NewSankeyAggregator(testLogger()).Build(2012, records)

	sum := 0
	for _, link := range sankey.Links {
		sum += link.Value
	}
	if sum != sankey.TotalSamples {
		t.Errorf("link values sum to %d, want %d", sum, sankey.TotalSamples)
	}
	if sankey.TotalSamples != len(records) {
		t.Errorf("TotalSamples: got %d, want %d", sankey.TotalSamples, len(records))
	}

	if got := sankey.Summary.BySubjective["勞工階級"]; got != 3 {
		t.Errorf("by_subjective[勞工階級]: got %d, want 3", got)
	}
	if got := sankey.Summary.ByObjective["中等"]; got != 2 {
		t.Errorf("by_objective[中等]: got %d, want 2", got)
	}
}

func TestWealthScores(t *testing.T) {
	h := 8.0
	records := []*models.ClassifiedRecord{
		{Subjective: "下層階級", Objective: "低", Happiness: &h},
		{Subjective: "上層階級", Objective: "高"},
	}

	scores := NewSankeyAggregator(testLogger()).Scores(records)

	if scores.SubjectiveAvg == nil || *scores.SubjectiveAvg != 0.5 {
		t.Errorf("SubjectiveAvg: got %v, want 0.5", scores.SubjectiveAvg)
	}
	if scores.ObjectiveAvg == nil || *scores.ObjectiveAvg != 0.5 {
		t.Errorf("ObjectiveAvg: got %v, want 0.5", scores.ObjectiveAvg)
	}
	// Only one record carries a happiness score.
	if scores.HappinessAvg == nil || *scores.HappinessAvg != 8 {
		t.Errorf("HappinessAvg: got %v, want 8", scores.HappinessAvg)
	}
	if scores.HappinessStd == nil || *scores.HappinessStd != 0 {
		t.Errorf("HappinessStd: got %v, want 0", scores.HappinessStd)
	}
}

func TestWealthScoresAbsentStatistics(t *testing.T) {
	scores := NewSankeyAggregator(testLogger()).Scores(nil)

	if scores.SubjectiveAvg != nil || scores.ObjectiveAvg != nil {
		t.Error("empty wave should report nil wealth averages")
	}
	if scores.HappinessAvg != nil || scores.HappinessStd != nil {
		t.Error("a wave without happiness scores should report nil statistics")
	}
}
