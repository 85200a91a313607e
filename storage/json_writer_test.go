package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tscs-pipeline/models"
)

func TestJSONWriterCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "processed")
	if _, err := NewJSONWriter(dir); err != nil {
		t.Fatalf("NewJSONWriter: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}

func TestWriteSankeyPreservesUTF8(t *testing.T) {
	dir := t.TempDir()
	w, err := NewJSONWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	data := &models.SankeyData{
		Year:         2022,
		TotalSamples: 1,
		Nodes: models.NodeSet{
			Subjective: []string{"下層階級"},
			Objective:  []string{"低"},
		},
		Links: []models.Link{{Source: "下層階級", Target: "低", Value: 1}},
		Summary: models.Summary{
			BySubjective: map[string]int{"下層階級": 1},
			ByObjective:  map[string]int{"低": 1},
		},
	}
	if err := w.WriteSankey(data); err != nil {
		t.Fatalf("WriteSankey: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "wealth_data_2022.json"))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	// Labels must be written as raw UTF-8, not \u escapes.
	if !strings.Contains(string(raw), "下層階級") {
		t.Error("artifact does not contain the raw UTF-8 class label")
	}
	if strings.Contains(string(raw), "\\u") {
		t.Error("artifact contains escaped unicode")
	}
	// Human-readable indentation.
	if !strings.Contains(string(raw), "\n  ") {
		t.Error("artifact is not indented")
	}

	var back models.SankeyData
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if back.TotalSamples != 1 || back.Links[0].Value != 1 {
		t.Error("round-tripped artifact lost data")
	}
}

func TestWriteComparisonNulls(t *testing.T) {
	dir := t.TempDir()
	w, err := NewJSONWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	avg := 0.42
	data := &models.ComparisonData{
		Years:         []int{1992, 1997},
		SubjectiveAvg: []*float64{&avg, &avg},
		ObjectiveAvg:  []*float64{&avg, &avg},
		HappinessAvg:  []*float64{nil, &avg}, // 1992 has no happiness variable
		HappinessStd:  []*float64{nil, &avg},
	}
	if err := w.WriteComparison(data); err != nil {
		t.Fatalf("WriteComparison: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "comparison_data.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "null") {
		t.Error("absent statistics should serialize as null")
	}

	var back models.ComparisonData
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if back.HappinessAvg[0] != nil {
		t.Error("1992 happiness average should stay null")
	}
	if back.HappinessAvg[1] == nil || *back.HappinessAvg[1] != avg {
		t.Error("1997 happiness average lost")
	}
}

func TestWriteGridArtifact(t *testing.T) {
	dir := t.TempDir()
	w, err := NewJSONWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	data := &models.GridData{
		Year:         2007,
		TotalSamples: 1,
		ZipCodes: map[string]*models.ZipCell{
			"100": {
				Zip:    "100",
				Region: "台北市中正區",
				Subjective: map[string]map[string]int{
					"25-34歲": {"勞工階級": 1},
				},
				Objective: map[string]map[string]int{},
			},
		},
	}
	if err := w.WriteGrid(data); err != nil {
		t.Fatalf("WriteGrid: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "grid_viz_data_2007.json"))
	if err != nil {
		t.Fatal(err)
	}

	var back models.GridData
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if back.ZipCodes["100"].Subjective["25-34歲"]["勞工階級"] != 1 {
		t.Error("round-tripped grid artifact lost counts")
	}
}
