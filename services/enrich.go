package services

import (
	"tscs-pipeline/config"
	"tscs-pipeline/survey"
)

// AgeGroups is the canonical ordering of age bucket labels.
var AgeGroups = []string{
	"0-14歲", "15-24歲", "25-34歲", "35-44歲", "45-54歲", "55-64歲", "65歲以上",
}

// ageEdges are the half-open bucket boundaries: bucket i covers
// [ageEdges[i], ageEdges[i+1]). Ages of 101 and above are out of range.
var ageEdges = []int{0, 15, 25, 35, 45, 55, 65, 101}

// unknownRegion is the placeholder for a zip code the codebook cannot
// resolve.
const unknownRegion = "未知地區"

// DeriveAge resolves a respondent's age per the wave's strategy: a
// recorded ROC birth year converted with the era offset takes priority,
// then the wave's direct age variables in configured order.
func DeriveAge(cfg *config.YearConfig, table *survey.Table, row int) (int, bool) {
	strat := cfg.Age

	if strat.BirthYearVar != "" {
		if v, ok := table.Value(row, strat.BirthYearVar); ok && v > 0 {
			birthYear := int(v) + strat.EraOffset
			return cfg.Year - birthYear, true
		}
	}

	for _, name := range strat.DirectVars {
		if v, ok := table.Value(row, name); ok && v > 0 {
			return int(v), true
		}
	}

	return 0, false
}

// AgeGroup buckets an age into one of the seven canonical ranges.
// ok is false for ages outside 0–100.
func AgeGroup(age int) (string, bool) {
	for i := 0; i < len(AgeGroups); i++ {
		if age >= ageEdges[i] && age < ageEdges[i+1] {
			return AgeGroups[i], true
		}
	}
	return "", false
}

// RegionName resolves a raw zip code to its display name via the wave's
// codebook, falling back to the unknown-region placeholder.
func RegionName(cfg *config.YearConfig, meta *survey.Meta, zip float64) string {
	if name, ok := meta.Label(cfg.ZipVar, zip); ok {
		return name
	}
	return unknownRegion
}
