// Package services holds the classification and aggregation stages of
// the pipeline: income normalization, objective and subjective wealth
// classification, age/region enrichment, and the Sankey and grid
// aggregators.
package services

import (
	"tscs-pipeline/config"
	"tscs-pipeline/models"
	"tscs-pipeline/survey"
	"tscs-pipeline/utils"
)

// The 1992 wave over-represents non-working spouses; respondents coded
// female with an annual household income below this cutoff are excluded
// from the flow/comparison stage (the grid stage keeps them).
const (
	femaleGenderCode    = 2
	lowIncomeCutoff1992 = 117876
	exclusionRuleYear   = 1992
)

// YearStats summarizes one wave's classification pass.
type YearStats struct {
	TotalRows         int
	ValidRecords      int
	Excluded          int
	MissingSubjective int
	MissingObjective  int
}

// Pipeline builds classified respondent records for one wave.
type Pipeline struct {
	logger *utils.Logger
}

// NewPipeline creates a Pipeline with the given logger.
func NewPipeline(logger *utils.Logger) *Pipeline {
	return &Pipeline{logger: logger}
}

// BuildRecords classifies every respondent row and keeps those with
// both a subjective and an objective class. Rows failing either
// classification are counted but never treated as errors.
func (p *Pipeline) BuildRecords(cfg *config.YearConfig, table *survey.Table, meta *survey.Meta) ([]*models.ClassifiedRecord, YearStats) {
	stats := YearStats{TotalRows: table.Len()}
	records := make([]*models.ClassifiedRecord, 0, table.Len())

	for row := 0; row < table.Len(); row++ {
		annualIncome, hasIncome := AnnualHouseholdIncome(cfg, table, row)

		if cfg.Year == exclusionRuleYear && p.excludeLowIncomeFemale(cfg, table, row, annualIncome, hasIncome) {
			stats.Excluded++
			continue
		}

		objective := ClassifyObjective(cfg, annualIncome, hasIncome)
		subjective := ClassifySubjective(cfg, table, meta, row)
		happiness := extractHappiness(cfg, table, row)
		zip := extractZip(cfg, table, row)

		if subjective == "" {
			stats.MissingSubjective++
		}
		if objective == "" {
			stats.MissingObjective++
		}
		if subjective == "" || objective == "" {
			continue
		}

		records = append(records, &models.ClassifiedRecord{
			Subjective: subjective,
			Objective:  objective,
			Happiness:  happiness,
			Zip:        zip,
		})
	}

	stats.ValidRecords = len(records)
	p.logger.Info("[pipeline] %d: %d rows → %d valid (excluded %d, missing subjective %d, missing objective %d)",
		cfg.Year, stats.TotalRows, stats.ValidRecords, stats.Excluded,
		stats.MissingSubjective, stats.MissingObjective)
	return records, stats
}

func (p *Pipeline) excludeLowIncomeFemale(cfg *config.YearConfig, table *survey.Table, row int, annualIncome float64, hasIncome bool) bool {
	gender, ok := table.Value(row, cfg.GenderVar)
	if !ok || int(gender) != femaleGenderCode {
		return false
	}
	return hasIncome && annualIncome < lowIncomeCutoff1992
}

// extractHappiness reads the wave's happiness score. Waves without a
// happiness variable, missing cells and non-response codes yield nil.
func extractHappiness(cfg *config.YearConfig, table *survey.Table, row int) *float64 {
	if cfg.HappinessVar == "" {
		return nil
	}
	v, ok := table.Value(row, cfg.HappinessVar)
	if !ok || v >= nonResponseCode {
		return nil
	}
	return &v
}

func extractZip(cfg *config.YearConfig, table *survey.Table, row int) *int {
	v, ok := table.Value(row, cfg.ZipVar)
	if !ok {
		return nil
	}
	z := int(v)
	return &z
}
