package services

import (
	"strconv"

	"tscs-pipeline/config"
	"tscs-pipeline/models"
	"tscs-pipeline/survey"
	"tscs-pipeline/utils"
)

// GridAggregator builds the zip × age-group × class artifact for one
// wave. Unlike the flow stage it keeps rows with just one of the two
// classifications, and it never applies the 1992 exclusion rule.
type GridAggregator struct {
	logger *utils.Logger
}

// NewGridAggregator creates a GridAggregator with the given logger.
func NewGridAggregator(logger *utils.Logger) *GridAggregator {
	return &GridAggregator{logger: logger}
}

// Build classifies and counts every respondent with a resolvable age
// bucket, a zip code, and at least one wealth classification. The first
// row seen for a zip supplies its region name; zip-to-region is stable
// within a wave so first occurrence suffices.
func (g *GridAggregator) Build(cfg *config.YearConfig, table *survey.Table, meta *survey.Meta) *models.GridData {
	data := &models.GridData{
		Year:     cfg.Year,
		ZipCodes: make(map[string]*models.ZipCell),
	}

	for row := 0; row < table.Len(); row++ {
		age, ok := DeriveAge(cfg, table, row)
		if !ok {
			continue
		}
		ageGroup, ok := AgeGroup(age)
		if !ok {
			continue
		}
		zip, ok := table.Value(row, cfg.ZipVar)
		if !ok {
			continue
		}

		annualIncome, hasIncome := AnnualHouseholdIncome(cfg, table, row)
		objective := ClassifyObjective(cfg, annualIncome, hasIncome)
		subjective := ClassifySubjective(cfg, table, meta, row)
		if subjective == "" && objective == "" {
			continue
		}

		key := strconv.Itoa(int(zip))
		cell, exists := data.ZipCodes[key]
		if !exists {
			cell = &models.ZipCell{
				Zip:        key,
				Region:     RegionName(cfg, meta, zip),
				Subjective: make(map[string]map[string]int),
				Objective:  make(map[string]map[string]int),
			}
			data.ZipCodes[key] = cell
		}

		if subjective != "" {
			bump(cell.Subjective, ageGroup, subjective)
		}
		if objective != "" {
			bump(cell.Objective, ageGroup, objective)
		}
		data.TotalSamples++
	}

	g.logger.Info("[grid] %d: %d valid records across %d zip codes",
		cfg.Year, data.TotalSamples, len(data.ZipCodes))
	return data
}

func bump(counts map[string]map[string]int, ageGroup, class string) {
	if counts[ageGroup] == nil {
		counts[ageGroup] = make(map[string]int)
	}
	counts[ageGroup][class]++
}
