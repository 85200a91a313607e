package services

import (
	"tscs-pipeline/config"
	"tscs-pipeline/models"
)

// ClassifyObjective buckets an annual household income into the wave's
// five quintile classes. It returns "" when the income is missing or
// non-positive. Thresholds are the published per-wave boundaries, not
// computed statistics.
func ClassifyObjective(cfg *config.YearConfig, annualIncome float64, ok bool) string {
	if !ok || annualIncome <= 0 {
		return ""
	}

	for i := 0; i < len(models.ObjectiveClasses)-1; i++ {
		if annualIncome < cfg.Thresholds[i] {
			return models.ObjectiveClasses[i]
		}
	}
	return models.ObjectiveClasses[len(models.ObjectiveClasses)-1]
}
