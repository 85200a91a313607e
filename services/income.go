package services

import (
	"tscs-pipeline/config"
	"tscs-pipeline/survey"
)

// nonResponseCode is the lowest code reserved for non-response markers
// (don't know, refused, skipped). Codes at or above it carry no amount.
const nonResponseCode = 90

// MonthlyIncome converts one wave's categorical income code to the
// estimated monthly amount in NT$ using the wave's midpoint table.
// ok is false for non-response codes and codes missing from the table.
func MonthlyIncome(cfg *config.YearConfig, code float64) (float64, bool) {
	if code >= nonResponseCode {
		return 0, false
	}
	amount, ok := cfg.IncomeTable[int(code)]
	return amount, ok
}

// AnnualHouseholdIncome derives a respondent's annual household income
// by converting each configured income component to a monthly amount,
// summing, and annualizing. Waves with a single household-income
// variable sum one component; 1992 sums the two respondent-level fields.
//
// A summed monthly total of exactly zero is reported as missing, not as
// zero income. This conflates a true no-income household with a
// non-response; it is the established behavior of the published charts
// and is kept intact.
func AnnualHouseholdIncome(cfg *config.YearConfig, table *survey.Table, row int) (float64, bool) {
	var monthly float64
	for _, name := range cfg.IncomeVars {
		code, present := table.Value(row, name)
		if !present {
			continue
		}
		if amount, ok := MonthlyIncome(cfg, code); ok {
			monthly += amount
		}
	}

	if monthly <= 0 {
		return 0, false
	}
	return monthly * 12, true
}
