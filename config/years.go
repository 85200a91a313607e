package config

// Years lists the survey waves in processing order.
var Years = []int{1992, 1997, 2002, 2007, 2012, 2017, 2022}

// AgeStrategy describes how a wave's respondent age is derived. When
// BirthYearVar is set, the recorded ROC calendar year is converted with
// EraOffset and subtracted from the survey year; otherwise (or when the
// birth year is absent) the DirectVars are tried in order.
type AgeStrategy struct {
	BirthYearVar string
	EraOffset    int
	DirectVars   []string
}

// YearConfig is the full per-wave configuration: source file, variable
// names, income midpoint table, quintile thresholds and age strategy.
// Each entry is immutable reference data taken from the wave's codebook.
type YearConfig struct {
	Year     int
	DataFile string

	SubjectiveVar    string
	SubjectiveAuxVar string
	IncomeVars       []string
	ZipVar           string
	GenderVar        string
	HappinessVar     string

	// IncomeTable maps a categorical income code to the estimated
	// monthly amount in NT$ (midpoint of the coded range).
	IncomeTable map[int]float64

	// Thresholds are the wave's annual household income quintile
	// boundaries in NT$, ascending.
	Thresholds []float64

	Age AgeStrategy
}

// ForYear returns the configuration for a survey wave, or nil when the
// year is not a known wave.
func ForYear(year int) *YearConfig {
	if cfg, ok := yearConfigs[year]; ok {
		return cfg
	}
	return nil
}

var yearConfigs = map[int]*YearConfig{
	1992: {
		Year:          1992,
		DataFile:      "tscs921",
		SubjectiveVar: "v65a",
		IncomeVars:    []string{"v80", "v81"},
		ZipVar:        "zip",
		GenderVar:     "v1",
		IncomeTable: map[int]float64{
			1: 0, 2: 5000, 3: 15000, 4: 25000, 5: 35000, 6: 45000,
			7: 55000, 8: 65000, 9: 75000, 10: 85000, 11: 95000,
			12: 105000, 13: 115000, 14: 125000, 15: 135000, 16: 145000,
			17: 155000, 18: 165000, 19: 175000, 20: 185000, 21: 195000,
			22: 250000,
		},
		Thresholds: []float64{235752, 423392, 560466, 742466, 1236408},
		Age:        AgeStrategy{DirectVars: []string{"age"}},
	},
	1997: {
		Year:          1997,
		DataFile:      "tscs971_l",
		SubjectiveVar: "v89a",
		IncomeVars:    []string{"v101b"},
		ZipVar:        "zip",
		GenderVar:     "v1",
		HappinessVar:  "v94a",
		IncomeTable: map[int]float64{
			1: 0, 2: 10000, 3: 30000, 4: 50000, 5: 70000, 6: 90000,
			7: 110000, 8: 130000, 9: 150000, 10: 170000, 11: 190000,
			12: 210000, 13: 230000, 14: 250000, 15: 270000, 16: 290000,
			17: 310000, 18: 330000, 19: 350000, 20: 370000, 21: 390000,
			22: 450000,
		},
		Thresholds: []float64{312458, 557429, 753919, 1003815, 1689517},
		Age:        AgeStrategy{DirectVars: []string{"age"}},
	},
	2002: {
		Year:             2002,
		DataFile:         "tscs021",
		SubjectiveVar:    "v126",
		SubjectiveAuxVar: "v125",
		IncomeVars:       []string{"v146b"},
		ZipVar:           "zip",
		GenderVar:        "v1",
		HappinessVar:     "v138",
		IncomeTable: map[int]float64{
			1: 0, 2: 5000, 3: 15000, 4: 25000, 5: 35000, 6: 45000,
			7: 55000, 8: 65000, 9: 75000, 10: 85000, 11: 95000,
			12: 105000, 13: 115000, 14: 125000, 15: 135000, 16: 145000,
			17: 155000, 18: 165000, 19: 175000, 20: 185000, 21: 195000,
			22: 225000, 23: 275000, 24: 325000, 25: 375000, 26: 425000,
			27: 475000, 28: 550000, 29: 650000, 30: 750000, 31: 850000,
			32: 950000, 33: 1200000,
		},
		Thresholds: []float64{292113, 538584, 743888, 1005274, 1799733},
		Age:        AgeStrategy{DirectVars: []string{"age"}},
	},
	2007: {
		Year:          2007,
		DataFile:      "tscs071",
		SubjectiveVar: "f5",
		IncomeVars:    []string{"h45"},
		ZipVar:        "zip",
		GenderVar:     "a1",
		HappinessVar:  "g1",
		IncomeTable: map[int]float64{
			1: 0, 2: 5000, 3: 15000, 4: 25000, 5: 35000, 6: 45000,
			7: 55000, 8: 65000, 9: 75000, 10: 85000, 11: 95000,
			12: 105000, 13: 115000, 14: 125000, 15: 135000, 16: 145000,
			17: 155000, 18: 165000, 19: 175000, 20: 185000, 21: 195000,
			22: 225000, 23: 275000, 24: 325000, 25: 375000, 26: 700000,
			27: 1200000,
		},
		Thresholds: []float64{312145, 571128, 799418, 1069885, 1866791},
		Age:        AgeStrategy{DirectVars: []string{"age"}},
	},
	2012: {
		Year:          2012,
		DataFile:      "tscs121",
		SubjectiveVar: "v94",
		IncomeVars:    []string{"v108"},
		ZipVar:        "zip",
		GenderVar:     "v1",
		HappinessVar:  "v104",
		IncomeTable: map[int]float64{
			1: 0, 2: 5000, 3: 15000, 4: 25000, 5: 35000, 6: 45000,
			7: 55000, 8: 65000, 9: 75000, 10: 85000, 11: 95000,
			12: 105000, 13: 115000, 14: 125000, 15: 135000, 16: 145000,
			17: 155000, 18: 165000, 19: 175000, 20: 185000, 21: 195000,
			22: 250000, 23: 350000, 24: 450000, 25: 750000, 26: 1200000,
		},
		Thresholds: []float64{301362, 566814, 810075, 1093553, 1846116},
		Age:        AgeStrategy{DirectVars: []string{"v2r_3"}},
	},
	2017: {
		Year:          2017,
		DataFile:      "tscs171",
		SubjectiveVar: "e2",
		// Household income only; the per-member c40xx components are
		// present in the file but not used for classification.
		IncomeVars:   []string{"f7"},
		ZipVar:       "zip",
		GenderVar:    "a1",
		HappinessVar: "f4",
		IncomeTable: map[int]float64{
			1: 0, 2: 5000, 3: 15000, 4: 25000, 5: 35000, 6: 45000,
			7: 55000, 8: 65000, 9: 75000, 10: 85000, 11: 95000,
			12: 105000, 13: 115000, 14: 125000, 15: 135000, 16: 145000,
			17: 155000, 18: 165000, 19: 175000, 20: 185000, 21: 195000,
			22: 250000, 23: 350000, 24: 450000, 25: 750000, 26: 1500000,
		},
		Thresholds: []float64{338278, 627855, 884183, 1191537, 2052850},
		Age: AgeStrategy{
			BirthYearVar: "a2y",
			EraOffset:    1911,
			DirectVars:   []string{"a2a"},
		},
	},
	2022: {
		Year:          2022,
		DataFile:      "tscs221",
		SubjectiveVar: "e2",
		IncomeVars:    []string{"f14"},
		ZipVar:        "zipr",
		GenderVar:     "a1",
		HappinessVar:  "f9",
		IncomeTable: map[int]float64{
			1: 0, 2: 5000, 3: 15000, 4: 25000, 5: 35000, 6: 45000,
			7: 55000, 8: 65000, 9: 75000, 10: 85000, 11: 95000,
			12: 105000, 13: 115000, 14: 125000, 15: 135000, 16: 145000,
			17: 155000, 18: 165000, 19: 175000, 20: 185000, 21: 195000,
			22: 250000, 23: 350000, 24: 450000, 25: 750000, 26: 1500000,
		},
		Thresholds: []float64{364876, 672906, 954383, 1306283, 2244401},
		Age: AgeStrategy{
			BirthYearVar: "a2y",
			EraOffset:    1911,
			DirectVars:   []string{"a2r"},
		},
	},
}
