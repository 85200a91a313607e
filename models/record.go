package models

// SubjectiveClasses is the canonical ordering of self-reported class
// labels, lowest first.
var SubjectiveClasses = []string{
	"下層階級", "勞工階級", "中下層階級", "中層階級", "中上層階級", "上層階級",
}

// ObjectiveClasses is the canonical ordering of income quintile labels,
// lowest first.
var ObjectiveClasses = []string{"低", "中低", "中等", "中高", "高"}

// SubjectiveRank returns the rank of a subjective class label in the
// canonical ordering, or -1 for an unknown label.
func SubjectiveRank(class string) int {
	for i, c := range SubjectiveClasses {
		if c == class {
			return i
		}
	}
	return -1
}

// ObjectiveRank returns the rank of an objective class label in the
// canonical ordering, or -1 for an unknown label.
func ObjectiveRank(class string) int {
	for i, c := range ObjectiveClasses {
		if c == class {
			return i
		}
	}
	return -1
}

// ClassifiedRecord is one respondent after classification. Both class
// fields are set for every record fed to the Sankey aggregator; the grid
// stage accepts records with either one present.
type ClassifiedRecord struct {
	Subjective string   `json:"subjective"`
	Objective  string   `json:"objective"`
	Happiness  *float64 `json:"happiness"`
	Zip        *int     `json:"zip"`
}

// NodeSet holds the class labels observed in one wave, in canonical order.
type NodeSet struct {
	Subjective []string `json:"subjective"`
	Objective  []string `json:"objective"`
}

// Link is one subjective → objective flow with its respondent count.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
}

// Summary holds per-class marginal counts for one wave.
type Summary struct {
	BySubjective map[string]int `json:"by_subjective"`
	ByObjective  map[string]int `json:"by_objective"`
}

// SankeyData is the per-wave flow artifact consumed by the Sankey chart.
type SankeyData struct {
	Year         int     `json:"year"`
	TotalSamples int     `json:"total_samples"`
	Nodes        NodeSet `json:"nodes"`
	Links        []Link  `json:"links"`
	Summary      Summary `json:"summary"`
}

// ComparisonData holds cross-wave trend series as parallel arrays, one
// entry per successfully processed wave. Absent statistics (a wave with
// no happiness variable) are nil and serialize as JSON null.
type ComparisonData struct {
	Years         []int      `json:"years"`
	SubjectiveAvg []*float64 `json:"subjective_avg"`
	ObjectiveAvg  []*float64 `json:"objective_avg"`
	HappinessAvg  []*float64 `json:"happiness_avg"`
	HappinessStd  []*float64 `json:"happiness_std"`
}

// ZipCell is one postal area's age-group × class counts, kept separately
// for the subjective and objective classifications.
type ZipCell struct {
	Zip        string                    `json:"zip"`
	Region     string                    `json:"region"`
	Subjective map[string]map[string]int `json:"subjective"`
	Objective  map[string]map[string]int `json:"objective"`
}

// GridData is the per-wave geographic/age artifact for the grid chart.
type GridData struct {
	Year         int                 `json:"year"`
	TotalSamples int                 `json:"total_samples"`
	ZipCodes     map[string]*ZipCell `json:"zip_codes"`
}
