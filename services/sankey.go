package services

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"tscs-pipeline/models"
	"tscs-pipeline/utils"
)

// SankeyAggregator turns one wave's classified records into the flow
// artifact and the comparison-chart score summary.
type SankeyAggregator struct {
	logger *utils.Logger
}

// NewSankeyAggregator creates a SankeyAggregator with the given logger.
func NewSankeyAggregator(logger *utils.Logger) *SankeyAggregator {
	return &SankeyAggregator{logger: logger}
}

// Build counts subjective → objective flows. Node lists contain only the
// classes observed in the wave, in canonical order; links are ordered by
// canonical rank of source then target so output is deterministic.
// Link values sum to TotalSamples: every record lands in exactly one flow.
func (s *SankeyAggregator) Build(year int, records []*models.ClassifiedRecord) *models.SankeyData {
	type flowKey struct {
		subjective string
		objective  string
	}
	flows := make(map[flowKey]int)
	bySubjective := make(map[string]int)
	byObjective := make(map[string]int)

	for _, r := range records {
		flows[flowKey{r.Subjective, r.Objective}]++
		bySubjective[r.Subjective]++
		byObjective[r.Objective]++
	}

	links := make([]models.Link, 0, len(flows))
	for key, count := range flows {
		links = append(links, models.Link{Source: key.subjective, Target: key.objective, Value: count})
	}
	sort.Slice(links, func(i, j int) bool {
		si, sj := models.SubjectiveRank(links[i].Source), models.SubjectiveRank(links[j].Source)
		if si != sj {
			return si < sj
		}
		return models.ObjectiveRank(links[i].Target) < models.ObjectiveRank(links[j].Target)
	})

	return &models.SankeyData{
		Year:         year,
		TotalSamples: len(records),
		Nodes: models.NodeSet{
			Subjective: observedClasses(models.SubjectiveClasses, bySubjective),
			Objective:  observedClasses(models.ObjectiveClasses, byObjective),
		},
		Links: links,
		Summary: models.Summary{
			BySubjective: bySubjective,
			ByObjective:  byObjective,
		},
	}
}

// observedClasses filters the canonical ordering down to the classes
// that actually occur, preserving order.
func observedClasses(canonical []string, counts map[string]int) []string {
	observed := make([]string, 0, len(canonical))
	for _, class := range canonical {
		if counts[class] > 0 {
			observed = append(observed, class)
		}
	}
	return observed
}

// WealthScores holds one wave's comparison-chart statistics. Nil fields
// mean the statistic could not be computed (no records, or a wave with
// no happiness variable).
type WealthScores struct {
	SubjectiveAvg *float64
	ObjectiveAvg  *float64
	HappinessAvg  *float64
	HappinessStd  *float64
}

// Scores maps each record's classes onto [0,1] by rank/(classes−1) and
// averages. The linear mapping assumes equal spacing between ordered
// classes, a deliberate modeling simplification. Happiness statistics
// cover only records with a score; the std-dev is the population
// std-dev, matching the published charts.
func (s *SankeyAggregator) Scores(records []*models.ClassifiedRecord) WealthScores {
	subjective := make([]float64, 0, len(records))
	objective := make([]float64, 0, len(records))
	happiness := make([]float64, 0, len(records))

	subjSpan := float64(len(models.SubjectiveClasses) - 1)
	objSpan := float64(len(models.ObjectiveClasses) - 1)

	for _, r := range records {
		subjective = append(subjective, float64(models.SubjectiveRank(r.Subjective))/subjSpan)
		objective = append(objective, float64(models.ObjectiveRank(r.Objective))/objSpan)
		if r.Happiness != nil {
			happiness = append(happiness, *r.Happiness)
		}
	}

	var scores WealthScores
	if len(subjective) > 0 {
		scores.SubjectiveAvg = ptr(stat.Mean(subjective, nil))
		scores.ObjectiveAvg = ptr(stat.Mean(objective, nil))
	}
	if len(happiness) > 0 {
		scores.HappinessAvg = ptr(stat.Mean(happiness, nil))
		scores.HappinessStd = ptr(stat.PopStdDev(happiness, nil))
	}
	return scores
}

func ptr(v float64) *float64 { return &v }
