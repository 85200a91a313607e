package services

import (
	"strings"

	"tscs-pipeline/config"
	"tscs-pipeline/survey"
)

// nonResponseMarkers are label phrases meaning the respondent gave no
// usable answer.
var nonResponseMarkers = []string{
	"不知道", "拒答", "跳答", "漏答", "無意見", "無反應",
}

// labelRule matches a class by substring. Rules are evaluated top to
// bottom; the exclusions keep the hierarchical label texts apart
// (上層 would otherwise swallow 中上層, 中層 would swallow 中上層/中下層).
// The list is brittle by nature: an unseen label variant in a future
// wave would fall through to unknown rather than misclassify loudly.
type labelRule struct {
	match    string
	excludes []string
	class    string
}

var labelRules = []labelRule{
	{match: "上層", excludes: []string{"中上"}, class: "上層階級"},
	{match: "中上", class: "中上層階級"},
	{match: "中層", excludes: []string{"中上", "中下"}, class: "中層階級"},
	{match: "中下", class: "中下層階級"},
	{match: "勞工", class: "勞工階級"},
	{match: "下層", class: "下層階級"},
}

// ClassifySubjective resolves a respondent's self-placed class from the
// wave's subjective variable and codebook. It returns "" for missing
// codes, non-response labels and labels matching no rule.
//
// Waves with a SubjectiveAuxVar carry the 2002 correction: a
// lower-middle self-placement combined with a labor or farming
// occupation label is forced to 勞工階級. This is a documented
// data-specific fix for that wave, not a general rule.
func ClassifySubjective(cfg *config.YearConfig, table *survey.Table, meta *survey.Meta, row int) string {
	code, present := table.Value(row, cfg.SubjectiveVar)
	if !present {
		return ""
	}

	label, _ := meta.Label(cfg.SubjectiveVar, code)
	if label != "" && isNonResponse(label) {
		return ""
	}

	if cfg.SubjectiveAuxVar != "" {
		if class, ok := occupationOverride(cfg, table, meta, row); ok {
			return class
		}
	}

	return classifyLabel(label)
}

func isNonResponse(label string) bool {
	for _, marker := range nonResponseMarkers {
		if strings.Contains(label, marker) {
			return true
		}
	}
	return false
}

func classifyLabel(label string) string {
	if label == "" {
		return ""
	}
	for _, rule := range labelRules {
		if !strings.Contains(label, rule.match) {
			continue
		}
		excluded := false
		for _, ex := range rule.excludes {
			if strings.Contains(label, ex) {
				excluded = true
				break
			}
		}
		if !excluded {
			return rule.class
		}
	}
	return ""
}

func occupationOverride(cfg *config.YearConfig, table *survey.Table, meta *survey.Meta, row int) (string, bool) {
	primary, ok := table.Value(row, cfg.SubjectiveVar)
	if !ok {
		return "", false
	}
	aux, ok := table.Value(row, cfg.SubjectiveAuxVar)
	if !ok {
		return "", false
	}

	primaryLabel, _ := meta.Label(cfg.SubjectiveVar, primary)
	auxLabel, _ := meta.Label(cfg.SubjectiveAuxVar, aux)

	if strings.Contains(primaryLabel, "中下") &&
		(strings.Contains(auxLabel, "工") || strings.Contains(auxLabel, "農民")) {
		return "勞工階級", true
	}
	return "", false
}
