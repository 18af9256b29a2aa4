package service

import (
	"math"
	"sort"
	"strings"

	"ailiteracy/internal/model"
)

// learningPlan maps each growth-area domain to its remediation module
var learningPlan = map[string]string{
	"A": "Complete 'AI fundamentals' micro-module; explain GenAI limits (training vs retrieval) to a peer.",
	"B": "Complete 'Use case framing' micro-module; draft 2 use cases with value + risk + owner.",
	"C": "Complete 'Safe AI use & data handling' micro-module; practice redaction and approved-tool usage.",
	"D": "Complete 'Responsible AI' micro-module; apply bias and fairness checks on AI outputs.",
	"E": "Complete 'Prompting patterns' micro-module; practice context + constraints + format + examples.",
	"F": "Complete 'Validation & hallucinations' micro-module; use a 3-step verify checklist on next 5 uses.",
	"G": "Complete 'Governance basics' micro-module; learn escalation paths and approvals for AI use cases.",
}

const genericPractice = "Practice: Use AI on a low-risk task and document assumptions, checks, and outcome."

const maxReportNotes = 6
const maxTopRisks = 5

// OverallLevel returns the rounded mean of all seven domain scores, with
// unscored domains counting as 0.
func OverallLevel(scores map[string]int) int {
	sum := 0
	for _, d := range model.Domains {
		sum += scores[d]
	}
	return int(math.Round(float64(sum) / float64(len(model.Domains))))
}

// BuildReport deterministically turns accumulated scores and evidence into
// the final report. Pure function: identical inputs yield identical output.
func BuildReport(persona model.Persona, scores map[string]int, evidence []string, notes []string) *model.Report {
	domainScores := make(map[string]int, len(model.Domains))
	for _, d := range model.Domains {
		domainScores[d] = scores[d]
	}

	// Ties resolve by domain order A-G in both directions.
	ascending := append([]string(nil), model.Domains...)
	sort.SliceStable(ascending, func(i, j int) bool {
		return domainScores[ascending[i]] < domainScores[ascending[j]]
	})
	descending := append([]string(nil), model.Domains...)
	sort.SliceStable(descending, func(i, j int) bool {
		return domainScores[descending[i]] > domainScores[descending[j]]
	})

	growth := ascending[:2]
	strengths := descending[:2]

	plan := make([]string, 0, 3)
	for _, d := range growth {
		plan = append(plan, learningPlan[d])
	}
	for len(plan) < 3 {
		plan = append(plan, genericPractice)
	}

	if len(notes) > maxReportNotes {
		notes = notes[:maxReportNotes]
	}

	return &model.Report{
		Persona:      persona,
		OverallLevel: OverallLevel(domainScores),
		DomainScores: domainScores,
		Strengths:    append([]string(nil), strengths...),
		GrowthAreas:  append([]string(nil), growth...),
		TopRisks:     topRisks(evidence),
		LearningPlan: plan[:3],
		Notes:        append([]string(nil), notes...),
	}
}

// topRisks keeps the first five distinct evidence tags that flag a risk or
// misconception, in first-seen order.
func topRisks(evidence []string) []string {
	seen := make(map[string]struct{}, len(evidence))
	out := make([]string, 0, maxTopRisks)
	for _, tag := range evidence {
		if !strings.Contains(tag, "RISK") && !strings.Contains(tag, "MISCONCEPTION") {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
		if len(out) == maxTopRisks {
			break
		}
	}
	return out
}
