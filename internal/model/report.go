package model

// Report is the structured summary produced when an assessment completes.
// Wire format matches the frontend contract (snake_case keys).
type Report struct {
	Persona      Persona        `json:"persona"`
	OverallLevel int            `json:"overall_level"` // 0..3, rounded mean of domain scores
	DomainScores map[string]int `json:"domain_scores"` // always covers all 7 domains
	Strengths    []string       `json:"strengths"`     // top 2 domains, score descending
	GrowthAreas  []string       `json:"growth_areas"`  // bottom 2 domains, score ascending
	TopRisks     []string       `json:"top_risks"`     // <=5 RISK/MISCONCEPTION tags
	LearningPlan []string       `json:"learning_plan"` // exactly 3 entries
	Notes        []string       `json:"notes"`         // <=6 entries
}
