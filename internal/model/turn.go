package model

// TurnResult is the structured outcome of one assessment turn, either
// returned by the external model (after validation) or synthesized locally
// on forced completion.
type TurnResult struct {
	AssistantText  string         `json:"assistant_text"`
	NextQuestionID *string        `json:"next_question_id"` // nil when no question follows
	Scores         map[string]int `json:"scores"`           // domain -> level, clamped 0..3
	Evidence       []string       `json:"evidence"`
	Done           bool           `json:"done"`
	Report         *Report        `json:"report"` // nil unless the model supplied one
}
