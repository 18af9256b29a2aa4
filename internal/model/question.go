package model

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeOpen QuestionType = "OPEN" // Free text, scored by the assessor model
	QuestionTypeMCQ  QuestionType = "MCQ"  // Multiple choice
)

// Persona is the self-declared role category that filters applicable questions
type Persona string

const (
	PersonaExecutive    Persona = "EXECUTIVE"
	PersonaPM           Persona = "PM"
	PersonaBusinessUser Persona = "BUSINESS_USER"
	PersonaEndUser      Persona = "END_USER"
	PersonaITEngineer   Persona = "IT_ENGINEER"
	PersonaITArchitect  Persona = "IT_ARCHITECT"

	// PersonaAll tags questions applicable to every persona
	PersonaAll Persona = "ALL"
)

// AllPersonas lists the selectable personas (excludes the ALL tag)
var AllPersonas = []Persona{
	PersonaExecutive,
	PersonaPM,
	PersonaBusinessUser,
	PersonaEndUser,
	PersonaITEngineer,
	PersonaITArchitect,
}

// Domains are the seven competency axes, each scored 0-3
var Domains = []string{"A", "B", "C", "D", "E", "F", "G"}

// Question is one immutable entry of the interview bank
type Question struct {
	ID      string       `json:"id"`
	Persona Persona      `json:"persona"`
	Domain  string       `json:"domain"`
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"prompt"`
	Options []string     `json:"options,omitempty"` // MCQ only
}

// QuestionSummary is the projection of a candidate question sent to the model
type QuestionSummary struct {
	ID     string       `json:"id"`
	Domain string       `json:"domain"`
	Type   QuestionType `json:"type"`
	Prompt string       `json:"prompt"`
}
