// Package bank holds the static interview question catalogue and candidate
// selection. The catalogue is declared once and never mutated.
package bank

import "ailiteracy/internal/model"

// Questions is the full catalogue in declaration order. Selection preserves
// this order, so it doubles as the ask-priority order.
var Questions = []model.Question{
	// Core baseline (ALL)
	{ID: "CORE_A1", Persona: model.PersonaAll, Domain: "A", Type: model.QuestionTypeOpen,
		Prompt: "In your own words, what is the difference between traditional AI and generative AI?"},
	{ID: "CORE_B1", Persona: model.PersonaAll, Domain: "B", Type: model.QuestionTypeOpen,
		Prompt: "Give one good use case for generative AI in your work, and one use case where it would be risky or low value."},
	{ID: "CORE_C1", Persona: model.PersonaAll, Domain: "C", Type: model.QuestionTypeOpen,
		Prompt: "What kinds of information should never be pasted into an AI tool unless explicitly approved and protected?"},
	{ID: "CORE_D1", Persona: model.PersonaAll, Domain: "D", Type: model.QuestionTypeOpen,
		Prompt: "If an AI output appears biased or unfair, what would you do before using it?"},
	{ID: "CORE_E1", Persona: model.PersonaAll, Domain: "E", Type: model.QuestionTypeOpen,
		Prompt: "What elements make a prompt effective (context, constraints, format, examples, etc.)?"},
	{ID: "CORE_F1", Persona: model.PersonaAll, Domain: "F", Type: model.QuestionTypeOpen,
		Prompt: "How do you validate an AI-generated answer before acting on it?"},
	{ID: "CORE_G1", Persona: model.PersonaAll, Domain: "G", Type: model.QuestionTypeOpen,
		Prompt: "Who should be accountable for approving AI use cases (business, IT, security, leadership)? Why?"},
	{ID: "CORE_F2", Persona: model.PersonaAll, Domain: "F", Type: model.QuestionTypeMCQ,
		Prompt: "The AI gives a confident answer with no sources. What's your next step?",
		Options: []string{
			"Use it as-is if it sounds right",
			"Ask the AI for sources/assumptions and verify with trusted references",
			"Ignore it entirely; AI is never useful",
			"Forward it to someone else without checking",
		}},

	// Executive
	{ID: "EXEC_B2", Persona: model.PersonaExecutive, Domain: "B", Type: model.QuestionTypeOpen,
		Prompt: "How would you prioritize which AI initiatives to fund first (mission impact, readiness, risk, speed, cost)?"},
	{ID: "EXEC_C2", Persona: model.PersonaExecutive, Domain: "C", Type: model.QuestionTypeOpen,
		Prompt: "What AI-related risk would you not accept even if the business case is strong?"},
	{ID: "EXEC_G2", Persona: model.PersonaExecutive, Domain: "G", Type: model.QuestionTypeOpen,
		Prompt: "What does 'human-in-the-loop' mean for high-impact decisions in your organization?"},
	{ID: "EXEC_F2", Persona: model.PersonaExecutive, Domain: "F", Type: model.QuestionTypeOpen,
		Prompt: "What metrics would convince you an AI pilot is ready to scale?"},
	{ID: "EXEC_D2", Persona: model.PersonaExecutive, Domain: "D", Type: model.QuestionTypeOpen,
		Prompt: "If AI contributes to a harmful decision, how do you think about accountability and oversight?"},

	// Project Manager
	{ID: "PM_G2", Persona: model.PersonaPM, Domain: "G", Type: model.QuestionTypeOpen,
		Prompt: "How would you write acceptance criteria for an AI assistant (quality, safety, latency, auditability)?"},
	{ID: "PM_C2", Persona: model.PersonaPM, Domain: "C", Type: model.QuestionTypeOpen,
		Prompt: "How would you ensure the AI solution only uses approved data and respects access controls?"},
	{ID: "PM_F2", Persona: model.PersonaPM, Domain: "F", Type: model.QuestionTypeOpen,
		Prompt: "How would you test an AI feature differently than deterministic software?"},
	{ID: "PM_D2", Persona: model.PersonaPM, Domain: "D", Type: model.QuestionTypeOpen,
		Prompt: "If the AI produces a harmful output in production, what is your incident response and rollback plan?"},
	{ID: "PM_B2", Persona: model.PersonaPM, Domain: "B", Type: model.QuestionTypeOpen,
		Prompt: "What change management and adoption risks do you expect, and how would you address them?"},

	// Business user
	{ID: "BUS_B2", Persona: model.PersonaBusinessUser, Domain: "B", Type: model.QuestionTypeOpen,
		Prompt: "Describe a repeatable task you do. Where could AI help (drafting, summarizing, analysis, generating options)?"},
	{ID: "BUS_E2", Persona: model.PersonaBusinessUser, Domain: "E", Type: model.QuestionTypeOpen,
		Prompt: "Write a prompt to summarize a long report into: decisions, risks, and actions, in bullet points."},
	{ID: "BUS_F2", Persona: model.PersonaBusinessUser, Domain: "F", Type: model.QuestionTypeOpen,
		Prompt: "How do you detect when the AI is hallucinating or making unsupported claims?"},
	{ID: "BUS_D2", Persona: model.PersonaBusinessUser, Domain: "D", Type: model.QuestionTypeOpen,
		Prompt: "If AI suggests a hiring shortlist or evaluation, what checks would you apply before using it?"},
	{ID: "BUS_C2", Persona: model.PersonaBusinessUser, Domain: "C", Type: model.QuestionTypeOpen,
		Prompt: "What would you do if someone asks you to paste sensitive content into an AI tool to save time?"},

	// End user
	{ID: "END_A2", Persona: model.PersonaEndUser, Domain: "A", Type: model.QuestionTypeOpen,
		Prompt: "What tasks would you feel comfortable using AI for today?"},
	{ID: "END_F2", Persona: model.PersonaEndUser, Domain: "F", Type: model.QuestionTypeOpen,
		Prompt: "When would you not trust an AI answer? Give an example."},
	{ID: "END_C2", Persona: model.PersonaEndUser, Domain: "C", Type: model.QuestionTypeOpen,
		Prompt: "Name two things you should avoid sharing with an AI assistant."},
	{ID: "END_E2", Persona: model.PersonaEndUser, Domain: "E", Type: model.QuestionTypeOpen,
		Prompt: "You need an email draft requesting info from another department. What would you tell the AI so it uses the right tone and details?"},
	{ID: "END_G2", Persona: model.PersonaEndUser, Domain: "G", Type: model.QuestionTypeOpen,
		Prompt: "If AI gives you a policy interpretation, what should you do next before acting on it?"},

	// IT Engineer
	{ID: "ITENG_C2", Persona: model.PersonaITEngineer, Domain: "C", Type: model.QuestionTypeOpen,
		Prompt: "What technical controls would you implement to prevent sensitive data leakage when integrating AI tools?"},
	{ID: "ITENG_F2", Persona: model.PersonaITEngineer, Domain: "F", Type: model.QuestionTypeOpen,
		Prompt: "How would you validate AI outputs in a production workflow to reduce hallucinations and errors?"},
	{ID: "ITENG_E2", Persona: model.PersonaITEngineer, Domain: "E", Type: model.QuestionTypeOpen,
		Prompt: "Describe how you would structure prompts or system instructions to enforce safe behavior in an AI assistant."},
	{ID: "ITENG_D2", Persona: model.PersonaITEngineer, Domain: "D", Type: model.QuestionTypeOpen,
		Prompt: "What monitoring and logging would you set up to detect harmful or non-compliant AI outputs?"},
	{ID: "ITENG_G2", Persona: model.PersonaITEngineer, Domain: "G", Type: model.QuestionTypeOpen,
		Prompt: "Who should sign off on deploying an AI feature, and what evidence should be required?"},

	// IT Architect
	{ID: "ITARCH_B2", Persona: model.PersonaITArchitect, Domain: "B", Type: model.QuestionTypeOpen,
		Prompt: "How would you evaluate which AI use cases belong in the enterprise architecture roadmap?"},
	{ID: "ITARCH_C2", Persona: model.PersonaITArchitect, Domain: "C", Type: model.QuestionTypeOpen,
		Prompt: "How would you design data boundaries and access controls for AI systems across multiple domains?"},
	{ID: "ITARCH_F2", Persona: model.PersonaITArchitect, Domain: "F", Type: model.QuestionTypeOpen,
		Prompt: "What quality and validation gates would you require before scaling an AI system?"},
	{ID: "ITARCH_D2", Persona: model.PersonaITArchitect, Domain: "D", Type: model.QuestionTypeOpen,
		Prompt: "How would you ensure responsible AI principles are embedded in system architecture and delivery?"},
	{ID: "ITARCH_G2", Persona: model.PersonaITArchitect, Domain: "G", Type: model.QuestionTypeOpen,
		Prompt: "What governance model would you propose for AI systems operating across business units?"},

	// Scenarios (ALL)
	{ID: "SCN_C1", Persona: model.PersonaAll, Domain: "C", Type: model.QuestionTypeOpen,
		Prompt: "Scenario: You have a document with internal details and want AI to summarize it. What do you do to stay safe and compliant?"},
	{ID: "SCN_F1", Persona: model.PersonaAll, Domain: "F", Type: model.QuestionTypeOpen,
		Prompt: "Scenario: AI generates a confident procurement recommendation with no sources and you're under deadline. What steps do you take?"},
}

var byID = func() map[string]*model.Question {
	m := make(map[string]*model.Question, len(Questions))
	for i := range Questions {
		m[Questions[i].ID] = &Questions[i]
	}
	return m
}()

// ByID looks up a question by its id
func ByID(id string) (*model.Question, bool) {
	q, ok := byID[id]
	return q, ok
}

// Candidates returns every question not yet asked whose persona tag matches
// the given persona or ALL, in declaration order.
func Candidates(persona model.Persona, askedIDs []string) []model.QuestionSummary {
	asked := make(map[string]struct{}, len(askedIDs))
	for _, id := range askedIDs {
		asked[id] = struct{}{}
	}

	var out []model.QuestionSummary
	for i := range Questions {
		q := &Questions[i]
		if _, ok := asked[q.ID]; ok {
			continue
		}
		if q.Persona != model.PersonaAll && q.Persona != persona {
			continue
		}
		out = append(out, model.QuestionSummary{
			ID:     q.ID,
			Domain: q.Domain,
			Type:   q.Type,
			Prompt: q.Prompt,
		})
	}
	return out
}
