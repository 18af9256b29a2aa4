package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"ailiteracy/internal/bank"
	"ailiteracy/internal/model"
)

// MaxQuestions is the hard cap on asked questions per session. Hitting it
// forces completion regardless of the model's judgment.
const MaxQuestions = 15

const (
	turnTemperature = 0.2
	turnMaxTokens   = 900
)

const closingText = "Thanks — that completes the assessment. I'll share your summary report now."

const systemPrompt = `You are an AI Literacy Assessor for a defense organization.
Run a short interactive assessment and score the user.

Rules:
- Ask ONE question at a time.
- Never request/process sensitive/classified/personal data. If user shares it, interrupt and ask for a generalized description.
- Adapt next question based on persona and prior answers.
- Score domains A–G with levels 0–3:
  0 Unaware/misconceptions; 1 Aware/basic; 2 Practicing with checks; 3 Proficient/sets standards.
- Evidence tags: MISCONCEPTION, SAFE_PRACTICE, RISK_AWARE, GOV_AWARE, VALIDATION, PROMPT_SKILL.

Return STRICT JSON only:
{
  "assistant_text": string,
  "next_question_id": string|null,
  "scores": { "A":0..3, ... },
  "evidence": [string,...],
  "done": boolean,
  "report": object|null
}

If done=true, report must include:
persona, overall_level(0..3), domain_scores, strengths, growth_areas, top_risks, learning_plan(3), notes.`

// turnContext is the structured payload sent alongside the transcript
type turnContext struct {
	Persona          model.Persona           `json:"persona"`
	AskedQuestionIDs []string                `json:"asked_question_ids"`
	CurrentScores    map[string]int          `json:"current_scores"`
	CurrentEvidence  []string                `json:"current_evidence"`
	Candidates       []model.QuestionSummary `json:"candidates"`
}

// AssessorService runs one adaptive assessment turn: candidate selection,
// the model call, response validation, next-question resolution and
// completion handling.
type AssessorService struct {
	llm    LLMClient
	logger *zap.Logger
}

// NewAssessorService creates an assessor backed by the given model client
func NewAssessorService(llm LLMClient, logger *zap.Logger) *AssessorService {
	return &AssessorService{llm: llm, logger: logger}
}

// NextTurn advances the assessment by one turn. Once MaxQuestions ids have
// been asked, or no candidates remain for the persona, it completes without
// consulting the model.
func (s *AssessorService) NextTurn(
	ctx context.Context,
	persona model.Persona,
	askedIDs []string,
	messages []model.ChatMessage,
	currentScores map[string]int,
	currentEvidence []string,
) (*model.TurnResult, error) {
	candidates := bank.Candidates(persona, askedIDs)

	if len(askedIDs) >= MaxQuestions || len(candidates) == 0 {
		return s.forcedCompletion(persona, currentScores, currentEvidence), nil
	}

	ctxPayload, err := json.Marshal(turnContext{
		Persona:          persona,
		AskedQuestionIDs: askedIDs,
		CurrentScores:    currentScores,
		CurrentEvidence:  currentEvidence,
		Candidates:       candidates,
	})
	if err != nil {
		return nil, err
	}
	transcript, err := json.Marshal(messages)
	if err != nil {
		return nil, err
	}

	llmMessages := []model.ChatMessage{
		{Role: model.RoleSystem, Content: systemPrompt},
		{Role: model.RoleUser, Content: "CONTEXT_JSON:\n" + string(ctxPayload)},
		{Role: model.RoleUser, Content: "CONVERSATION_SO_FAR:\n" + string(transcript)},
		{Role: model.RoleUser, Content: "Return STRICT JSON only, no markdown, no extra text."},
	}

	raw, err := s.llm.ChatCompletion(ctx, llmMessages, turnTemperature, turnMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("assessor model call: %w", err)
	}

	result, err := ParseTurnResult(raw)
	if err != nil {
		s.logger.Warn("model returned unusable turn",
			zap.String("persona", string(persona)),
			zap.String("raw", truncateForLog(raw, 300)),
			zap.Error(err))
		return nil, err
	}

	// The model may name a question that is unknown or already asked.
	// Substituting the first remaining candidate guarantees forward progress.
	if result.NextQuestionID != nil {
		nid := *result.NextQuestionID
		_, known := bank.ByID(nid)
		if !known || containsID(askedIDs, nid) {
			first := candidates[0].ID
			result.NextQuestionID = &first
		}
	}

	// The model declared completion without a report; synthesize one from
	// its own latest scores and evidence.
	if result.Done && result.Report == nil {
		result.Report = BuildReport(persona, result.Scores, result.Evidence, nil)
	}

	return result, nil
}

func (s *AssessorService) forcedCompletion(persona model.Persona, scores map[string]int, evidence []string) *model.TurnResult {
	finalScores := make(map[string]int, len(scores))
	for d, level := range scores {
		finalScores[d] = level
	}
	finalEvidence := dedupeStrings(evidence)

	return &model.TurnResult{
		AssistantText:  closingText,
		NextQuestionID: nil,
		Scores:         finalScores,
		Evidence:       finalEvidence,
		Done:           true,
		Report:         BuildReport(persona, scores, evidence, nil),
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
