package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"ailiteracy/internal/bank"
	"ailiteracy/internal/model"
	"ailiteracy/internal/store"
)

// ErrInvalidPersona is returned when a declared persona is not one of the
// six selectable values
var ErrInvalidPersona = errors.New("invalid persona")

const greetingText = "Hi — I'm your AI literacy assessment guide. Please don't share confidential or personal data. " +
	"Which role best describes you: Executive, Project Manager, Business User, End User, IT Engineer, or IT Architect?"

const choosePersonaText = "Please choose one: Executive, Project Manager (PM), Business User, or End User."

const alreadyCompleteText = "Session already complete. Start a new session."

// FinalPersister writes a completed session to the configured sinks.
// Implementations are best-effort and must not fail the chat turn.
type FinalPersister interface {
	PersistFinal(ctx context.Context, sess *model.Session)
}

// ChatOutcome is what one chat turn returns to the HTTP layer
type ChatOutcome struct {
	SessionID      string
	AssistantText  string
	NextQuestionID string
	Done           bool
	Scores         map[string]int
	Evidence       []string
	Report         *model.Report
}

// SessionService orchestrates the interview over the session store: persona
// declaration, per-turn assessment, state accumulation and final persistence.
type SessionService struct {
	sessions  *store.SessionStore
	assessor  *AssessorService
	persister FinalPersister // optional
	logger    *zap.Logger
}

// NewSessionService creates the session orchestrator
func NewSessionService(sessions *store.SessionStore, assessor *AssessorService, persister FinalPersister, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions:  sessions,
		assessor:  assessor,
		persister: persister,
		logger:    logger,
	}
}

// Start creates a session and seeds the transcript with the greeting
func (s *SessionService) Start() (*model.Session, string) {
	sess := s.sessions.Create()
	sess.AppendAssistant(greetingText)
	return sess, greetingText
}

// SetPersona declares the session persona explicitly
func (s *SessionService) SetPersona(sessionID string, persona model.Persona) (string, error) {
	valid := false
	for _, p := range model.AllPersonas {
		if p == persona {
			valid = true
			break
		}
	}
	if !valid {
		return "", ErrInvalidPersona
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}

	sess.Persona = persona
	text := "Thanks. I'll tailor this for the " + personaTitle(persona) + " persona. Let's begin."
	sess.AppendAssistant(text)
	return text, nil
}

// Chat runs one interview turn for the session. Turns against the same
// session are expected to be serialized by the caller.
func (s *SessionService) Chat(ctx context.Context, sessionID, userText string) (*ChatOutcome, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Done {
		return &ChatOutcome{
			SessionID:     sess.ID,
			AssistantText: alreadyCompleteText,
			Done:          true,
			Scores:        sess.Scores,
			Evidence:      sess.Evidence,
			Report:        sess.Report,
		}, nil
	}

	if sess.Persona == "" {
		persona, ok := inferPersona(userText)
		if !ok {
			sess.AppendAssistant(choosePersonaText)
			return &ChatOutcome{SessionID: sess.ID, AssistantText: choosePersonaText}, nil
		}
		sess.Persona = persona
	}

	sess.AppendUser(userText)

	result, err := s.assessor.NextTurn(ctx, sess.Persona, sess.AskedQuestionIDs, sess.Messages, sess.Scores, sess.Evidence)
	if err != nil {
		return nil, err
	}

	assistantText := result.AssistantText
	sess.AppendAssistant(assistantText)
	sess.MergeScores(result.Scores)
	sess.MergeEvidence(result.Evidence)

	nextID := ""
	if result.NextQuestionID != nil {
		nextID = *result.NextQuestionID
		sess.AskedQuestionIDs = append(sess.AskedQuestionIDs, nextID)
		if q, ok := bank.ByID(nextID); ok {
			sess.AppendAssistant(q.Prompt)
			assistantText = assistantText + "\n\n" + q.Prompt
		}
	}

	sess.Done = result.Done
	sess.Report = result.Report

	if sess.Done && !sess.Persisted {
		s.logger.Info("assessment complete",
			zap.String("sessionId", sess.ID),
			zap.String("persona", string(sess.Persona)),
			zap.Int("questionsAsked", len(sess.AskedQuestionIDs)))
		if s.persister != nil {
			s.persister.PersistFinal(ctx, sess)
		}
		// Written once on first completion, never retried.
		sess.Persisted = true
	}

	return &ChatOutcome{
		SessionID:      sess.ID,
		AssistantText:  assistantText,
		NextQuestionID: nextID,
		Done:           sess.Done,
		Scores:         sess.Scores,
		Evidence:       sess.Evidence,
		Report:         sess.Report,
	}, nil
}

// Report returns the final report for a completed session, if any
func (s *SessionService) Report(sessionID string) (*model.Report, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Report, nil
}

// inferPersona maps free-text role declarations onto a persona. Match order
// matters: EXEC before END_USER's broad USER match, ARCH before ENGINEER.
func inferPersona(text string) (model.Persona, bool) {
	txt := strings.ToUpper(strings.TrimSpace(text))
	switch {
	case strings.Contains(txt, "EXEC"):
		return model.PersonaExecutive, true
	case txt == "PM" || strings.Contains(txt, "PROJECT MANAGER") || strings.Contains(txt, "PROGRAM MANAGER"):
		return model.PersonaPM, true
	case strings.Contains(txt, "ARCH"):
		return model.PersonaITArchitect, true
	case strings.Contains(txt, "ENGINEER"):
		return model.PersonaITEngineer, true
	case strings.Contains(txt, "BUS"):
		return model.PersonaBusinessUser, true
	case strings.Contains(txt, "END") || strings.Contains(txt, "USER"):
		return model.PersonaEndUser, true
	}
	return "", false
}

// personaTitle renders "BUSINESS_USER" as "Business User"
func personaTitle(p model.Persona) string {
	words := strings.Split(strings.ToLower(string(p)), "_")
	for i, w := range words {
		if w == "it" {
			words[i] = "IT"
			continue
		}
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
