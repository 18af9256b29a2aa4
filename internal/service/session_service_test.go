package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ailiteracy/internal/model"
	"ailiteracy/internal/store"
)

type recordingPersister struct {
	calls []string
}

func (p *recordingPersister) PersistFinal(_ context.Context, sess *model.Session) {
	p.calls = append(p.calls, sess.ID)
}

func newTestSessionService(llm LLMClient, persister FinalPersister) (*SessionService, *store.SessionStore) {
	sessions := store.NewSessionStore()
	assessor := NewAssessorService(llm, zap.NewNop())
	return NewSessionService(sessions, assessor, persister, zap.NewNop()), sessions
}

func TestStartSeedsGreeting(t *testing.T) {
	svc, _ := newTestSessionService(&stubLLM{}, nil)

	sess, greeting := svc.Start()
	assert.NotEmpty(t, sess.ID)
	assert.Contains(t, greeting, "Which role best describes you")
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, model.RoleAssistant, sess.Messages[0].Role)
}

func TestSetPersona(t *testing.T) {
	svc, _ := newTestSessionService(&stubLLM{}, nil)
	sess, _ := svc.Start()

	text, err := svc.SetPersona(sess.ID, model.PersonaBusinessUser)
	require.NoError(t, err)
	assert.Contains(t, text, "Business User")
	assert.Equal(t, model.PersonaBusinessUser, sess.Persona)
}

func TestSetPersonaInvalid(t *testing.T) {
	svc, _ := newTestSessionService(&stubLLM{}, nil)
	sess, _ := svc.Start()

	_, err := svc.SetPersona(sess.ID, "WIZARD")
	assert.ErrorIs(t, err, ErrInvalidPersona)
}

func TestSetPersonaUnknownSession(t *testing.T) {
	svc, _ := newTestSessionService(&stubLLM{}, nil)

	_, err := svc.SetPersona("nope", model.PersonaPM)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestChatUnknownSession(t *testing.T) {
	svc, _ := newTestSessionService(&stubLLM{}, nil)

	_, err := svc.Chat(context.Background(), "nope", "hello")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestChatInfersPersonaFromFreeText(t *testing.T) {
	llm := &stubLLM{response: turnJSON("CORE_A1", false)}
	svc, _ := newTestSessionService(llm, nil)
	sess, _ := svc.Start()

	outcome, err := svc.Chat(context.Background(), sess.ID, "I'm an executive")
	require.NoError(t, err)

	assert.Equal(t, model.PersonaExecutive, sess.Persona)
	assert.Equal(t, "CORE_A1", outcome.NextQuestionID)
	assert.Equal(t, []string{"CORE_A1"}, sess.AskedQuestionIDs)
	// The resolved question's prompt is appended to the reply.
	assert.Contains(t, outcome.AssistantText, "traditional AI and generative AI")
}

func TestChatRepromptsWhenPersonaUnclear(t *testing.T) {
	llm := &stubLLM{response: turnJSON("CORE_A1", false)}
	svc, _ := newTestSessionService(llm, nil)
	sess, _ := svc.Start()

	outcome, err := svc.Chat(context.Background(), sess.ID, "42")
	require.NoError(t, err)

	assert.Equal(t, 0, llm.calls, "no model call before a persona is known")
	assert.Contains(t, outcome.AssistantText, "Please choose one")
	assert.Empty(t, sess.Persona)
}

func TestChatAccumulatesState(t *testing.T) {
	llm := &stubLLM{response: turnJSON("CORE_A1", false)}
	svc, _ := newTestSessionService(llm, nil)
	sess, _ := svc.Start()
	_, err := svc.SetPersona(sess.ID, model.PersonaEndUser)
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), sess.ID, "first answer")
	require.NoError(t, err)

	llm.response = turnJSON("CORE_B1", false)
	outcome, err := svc.Chat(context.Background(), sess.ID, "second answer")
	require.NoError(t, err)

	assert.Equal(t, []string{"CORE_A1", "CORE_B1"}, sess.AskedQuestionIDs)
	assert.Equal(t, 1, outcome.Scores["A"])
	// Evidence tags repeated across turns stay deduplicated.
	assert.Equal(t, []string{"SAFE_PRACTICE"}, outcome.Evidence)
}

func TestChatMalformedTurnLeavesPriorStateIntact(t *testing.T) {
	llm := &stubLLM{response: turnJSON("CORE_A1", false)}
	svc, _ := newTestSessionService(llm, nil)
	sess, _ := svc.Start()
	_, err := svc.SetPersona(sess.ID, model.PersonaEndUser)
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), sess.ID, "good answer")
	require.NoError(t, err)

	llm.response = "not json at all"
	_, err = svc.Chat(context.Background(), sess.ID, "another answer")
	assert.ErrorIs(t, err, ErrMalformedOutput)

	// Scores and asked ids from the successful turn are untouched.
	assert.Equal(t, []string{"CORE_A1"}, sess.AskedQuestionIDs)
	assert.Equal(t, 1, sess.Scores["A"])
	assert.False(t, sess.Done)
}

func TestChatPersistsOnceOnCompletion(t *testing.T) {
	llm := &stubLLM{response: `{
		"assistant_text": "All done.",
		"next_question_id": null,
		"scores": {"A": 2},
		"evidence": ["RISK_FLAGGED"],
		"done": true,
		"report": null
	}`}
	persister := &recordingPersister{}
	svc, _ := newTestSessionService(llm, persister)
	sess, _ := svc.Start()
	_, err := svc.SetPersona(sess.ID, model.PersonaEndUser)
	require.NoError(t, err)

	outcome, err := svc.Chat(context.Background(), sess.ID, "final answer")
	require.NoError(t, err)

	assert.True(t, outcome.Done)
	require.NotNil(t, outcome.Report)
	assert.Equal(t, []string{sess.ID}, persister.calls)
	assert.True(t, sess.Persisted)

	// A turn on a finished session short-circuits and does not re-persist.
	again, err := svc.Chat(context.Background(), sess.ID, "hello?")
	require.NoError(t, err)
	assert.True(t, again.Done)
	assert.Contains(t, again.AssistantText, "already complete")
	assert.Len(t, persister.calls, 1)
}

func TestInferPersona(t *testing.T) {
	cases := []struct {
		in      string
		persona model.Persona
		ok      bool
	}{
		{"I'm an exec", model.PersonaExecutive, true},
		{"Executive", model.PersonaExecutive, true},
		{"pm", model.PersonaPM, true},
		{"Project Manager", model.PersonaPM, true},
		{"IT architect", model.PersonaITArchitect, true},
		{"software engineer", model.PersonaITEngineer, true},
		{"business user", model.PersonaBusinessUser, true},
		{"end user", model.PersonaEndUser, true},
		{"just a user", model.PersonaEndUser, true},
		{"42", "", false},
	}

	for _, tc := range cases {
		persona, ok := inferPersona(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.persona, persona, "input %q", tc.in)
	}
}

func TestPersonaTitle(t *testing.T) {
	assert.Equal(t, "Business User", personaTitle(model.PersonaBusinessUser))
	assert.Equal(t, "IT Engineer", personaTitle(model.PersonaITEngineer))
	assert.Equal(t, "Executive", personaTitle(model.PersonaExecutive))
}
