package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTurn = `{
  "assistant_text": "Good answer.",
  "next_question_id": "CORE_B1",
  "scores": {"A": 2},
  "evidence": ["SAFE_PRACTICE"],
  "done": false,
  "report": null
}`

func TestParseTurnResultValid(t *testing.T) {
	result, err := ParseTurnResult(validTurn)
	require.NoError(t, err)

	assert.Equal(t, "Good answer.", result.AssistantText)
	require.NotNil(t, result.NextQuestionID)
	assert.Equal(t, "CORE_B1", *result.NextQuestionID)
	assert.Equal(t, map[string]int{"A": 2}, result.Scores)
	assert.False(t, result.Done)
	assert.Nil(t, result.Report)
}

func TestParseTurnResultStripsFencesAndProse(t *testing.T) {
	raw := "Sure, here you go:\n```json\n" + validTurn + "\n```\nLet me know!"
	result, err := ParseTurnResult(raw)
	require.NoError(t, err)
	assert.Equal(t, "Good answer.", result.AssistantText)
}

func TestParseTurnResultNullNextQuestion(t *testing.T) {
	raw := `{"assistant_text":"t","next_question_id":null,"scores":{},"evidence":[],"done":true,"report":null}`
	result, err := ParseTurnResult(raw)
	require.NoError(t, err)
	assert.Nil(t, result.NextQuestionID)
	assert.True(t, result.Done)
}

func TestParseTurnResultRejectsUnknownFields(t *testing.T) {
	raw := `{"assistant_text":"t","next_question_id":null,"scores":{},"evidence":[],"done":false,"report":null,"extra":1}`
	_, err := ParseTurnResult(raw)
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestParseTurnResultRejectsMissingFields(t *testing.T) {
	raw := `{"assistant_text":"t","scores":{},"evidence":[],"done":false,"report":null}`
	_, err := ParseTurnResult(raw)
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestParseTurnResultRejectsNullRequired(t *testing.T) {
	raw := `{"assistant_text":null,"next_question_id":null,"scores":{},"evidence":[],"done":false,"report":null}`
	_, err := ParseTurnResult(raw)
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestParseTurnResultClampsScores(t *testing.T) {
	raw := `{"assistant_text":"t","next_question_id":null,"scores":{"A":-2,"B":7,"C":3},"evidence":[],"done":false,"report":null}`
	result, err := ParseTurnResult(raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 3, "C": 3}, result.Scores)
}

func TestParseTurnResultInvalidJSON(t *testing.T) {
	_, err := ParseTurnResult("Sure! ```json {not valid} ```")
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestParseTurnResultNoObject(t *testing.T) {
	_, err := ParseTurnResult("I could not produce JSON, sorry.")
	assert.ErrorIs(t, err, ErrMalformedOutput)
}
