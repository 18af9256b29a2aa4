package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ailiteracy/internal/model"
)

// ErrMalformedOutput marks a model reply that could not be parsed or failed
// schema validation. The turn is aborted; no session state is committed.
var ErrMalformedOutput = errors.New("malformed model output")

// turnFields are the exact top-level keys a model turn must carry
var turnFields = map[string]bool{
	"assistant_text":   true,
	"next_question_id": true,
	"scores":           true,
	"evidence":         true,
	"done":             true,
	"report":           true,
}

// ParseTurnResult extracts the first top-level JSON object from the model's
// text (between the first '{' and the last '}', code fences stripped) and
// validates it: unknown fields rejected, all six fields required,
// next_question_id and report nullable, score values clamped to 0..3.
func ParseTurnResult(raw string) (*model.TurnResult, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "```")
	s = strings.ReplaceAll(s, "```", "")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrMalformedOutput)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s[start:end+1]), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	for key := range fields {
		if !turnFields[key] {
			return nil, fmt.Errorf("%w: unknown field %q", ErrMalformedOutput, key)
		}
	}
	for key := range turnFields {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrMalformedOutput, key)
		}
	}

	var result model.TurnResult
	if err := unmarshalRequired(fields["assistant_text"], &result.AssistantText); err != nil {
		return nil, fmt.Errorf("%w: assistant_text: %v", ErrMalformedOutput, err)
	}
	if err := json.Unmarshal(fields["next_question_id"], &result.NextQuestionID); err != nil {
		return nil, fmt.Errorf("%w: next_question_id: %v", ErrMalformedOutput, err)
	}
	if err := unmarshalRequired(fields["scores"], &result.Scores); err != nil {
		return nil, fmt.Errorf("%w: scores: %v", ErrMalformedOutput, err)
	}
	if err := unmarshalRequired(fields["evidence"], &result.Evidence); err != nil {
		return nil, fmt.Errorf("%w: evidence: %v", ErrMalformedOutput, err)
	}
	if err := unmarshalRequired(fields["done"], &result.Done); err != nil {
		return nil, fmt.Errorf("%w: done: %v", ErrMalformedOutput, err)
	}
	if err := json.Unmarshal(fields["report"], &result.Report); err != nil {
		return nil, fmt.Errorf("%w: report: %v", ErrMalformedOutput, err)
	}

	for d, level := range result.Scores {
		if level < 0 {
			result.Scores[d] = 0
		} else if level > 3 {
			result.Scores[d] = 3
		}
	}

	return &result, nil
}

// unmarshalRequired decodes a field that must not be JSON null
func unmarshalRequired(raw json.RawMessage, v any) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errors.New("must not be null")
	}
	return json.Unmarshal(raw, v)
}
