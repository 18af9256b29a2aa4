package model

import "time"

// ChatRole tags who authored a transcript message
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry of the ordered conversation transcript
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Session is the per-interview conversational state. It lives for the
// process lifetime; the store never deletes it.
type Session struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	Persona   Persona       `json:"persona,omitempty"` // empty until declared
	Messages  []ChatMessage `json:"messages"`

	// AskedQuestionIDs holds bank ids in ask order, no duplicates
	AskedQuestionIDs []string       `json:"askedQuestionIds"`
	Scores           map[string]int `json:"scores"`   // domain letter -> level 0..3
	Evidence         []string       `json:"evidence"` // deduplicated, first-seen order

	Done      bool    `json:"done"`
	Report    *Report `json:"report,omitempty"`
	Persisted bool    `json:"persisted"`
}

// AppendAssistant appends an assistant message to the transcript
func (s *Session) AppendAssistant(text string) {
	s.Messages = append(s.Messages, ChatMessage{Role: RoleAssistant, Content: text})
}

// AppendUser appends a user message to the transcript
func (s *Session) AppendUser(text string) {
	s.Messages = append(s.Messages, ChatMessage{Role: RoleUser, Content: text})
}

// HasAsked reports whether a question id was already asked in this session
func (s *Session) HasAsked(id string) bool {
	for _, asked := range s.AskedQuestionIDs {
		if asked == id {
			return true
		}
	}
	return false
}

// MergeScores applies per-domain score updates, overwriting existing levels
func (s *Session) MergeScores(scores map[string]int) {
	if len(scores) == 0 {
		return
	}
	if s.Scores == nil {
		s.Scores = make(map[string]int, len(scores))
	}
	for d, level := range scores {
		s.Scores[d] = level
	}
}

// MergeEvidence appends new evidence tags, keeping first-seen order and
// dropping duplicates
func (s *Session) MergeEvidence(evidence []string) {
	seen := make(map[string]struct{}, len(s.Evidence)+len(evidence))
	merged := make([]string, 0, len(s.Evidence)+len(evidence))
	for _, tag := range s.Evidence {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		merged = append(merged, tag)
	}
	for _, tag := range evidence {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		merged = append(merged, tag)
	}
	s.Evidence = merged
}
