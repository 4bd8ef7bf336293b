package models

import "time"

// Phase is the conversation engine's current state for one session.
type Phase string

const (
	PhaseIdle                 Phase = "idle"
	PhaseCollecting           Phase = "collecting"
	PhaseAwaitingConfirmation Phase = "awaiting_confirmation"
)

// Turn is one logged message exchange entry.
type Turn struct {
	Role    string    `json:"role"` // "user" or "assistant"
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// ConversationState accumulates one booking conversation between turns. It is
// mutated in place by exactly one in-flight message at a time; the session
// store provides no internal synchronization.
type ConversationState struct {
	SessionID string        `json:"sessionId"`
	Phase     Phase         `json:"phase"`
	Record    BookingRecord `json:"record"`
	// ClarifyCount counts consecutive ambiguous confirmation replies.
	ClarifyCount int       `json:"clarifyCount,omitempty"`
	History      []Turn    `json:"history,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewConversationState returns a fresh idle session.
func NewConversationState(sessionID string) *ConversationState {
	return &ConversationState{
		SessionID: sessionID,
		Phase:     PhaseIdle,
		UpdatedAt: time.Now(),
	}
}

// AwaitingConfirmation reports whether the full record has been presented and
// the session is waiting on a yes/no reply.
func (s *ConversationState) AwaitingConfirmation() bool {
	return s.Phase == PhaseAwaitingConfirmation
}

// PushTurn appends a message to the bounded history window, evicting the
// oldest entries beyond max.
func (s *ConversationState) PushTurn(role, content string, max int) {
	s.History = append(s.History, Turn{Role: role, Content: content, At: time.Now()})
	if max > 0 && len(s.History) > max {
		s.History = s.History[len(s.History)-max:]
	}
}

// Reset discards the in-progress record and returns the session to idle.
func (s *ConversationState) Reset() {
	s.Phase = PhaseIdle
	s.Record = BookingRecord{}
	s.ClarifyCount = 0
}
