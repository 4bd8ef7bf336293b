package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// ChatReply is what the chat handler returns to the frontend.
type ChatReply struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Phase     Phase  `json:"phase"`
	BookingID string `json:"booking_id,omitempty"`
}
