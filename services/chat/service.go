package chat

import (
	"context"
	"strings"

	"bookassist/models"

	"go.uber.org/zap"
)

// QueryAnswerer answers general questions that are not part of an active
// booking flow, typically backed by retrieval over the knowledge base.
type QueryAnswerer interface {
	Answer(ctx context.Context, question string, history []models.Turn) (string, error)
}

// Service is the conversation engine facade: it loads session state, routes
// each message by intent, and persists the updated state.
type Service struct {
	Sessions   SessionStore
	Flow       *Flow
	Answerer   QueryAnswerer
	Logger     *zap.Logger
	MaxHistory int
}

func NewService(sessions SessionStore, flow *Flow, answerer QueryAnswerer, logger *zap.Logger, maxHistory int) *Service {
	return &Service{
		Sessions:   sessions,
		Flow:       flow,
		Answerer:   answerer,
		Logger:     logger,
		MaxHistory: maxHistory,
	}
}

// HandleMessage processes one user message and returns the assistant reply.
func (s *Service) HandleMessage(ctx context.Context, sessionID, text string) (*models.ChatReply, error) {
	state, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.PushTurn("user", text, s.MaxHistory)

	var result *Result
	switch Classify(text, state) {
	case IntentBookingStart:
		result = s.Flow.Start(ctx, state, text)
	case IntentBookingContinue:
		result = s.Flow.Collect(ctx, state, text)
	case IntentConfirmationResponse:
		result = s.Flow.Confirm(ctx, state, text)
	default:
		result = &Result{Reply: s.answerQuery(ctx, text, state.History)}
	}

	state.PushTurn("assistant", result.Reply, s.MaxHistory)
	if err := s.Sessions.Put(ctx, state); err != nil {
		// The reply is still valid; the user just loses continuity.
		s.Logger.Error("failed to persist session", zap.String("session", sessionID), zap.Error(err))
	}

	return &models.ChatReply{
		SessionID: sessionID,
		Reply:     result.Reply,
		Phase:     state.Phase,
		BookingID: result.BookingID,
	}, nil
}

// ClearSession drops all state for a session.
func (s *Service) ClearSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Clear(ctx, sessionID)
}

// answerQuery handles small talk directly and defers everything else to the
// retrieval-backed answerer.
func (s *Service) answerQuery(ctx context.Context, text string, history []models.Turn) string {
	if reply, ok := smallTalkReply(text); ok {
		return reply
	}
	if s.Answerer == nil {
		return fallbackQueryReply
	}
	answer, err := s.Answerer.Answer(ctx, text, history)
	if err != nil {
		s.Logger.Warn("query answering failed", zap.Error(err))
		return fallbackQueryReply
	}
	return answer
}

const fallbackQueryReply = "I can help you book any of our services. Just say 'I want to book' to get started, or ask me about what we offer!"

var greetingWords = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

func smallTalkReply(text string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, g := range greetingWords {
		if lower == g || lower == g+"!" {
			return "Hello! 👋 I'm your booking assistant. I can answer questions about our services or help you make a booking. How can I help?", true
		}
	}
	switch strings.Trim(lower, "!. ") {
	case "thanks", "thank you", "thx":
		return "You're welcome! Let me know if there's anything else I can do.", true
	case "bye", "goodbye", "see you":
		return "Goodbye! Come back any time you'd like to make a booking. 👋", true
	}
	return "", false
}
