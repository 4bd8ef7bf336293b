package rag

import (
	"context"
	"fmt"
	"strings"

	"bookassist/models"

	"go.uber.org/zap"
)

// Completer produces a free-text completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Answerer builds grounded answers to general service questions by combining
// retrieved knowledge chunks with recent conversation history.
type Answerer struct {
	Retriever *Retriever
	LLM       Completer
	Logger    *zap.Logger
	// HistoryTurns limits how many recent turns are included in the prompt.
	HistoryTurns int
}

const answerPrompt = `You are a friendly booking assistant for a service business.
Answer the customer's question using the context below. If the context does not
cover the question, say what you do know and suggest making a booking.
Keep the answer short and conversational.

Context:
%s

Recent conversation:
%s

Customer question: %s

Answer:`

// Answer retrieves relevant knowledge and asks the model for a grounded reply.
// A retrieval failure degrades to answering from the question alone.
func (a *Answerer) Answer(ctx context.Context, question string, history []models.Turn) (string, error) {
	contextText := "(no additional context)"
	if a.Retriever != nil {
		chunks, err := a.Retriever.Search(ctx, question)
		if err != nil {
			a.Logger.Warn("knowledge retrieval failed", zap.Error(err))
		} else if len(chunks) > 0 {
			var sb strings.Builder
			for _, c := range chunks {
				sb.WriteString("- ")
				sb.WriteString(c.Content)
				sb.WriteString("\n")
			}
			contextText = sb.String()
		}
	}

	prompt := fmt.Sprintf(answerPrompt, contextText, renderHistory(history, a.HistoryTurns), question)
	answer, err := a.LLM.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to answer question: %w", err)
	}
	return answer, nil
}

func renderHistory(history []models.Turn, max int) string {
	if len(history) == 0 {
		return "(none)"
	}
	if max > 0 && len(history) > max {
		history = history[len(history)-max:]
	}
	var sb strings.Builder
	for _, t := range history {
		sb.WriteString(t.Role)
		sb.WriteString(": ")
		sb.WriteString(t.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
