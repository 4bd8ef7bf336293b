package rag

import (
	"context"
	"strings"
	"testing"

	"bookassist/models"

	"go.uber.org/zap"
)

type stubCompleter struct {
	gotPrompt string
	reply     string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	return s.reply, nil
}

func TestAnswerWithoutRetrieverStillAnswers(t *testing.T) {
	llm := &stubCompleter{reply: "We open at nine."}
	a := &Answerer{LLM: llm, Logger: zap.NewNop(), HistoryTurns: 2}

	history := []models.Turn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
		{Role: "user", Content: "when do you open?"},
	}
	answer, err := a.Answer(context.Background(), "when do you open?", history)
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if answer != "We open at nine." {
		t.Fatalf("answer = %q", answer)
	}
	if !strings.Contains(llm.gotPrompt, "(no additional context)") {
		t.Fatal("prompt should mark missing context")
	}
	// Only the trailing HistoryTurns turns make it into the prompt.
	if strings.Contains(llm.gotPrompt, "user: hi") {
		t.Fatal("history beyond the limit leaked into the prompt")
	}
	if !strings.Contains(llm.gotPrompt, "when do you open?") {
		t.Fatal("question missing from prompt")
	}
}

func TestRenderHistory(t *testing.T) {
	if got := renderHistory(nil, 5); got != "(none)" {
		t.Fatalf("empty history rendered as %q", got)
	}

	turns := []models.Turn{
		{Role: "user", Content: "one"},
		{Role: "assistant", Content: "two"},
		{Role: "user", Content: "three"},
	}
	got := renderHistory(turns, 2)
	if strings.Contains(got, "one") {
		t.Fatal("trimmed turn still rendered")
	}
	if !strings.Contains(got, "assistant: two") || !strings.Contains(got, "user: three") {
		t.Fatalf("rendered history = %q", got)
	}
}
