package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	completionModel = "gemini-1.5-flash"
	embeddingModel  = "text-embedding-004"
)

// Client wraps the Gemini API for completions and embeddings.
type Client struct {
	genai   *genai.Client
	timeout time.Duration
}

// NewClient dials Gemini with the given API key. Timeout bounds every call
// so a slow model never stalls a conversation turn.
func NewClient(ctx context.Context, apiKey string, timeout time.Duration) (*Client, error) {
	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{genai: gc, timeout: timeout}, nil
}

// Complete sends a single prompt and returns the text of the first candidate.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.genai.GenerativeModel(completionModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// Embed returns the embedding vector for one text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	em := c.genai.EmbeddingModel(embeddingModel)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embedding failed: %w", err)
	}
	if resp.Embedding == nil {
		return nil, fmt.Errorf("gemini returned empty embedding")
	}
	return resp.Embedding.Values, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.genai.Close()
}
