package rag

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// Chunk is one stored piece of the service knowledge base.
type Chunk struct {
	ID      string
	Content string
	Source  string
	Score   float32
}

// Embedder turns text into a vector for storage and search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Retriever searches the knowledge base collection in Qdrant.
type Retriever struct {
	client     *qdrant.Client
	embedder   Embedder
	collection string
	topK       int
}

// NewRetriever connects to Qdrant at the given URL. The URL may omit the
// scheme; https is assumed and port 6334 is the default.
func NewRetriever(rawURL, apiKey, collection string, embedder Embedder, topK int) (*Retriever, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("qdrant url is required")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse qdrant url: %w", err)
	}

	port := 6334
	if u.Port() != "" {
		p, err := strconv.Atoi(u.Port())
		if err != nil {
			return nil, fmt.Errorf("invalid qdrant port: %w", err)
		}
		port = p
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   u.Hostname(),
		Port:   port,
		APIKey: apiKey,
		UseTLS: u.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &Retriever{
		client:     client,
		embedder:   embedder,
		collection: collection,
		topK:       topK,
	}, nil
}

// Search embeds the query and returns the closest knowledge chunks.
func (r *Retriever) Search(ctx context.Context, query string) ([]Chunk, error) {
	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	limit := uint64(r.topK)
	points, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant search failed: %w", err)
	}

	chunks := make([]Chunk, 0, len(points))
	for _, point := range points {
		chunk := Chunk{Score: point.Score}
		if point.Id != nil {
			chunk.ID = point.Id.GetUuid()
		}
		if point.Payload != nil {
			if v, ok := point.Payload["content"]; ok {
				chunk.Content = v.GetStringValue()
			}
			if v, ok := point.Payload["source"]; ok {
				chunk.Source = v.GetStringValue()
			}
		}
		if chunk.Content != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks, nil
}

// Index embeds and stores one document, split into overlapping chunks.
func (r *Retriever) Index(ctx context.Context, source, content string, chunkSize, overlap int) error {
	for _, piece := range splitChunks(content, chunkSize, overlap) {
		vector, err := r.embedder.Embed(ctx, piece)
		if err != nil {
			return fmt.Errorf("failed to embed chunk from %s: %w", source, err)
		}
		point := &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(uuid.NewString()),
			Vectors: qdrant.NewVectors(vector...),
			Payload: qdrant.NewValueMap(map[string]any{
				"content": piece,
				"source":  source,
			}),
		}
		if _, err := r.client.Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: r.collection,
			Points:         []*qdrant.PointStruct{point},
		}); err != nil {
			return fmt.Errorf("failed to upsert chunk from %s: %w", source, err)
		}
	}
	return nil
}

// Close releases the Qdrant connection.
func (r *Retriever) Close() error {
	return r.client.Close()
}

// splitChunks breaks text on word boundaries into pieces of at most size
// characters, repeating the trailing overlap characters at each boundary.
func splitChunks(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if size <= 0 || len(text) <= size {
		if text == "" {
			return nil
		}
		return []string{text}
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	var chunks []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, w := range words {
		if current.Len() > 0 && current.Len()+1+len(w) > size {
			chunk := current.String()
			chunks = append(chunks, chunk)
			current.Reset()
			if overlap > 0 && len(chunk) > overlap {
				current.WriteString(chunk[len(chunk)-overlap:])
			}
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(w)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
