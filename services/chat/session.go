package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"bookassist/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds conversation state between turns.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ConversationState, error)
	Put(ctx context.Context, state *models.ConversationState) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps each session as a JSON blob with a sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Get loads the state for a session. A missing key yields a fresh idle state
// rather than an error, so every session ID is always resumable.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ConversationState, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return models.NewConversationState(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", sessionID, err)
	}

	var state models.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	return &state, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, state *models.ConversationState) error {
	state.UpdatedAt = time.Now()
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", state.SessionID, err)
	}
	if err := s.Client.Set(ctx, sessionKey(state.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", state.SessionID, err)
	}
	return nil
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", sessionID, err)
	}
	return nil
}

// MemorySessionStore is a process-local store for tests and single-node runs.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.ConversationState
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.ConversationState)}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.sessions[sessionID]; ok {
		clone := *state
		return &clone, nil
	}
	return models.NewConversationState(sessionID), nil
}

func (s *MemorySessionStore) Put(_ context.Context, state *models.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.UpdatedAt = time.Now()
	clone := *state
	s.sessions[state.SessionID] = &clone
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
