package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

// Store persists the ordered memory fact list as a JSON array under a
// single Redis key. Every mutation rewrites the full list.
type Store struct {
	client *redis.Client
	key    string
}

// NewStore creates a store writing to the given Redis key.
func NewStore(client *redis.Client, key string) *Store {
	return &Store{client: client, key: key}
}

// Load returns the persisted fact list. A missing or unparsable value
// degrades to the seed defaults with a log warning; Load never fails the
// caller.
func (s *Store) Load(ctx context.Context) []Fact {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("memory: reading persisted facts failed, using defaults", "error", err, "key", s.key)
		}
		return SeedFacts()
	}

	var facts []Fact
	if err := json.Unmarshal([]byte(val), &facts); err != nil {
		slog.Warn("memory: persisted facts are malformed, using defaults", "error", err, "key", s.key)
		return SeedFacts()
	}
	return facts
}

// Add appends a fact and persists the full list. A fresh ULID is assigned
// when the caller leaves the id empty. A caller-supplied id colliding with
// an existing fact still appends a distinct entry; facts are never merged.
func (s *Store) Add(ctx context.Context, fact Fact) ([]Fact, error) {
	if fact.ID == "" {
		fact.ID = ulid.Make().String()
	}
	facts := append(s.Load(ctx), fact)
	if err := s.persist(ctx, facts); err != nil {
		return nil, err
	}
	return facts, nil
}

// Remove filters out the fact with the given id, preserving the order of
// the remainder. An absent id is a no-op, not an error; the list is
// persisted either way so the stored value always matches the returned one.
func (s *Store) Remove(ctx context.Context, id string) ([]Fact, error) {
	current := s.Load(ctx)
	facts := make([]Fact, 0, len(current))
	for _, f := range current {
		if f.ID != id {
			facts = append(facts, f)
		}
	}
	if err := s.persist(ctx, facts); err != nil {
		return nil, err
	}
	return facts, nil
}

func (s *Store) persist(ctx context.Context, facts []Fact) error {
	data, err := json.Marshal(facts)
	if err != nil {
		return fmt.Errorf("marshaling facts: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("persisting facts: %w", err)
	}
	return nil
}
