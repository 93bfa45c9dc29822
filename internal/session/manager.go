// Package session owns the single current chat session handle and keeps it
// bound to the latest composed system instruction.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/guloku/lulu/internal/config"
	"github.com/guloku/lulu/internal/memory"
	"github.com/guloku/lulu/internal/metrics"
	"github.com/guloku/lulu/internal/prompt"
	"github.com/guloku/lulu/internal/provider"
)

// ErrNotInitialized is returned by Send when no session exists yet.
var ErrNotInitialized = errors.New("chat session not initialized")

// Manager holds the process-wide current session. Reinitialize replaces the
// handle wholesale; Send reads a snapshot of it. A send started before a
// reinitialization completes against the handle it captured, since handles
// are immutable once created.
type Manager struct {
	client provider.Client
	llm    config.LLMConfig

	mu      sync.RWMutex
	current provider.Session
}

// NewManager creates a manager in the uninitialized state.
func NewManager(client provider.Client, llm config.LLMConfig) *Manager {
	return &Manager{client: client, llm: llm}
}

// Reinitialize composes the system instruction from the given facts and
// creates a fresh session bound to it. On failure the previous handle, if
// any, stays current: a broken rebuild must not take down a working
// session. Conversational context inside the old handle is discarded on
// success; that is the deliberate cost of keeping the instruction in sync
// with the latest memory snapshot.
func (m *Manager) Reinitialize(ctx context.Context, facts []memory.Fact) error {
	instruction := prompt.Compose(facts)

	sess, err := m.client.NewSession(ctx, provider.SessionConfig{
		Model:        m.llm.Model,
		SystemPrompt: instruction,
		Temperature:  m.llm.Temperature,
		MaxTokens:    m.llm.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("creating chat session: %w", err)
	}

	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()

	metrics.SessionReinitsTotal.Inc()
	slog.Debug("chat session reinitialized", "facts", len(facts), "model", m.llm.Model)
	return nil
}

// Send delivers one user turn with an optional inline image through the
// current session and returns the reply text. Empty replies are passed
// through as-is.
func (m *Manager) Send(ctx context.Context, text string, image *provider.Image) (string, error) {
	m.mu.RLock()
	sess := m.current
	m.mu.RUnlock()

	if sess == nil {
		return "", ErrNotInitialized
	}
	return sess.Send(ctx, provider.Turn{Role: provider.RoleUser, Text: text, Image: image})
}

// Ready reports whether a session handle exists.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
