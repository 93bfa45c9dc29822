// Package provider defines the boundary to the remote generative-language
// API. The rest of the application only sees Client and Session; the
// concrete Anthropic implementation lives in anthropic.go.
package provider

import "context"

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Image is an inline image payload, base64-encoded.
type Image struct {
	Data      string
	MediaType string
}

// Turn is a single message turn sent to the remote API. At most one inline
// image is supported per turn.
type Turn struct {
	Role  Role
	Text  string
	Image *Image
}

// SessionConfig is the configuration a session is bound to for its whole
// lifetime. Sessions are never reconfigured; a config change means a new
// session.
type SessionConfig struct {
	Model        string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int64
}

// Session is one configured conversation context. Implementations carry the
// conversational state internally; callers just send turns and read replies.
type Session interface {
	// Send delivers one turn and returns the generated reply text. An empty
	// reply is valid. The session remains usable after an error.
	Send(ctx context.Context, turn Turn) (string, error)
}

// Client creates sessions against the backing API.
type Client interface {
	NewSession(ctx context.Context, cfg SessionConfig) (Session, error)
}
