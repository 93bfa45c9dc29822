// Package chat owns the conversation transcript and drives the
// request/response exchange against the session manager.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/guloku/lulu/internal/metrics"
	"github.com/guloku/lulu/internal/provider"
	"github.com/guloku/lulu/internal/session"
)

// FallbackText is the fixed user-facing reply shown when the remote call
// fails. The underlying cause is logged, never shown in the transcript.
const FallbackText = "Oop! My brain short-circuited! 😖 (API Error: Check console/keys)"

var (
	// ErrEmptyMessage rejects a submission with neither text nor attachment.
	ErrEmptyMessage = errors.New("message has no text and no attachment")
	// ErrBusy rejects a submission while another send is still in flight.
	ErrBusy = errors.New("a send is already in flight")
)

// Sender is the slice of the session manager the conversation needs.
type Sender interface {
	Send(ctx context.Context, text string, image *provider.Image) (string, error)
}

// Conversation holds the append-only transcript and enforces single-flight
// sends: at most one exchange may be outstanding at a time, concurrent
// submissions are rejected rather than queued.
type Conversation struct {
	sender Sender

	mu       sync.Mutex
	inFlight bool
	messages []Message
}

// NewConversation creates an empty conversation over the given sender.
func NewConversation(sender Sender) *Conversation {
	return &Conversation{sender: sender}
}

// Submit appends the user message, performs the exchange, and appends the
// outcome. Whitespace-only text with no attachment is a no-op rejection.
//
// On success the returned message is the model reply; on a remote failure
// it is the error bubble appended in its place (err is nil, the failure is
// visible via IsError). session.ErrNotInitialized is the one failure that
// is returned to the caller instead: the user message stays in the
// transcript but no model message is appended.
func (c *Conversation) Submit(ctx context.Context, text string, attachment *Attachment) (Message, error) {
	if strings.TrimSpace(text) == "" && attachment == nil {
		return Message{}, ErrEmptyMessage
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return Message{}, ErrBusy
	}
	c.inFlight = true
	var attachments []Attachment
	if attachment != nil {
		attachments = []Attachment{*attachment}
	}
	c.messages = append(c.messages, newMessage(RoleUser, text, attachments...))
	c.mu.Unlock()

	var image *provider.Image
	if attachment != nil {
		image = &provider.Image{Data: attachment.Data, MediaType: attachment.MimeType}
	}
	reply, err := c.sender.Send(ctx, text, image)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	if err != nil {
		if errors.Is(err, session.ErrNotInitialized) {
			metrics.ChatSendsTotal.WithLabelValues("rejected").Inc()
			return Message{}, err
		}
		slog.Error("chat: remote send failed", "error", err)
		metrics.ChatSendsTotal.WithLabelValues("error").Inc()
		bubble := newMessage(RoleModel, FallbackText)
		bubble.IsError = true
		c.messages = append(c.messages, bubble)
		return bubble, nil
	}

	metrics.ChatSendsTotal.WithLabelValues("ok").Inc()
	msg := newMessage(RoleModel, reply)
	c.messages = append(c.messages, msg)
	return msg, nil
}

// Messages returns a snapshot of the transcript in chronological order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// InFlight reports whether an exchange is currently outstanding.
func (c *Conversation) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}
