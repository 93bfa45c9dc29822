package provider

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ErrEmptyTurn is returned when a turn carries neither text nor an image.
var ErrEmptyTurn = errors.New("turn has no text and no image")

// AnthropicClient implements Client on top of the Anthropic Messages API.
type AnthropicClient struct {
	api anthropic.Client
}

// NewAnthropicClient returns a client authenticated with the given API key.
// A missing key is logged as a warning rather than failing here; requests
// made without one fail downstream.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	if apiKey == "" {
		slog.Warn("LLM API key is missing; remote calls will fail")
		return &AnthropicClient{api: anthropic.NewClient()}
	}
	return &AnthropicClient{api: anthropic.NewClient(option.WithAPIKey(apiKey))}
}

func (c *AnthropicClient) NewSession(ctx context.Context, cfg SessionConfig) (Session, error) {
	// The Messages API has no server-side session object; the handle keeps
	// the turn history client-side and replays it on every call.
	return &anthropicSession{api: c.api, cfg: cfg}, nil
}

type anthropicSession struct {
	api     anthropic.Client
	cfg     SessionConfig
	history []anthropic.MessageParam
}

func (s *anthropicSession) Send(ctx context.Context, turn Turn) (string, error) {
	blocks := []anthropic.ContentBlockParamUnion{}
	if turn.Text != "" {
		blocks = append(blocks, anthropic.NewTextBlock(turn.Text))
	}
	if turn.Image != nil {
		blocks = append(blocks, anthropic.NewImageBlockBase64(turn.Image.MediaType, turn.Image.Data))
	}
	if len(blocks) == 0 {
		return "", ErrEmptyTurn
	}

	msgs := append(s.history, anthropic.NewUserMessage(blocks...))

	msg, err := s.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(s.cfg.Model),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: anthropic.Float(s.cfg.Temperature),
		System:      []anthropic.TextBlockParam{{Text: s.cfg.SystemPrompt}},
		Messages:    msgs,
	})
	if err != nil {
		return "", err
	}

	var reply string
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			if reply == "" {
				reply = tb.Text
			} else {
				reply += "\n" + tb.Text
			}
		}
	}

	// History only advances on success so a failed exchange can be retried
	// against the same context.
	s.history = append(msgs, msg.ToParam())
	return reply, nil
}
