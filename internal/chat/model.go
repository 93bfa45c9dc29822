package chat

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Attachment is an inline image attached to a user message, owned by that
// message and immutable.
type Attachment struct {
	Kind     string `json:"kind"`
	Data     string `json:"data"` // base64
	MimeType string `json:"mime_type"`
}

// Message is one transcript entry. Messages are never mutated after
// creation.
type Message struct {
	ID          string       `json:"id"`
	Role        Role         `json:"role"`
	Text        string       `json:"text"`
	Timestamp   time.Time    `json:"timestamp"`
	Attachments []Attachment `json:"attachments,omitempty"`
	IsError     bool         `json:"is_error,omitempty"`
}

func newMessage(role Role, text string, attachments ...Attachment) Message {
	return Message{
		ID:          ulid.Make().String(),
		Role:        role,
		Text:        text,
		Timestamp:   time.Now(),
		Attachments: attachments,
	}
}

// SendMessageRequest is the API payload for submitting a message.
type SendMessageRequest struct {
	Text       string             `json:"text"`
	Attachment *AttachmentRequest `json:"attachment,omitempty"`
}

// AttachmentRequest carries one inline image from the presentation layer.
type AttachmentRequest struct {
	Data     string `json:"data" validate:"required,base64"`
	MimeType string `json:"mime_type" validate:"required"`
}
