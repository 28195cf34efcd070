package model

import "time"

// MessageRole identifies who authored a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one visible chat turn. The transcript is append-only: an
// assistant message is enriched exactly once, before it is appended.
type Message struct {
	Role MessageRole `json:"role"`
	Text string      `json:"text"`
}

// ChatSession is the per-session transcript kept in the session cache.
type ChatSession struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
