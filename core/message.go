package core

import "strings"

// Role identifies the author of a message in a conversation.
type Role string

const (
	// RoleUser marks messages originating from the caller (or tool results
	// fed back to the backend).
	RoleUser Role = "user"
	// RoleAssistant marks messages produced by the completion backend.
	RoleAssistant Role = "assistant"
)

// Message is one entry of a conversation transcript: a role plus an ordered
// collection of content items. A message with an empty content collection is
// not a valid state; the tool loop rejects it rather than passing it on.
type Message struct {
	Role    Role
	Content []Content
}

// NewUserMessage builds a user message from the given content items.
func NewUserMessage(content ...Content) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage builds an assistant message from the given content items.
func NewAssistantMessage(content ...Content) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// NewTextMessage builds a message holding a single text item.
func NewTextMessage(role Role, text string) Message {
	return Message{Role: role, Content: []Content{TextContent{Text: text}}}
}

// Text concatenates all text items of the message, joined by newline.
// Non-text items are skipped.
func (m Message) Text() string {
	var parts []string
	for _, c := range m.Content {
		if tc, ok := c.(TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// ToolCalls returns the tool call items of the message in order.
func (m Message) ToolCalls() []ToolCallContent {
	var calls []ToolCallContent
	for _, c := range m.Content {
		if tc, ok := c.(ToolCallContent); ok {
			calls = append(calls, tc)
		}
	}
	return calls
}

// ToolResults returns the tool result items of the message in order.
func (m Message) ToolResults() []ToolResultContent {
	var results []ToolResultContent
	for _, c := range m.Content {
		if tr, ok := c.(ToolResultContent); ok {
			results = append(results, tr)
		}
	}
	return results
}
