package core

// Content represents a polymorphic item of message content. Concrete content
// types implement the unexported isContent marker enabling a closed set, so
// every site that inspects content can switch exhaustively over the known
// variants.
type Content interface{ isContent() }

// TextContent is a plain text content item.
type TextContent struct {
	Text string
}

// isContent implements the Content interface for TextContent.
func (TextContent) isContent() {}

// ToolCallContent is a backend-issued request to invoke a named tool with
// structured arguments. The ID correlates the call with its result.
type ToolCallContent struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// isContent implements the Content interface for ToolCallContent.
func (ToolCallContent) isContent() {}

// ToolResultContent carries the value returned by a tool invocation back to
// the backend. ID and Name match the originating ToolCallContent.
type ToolResultContent struct {
	ID     string
	Name   string
	Result any
}

// isContent implements the Content interface for ToolResultContent.
func (ToolResultContent) isContent() {}
