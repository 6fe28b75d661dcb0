package agent

import (
	"errors"
	"fmt"
)

// ErrUnusableResponse signals a protocol violation: the backend returned a
// response carrying no usable text and no actionable tool call. Callers can
// distinguish it from backend transport failures via errors.Is.
var ErrUnusableResponse = errors.New("completion response carries no usable text or actionable tool call")

// StepLimitError is returned when the backend keeps requesting tools past
// the configured step bound. The conversation is abandoned; no partial
// result accompanies the error.
type StepLimitError struct {
	Limit int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("tool calling exceeded max steps (%d)", e.Limit)
}

// ToolNotFoundError is returned when a requested tool call names a tool
// absent from the registry or excluded by the allow-list.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool not found: %s", e.Name)
}

// ToolExecutionError wraps a failure from a tool's own Call.
type ToolExecutionError struct {
	Name string
	Err  error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool execution failed: %s: %v", e.Name, e.Err)
}

func (e *ToolExecutionError) Unwrap() error { return e.Err }
