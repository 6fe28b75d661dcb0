// Package tool implements the callable capability subsystem that lets agents
// invoke structured functions mid-conversation: the Tool contract, an ordered
// name-indexed Registry and a FunctionTool adapter with schema validated
// arguments and consistent error handling.
package tool

import (
	"fmt"

	"github.com/strata-vcs/agentcore/internal/util"
	"github.com/strata-vcs/agentcore/model"
)

// Tool is a named, schema-described synchronous capability an agent may
// invoke mid-conversation.
//
// Tool implementations should:
//   - Provide clear, descriptive names and descriptions
//   - Define a proper JSON schema for arguments
//   - Be safe for concurrent use; a registry is shared read-only across
//     concurrent loop invocations
type Tool interface {
	// Name returns the unique identifier for this tool.
	// Names should be descriptive and follow function naming conventions
	// (snake_case recommended).
	Name() string

	// Description returns a human-readable description of what this tool
	// does. It is provided to the backend to guide tool selection.
	Description() string

	// Definition returns the declarative tool definition advertised to the
	// completion backend.
	Definition() model.ToolDefinition

	// Call executes the tool with decoded structured arguments. Execution
	// is synchronous with no suspension point; long-running work belongs in
	// the surrounding application, not in a tool.
	Call(args map[string]any) (any, error)
}

// ValidationError represents argument validation errors with detailed information.
type ValidationError = util.ValidationError

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`              // Name of the tool that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: message,
		Code:    code,
	}
}
