package model

import (
	"context"
	"fmt"

	"github.com/strata-vcs/agentcore/core"
)

// ToolDefinition declaratively exposes a callable tool to the backend.
// Parameters is a JSON Schema object (draft agnostic, minimal subset expected).
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Request captures the normalized backend input built by the tool loop for
// one round: optional system preamble, the ordered chat history so far,
// optional sampling temperature and the tool definitions advertised for
// this invocation.
type Request struct {
	Preamble    string
	History     []core.Message
	Temperature *float64
	Tools       []ToolDefinition
}

// Response is the backend output for one round: the ordered assistant
// content items plus the raw provider payload, which callers may inspect
// but the loop never does.
type Response struct {
	Content []core.Content
	Raw     any
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", "mock", etc.
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the completion capability consumed by the tool loop. Completion
// performs exactly one request/response exchange; an error is fatal to the
// invocation and is never retried at this layer.
type Model interface {
	Completion(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// It answers with a canned response keyed by the text of the last history
// message, falling back to an echo.
type MockModel struct {
	info      Info
	responses map[string]string
}

// NewMockModel constructs a MockModel with basic tool support enabled.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info: Info{
			Name:          name,
			Provider:      provider,
			SupportsTools: true,
		},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Completion implements Model.
func (m *MockModel) Completion(_ context.Context, req Request) (*Response, error) {
	if len(req.History) == 0 {
		return nil, fmt.Errorf("no history provided")
	}
	input := req.History[len(req.History)-1].Text()
	full := m.responses[input]
	if full == "" {
		full = fmt.Sprintf("Mock response to: %s", input)
	}
	return &Response{Content: []core.Content{core.TextContent{Text: full}}}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
