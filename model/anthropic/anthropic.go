// Package anthropic adapts the Anthropic Messages API to the generic
// model.Model interface.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"

	"github.com/strata-vcs/agentcore/core"
	"github.com/strata-vcs/agentcore/model"
)

// Options configures the Anthropic model adapter (model id, default
// temperature, max tokens, API key). Extend via functional options to
// preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Model wraps the Anthropic Messages API behind the generic model.Model
// interface.
type Model struct {
	client *anthropic.Client
	opts   Options
}

// NewModel creates a new Anthropic model using the official client.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Model{client: &client, opts: opts}
}

// NewModelFromClient creates a new Anthropic model from an existing client.
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
}

// Completion sends one request to the Messages API and converts the reply
// into protocol content.
func (m *Model) Completion(ctx context.Context, req model.Request) (*model.Response, error) {
	temperature := m.opts.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	params := anthropic.MessageNewParams{
		Model:       m.opts.Model,
		Messages:    buildMessages(req.History),
		MaxTokens:   m.opts.MaxTokens,
		Temperature: anthropic.Float(temperature),
	}
	if req.Preamble != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.Preamble}}
	}
	if len(req.Tools) > 0 {
		params.Tools = buildTools(req.Tools)
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var content []core.Content
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			textBlock := block.AsText()
			if textBlock.Text != "" {
				content = append(content, core.TextContent{Text: textBlock.Text})
			}
		case "tool_use":
			toolBlock := block.AsToolUse()
			content = append(content, core.ToolCallContent{
				ID:        toolBlock.ID,
				Name:      toolBlock.Name,
				Arguments: decodeArguments(toolBlock.Input),
			})
		}
	}

	return &model.Response{Content: content, Raw: resp}, nil
}

// Info returns metadata describing this Anthropic model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:          string(m.opts.Model),
		Provider:      "anthropic",
		SupportsTools: true,
	}
}

// buildMessages converts the protocol history to Anthropic message params.
// User messages carry text and tool result blocks; assistant messages carry
// text and tool use blocks.
func buildMessages(history []core.Message) []anthropic.MessageParam {
	var messages []anthropic.MessageParam

	for _, msg := range history {
		var blocks []anthropic.ContentBlockParamUnion

		for _, c := range msg.Content {
			switch item := c.(type) {
			case core.TextContent:
				if item.Text != "" {
					blocks = append(blocks, anthropic.NewTextBlock(item.Text))
				}
			case core.ToolCallContent:
				blocks = append(blocks, anthropic.NewToolUseBlock(item.ID, item.Arguments, item.Name))
			case core.ToolResultContent:
				blocks = append(blocks, anthropic.NewToolResultBlock(item.ID, resultText(item.Result), false))
			}
		}
		if len(blocks) == 0 {
			continue
		}

		switch msg.Role {
		case core.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(blocks...))
		default:
			messages = append(messages, anthropic.NewUserMessage(blocks...))
		}
	}

	return messages
}

// buildTools converts protocol tool definitions to Anthropic tool params.
func buildTools(tools []model.ToolDefinition) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, len(tools))

	for i, t := range tools {
		inputSchema := anthropic.ToolInputSchemaParam{
			Type: constant.Object("object"),
		}
		if t.Parameters != nil {
			if properties, ok := t.Parameters["properties"]; ok {
				inputSchema.Properties = properties
			}
			if required, ok := t.Parameters["required"]; ok {
				inputSchema.Required = requiredStrings(required)
			}
		}
		out[i] = anthropic.ToolUnionParamOfTool(inputSchema, t.Name)
	}

	return out
}

// requiredStrings tolerates both []string and the []any a JSON round-trip
// produces.
func requiredStrings(required any) []string {
	switch v := required.(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// decodeArguments converts the SDK's tool input into the protocol's
// structured argument map.
func decodeArguments(input any) map[string]any {
	if input == nil {
		return map[string]any{}
	}
	raw, err := json.Marshal(input)
	if err != nil {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil || args == nil {
		return map[string]any{}
	}
	return args
}

// resultText renders a tool result for the wire: strings pass through,
// everything else is JSON encoded.
func resultText(result any) string {
	if s, ok := result.(string); ok {
		return s
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(raw)
}
