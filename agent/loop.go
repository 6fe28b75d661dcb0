package agent

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/strata-vcs/agentcore/core"
	"github.com/strata-vcs/agentcore/logging"
	"github.com/strata-vcs/agentcore/model"
	"github.com/strata-vcs/agentcore/tool"
)

// Observer receives notifications at well-defined points of a loop
// invocation. It exists purely for instrumentation: implementations must not
// alter control flow and are never required for correctness.
type Observer interface {
	// RoundStart fires before each completion call. Rounds count from 1.
	RoundStart(round int)
	// ToolDispatched fires before each tool execution within a round.
	ToolDispatched(round int, call core.ToolCallContent)
	// RoundEnd fires after the results of a tool-calling round have been
	// appended to the history.
	RoundEnd(round int)
}

// noopObserver is the default when no Observer is configured.
type noopObserver struct{}

func (noopObserver) RoundStart(int)                           {}
func (noopObserver) ToolDispatched(int, core.ToolCallContent) {}
func (noopObserver) RoundEnd(int)                             {}

// LoopConfig controls one tool loop invocation.
type LoopConfig struct {
	// Preamble is the optional system instruction sent with every request.
	Preamble string
	// Temperature is the optional sampling temperature; nil leaves the
	// provider default in place.
	Temperature *float64
	// MaxSteps bounds the number of tool-calling rounds. Zero means
	// unbounded; the loop then terminates only when the backend stops
	// requesting tools or a fatal error occurs.
	MaxSteps int
	// AllowedTools restricts which registry tools are advertised and
	// dispatchable. Nil means every registered tool; an empty non-nil list
	// advertises none.
	AllowedTools []string
	// Observer receives instrumentation callbacks. Optional.
	Observer Observer
	// Logger receives structured progress records. Defaults to no-op.
	Logger logging.Logger
}

// RunToolLoop runs the tool-calling loop seeded with a fresh single-message
// history built from prompt, returning the backend's final text answer.
func RunToolLoop(
	ctx context.Context,
	m model.Model,
	prompt string,
	registry *tool.Registry,
	cfg LoopConfig,
) (string, error) {
	return RunToolLoopWithHistory(ctx, m, []core.Message{core.NewTextMessage(core.RoleUser, prompt)}, registry, cfg)
}

// RunToolLoopWithHistory runs the tool-calling loop over a caller-supplied
// history. The loop owns a private copy of the history for the duration of
// the call; the caller's slice is never mutated.
//
// Per round the loop performs one completion call, then dispatches any
// requested tool calls strictly sequentially in the order received. Tool
// results are appended as a single user message, one result per call, order
// preserving. Any failure aborts the invocation immediately; no partial
// text is ever returned alongside an error.
func RunToolLoopWithHistory(
	ctx context.Context,
	m model.Model,
	history []core.Message,
	registry *tool.Registry,
	cfg LoopConfig,
) (string, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	observer := cfg.Observer
	if observer == nil {
		observer = noopObserver{}
	}

	// Private working copy: the loop exclusively owns the transcript for
	// the duration of this invocation.
	hist := append([]core.Message(nil), history...)

	defs := registry.Definitions(cfg.AllowedTools)
	var allowSet map[string]struct{}
	if cfg.AllowedTools != nil {
		allowSet = make(map[string]struct{}, len(cfg.AllowedTools))
		for _, name := range cfg.AllowedTools {
			allowSet[name] = struct{}{}
		}
	}

	invocationID := uuid.NewString()
	logger.Debug("loop started",
		"invocation_id", invocationID,
		"model", m.Info().Name,
		"advertised_tools", len(defs),
		"max_steps", cfg.MaxSteps,
	)

	steps := 0
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		observer.RoundStart(round)

		req := model.Request{
			Preamble:    cfg.Preamble,
			History:     hist,
			Temperature: cfg.Temperature,
			Tools:       defs,
		}

		start := time.Now()
		resp, err := m.Completion(ctx, req)
		logging.LogModelCall(logger, m.Info().Name, time.Since(start), err)
		if err != nil {
			return "", err
		}

		assistant := core.NewAssistantMessage(resp.Content...)
		toolCalls := assistant.ToolCalls()

		if len(toolCalls) == 0 {
			if !hasText(resp.Content) {
				logger.Error("unusable response", "invocation_id", invocationID, "round", round)
				return "", ErrUnusableResponse
			}
			text := assistant.Text()
			logger.Debug("loop finished",
				"invocation_id", invocationID,
				"rounds", round,
				"tool_steps", steps,
			)
			return text, nil
		}

		steps++
		if cfg.MaxSteps > 0 && steps > cfg.MaxSteps {
			logger.Warn("step bound exceeded", "invocation_id", invocationID, "max_steps", cfg.MaxSteps)
			return "", &StepLimitError{Limit: cfg.MaxSteps}
		}

		// The assistant message carries the full response content, including
		// interleaved text, so downstream requests see a faithful transcript.
		hist = append(hist, assistant)

		results := make([]core.Content, 0, len(toolCalls))
		for _, call := range toolCalls {
			observer.ToolDispatched(round, call)

			impl, ok := registry.Lookup(call.Name)
			if ok && allowSet != nil {
				_, ok = allowSet[call.Name]
			}
			if !ok {
				logger.Error("unknown tool requested", "invocation_id", invocationID, "tool", call.Name)
				return "", &ToolNotFoundError{Name: call.Name}
			}

			execStart := time.Now()
			result, err := impl.Call(call.Arguments)
			logging.LogToolCall(logger, call.Name, time.Since(execStart), err)
			if err != nil {
				return "", &ToolExecutionError{Name: call.Name, Err: err}
			}

			results = append(results, core.ToolResultContent{
				ID:     call.ID,
				Name:   call.Name,
				Result: result,
			})
		}

		hist = append(hist, core.NewUserMessage(results...))
		observer.RoundEnd(round)
	}
}

// hasText reports whether any content item carries text.
func hasText(content []core.Content) bool {
	for _, c := range content {
		if _, ok := c.(core.TextContent); ok {
			return true
		}
	}
	return false
}
