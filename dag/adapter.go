package dag

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/strata-vcs/agentcore/agent"
	"github.com/strata-vcs/agentcore/logging"
	"github.com/strata-vcs/agentcore/model"
	"github.com/strata-vcs/agentcore/tool"
)

// AgentAction runs a single-shot agent as a graph node: upstream outputs
// become the prompt, the agent's answer is broadcast downstream.
type AgentAction struct {
	agent  *agent.Agent
	logger logging.Logger
}

// NewAgentAction wraps an agent as a graph node action. A nil logger
// suppresses warnings about non-string upstream values.
func NewAgentAction(a *agent.Agent, logger logging.Logger) *AgentAction {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &AgentAction{agent: a, logger: logger}
}

// Run gathers the upstream prompt, invokes the agent and broadcasts the
// answer. On error nothing is broadcast.
func (a *AgentAction) Run(ctx context.Context, in InChannels, out OutChannels) (any, error) {
	prompt, err := gatherPrompt(ctx, in, a.logger)
	if err != nil {
		return nil, err
	}

	answer, err := a.agent.Prompt(ctx, prompt)
	if err != nil {
		a.logger.Error("agent node failed", "error", err)
		return nil, err
	}

	out.Broadcast(answer)
	return answer, nil
}

// ToolLoopAction runs the tool-calling loop as a graph node. Unlike
// AgentAction it carries its own model, registry and loop configuration
// rather than a prebuilt agent.
type ToolLoopAction struct {
	model    model.Model
	registry *tool.Registry
	cfg      agent.LoopConfig
}

// NewToolLoopAction wraps a model, registry and loop configuration as a
// graph node action.
func NewToolLoopAction(m model.Model, registry *tool.Registry, cfg agent.LoopConfig) *ToolLoopAction {
	return &ToolLoopAction{model: m, registry: registry, cfg: cfg}
}

// Run gathers the upstream prompt, runs the tool loop and broadcasts the
// final answer. On error nothing is broadcast.
func (a *ToolLoopAction) Run(ctx context.Context, in InChannels, out OutChannels) (any, error) {
	logger := a.cfg.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	prompt, err := gatherPrompt(ctx, in, logger)
	if err != nil {
		return nil, err
	}

	answer, err := agent.RunToolLoop(ctx, a.model, prompt, a.registry, a.cfg)
	if err != nil {
		logger.Error("tool loop node failed", "error", err)
		return nil, err
	}

	out.Broadcast(answer)
	return answer, nil
}

// gatherPrompt collects one value from every upstream sender and joins the
// string values with a blank line, preserving sender order. Receives run
// concurrently; a failed receive aborts the whole gather. Non-string
// values are skipped with a warning.
func gatherPrompt(ctx context.Context, in InChannels, logger logging.Logger) (string, error) {
	ids := in.SenderIDs()
	values := make([]any, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			v, err := in.RecvFrom(ctx, id)
			if err != nil {
				return fmt.Errorf("receive from upstream %s: %w", id, err)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	parts := make([]string, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			logger.Warn("upstream value is not a string, skipping", "sender", ids[i])
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n\n"), nil
}
