package agent

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/strata-vcs/agentcore/core"
)

// ChatAgent wraps a stateless Agent with retained conversation history, so
// successive Send calls build on earlier turns. It is the stateful
// counterpart to Agent for interactive sessions.
//
// Only the user-visible conversation is retained: the user messages passed
// to Send and the final assistant answers. Intermediate tool-calling rounds
// are owned by the loop for the duration of each call and discarded, per the
// runtime's history ownership rules.
type ChatAgent struct {
	agent *Agent
	id    string

	mu      sync.Mutex
	history []core.Message
}

// NewChatAgent creates a stateful chat wrapper around the given agent.
func NewChatAgent(a *Agent) *ChatAgent {
	return &ChatAgent{agent: a, id: uuid.NewString()}
}

// ID returns the stable identifier of this chat session.
func (c *ChatAgent) ID() string { return c.id }

// Send appends text to the retained history, runs the tool loop over the
// combined transcript and retains the assistant's answer. On error the
// history is left unchanged so the failed turn can be retried.
func (c *ChatAgent) Send(ctx context.Context, text string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	answer, err := c.agent.Chat(ctx, text, c.history)
	if err != nil {
		return "", err
	}

	c.history = append(c.history, core.NewTextMessage(core.RoleUser, text))
	c.history = append(c.history, core.NewTextMessage(core.RoleAssistant, answer))
	return answer, nil
}

// History returns a copy of the retained conversation.
func (c *ChatAgent) History() []core.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]core.Message, len(c.history))
	copy(out, c.history)
	return out
}

// Reset discards the retained conversation.
func (c *ChatAgent) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}
