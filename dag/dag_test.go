package dag

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-vcs/agentcore/agent"
	"github.com/strata-vcs/agentcore/core"
	"github.com/strata-vcs/agentcore/model"
	"github.com/strata-vcs/agentcore/tool"
)

// promptRecorderModel captures the last user message of each request and
// answers with fixed text.
type promptRecorderModel struct {
	prompt string
	answer string
	err    error
}

func (m *promptRecorderModel) Completion(_ context.Context, req model.Request) (*model.Response, error) {
	if len(req.History) > 0 {
		m.prompt = req.History[len(req.History)-1].Text()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &model.Response{Content: []core.Content{core.TextContent{Text: m.answer}}}, nil
}

func (m *promptRecorderModel) Info() model.Info {
	return model.Info{Name: "prompt-recorder", Provider: "mock"}
}

func TestInputs_SendRecv(t *testing.T) {
	in := NewInputs("a")
	require.NoError(t, in.Send("a", "hello"))

	v, err := in.RecvFrom(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestInputs_UnknownSender(t *testing.T) {
	in := NewInputs("a")
	assert.ErrorIs(t, in.Send("b", "x"), ErrUnknownSender)

	_, err := in.RecvFrom(context.Background(), "b")
	assert.ErrorIs(t, err, ErrUnknownSender)
}

func TestInputs_ClosedChannel(t *testing.T) {
	in := NewInputs("a")
	in.Close("a")

	_, err := in.RecvFrom(context.Background(), "a")
	assert.ErrorIs(t, err, ErrChannelClosed)
}

func TestInputs_ContextCancelled(t *testing.T) {
	in := NewInputs("a")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := in.RecvFrom(ctx, "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOutputs_BroadcastReachesAllSubscribers(t *testing.T) {
	out := NewOutputs()
	first := out.Subscribe(1)
	second := out.Subscribe(1)

	out.Broadcast("value")
	assert.Equal(t, "value", <-first)
	assert.Equal(t, "value", <-second)
}

func TestToolLoopAction_ConcatenatesUpstreamInOrder(t *testing.T) {
	m := &promptRecorderModel{answer: "combined"}
	action := NewToolLoopAction(m, tool.NewRegistry(), agent.LoopConfig{})

	in := NewInputs("first", "second")
	require.NoError(t, in.Send("first", "A"))
	require.NoError(t, in.Send("second", "B"))
	out := NewOutputs()
	downstream := out.Subscribe(1)

	result, err := action.Run(context.Background(), in, out)
	require.NoError(t, err)

	assert.Equal(t, "A\n\nB", m.prompt)
	assert.Equal(t, "combined", result)
	assert.Equal(t, "combined", <-downstream)
}

func TestToolLoopAction_SkipsNonStringUpstream(t *testing.T) {
	m := &promptRecorderModel{answer: "ok"}
	action := NewToolLoopAction(m, tool.NewRegistry(), agent.LoopConfig{})

	in := NewInputs("nums", "text")
	require.NoError(t, in.Send("nums", 42))
	require.NoError(t, in.Send("text", "B"))

	_, err := action.Run(context.Background(), in, NewOutputs())
	require.NoError(t, err)
	assert.Equal(t, "B", m.prompt)
}

func TestToolLoopAction_NoBroadcastOnFailure(t *testing.T) {
	m := &promptRecorderModel{err: errors.New("backend down")}
	action := NewToolLoopAction(m, tool.NewRegistry(), agent.LoopConfig{})

	in := NewInputs("a")
	require.NoError(t, in.Send("a", "hello"))
	out := NewOutputs()
	downstream := out.Subscribe(1)

	_, err := action.Run(context.Background(), in, out)
	require.Error(t, err)
	assert.Empty(t, downstream)
}

func TestToolLoopAction_ReceiveFailureAborts(t *testing.T) {
	m := &promptRecorderModel{answer: "never"}
	action := NewToolLoopAction(m, tool.NewRegistry(), agent.LoopConfig{})

	in := NewInputs("a", "b")
	require.NoError(t, in.Send("a", "A"))
	in.Close("b")
	out := NewOutputs()
	downstream := out.Subscribe(1)

	_, err := action.Run(context.Background(), in, out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChannelClosed)
	assert.Empty(t, downstream)
}

func TestAgentAction_NoUpstream(t *testing.T) {
	m := &promptRecorderModel{answer: "standalone"}
	action := NewAgentAction(agent.New(m), nil)

	out := NewOutputs()
	downstream := out.Subscribe(1)

	result, err := action.Run(context.Background(), NewInputs(), out)
	require.NoError(t, err)
	assert.Equal(t, "", m.prompt)
	assert.Equal(t, "standalone", result)
	assert.Equal(t, "standalone", <-downstream)
}

func TestAgentAction_SingleUpstream(t *testing.T) {
	m := &promptRecorderModel{answer: "done"}
	action := NewAgentAction(agent.New(m), nil)

	in := NewInputs("only")
	require.NoError(t, in.Send("only", "the prompt"))

	result, err := action.Run(context.Background(), in, NewOutputs())
	require.NoError(t, err)
	assert.Equal(t, "the prompt", m.prompt)
	assert.Equal(t, "done", result)
}
