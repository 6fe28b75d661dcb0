package agent

import (
	"context"

	"github.com/strata-vcs/agentcore/core"
	"github.com/strata-vcs/agentcore/logging"
	"github.com/strata-vcs/agentcore/model"
	"github.com/strata-vcs/agentcore/tool"
)

// DefaultMaxSteps bounds tool-calling rounds for agents that do not
// configure their own limit. It guards against a backend that keeps
// requesting tools without converging.
const DefaultMaxSteps = 4

// Options configures an Agent instance using the functional options pattern.
type Options struct {
	// Preamble is the system prompt prepended to every request.
	Preamble string
	// Temperature is the optional sampling temperature (nil = provider default).
	Temperature *float64
	// MaxSteps bounds tool-calling rounds (0 = unbounded).
	MaxSteps int
	// Registry holds the tools available to the agent.
	Registry *tool.Registry
	// AllowedTools restricts which registry tools are advertised (nil = all).
	AllowedTools []string
	// Observer receives loop instrumentation callbacks.
	Observer Observer
	// Logger receives structured progress records. Defaults to no-op.
	Logger logging.Logger
}

// WithPreamble sets the system prompt.
func WithPreamble(preamble string) func(o *Options) {
	return func(o *Options) { o.Preamble = preamble }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) func(o *Options) {
	return func(o *Options) { o.Temperature = &t }
}

// WithMaxSteps sets the tool-calling step bound. Zero disables the bound.
func WithMaxSteps(n int) func(o *Options) {
	return func(o *Options) { o.MaxSteps = n }
}

// WithRegistry sets the tool registry.
func WithRegistry(r *tool.Registry) func(o *Options) {
	return func(o *Options) { o.Registry = r }
}

// WithAllowedTools restricts the advertised tools to the named subset.
func WithAllowedTools(names []string) func(o *Options) {
	return func(o *Options) { o.AllowedTools = names }
}

// WithObserver attaches loop instrumentation callbacks.
func WithObserver(obs Observer) func(o *Options) {
	return func(o *Options) { o.Observer = obs }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Agent is a stateless single-shot agent: a configured pairing of a
// completion backend, an optional system preamble and a tool registry. It
// handles configuration and requests but does not maintain conversation
// history between calls; use ChatAgent for a stateful wrapper.
//
// An Agent is immutable after construction and safe for concurrent use;
// each invocation owns its own transcript.
type Agent struct {
	model    model.Model
	registry *tool.Registry
	cfg      LoopConfig
}

// New creates an Agent over the given completion backend. The default
// configuration has no preamble, no tools and a step bound of
// DefaultMaxSteps.
func New(m model.Model, optFns ...func(o *Options)) *Agent {
	opts := Options{
		MaxSteps: DefaultMaxSteps,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Agent{
		model:    m,
		registry: opts.Registry,
		cfg: LoopConfig{
			Preamble:     opts.Preamble,
			Temperature:  opts.Temperature,
			MaxSteps:     opts.MaxSteps,
			AllowedTools: opts.AllowedTools,
			Observer:     opts.Observer,
			Logger:       opts.Logger,
		},
	}
}

// Model returns the completion backend the agent is bound to.
func (a *Agent) Model() model.Model { return a.model }

// Prompt runs the tool loop with a fresh single-message history seeded from
// text and returns the final answer.
func (a *Agent) Prompt(ctx context.Context, text string) (string, error) {
	return RunToolLoop(ctx, a.model, text, a.registry, a.cfg)
}

// Chat appends text as a new user message to the caller-supplied history and
// runs the tool loop over the combined transcript. The history slice is not
// mutated and not retained; persistence is the caller's concern.
func (a *Agent) Chat(ctx context.Context, text string, history []core.Message) (string, error) {
	combined := append([]core.Message(nil), history...)
	combined = append(combined, core.NewTextMessage(core.RoleUser, text))
	return RunToolLoopWithHistory(ctx, a.model, combined, a.registry, a.cfg)
}
