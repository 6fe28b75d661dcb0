package tool

import (
	"fmt"

	"github.com/strata-vcs/agentcore/model"
)

// Registry is an ordered collection of tools indexed by name. Order matters:
// tool definitions are advertised to the backend in registration order, and
// the profile router relies on stable iteration. A Registry is
// immutable-after-construction in practice; register everything up front,
// then share it read-only across concurrent loop invocations.
type Registry struct {
	tools []Tool
	index map[string]Tool
}

// NewRegistry creates an empty registry, optionally pre-registering the
// given tools. Name collisions among the initial tools panic: a duplicate
// name is a configuration error, not a runtime condition.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{index: make(map[string]Tool)}
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a tool to the registry. A name already claimed by an
// earlier registration is a configuration error.
func (r *Registry) Register(t Tool) error {
	name := t.Name()
	if _, exists := r.index[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools = append(r.tools, t)
	r.index[name] = t
	return nil
}

// Lookup returns the tool with the given name, if registered.
func (r *Registry) Lookup(name string) (Tool, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.index[name]
	return t, ok
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	if r == nil {
		return nil
	}
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tools)
}

// Definitions returns the tool definitions to advertise to the backend, in
// registration order. A non-nil allowed list restricts the result to the
// named tools; nil means every registered tool.
func (r *Registry) Definitions(allowed []string) []model.ToolDefinition {
	if r == nil {
		return nil
	}
	var allowSet map[string]struct{}
	if allowed != nil {
		allowSet = make(map[string]struct{}, len(allowed))
		for _, name := range allowed {
			allowSet[name] = struct{}{}
		}
	}

	var defs []model.ToolDefinition
	for _, t := range r.tools {
		if allowSet != nil {
			if _, ok := allowSet[t.Name()]; !ok {
				continue
			}
		}
		defs = append(defs, t.Definition())
	}
	return defs
}
