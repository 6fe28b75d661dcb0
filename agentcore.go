// Package agentcore is the agent-orchestration core of the strata
// version-control CLI. It drives conversations between a completion backend
// and a set of callable tools until a final answer is produced, selects
// which agent profile should handle a free-text request, and lets any agent
// run as a node inside a graph-scheduled workflow.
//
// Most applications interact with this package by:
//  1. Loading profiles (profile.Load or profile.LoadEmbedded)
//  2. Building an agent from a profile via FromProfile, or directly via
//     agent.New
//  3. Invoking it with Prompt/Chat, or wrapping it in a dag adapter
//
// The subpackages hold the moving parts: core (message protocol), model
// (backend contract plus anthropic/openai adapters), tool (registry and
// function tools), agent (the tool-calling loop), profile (parser, loader,
// router) and dag (workflow node adapters).
package agentcore

import (
	"github.com/strata-vcs/agentcore/agent"
	"github.com/strata-vcs/agentcore/model"
	"github.com/strata-vcs/agentcore/profile"
	"github.com/strata-vcs/agentcore/tool"
)

// FromProfile builds an agent configured by a profile: the profile's system
// prompt becomes the preamble and, when the profile names tools, its tool
// list becomes the agent's allow-list against the registry. Additional
// options apply on top and may override the profile-derived settings.
func FromProfile(p *profile.Profile, m model.Model, registry *tool.Registry, optFns ...func(o *agent.Options)) *agent.Agent {
	base := []func(o *agent.Options){
		agent.WithPreamble(p.SystemPrompt),
		agent.WithRegistry(registry),
	}
	if len(p.Tools) > 0 {
		base = append(base, agent.WithAllowedTools(p.Tools))
	}
	return agent.New(m, append(base, optFns...)...)
}

// RouteAndBuild selects the best-matching profile for the input and builds
// an agent from it. The second return is false when no profile reaches the
// router's match threshold.
func RouteAndBuild(router *profile.Router, input string, m model.Model, registry *tool.Registry, optFns ...func(o *agent.Options)) (*agent.Agent, *profile.Profile, bool) {
	p, ok := router.Select(input)
	if !ok {
		return nil, nil, false
	}
	return FromProfile(p, m, registry, optFns...), p, true
}
