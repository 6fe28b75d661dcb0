// Package profile loads, parses and routes named agent configurations.
//
// A profile is a markdown document with a frontmatter block describing an
// agent: its name, a human-readable description, the tools it may use, a
// model preference and a system prompt body. Profiles come from three tiers
// (project-local, user-global, compiled-in defaults) with earlier tiers
// overriding later ones by name. The Router selects the best-matching
// profile for free-text input by keyword scoring against descriptions.
package profile
