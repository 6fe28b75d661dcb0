// Package core defines the typed conversation protocol shared by the agent
// runtime: roles, messages and the closed set of content variants (text,
// tool calls, tool results) exchanged with a completion backend.
package core
