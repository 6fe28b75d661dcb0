// Package agent implements the bounded tool-calling loop and the agent
// configurations built on it.
//
// The loop drives a conversation with a completion backend: each round makes
// exactly one backend call, dispatches any requested tool calls strictly in
// order, feeds the results back, and repeats until the backend answers with
// text or a fatal condition occurs (backend error, unusable response,
// unknown tool, tool failure, or the configured step bound is exceeded).
//
// Agent is the stateless single-shot configuration over the loop; ChatAgent
// adds retained conversation history for interactive sessions.
package agent
