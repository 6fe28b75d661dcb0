// Package logging provides a tiny abstraction over slog so the agent runtime
// can depend on a minimal interface (Logger) while allowing callers to plug
// any structured logger. A no-op implementation is the default everywhere so
// logging is never required for correctness.
package logging
