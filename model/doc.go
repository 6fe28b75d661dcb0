// Package model defines the completion capability consumed by the tool loop:
// a normalized request/response pair and the Model interface implemented by
// provider adapters (see the anthropic and openai subpackages). The loop
// treats a Model as a single opaque round-trip; it never assumes retries,
// batching or streaming.
package model
