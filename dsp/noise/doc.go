// Package noise provides stateful brown, pink and white noise generators.
//
// Each generator is a per-sample step function driven by an injected
// uniform random source, so callers decide how streams are seeded and
// decorrelated. Generators keep their filter memory between calls; a
// generator must not be reset mid-stream because that reintroduces the
// filter's start-up transient.
//
// Generators are real-time safe and not thread-safe.
package noise
