// Package argilla implements the driven repository ports against an
// Argilla-compatible annotation backend over HTTP.
//
// All repositories share one Client carrying auth, request ids and a
// proactive rate limiter. Transport failures never leak to callers: each
// repository logs the cause and re-signals the matching domain sentinel.
package argilla
