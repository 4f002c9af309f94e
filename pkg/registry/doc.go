// Package registry provides a generic, thread-safe name registry. It
// remembers registration order so that callers such as the diagnostic
// engine can report results in a stable sequence.
package registry
