// Package types defines the value shapes shown by the shapes demos: a
// named-field record, a positional color, zero-field markers and mode
// selectors, a zero-size logger, a capability implemented on a unit type,
// the Message sum type, and the Describer capability with two unrelated
// implementations.
package types
