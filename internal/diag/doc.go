// Package diag defines the diagnostic model shared by the declare and
// resolve phases.
//
// Diagnostic is the central record: a Severity, a compact numeric Code with
// a stable string form, a short message, a primary source.Span, and optional
// notes pointing at related spans ("previous binding here").
//
// Phases never abort on a user-facing problem; they emit a Diagnostic
// through a Reporter and continue. BagReporter collects into a bounded Bag
// that supports sorting and deduplication for deterministic output.
// DedupReporter suppresses exact repeats at the emission boundary.
//
// The package performs no formatting or IO; rendering belongs to the driver
// and CLI layers.
package diag
