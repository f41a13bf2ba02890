// Package diag defines the diagnostic model shared by all pipeline phases.
//
//   - Deterministic, serialisable data structures that capture findings
//     produced by the lexer, parser and semantic passes.
//   - Light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting layers.
//
// Diagnostic is the central record: severity, compact numeric code with a
// stable string form, message, primary span, and optional notes. Notes add
// secondary context ("previously defined here"), never repeat the message.
//
// Phases emit through a Reporter. A ReportBuilder (via ReportError and
// friends) chains WithNote before Emit; BagReporter aggregates into a Bag,
// which supports sorting, deduplication and merging. Rendering lives in
// internal/diagfmt; orchestration in internal/driver.
package diag
