// Package diag defines the diagnostic model shared by the driver, the
// documentation linter and the CLI.
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error. libclang notes become Info; fatal
//     errors become Error with code ClgFatal.
//   - Code: compact numeric identifier with a stable string form (CLG1001).
//   - Message: short, actionable text.
//   - Primary: the source.Span the finding points at.
//   - Notes: secondary spans with context, e.g. "previous use is here".
//   - Fixes: edits proposed by the compiler's fix-it hints.
//
// Producers build records with New and the With* methods and add them to
// a Bag. Bags of several units are combined through a DedupReporter.
// Package diag does no formatting or IO; rendering lives in
// internal/diagfmt.
package diag
