// Package output provides formatters for parsed documents and tables.
//
// Supported output formats:
//   - JSON: indented or compact JSON with sorted mapping keys
//   - YAML: YAML documents
//   - Tree: human-readable colored terminal output
//
// Parser diagnostics are written separately by DiagnosticPrinter so they
// never mix with the formatted result.
package output
