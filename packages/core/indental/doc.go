// Package indental parses Indental documents into nested values.
//
// An Indental document is a list of lines whose nesting is given only by
// leading whitespace, two characters per level. Each line is one of:
//   - a bare label, which opens a nested structure or is a list item
//   - a "KEY : VALUE" pair
//   - a comment, starting with ';' in the first column
//
// Parsing runs in three passes:
//   - classify: each raw line becomes a record with its indentation,
//     trimmed content and optional key/value split
//   - build: records are linked into a forest, attaching each line to the
//     most recent line seen two characters to its left
//   - resolve: every node's children become either a Sequence of plain
//     items or a Mapping of upper-cased labels
//
// Parsing never fails. Redefined top-level labels and, on request, lines
// that could not be attached to a parent are reported through a diagnostics
// callback instead.
package indental
