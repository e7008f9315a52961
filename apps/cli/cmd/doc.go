// Package cmd implements the indental CLI commands using Cobra.
//
// Available commands:
//   - parse: Parse Indental documents and print them as JSON, YAML or a tree
//   - get: Print the value at a path in a document
//   - table: Parse Tablatal tables
//   - diff: Compare two documents
//   - validate: Report redefined labels and unattached lines
//   - bench: Measure parse latency
//   - init: Create a config file and an example document
//   - version: Show indental version information
//
// Documents are read from files, directories or standard input. Warnings go
// to standard error so they never mix with the parsed output.
package cmd
