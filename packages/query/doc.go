// Package query looks values up in parsed documents with gjson path syntax.
//
// Labels are upper-cased by the parser, so paths use upper-case segments:
//
//	NAME.KEY       scalar value
//	NAME.LIST.0    first sequence item
//	NAME.LIST.#    sequence length
package query
