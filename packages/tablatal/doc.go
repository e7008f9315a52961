// Package tablatal parses Tablatal tables: plain-text tables whose column
// boundaries are taken from the positions of the words in the header line.
//
//	NAME    AGE  CITY
//	Alice   30   Lisbon
//	Bob     25   Porto de Galinhas
//
// Each column starts where its header word starts and runs up to the next
// column; the last column runs to the end of the line.
package tablatal
