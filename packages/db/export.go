package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/tablatal"
)

// Entry is one flattened document value as stored by WriteDocument.
type Entry struct {
	Path     string
	Kind     string
	Position int
	Value    string
}

// WriteTable replaces table name with the rows of t. Every column is TEXT
// and named after its header word; duplicate header words share a column.
func (c *Client) WriteTable(ctx context.Context, name string, t *tablatal.Table) error {
	if err := validateTableName(name); err != nil {
		return err
	}

	columns := uniqueNames(t.Names())
	if len(columns) == 0 {
		return fmt.Errorf("table %s has no columns", name)
	}

	defs := make([]string, len(columns))
	quoted := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
		defs[i] = quoted[i] + " TEXT"
		marks[i] = "?"
	}

	return c.withTx(ctx, func(tx *sql.Tx) error {
		if err := recreate(ctx, tx, name, strings.Join(defs, ", ")); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			quoteIdent(name), strings.Join(quoted, ", "), strings.Join(marks, ", ")))
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		args := make([]any, len(columns))
		for _, row := range t.Rows {
			for i, col := range columns {
				args[i] = row[col]
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("failed to insert row: %w", err)
			}
		}
		return nil
	})
}

// WriteDocument replaces table name with the flattened entries of doc.
func (c *Client) WriteDocument(ctx context.Context, name string, doc indental.Document) error {
	if err := validateTableName(name); err != nil {
		return err
	}

	entries := Flatten(doc)

	return c.withTx(ctx, func(tx *sql.Tx) error {
		defs := "path TEXT NOT NULL, kind TEXT NOT NULL, position INTEGER NOT NULL, value TEXT"
		if err := recreate(ctx, tx, name, defs); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
			"INSERT INTO %s (path, kind, position, value) VALUES (?, ?, ?, ?)", quoteIdent(name)))
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx, e.Path, e.Kind, e.Position, e.Value); err != nil {
				return fmt.Errorf("failed to insert %s: %w", e.Path, err)
			}
		}
		return nil
	})
}

// Flatten lists every scalar, sequence item and empty mapping in doc,
// ordered by path. Sequence items keep their position.
func Flatten(doc indental.Document) []Entry {
	var entries []Entry
	for _, label := range doc.Labels() {
		entries = flattenValue(entries, label, doc[label])
	}
	return entries
}

func flattenValue(entries []Entry, path string, v indental.Value) []Entry {
	switch v.Kind() {
	case indental.KindScalar:
		s, _ := v.Scalar()
		return append(entries, Entry{Path: path, Kind: "scalar", Value: s})
	case indental.KindSequence:
		items, _ := v.Sequence()
		for i, item := range items {
			entries = append(entries, Entry{Path: path, Kind: "item", Position: i, Value: item})
		}
		return entries
	default:
		m, _ := v.Mapping()
		if len(m) == 0 {
			return append(entries, Entry{Path: path, Kind: "mapping"})
		}
		labels := make([]string, 0, len(m))
		for label := range m {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			entries = flattenValue(entries, path+"."+label, m[label])
		}
		return entries
	}
}

func (c *Client) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func recreate(ctx context.Context, tx *sql.Tx, name, defs string) error {
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(name)); err != nil {
		return fmt.Errorf("failed to drop %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), defs)); err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	return nil
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
