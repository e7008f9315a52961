package tablatal

import (
	"strings"
	"unicode"
)

// Column is a header word and the character offset it starts at.
type Column struct {
	Name string
	From int
}

// Row maps column names to trimmed field values. When two columns share a
// name the rightmost one wins.
type Row map[string]string

type Table struct {
	Columns []Column
	Rows    []Row
}

// Names returns the column names in header order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Parse parses input and returns its rows.
func Parse(input string) []Row {
	return ParseTable(input).Rows
}

func ParseTable(input string) *Table {
	t := &Table{Rows: []Row{}}

	input = strings.TrimSpace(input)
	if input == "" {
		return t
	}

	lines := strings.Split(input, "\n")
	t.Columns = headerColumns(lines[0])

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.Rows = append(t.Rows, t.slice(line))
	}

	return t
}

// headerColumns finds the start offset of every whitespace-delimited word.
func headerColumns(header string) []Column {
	var columns []Column
	var word []rune
	start := 0

	flush := func() {
		if len(word) > 0 {
			columns = append(columns, Column{Name: string(word), From: start})
			word = word[:0]
		}
	}

	pos := 0
	for _, r := range header {
		if unicode.IsSpace(r) {
			flush()
		} else {
			if len(word) == 0 {
				start = pos
			}
			word = append(word, r)
		}
		pos++
	}
	flush()

	return columns
}

func (t *Table) slice(line string) Row {
	runes := []rune(line)
	row := make(Row, len(t.Columns))

	for i, c := range t.Columns {
		to := len(runes)
		if i+1 < len(t.Columns) && t.Columns[i+1].From < to {
			to = t.Columns[i+1].From
		}
		if c.From >= to {
			row[c.Name] = ""
			continue
		}
		row[c.Name] = strings.TrimSpace(string(runes[c.From:to]))
	}

	return row
}
