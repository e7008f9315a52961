package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/tablatal"
	"github.com/fatih/color"
)

// ConsoleFormatter renders documents as an indented tree and tables as
// aligned columns.
type ConsoleFormatter struct {
	writer  io.Writer
	indent  int
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
		indent: 2,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithIndent(n int) ConsoleOption {
	return func(f *ConsoleFormatter) {
		if n > 0 {
			f.indent = n
		}
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// sprint returns a color function that honors the formatter's noColor setting.
func (f *ConsoleFormatter) sprint(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if f.noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func (f *ConsoleFormatter) FormatDocument(doc indental.Document) error {
	bold := f.sprint(color.Bold)

	for _, label := range doc.Labels() {
		fmt.Fprintf(f.writer, "%s\n", bold(label))
		f.writeValue(doc[label], 1)
	}
	return nil
}

func (f *ConsoleFormatter) writeValue(v indental.Value, depth int) {
	cyan := f.sprint(color.FgCyan)
	green := f.sprint(color.FgGreen)
	pad := strings.Repeat(" ", depth*f.indent)

	switch v.Kind() {
	case indental.KindSequence:
		items, _ := v.Sequence()
		for _, item := range items {
			fmt.Fprintf(f.writer, "%s%s %s\n", pad, green("-"), item)
		}
	case indental.KindScalar:
		s, _ := v.Scalar()
		fmt.Fprintf(f.writer, "%s%s\n", pad, s)
	default:
		entries, _ := v.Mapping()
		labels := make([]string, 0, len(entries))
		for label := range entries {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		for _, label := range labels {
			child := entries[label]
			if s, ok := child.Scalar(); ok {
				fmt.Fprintf(f.writer, "%s%s : %s\n", pad, cyan(label), s)
				continue
			}
			fmt.Fprintf(f.writer, "%s%s\n", pad, cyan(label))
			f.writeValue(child, depth+1)
		}
	}
}

func (f *ConsoleFormatter) FormatTable(t *tablatal.Table) error {
	bold := f.sprint(color.Bold)
	names := t.Names()

	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = utf8.RuneCountInString(name)
		for _, row := range t.Rows {
			if n := utf8.RuneCountInString(row[name]); n > widths[i] {
				widths[i] = n
			}
		}
	}

	cells := make([]string, len(names))
	for i, name := range names {
		cells[i] = bold(padRight(name, widths[i]))
	}
	fmt.Fprintln(f.writer, strings.TrimRight(strings.Join(cells, "  "), " "))

	for _, row := range t.Rows {
		for i, name := range names {
			cells[i] = padRight(row[name], widths[i])
		}
		fmt.Fprintln(f.writer, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
	return nil
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := f.sprint(color.FgRed)
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
