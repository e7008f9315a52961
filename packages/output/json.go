package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/tablatal"
)

// JSONFormatter writes documents and tables as JSON. Mapping keys are
// sorted; sequence order is preserved.
type JSONFormatter struct {
	writer io.Writer
	indent int
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
		indent: 2,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

// JSONWithIndent sets the indentation width; 0 writes compact JSON.
func JSONWithIndent(n int) JSONOption {
	return func(f *JSONFormatter) {
		if n >= 0 {
			f.indent = n
		}
	}
}

func (f *JSONFormatter) FormatDocument(doc indental.Document) error {
	return f.encode(doc)
}

func (f *JSONFormatter) FormatTable(t *tablatal.Table) error {
	return f.encode(t.Rows)
}

func (f *JSONFormatter) FormatError(err error) {
	_ = f.encode(map[string]string{"error": err.Error()})
}

func (f *JSONFormatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetEscapeHTML(false)
	if f.indent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", f.indent))
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
