package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/tablatal"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes documents and tables as YAML.
type YAMLFormatter struct {
	writer io.Writer
	indent int
}

type YAMLOption func(*YAMLFormatter)

func NewYAMLFormatter(opts ...YAMLOption) *YAMLFormatter {
	f := &YAMLFormatter{
		writer: os.Stdout,
		indent: 2,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func YAMLWithWriter(w io.Writer) YAMLOption {
	return func(f *YAMLFormatter) {
		f.writer = w
	}
}

func YAMLWithIndent(n int) YAMLOption {
	return func(f *YAMLFormatter) {
		if n > 0 {
			f.indent = n
		}
	}
}

func (f *YAMLFormatter) FormatDocument(doc indental.Document) error {
	return f.encode(doc)
}

func (f *YAMLFormatter) FormatTable(t *tablatal.Table) error {
	return f.encode(t.Rows)
}

func (f *YAMLFormatter) FormatError(err error) {
	_ = f.encode(map[string]string{"error": err.Error()})
}

func (f *YAMLFormatter) encode(v any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(f.indent)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return encoder.Close()
}
