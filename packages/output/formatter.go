package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/tablatal"
)

// Formatter is implemented by every output format.
type Formatter interface {
	FormatDocument(doc indental.Document) error
	FormatTable(t *tablatal.Table) error
	FormatError(err error)
}

// Formats lists the names accepted by New.
var Formats = []string{"json", "yaml", "tree"}

// Options configures a formatter built by New.
type Options struct {
	Writer  io.Writer
	Indent  int
	NoColor bool
}

// New builds the formatter for the named format.
func New(format string, opts Options) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "json":
		jsonOpts := []JSONOption{JSONWithIndent(opts.Indent)}
		if opts.Writer != nil {
			jsonOpts = append(jsonOpts, JSONWithWriter(opts.Writer))
		}
		return NewJSONFormatter(jsonOpts...), nil
	case "yaml", "yml":
		yamlOpts := []YAMLOption{YAMLWithIndent(opts.Indent)}
		if opts.Writer != nil {
			yamlOpts = append(yamlOpts, YAMLWithWriter(opts.Writer))
		}
		return NewYAMLFormatter(yamlOpts...), nil
	case "tree", "console":
		consoleOpts := []ConsoleOption{
			WithIndent(opts.Indent),
			WithNoColor(opts.NoColor),
		}
		if opts.Writer != nil {
			consoleOpts = append(consoleOpts, WithWriter(opts.Writer))
		}
		return NewConsoleFormatter(consoleOpts...), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}
