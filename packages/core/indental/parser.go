package indental

import (
	"fmt"
	"os"
)

type DiagnosticKind int

const (
	// DiagnosticRedefined is reported when a top-level label appears more
	// than once. The later definition wins.
	DiagnosticRedefined DiagnosticKind = iota
	// DiagnosticDangling is reported, when enabled, for a line whose
	// indentation leaves it without a parent. The line and its subtree are
	// left out of the document.
	DiagnosticDangling
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticRedefined:
		return "redefined"
	case DiagnosticDangling:
		return "dangling"
	default:
		return "unknown"
	}
}

// Diagnostic is a non-fatal observation made while parsing.
type Diagnostic struct {
	Kind   DiagnosticKind
	Label  string
	Line   int
	Indent int
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagnosticRedefined:
		return "Redefined " + d.Label
	case DiagnosticDangling:
		return fmt.Sprintf("line %d: %q at indent %d has no parent at indent %d", d.Line, d.Label, d.Indent, d.Indent-IndentStep)
	default:
		return d.Label
	}
}

type Parser struct {
	sink           func(Diagnostic)
	reportDangling bool
}

type Option func(*Parser)

// WithDiagnostics sets the function that receives diagnostics.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(p *Parser) {
		p.sink = fn
	}
}

// WithDanglingReports enables DiagnosticDangling reports. The parsed
// document is the same either way.
func WithDanglingReports(enabled bool) Option {
	return func(p *Parser) {
		p.reportDangling = enabled
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses an Indental document with default options, discarding
// diagnostics.
func Parse(input string) Document {
	return NewParser().Parse(input)
}

// ParseWithDiagnostics parses input and returns the document together with
// every diagnostic, dangling lines included.
func ParseWithDiagnostics(input string) (Document, []Diagnostic) {
	var diags []Diagnostic
	p := NewParser(
		WithDiagnostics(func(d Diagnostic) { diags = append(diags, d) }),
		WithDanglingReports(true),
	)
	doc := p.Parse(input)
	return doc, diags
}

func ParseFile(path string, opts ...Option) (Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return NewParser(opts...).Parse(string(content)), nil
}

func (p *Parser) Parse(input string) Document {
	f := buildForest(classifyLines(input))

	if p.reportDangling {
		for _, n := range f.dangling {
			p.emit(Diagnostic{
				Kind:   DiagnosticDangling,
				Label:  n.content,
				Line:   n.number,
				Indent: n.indent,
			})
		}
	}

	doc := make(Document)
	for _, root := range f.roots {
		key := label(root.content)
		if _, exists := doc[key]; exists {
			p.emit(Diagnostic{
				Kind:  DiagnosticRedefined,
				Label: key,
				Line:  root.number,
			})
		}
		doc[key] = resolve(root)
	}

	return doc
}

func (p *Parser) emit(d Diagnostic) {
	if p.sink != nil {
		p.sink(d)
	}
}
