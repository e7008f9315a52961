package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/fatih/color"
)

// DiagnosticPrinter writes parser diagnostics as warnings.
// It is safe for concurrent use.
type DiagnosticPrinter struct {
	mu      sync.Mutex
	writer  io.Writer
	noColor bool
	count   int
}

func NewDiagnosticPrinter(w io.Writer, noColor bool) *DiagnosticPrinter {
	if w == nil {
		w = os.Stderr
	}
	return &DiagnosticPrinter{writer: w, noColor: noColor}
}

// Sink returns a diagnostics callback for indental.WithDiagnostics that
// prefixes each message with source, when set.
func (p *DiagnosticPrinter) Sink(source string) func(indental.Diagnostic) {
	return func(d indental.Diagnostic) {
		p.Print(source, d)
	}
}

func (p *DiagnosticPrinter) Print(source string, d indental.Diagnostic) {
	c := color.New(color.FgYellow)
	if p.noColor {
		c.DisableColor()
	}
	yellow := c.SprintFunc()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.count++
	if source != "" {
		fmt.Fprintf(p.writer, "%s %s: %s\n", yellow("Warning:"), source, d)
		return
	}
	fmt.Fprintf(p.writer, "%s %s\n", yellow("Warning:"), d)
}

// Count returns the number of diagnostics printed so far.
func (p *DiagnosticPrinter) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}
