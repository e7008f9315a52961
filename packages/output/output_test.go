package output

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/tablatal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "NAME\n  KEY : VALUE\n  LIST\n    ITEM 1\n    ITEM 2\n"

func TestJSONFormatter_Document(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	require.NoError(t, f.FormatDocument(indental.Parse(sample)))

	assert.JSONEq(t, `{"NAME":{"KEY":"VALUE","LIST":["ITEM 1","ITEM 2"]}}`, buf.String())
	assert.Contains(t, buf.String(), "\n  \"NAME\"")
}

func TestJSONFormatter_Compact(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf), JSONWithIndent(0))

	require.NoError(t, f.FormatDocument(indental.Parse(sample)))

	assert.Equal(t, `{"NAME":{"KEY":"VALUE","LIST":["ITEM 1","ITEM 2"]}}`+"\n", buf.String())
}

func TestJSONFormatter_EmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf), JSONWithIndent(0))

	require.NoError(t, f.FormatDocument(indental.Parse("")))

	assert.Equal(t, "{}\n", buf.String())
}

func TestJSONFormatter_Table(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	require.NoError(t, f.FormatTable(tablatal.ParseTable("A  B\n1  2\n")))

	assert.JSONEq(t, `[{"A":"1","B":"2"}]`, buf.String())
}

func TestYAMLFormatter_Document(t *testing.T) {
	var buf bytes.Buffer
	f := NewYAMLFormatter(YAMLWithWriter(&buf))

	require.NoError(t, f.FormatDocument(indental.Parse(sample)))

	assert.Equal(t, "NAME:\n  KEY: VALUE\n  LIST:\n    - ITEM 1\n    - ITEM 2\n", buf.String())
}

func TestYAMLFormatter_Table(t *testing.T) {
	var buf bytes.Buffer
	f := NewYAMLFormatter(YAMLWithWriter(&buf))

	require.NoError(t, f.FormatTable(tablatal.ParseTable("A  B\n1  2\n")))

	assert.Equal(t, "- A: \"1\"\n  B: \"2\"\n", buf.String())
}

func TestConsoleFormatter_Document(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	require.NoError(t, f.FormatDocument(indental.Parse(sample+"EMPTY\n")))

	expected := `EMPTY
NAME
  KEY : VALUE
  LIST
    - ITEM 1
    - ITEM 2
`
	assert.Equal(t, expected, buf.String())
}

func TestConsoleFormatter_Indent(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithIndent(4))

	require.NoError(t, f.FormatDocument(indental.Parse("A\n  x\n")))

	assert.Equal(t, "A\n    - x\n", buf.String())
}

func TestConsoleFormatter_Table(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	input := "NAME       AGE\n" +
		"Alexandra  30\n" +
		"Bo         4\n"
	require.NoError(t, f.FormatTable(tablatal.ParseTable(input)))

	assert.Equal(t, input, buf.String())
}

func TestConsoleFormatter_Error(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatError(errors.New("boom"))

	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	for _, name := range []string{"json", "yaml", "tree", "", "YAML", "console"} {
		f, err := New(name, Options{Writer: &buf})
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}

	_, err := New("xml", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestDiagnosticPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewDiagnosticPrinter(&buf, true)

	parser := indental.NewParser(indental.WithDiagnostics(p.Sink("a.ndtl")))
	parser.Parse("A\nA\n")
	p.Print("", indental.Diagnostic{Kind: indental.DiagnosticRedefined, Label: "B"})

	assert.Equal(t, "Warning: a.ndtl: Redefined A\nWarning: Redefined B\n", buf.String())
	assert.Equal(t, 2, p.Count())
}

func TestDiagnosticPrinter_ConcurrentSinks(t *testing.T) {
	var buf bytes.Buffer
	p := NewDiagnosticPrinter(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			parser := indental.NewParser(indental.WithDiagnostics(p.Sink("doc.ndtl")))
			parser.Parse("A\nA\n")
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, p.Count())
	assert.Equal(t, 8, strings.Count(buf.String(), "Warning: doc.ndtl: Redefined A\n"))
}
