package query

import (
	"testing"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "NAME\n  KEY : VALUE\n  LIST\n    ITEM 1\n    ITEM 2\n"

func TestExtractor_Get(t *testing.T) {
	e, err := New(indental.Parse(sample))
	require.NoError(t, err)

	tests := []struct {
		path     string
		expected any
		found    bool
	}{
		{"NAME.KEY", "VALUE", true},
		{"NAME.LIST.0", "ITEM 1", true},
		{"NAME.LIST.1", "ITEM 2", true},
		{"NAME.LIST.#", float64(2), true},
		{"NAME.LIST", []any{"ITEM 1", "ITEM 2"}, true},
		{"NAME.MISSING", nil, false},
		{"name.key", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			value, ok := e.Get(tt.path)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestExtractor_GetWholeDocument(t *testing.T) {
	e, err := New(indental.Parse("A\n  x\n"))
	require.NoError(t, err)

	value, ok := e.Get("")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"A": []any{"x"}}, value)
}

func TestExtractor_GetString(t *testing.T) {
	e, err := New(indental.Parse(sample))
	require.NoError(t, err)

	s, ok := e.GetString("NAME.KEY")
	require.True(t, ok)
	assert.Equal(t, "VALUE", s)

	s, ok = e.GetString("NAME.LIST")
	require.True(t, ok)
	assert.JSONEq(t, `["ITEM 1","ITEM 2"]`, s)

	_, ok = e.GetString("NOPE")
	assert.False(t, ok)
}

func TestExtractAll(t *testing.T) {
	results, err := ExtractAll(indental.Parse(sample), map[string]string{
		"key":     "NAME.KEY",
		"first":   "NAME.LIST.0",
		"missing": "NAME.NOPE",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"key":   "VALUE",
		"first": "ITEM 1",
	}, results)
}
