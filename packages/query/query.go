package query

import (
	"encoding/json"
	"fmt"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/tidwall/gjson"
)

// Extractor answers gjson path queries against a parsed document.
type Extractor struct {
	parsed gjson.Result
}

func New(doc indental.Document) (*Extractor, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return &Extractor{parsed: gjson.ParseBytes(data)}, nil
}

// Get evaluates path and returns its value as plain Go data. An empty path
// returns the whole document.
func (e *Extractor) Get(path string) (any, bool) {
	if path == "" {
		return e.parsed.Value(), true
	}

	result := e.parsed.Get(path)
	if !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}

// GetString evaluates path and returns its value as a string. Sequences and
// mappings come back as raw JSON.
func (e *Extractor) GetString(path string) (string, bool) {
	if path == "" {
		return e.parsed.Raw, true
	}

	result := e.parsed.Get(path)
	if !result.Exists() {
		return "", false
	}
	if result.Type == gjson.String {
		return result.Str, true
	}
	return result.Raw, true
}

// ExtractAll evaluates every named path. Paths that match nothing are left
// out of the result.
func ExtractAll(doc indental.Document, paths map[string]string) (map[string]any, error) {
	extractor, err := New(doc)
	if err != nil {
		return nil, err
	}

	results := make(map[string]any)
	for name, path := range paths {
		if value, ok := extractor.Get(path); ok {
			results[name] = value
		}
	}

	return results, nil
}
