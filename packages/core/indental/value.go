package indental

import (
	"encoding/json"
	"sort"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindMapping Kind = iota
	KindSequence
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Value is a resolved Indental value: a scalar string, a sequence of
// scalars, or a mapping of upper-cased labels to values.
// The zero Value is an empty mapping.
type Value struct {
	kind     Kind
	scalar   string
	sequence []string
	mapping  map[string]Value
}

func NewScalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

func NewSequence(items []string) Value {
	return Value{kind: KindSequence, sequence: items}
}

func NewMapping(m map[string]Value) Value {
	return Value{kind: KindMapping, mapping: m}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Scalar returns the string held by a scalar value.
func (v Value) Scalar() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	return v.scalar, true
}

// Sequence returns the items held by a sequence value.
func (v Value) Sequence() ([]string, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return v.sequence, true
}

// Mapping returns the entries held by a mapping value.
func (v Value) Mapping() (map[string]Value, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.mapping, true
}

// Len returns the number of items or entries, or 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.sequence)
	case KindMapping:
		return len(v.mapping)
	}
	return 0
}

// Interface converts v into plain Go values: string, []string or
// map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindSequence:
		items := make([]string, len(v.sequence))
		copy(items, v.sequence)
		return items
	default:
		m := make(map[string]any, len(v.mapping))
		for label, child := range v.mapping {
			m[label] = child.Interface()
		}
		return m
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

// Document is the result of parsing: top-level labels mapped to their
// resolved values.
type Document map[string]Value

// Get looks up a top-level label. Labels are stored upper-cased.
func (d Document) Get(label string) (Value, bool) {
	v, ok := d[label]
	return v, ok
}

// Labels returns the top-level labels in sorted order.
func (d Document) Labels() []string {
	labels := make([]string, 0, len(d))
	for label := range d {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Value returns the document as a mapping Value.
func (d Document) Value() Value {
	return NewMapping(map[string]Value(d))
}

func (d Document) Interface() map[string]any {
	m := make(map[string]any, len(d))
	for label, v := range d {
		m[label] = v.Interface()
	}
	return m
}

func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Interface())
}

func (d Document) MarshalYAML() (interface{}, error) {
	return d.Interface(), nil
}
