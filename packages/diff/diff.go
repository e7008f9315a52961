// Package diff compares two parsed documents value by value.
package diff

import (
	"sort"
	"strings"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
)

type ChangeKind string

const (
	Added   ChangeKind = "added"
	Removed ChangeKind = "removed"
	Changed ChangeKind = "changed"
)

// Change is one difference between two documents. Path joins the labels
// leading to the value with dots.
type Change struct {
	Path   string     `json:"path"`
	Kind   ChangeKind `json:"kind"`
	Before any        `json:"before,omitempty"`
	After  any        `json:"after,omitempty"`
}

type Summary struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
	Changed int `json:"changed"`
}

type Result struct {
	Changes []Change `json:"changes"`
	Summary Summary  `json:"summary"`
}

// Equal reports whether the documents had no differences.
func (r *Result) Equal() bool {
	return len(r.Changes) == 0
}

// Compare walks both documents and records every added, removed and
// changed value, ordered by path. Sequences compare as a whole.
func Compare(a, b indental.Document) *Result {
	r := &Result{Changes: []Change{}}
	r.compareMappings(nil, a, b)
	return r
}

func (r *Result) compareMappings(path []string, a, b map[string]indental.Value) {
	for _, label := range unionLabels(a, b) {
		va, inA := a[label]
		vb, inB := b[label]
		at := append(append([]string(nil), path...), label)

		switch {
		case inA && !inB:
			r.add(Change{Path: join(at), Kind: Removed, Before: va.Interface()})
		case !inA && inB:
			r.add(Change{Path: join(at), Kind: Added, After: vb.Interface()})
		default:
			r.compareValues(at, va, vb)
		}
	}
}

func (r *Result) compareValues(path []string, a, b indental.Value) {
	if a.Kind() != b.Kind() {
		r.add(Change{Path: join(path), Kind: Changed, Before: a.Interface(), After: b.Interface()})
		return
	}

	switch a.Kind() {
	case indental.KindMapping:
		ma, _ := a.Mapping()
		mb, _ := b.Mapping()
		r.compareMappings(path, ma, mb)
	case indental.KindSequence:
		sa, _ := a.Sequence()
		sb, _ := b.Sequence()
		if !equalItems(sa, sb) {
			r.add(Change{Path: join(path), Kind: Changed, Before: a.Interface(), After: b.Interface()})
		}
	default:
		sa, _ := a.Scalar()
		sb, _ := b.Scalar()
		if sa != sb {
			r.add(Change{Path: join(path), Kind: Changed, Before: sa, After: sb})
		}
	}
}

func (r *Result) add(c Change) {
	r.Changes = append(r.Changes, c)
	switch c.Kind {
	case Added:
		r.Summary.Added++
	case Removed:
		r.Summary.Removed++
	case Changed:
		r.Summary.Changed++
	}
}

func unionLabels(a, b map[string]indental.Value) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for label := range a {
		seen[label] = true
	}
	for label := range b {
		seen[label] = true
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func equalItems(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func join(path []string) string {
	return strings.Join(path, ".")
}
