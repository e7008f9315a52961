package indental

import "strings"

// resolve turns a node's children into a Value.
//
// Keyed children become scalar mapping entries, childless children become
// sequence items, and everything else becomes a nested mapping entry. When
// both kinds are present the sequence wins and the mapping entries are
// dropped: a sequence never holds anything but scalars.
func resolve(n *node) Value {
	var items []string
	entries := make(map[string]Value)

	for _, child := range n.children {
		switch {
		case child.keyed():
			entries[label(child.key)] = NewScalar(child.value)
		case len(child.children) == 0 && child.content != "":
			items = append(items, child.content)
		default:
			entries[label(child.content)] = resolve(child)
		}
	}

	return choose(items, entries)
}

// choose applies the sequence-over-mapping rule.
func choose(items []string, entries map[string]Value) Value {
	if len(items) > 0 {
		return NewSequence(items)
	}
	return NewMapping(entries)
}

func label(s string) string {
	return strings.ToUpper(s)
}
