package indental

type node struct {
	line
	children []*node
}

// depthTable remembers the most recent node seen at each indentation depth.
// Entries are replaced but never removed, so a line can attach to a node
// from an earlier block when nothing has since been seen at its parent depth.
type depthTable map[int]*node

// forest is the output of the build pass.
type forest struct {
	roots    []*node // depth-0 nodes in input order
	dangling []*node // nodes with indent > 0 that found no parent
}

func buildForest(lines []line) forest {
	var f forest
	recent := make(depthTable)

	for _, l := range lines {
		if l.skipped {
			continue
		}
		n := &node{line: l}

		if parent, ok := recent[l.indent-IndentStep]; ok {
			parent.children = append(parent.children, n)
		} else if l.indent > 0 {
			f.dangling = append(f.dangling, n)
		}

		if l.indent == 0 {
			f.roots = append(f.roots, n)
		}
		recent[l.indent] = n
	}

	return f
}
