package tree

// Simplify removes non-terminal leaves until none is left and returns the
// number of nodes dropped. Isolated non-terminal nodes are dropped too.
// Terminals are never removed, so a second call is a no-op.
//
// Complexity: O(n).
func (t *Tree) Simplify(isTerminal func(int) bool) int {
	var stack []int
	for x, n := range t.nodes {
		if n.degree() <= 1 && !isTerminal(x) {
			stack = append(stack, x)
		}
	}

	removed := 0
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := t.nodes[x]
		if !ok || n.degree() > 1 {
			continue
		}
		var nb int
		hasNb := false
		if n.hasParent {
			nb, hasNb = n.parent, true
		} else {
			for c := range n.children {
				nb, hasNb = c, true
			}
		}
		_, _ = t.RemoveNode(x)
		removed++
		if hasNb && !isTerminal(nb) && t.nodes[nb].degree() <= 1 {
			stack = append(stack, nb)
		}
	}

	return removed
}

// TerminalSet adapts a slice of terminals to the predicate taken by Simplify.
func TerminalSet(terminals []int) func(int) bool {
	set := make(map[int]struct{}, len(terminals))
	for _, x := range terminals {
		set[x] = struct{}{}
	}

	return func(x int) bool {
		_, ok := set[x]
		return ok
	}
}
