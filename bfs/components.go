package bfs

import "github.com/katalvlaran/lvsteiner/core"

// Components labels every node of g with the index of its connected
// component. Components are numbered 0..count-1 in order of their smallest
// node.
//
// Complexity: O(V + E).
func Components(g *core.Graph) (label []int, count int) {
	n := g.NodeCount()
	label = make([]int, n)
	for i := range label {
		label[i] = Unvisited
	}
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if label[s] != Unvisited {
			continue
		}
		label[s] = count
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, id := range g.Incident(u) {
				v := g.Other(id, u)
				if label[v] == Unvisited {
					label[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return label, count
}

// Connected reports whether all given nodes lie in one component of g.
// An empty or single-node set is connected. Out-of-range nodes are not.
func Connected(g *core.Graph, nodes []int) bool {
	if len(nodes) == 0 {
		return true
	}
	for _, u := range nodes {
		if !g.HasNode(u) {
			return false
		}
	}
	res, err := BFS(g, nodes[0])
	if err != nil {
		return false
	}
	for _, u := range nodes[1:] {
		if !res.Reached(u) {
			return false
		}
	}

	return true
}
