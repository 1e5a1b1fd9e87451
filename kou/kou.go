package kou

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/dijkstra"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
	"github.com/katalvlaran/lvsteiner/tree"
)

var log = logrus.WithField("component", "kou")

// Sentinel errors for Solve.
var (
	// ErrNoTerminals is returned for an empty terminal list.
	ErrNoTerminals = errors.New("kou: no terminals")

	// ErrTerminalNotFound is returned when a terminal is out of range.
	ErrTerminalNotFound = errors.New("kou: terminal not found")

	// ErrInfeasible is returned when two terminals are not connected.
	ErrInfeasible = errors.New("kou: terminals are not connected")
)

// Solve returns a Steiner tree over the given terminals and its cost.
// Duplicate terminals are ignored.
//
// Errors: ErrNoTerminals, ErrTerminalNotFound, ErrInfeasible.
func Solve(g *core.Graph, terminals []int) (*tree.Tree, int64, error) {
	terms, err := normalize(g, terminals)
	if err != nil {
		return nil, 0, err
	}

	// 1) One shortest-path tree per terminal.
	dist := make([][]int64, len(terms))
	prev := make([][]int, len(terms))
	for i, x := range terms {
		dist[i], prev[i], err = dijkstra.Dijkstra(g, dijkstra.Source(x), dijkstra.WithReturnPath())
		if err != nil {
			return nil, 0, err
		}
	}

	// 2) Complete distance graph over terminal indices. Pair index order
	// makes the MST unique.
	var complete []core.Edge
	for i := range terms {
		for j := i + 1; j < len(terms); j++ {
			d := dist[i][terms[j]]
			if d == dijkstra.Unreachable {
				return nil, 0, fmt.Errorf("%w: %d and %d", ErrInfeasible, terms[i], terms[j])
			}
			complete = append(complete, core.Edge{ID: len(complete), From: i, To: j, Weight: d})
		}
	}
	mst, distCost := prim_kruskal.Kruskal(complete)

	// 3) Union of realizing paths.
	t := tree.New()
	for _, x := range terms {
		t.AddNode(x)
	}
	for _, ce := range mst {
		for _, id := range dijkstra.PathTo(g, dist[ce.From], prev[ce.From], terms[ce.To]) {
			u, v := g.Endpoints(id)
			t.AddEdge(tree.Edge{ID: id, U: u, V: v, Weight: g.Weight(id)}, true)
		}
	}

	// 4) Prune.
	pruned := t.Simplify(tree.TerminalSet(terms))
	log.WithFields(logrus.Fields{
		"terminals": len(terms),
		"distance":  distCost,
		"cost":      t.Cost(),
		"pruned":    pruned,
	}).Debug("kou tree built")

	return t, t.Cost(), nil
}

// normalize validates terminals and returns them deduplicated, ascending.
func normalize(g *core.Graph, terminals []int) ([]int, error) {
	if len(terminals) == 0 {
		return nil, ErrNoTerminals
	}
	seen := make(map[int]struct{}, len(terminals))
	out := make([]int, 0, len(terminals))
	for _, x := range terminals {
		if !g.HasNode(x) {
			return nil, fmt.Errorf("%w: %d", ErrTerminalNotFound, x)
		}
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	sort.Ints(out)

	return out, nil
}
