// Package voronoi maintains a dynamic Voronoi decomposition of a core.Graph
// around a mutable terminal set.
//
// Every reached node belongs to exactly one region, owned by the terminal
// with the smallest label (distance, terminal ID). For each node the Engine
// stores the owner, the distance to it and the predecessor edge of a shortest
// path that stays inside the region. For each terminal it stores the boundary
// set ("limits"): region nodes incident to an edge whose other endpoint lies in
// a different region, together with those crossing edges.
//
// Operations:
//
//	Build(g, terminals)     – multiplexed Dijkstra from scratch.
//	AddSources(newTerms)    – seeds only the new terminals; they steal nodes whose
//	                          label strictly improves. Returns new + shrunk terminals.
//	RemSources(remTerms)    – clears removed regions and lets the surviving
//	                          frontier reclaim them. Returns the grown terminals.
//	LowerBound()            – sum of region radii, radius(x) = min over boundary
//	                          edges (u,v) of x of dist(u) + w(u,v)/2.
//
// Sweep structure:
//
//	One local pqueue per terminal (node → tentative distance) and one top-level
//	pqueue (terminal → smallest tentative distance of its local queue). Each step
//	pops the globally smallest (distance, terminal, node) triple.
//
// Determinism:
//
//	Equal distances go to the lower terminal ID; equal predecessor candidates go
//	to the lower edge ID. Build(A∪B) and Build(A)+AddSources(B) therefore agree
//	on owners, distances and boundary sets.
//
// Errors:
//
//	ErrNilGraph, ErrNoTerminals, ErrNodeOutOfRange, ErrDuplicateTerminal,
//	ErrUnknownTerminal, ErrLastTerminal. Unreachable nodes are not an error:
//	they stay at NoOwner and are listed by Unreached.
//
// Thread safety:
//
//	An Engine is not safe for concurrent mutation. Independent Engines over the
//	same graph share no mutable state.
package voronoi
