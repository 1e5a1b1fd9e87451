package voronoi

// refreshRadii recomputes the radius of every tracked terminal in touched.
func (e *Engine) refreshRadii(touched map[int]struct{}) {
	for x := range touched {
		if _, ok := e.terms[x]; !ok {
			continue
		}
		e.radius[x] = e.computeRadius(x)
	}
}

// computeRadius returns min over x's crossing edges (u,v) of dist(u) + w(u,v)/2,
// or 0 when x's region has no boundary.
func (e *Engine) computeRadius(x int) float64 {
	var (
		best  float64
		found bool
	)
	for u, es := range e.limits[x] {
		for id := range es {
			r := float64(e.dist[u]) + float64(e.g.Weight(id))/2
			if !found || r < best {
				best, found = r, true
			}
		}
	}

	return best
}

// Radius returns the radius of terminal x's region (0 if x is untracked or
// has no boundary).
func (e *Engine) Radius(x int) float64 { return e.radius[x] }

// LowerBound returns the sum of all region radii. Terminals are summed in
// ascending order so the float result is reproducible.
func (e *Engine) LowerBound() float64 {
	var sum float64
	for _, x := range e.Terminals() {
		sum += e.radius[x]
	}

	return sum
}
