// Package rates holds the rate graph and the best-rate search over it.
//
// The search is a breadth-first traversal that marks a currency as
// expanded when it is dequeued and keeps the maximum product rate seen
// over all paths that reach the target before their intermediate nodes
// are exhausted. A direct edge always wins over composite paths.
//
// The target itself is recorded but never enqueued. Since every stored
// pair carries its reciprocal, a path that continues through the target
// and returns to it multiplies by a rate and its inverse, so expanding
// the target could only replay candidates the search has already folded.
// Enqueuing it like any other neighbor would give identical results at
// the cost of extra frontier entries.
package rates

// queueItem is a search frontier entry: the currency reached and the
// cumulative product rate of the path that reached it.
type queueItem struct {
	code string
	rate float64
}

// BestRate returns the best conversion rate from one currency to another.
// The bool is false when no conversion path exists.
func BestRate(store *Store, from, to string) (float64, bool) {
	if rate, ok := store.DirectRate(from, to); ok {
		return rate, true
	}

	best := 0.0
	found := false

	expanded := map[string]bool{}
	queue := []queueItem{{code: from, rate: 1.0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if expanded[cur.code] {
			continue
		}
		expanded[cur.code] = true

		for _, edge := range store.Edges(cur.code) {
			candidate := cur.rate * edge.Rate
			if edge.To == to {
				if !found || candidate > best {
					best = candidate
					found = true
				}
				continue
			}
			if !expanded[edge.To] {
				queue = append(queue, queueItem{code: edge.To, rate: candidate})
			}
		}
	}

	return best, found
}

// pathItem extends queueItem with the currency sequence of the path.
type pathItem struct {
	code string
	rate float64
	path []string
}

// BestPath is the path variant of BestRate: it also returns the currency
// sequence achieving the best rate. A currency converts to itself over
// the single-element path.
func BestPath(store *Store, from, to string) ([]string, float64, bool) {
	if from == to {
		return []string{from}, 1.0, true
	}
	if rate, ok := store.DirectRate(from, to); ok {
		return []string{from, to}, rate, true
	}

	var bestPath []string
	best := 0.0
	found := false

	expanded := map[string]bool{}
	queue := []pathItem{{code: from, rate: 1.0, path: []string{from}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if expanded[cur.code] {
			continue
		}
		expanded[cur.code] = true

		for _, edge := range store.Edges(cur.code) {
			candidate := cur.rate * edge.Rate
			if edge.To == to {
				if !found || candidate > best {
					best = candidate
					bestPath = appendPath(cur.path, edge.To)
					found = true
				}
				continue
			}
			if !expanded[edge.To] {
				queue = append(queue, pathItem{
					code: edge.To,
					rate: candidate,
					path: appendPath(cur.path, edge.To),
				})
			}
		}
	}

	return bestPath, best, found
}

// appendPath copies the path before appending so queued entries never
// share a backing array.
func appendPath(path []string, code string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, code)
}
