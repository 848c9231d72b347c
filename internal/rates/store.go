package rates

import (
	"errors"
	"sort"
)

// ErrInvalidRate is returned when a rate is zero or negative.
var ErrInvalidRate = errors.New("rate must be positive")

// Edge is a directed conversion from one currency to another.
type Edge struct {
	To   string
	Rate float64
}

// Store is a directed graph of conversion rates. Every stored pair also
// stores the reciprocal edge, so the graph is navigable in both
// directions. Currency codes are case sensitive.
type Store struct {
	edges map[string]map[string]float64
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{edges: make(map[string]map[string]float64)}
}

// AddRate stores a conversion rate and its reciprocal. Re-adding a pair
// overwrites both directions with the latest value.
func (s *Store) AddRate(from, to string, rate float64) error {
	if rate <= 0 {
		return ErrInvalidRate
	}
	s.setEdge(from, to, rate)
	s.setEdge(to, from, 1/rate)
	return nil
}

func (s *Store) setEdge(from, to string, rate float64) {
	m, ok := s.edges[from]
	if !ok {
		m = make(map[string]float64)
		s.edges[from] = m
	}
	m[to] = rate
}

// DirectRate returns the stored rate for the pair. A currency converts to
// itself at 1.0 even when it appears nowhere in the store.
func (s *Store) DirectRate(from, to string) (float64, bool) {
	if from == to {
		return 1.0, true
	}
	rate, ok := s.edges[from][to]
	return rate, ok
}

// Edges returns the outgoing edges of a currency sorted by target code.
func (s *Store) Edges(code string) []Edge {
	m := s.edges[code]
	out := make([]Edge, 0, len(m))
	for to, rate := range m {
		out = append(out, Edge{To: to, Rate: rate})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })
	return out
}

// Currencies returns every currency seen in the store, sorted.
func (s *Store) Currencies() []string {
	out := make([]string, 0, len(s.edges))
	for code := range s.edges {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// EdgeCount returns the total number of directed edges.
func (s *Store) EdgeCount() int {
	n := 0
	for _, m := range s.edges {
		n += len(m)
	}
	return n
}
