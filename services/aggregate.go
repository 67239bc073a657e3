package services

import (
	"sort"

	"flora-chain/models"
)

// Counter is an insertion-ordered frequency table. Counts are independent of
// observation order; only the tie order of MostCommon reflects first-seen
// order, which keeps output deterministic for a given input order.
type Counter struct {
	counts map[string]int
	order  []string
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Inc adds one observation for key.
func (c *Counter) Inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Get returns the count for key, zero when never observed.
func (c *Counter) Get(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct keys observed.
func (c *Counter) Len() int {
	return len(c.order)
}

// Pair is one Counter entry.
type Pair struct {
	Key   string
	Count int
}

// MostCommon returns the n highest-count entries, all of them when n <= 0.
// Equal counts keep first-seen order.
func (c *Counter) MostCommon(n int) []Pair {
	pairs := make([]Pair, 0, len(c.order))
	for _, key := range c.order {
		pairs = append(pairs, Pair{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})
	if n > 0 && n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}

// Aggregates holds the five frequency tables the narrative templates read.
// They are built in a single fold over all records and only ever read after.
type Aggregates struct {
	Districts    *Counter
	Linkages     *Counter
	SpeciesTypes *Counter
	Habitats     *Counter
	Parts        *Counter
}

func NewAggregates() *Aggregates {
	return &Aggregates{
		Districts:    NewCounter(),
		Linkages:     NewCounter(),
		SpeciesTypes: NewCounter(),
		Habitats:     NewCounter(),
		Parts:        NewCounter(),
	}
}

// Observe folds one record into the counters. Records are only read, never
// mutated, and the fold is commutative.
func (a *Aggregates) Observe(rec models.SpeciesRecord) {
	for _, district := range rec.Districts {
		a.Districts.Inc(district)
	}
	a.Linkages.Inc(string(rec.Linkage))
	a.SpeciesTypes.Inc(string(rec.SpeciesType))
	if rec.Habitat != "" {
		a.Habitats.Inc(rec.Habitat)
	}
	for _, part := range rec.PartsUsed {
		a.Parts.Inc(part)
	}
}
