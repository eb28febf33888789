package chart

// Chart is the sequence of Earley sets indexed by input position, from
// set 0 (initial predictions) through set n (after the n-th token has
// been consumed). A Chart belongs to exactly one parse run; it does not
// outlive its owning Parser.
type Chart struct {
	sets []*Set
}

// NewChart creates a Chart pre-seeded with an empty set 0.
func NewChart() *Chart {
	c := &Chart{sets: make([]*Set, 0, 64)}
	c.sets = append(c.sets, NewSet(0))
	return c
}

// Grow appends a fresh, empty set and returns its index.
func (c *Chart) Grow() int {
	c.sets = append(c.sets, NewSet(len(c.sets)))
	return len(c.sets) - 1
}

// Set returns the Earley set at input position k.
func (c *Chart) Set(k int) *Set {
	return c.sets[k]
}

// Len returns the number of sets currently in the chart (one more than
// the number of tokens consumed so far).
func (c *Chart) Len() int {
	return len(c.sets)
}

// Size returns the total number of items across all sets — a diagnostic
// used to confirm Leo's linear (rather than quadratic) chart growth.
func (c *Chart) Size() int {
	n := 0
	for _, s := range c.sets {
		n += s.Len()
	}
	return n
}
