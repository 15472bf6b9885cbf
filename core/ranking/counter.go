// ABOUTME: Insertion-ordered counter for technology mention scores
// ABOUTME: Supplies the deterministic iteration order ranking relies on for ties

package ranking

// Counter accumulates mention scores per technology while remembering
// discovery order. Go maps iterate in randomized order, so adapters
// build a Counter instead of passing raw maps; equal-score ranking ties
// then reproduce deterministically.
type Counter struct {
	order  []string
	counts map[string]float64
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]float64)}
}

// Add accumulates n mentions for name. The first Add of a name fixes
// its discovery position. Names are used as given; callers canonicalize.
func (c *Counter) Add(name string, n float64) {
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name] += n
}

// Get returns the accumulated score for name.
func (c *Counter) Get(name string) float64 {
	return c.counts[name]
}

// Len returns the number of distinct names counted.
func (c *Counter) Len() int {
	return len(c.order)
}

// Names returns the counted names in discovery order.
func (c *Counter) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}
