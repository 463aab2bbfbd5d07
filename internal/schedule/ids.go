package schedule

import "sync/atomic"

// IDGenerator hands out increasing task ids starting at 1. It is safe for
// concurrent use and does not share the Store's lock.
type IDGenerator struct {
	last atomic.Int64
}

// NewIDGenerator returns a generator whose first id is 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a fresh id.
func (g *IDGenerator) Next() int {
	return int(g.last.Add(1))
}

// Last returns the most recently issued id, or 0 if none was issued.
func (g *IDGenerator) Last() int {
	return int(g.last.Load())
}
