// Package pipeline defines the integer Processor contract and a small set
// of implementations that can be chained into a processing pipeline.
package pipeline

import "errors"

// Processor maps an ordered integer sequence to an ordered integer
// sequence, preserving order and length.
type Processor interface {
	Process(values []int64) []int64
}

// Chain applies its processors in order, 0..N.
type Chain struct {
	procs []Processor
}

// NewChain creates a chain with a defined processor pipeline.
// Requires at least one processor.
func NewChain(procs []Processor) (*Chain, error) {
	if len(procs) == 0 {
		return nil, errors.New("processor chain requires at least one processor")
	}
	s := make([]Processor, len(procs))
	copy(s, procs)
	return &Chain{procs: s}, nil
}

// Process runs the values through every processor in forward order.
func (c *Chain) Process(values []int64) []int64 {
	current := values
	for _, p := range c.procs {
		current = p.Process(current)
	}
	return current
}
