package pipeline

// Multiplier multiplies every element by a fixed factor.
// Overflow wraps per Go int64 two's-complement semantics.
type Multiplier struct {
	Factor int64
}

// NewMultiplier returns a Multiplier with the given factor.
func NewMultiplier(factor int64) *Multiplier {
	return &Multiplier{Factor: factor}
}

func (m *Multiplier) Process(values []int64) []int64 {
	output := make([]int64, len(values))
	for i, value := range values {
		output[i] = value * m.Factor
	}
	return output
}

// Offset adds a fixed delta to every element. Overflow wraps like
// Multiplier.
type Offset struct {
	Delta int64
}

// NewOffset returns an Offset with the given delta.
func NewOffset(delta int64) *Offset {
	return &Offset{Delta: delta}
}

func (o *Offset) Process(values []int64) []int64 {
	output := make([]int64, len(values))
	for i, value := range values {
		output[i] = value + o.Delta
	}
	return output
}
