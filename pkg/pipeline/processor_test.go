package pipeline

import (
	"testing"
)

func TestMultiplierProcess(t *testing.T) {
	m := NewMultiplier(2)
	got := m.Process([]int64{2, 3})
	if len(got) != 2 || got[0] != 4 || got[1] != 6 {
		t.Errorf("Multiplier(2).Process([2 3]) = %v, want [4 6]", got)
	}
}

func TestMultiplierElementwise(t *testing.T) {
	input := []int64{-3, 0, 1, 7, 1 << 40}
	for _, factor := range []int64{-2, 0, 1, 5} {
		m := NewMultiplier(factor)
		got := m.Process(input)
		if len(got) != len(input) {
			t.Fatalf("factor %d: length %d, want %d", factor, len(got), len(input))
		}
		for i, v := range input {
			if got[i] != v*factor {
				t.Errorf("factor %d: got[%d] = %d, want %d", factor, i, got[i], v*factor)
			}
		}
	}
}

func TestMultiplierEmpty(t *testing.T) {
	if got := NewMultiplier(3).Process([]int64{}); len(got) != 0 {
		t.Errorf("Process of empty input should be empty, got %v", got)
	}
}

func TestOffsetProcess(t *testing.T) {
	o := NewOffset(10)
	got := o.Process([]int64{0, -10, 5})
	want := []int64{10, 0, 15}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Offset(10).Process: got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestChainRequiresProcessor(t *testing.T) {
	if _, err := NewChain(nil); err == nil {
		t.Error("NewChain(nil) should fail")
	}
}

func TestChainOrder(t *testing.T) {
	// (v*2)+1, not (v+1)*2: order matters.
	c, err := NewChain([]Processor{NewMultiplier(2), NewOffset(1)})
	if err != nil {
		t.Fatalf("NewChain error: %v", err)
	}
	got := c.Process([]int64{0, 1, 2})
	want := []int64{1, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Chain.Process: got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
