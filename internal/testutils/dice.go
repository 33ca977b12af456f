package testutils

import (
	"fmt"
	"sync"
)

// SequenceRoller is a dice.Roller that returns preset values in order. Each
// value must fit the die being rolled.
type SequenceRoller struct {
	mu     sync.Mutex
	values []int
	calls  []int
}

// NewSequenceRoller returns a roller that yields values in order
func NewSequenceRoller(values ...int) *SequenceRoller {
	return &SequenceRoller{values: values}
}

// Roll returns the next preset value
func (r *SequenceRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 0, fmt.Errorf("sequence roller exhausted rolling d%d", size)
	}
	v := r.values[0]
	if v < 1 || v > size {
		return 0, fmt.Errorf("preset value %d does not fit d%d", v, size)
	}
	r.values = r.values[1:]
	r.calls = append(r.calls, size)
	return v, nil
}

// RollN rolls count dice of size
func (r *SequenceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Sizes returns the die sizes rolled so far
func (r *SequenceRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.calls...)
}
