package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitiveClosureChain(t *testing.T) {
	// 0 -> 1 -> 2 -> 3, expect closure to connect every i to every j > i,
	// and nothing in the other direction.
	m := NewMatrix(4)
	m.Set(0, 1)
	m.Set(1, 2)
	m.Set(2, 3)
	m.TransitiveClosure()

	assert.True(t, m.Test(0, 1))
	assert.True(t, m.Test(0, 2))
	assert.True(t, m.Test(0, 3))
	assert.True(t, m.Test(1, 2))
	assert.True(t, m.Test(1, 3))
	assert.True(t, m.Test(2, 3))
	assert.False(t, m.Test(3, 0), "closure must not invent edges against the arrows")
	assert.False(t, m.Test(1, 0))
}

func TestTransitiveClosureReflexiveDiagonalPreserved(t *testing.T) {
	m := NewMatrix(3)
	for i := 0; i < 3; i++ {
		m.Set(i, i)
	}
	m.Set(0, 1)
	m.TransitiveClosure()
	for i := 0; i < 3; i++ {
		assert.True(t, m.Test(i, i), "closure must never clear a bit set before the call")
	}
}

func TestTransitiveClosureCycle(t *testing.T) {
	m := NewMatrix(3)
	m.Set(0, 1)
	m.Set(1, 2)
	m.Set(2, 0)
	m.TransitiveClosure()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.True(t, m.Test(i, j), "a 3-cycle's closure must be the complete relation")
		}
	}
}

func TestTransitiveClosureIdempotent(t *testing.T) {
	m := NewMatrix(5)
	m.Set(0, 1)
	m.Set(1, 2)
	m.Set(3, 4)
	m.TransitiveClosure()
	snapshot := m.Row(0).Slice()
	m.TransitiveClosure()
	assert.Equal(t, snapshot, m.Row(0).Slice())
}
