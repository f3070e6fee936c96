package broadcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingFIFO(t *testing.T) {
	r := newRing[int](3)
	assert.False(t, r.push(1))
	assert.False(t, r.push(2))

	v, ok := r.pop()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, r.len())
}

func TestRingOverwritesOldest(t *testing.T) {
	r := newRing[int](3)
	for i := 1; i <= 3; i++ {
		assert.False(t, r.push(i))
	}
	assert.True(t, r.push(4))
	assert.True(t, r.push(5))

	var got []int
	for {
		v, ok := r.pop()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 4, 5}, got)
}

func TestRingZeroCapacityClampsToOne(t *testing.T) {
	r := newRing[string](0)
	assert.False(t, r.push("a"))
	assert.True(t, r.push("b"))
	v, ok := r.pop()
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestRingReset(t *testing.T) {
	r := newRing[int](2)
	r.push(1)
	r.push(2)
	r.reset()
	assert.Equal(t, 0, r.len())
	_, ok := r.pop()
	assert.False(t, ok)
}
