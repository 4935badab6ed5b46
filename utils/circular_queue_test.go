package utils

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, q.Append(i))
	}

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, 3, q.Cap())
	assert.Equal(t, []int{3, 4, 5}, slices.Collect(q.All()))

	first, err := q.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 3, first)
	last, ok := q.Last()
	require.True(t, ok)
	assert.Equal(t, 5, last)

	_, err = q.Get(3)
	assert.Error(t, err)
}

func TestCircularQueuePop(t *testing.T) {
	q := NewCircularQueue[string](2)
	_, ok := q.Pop()
	assert.False(t, ok)

	require.NoError(t, q.Append("a"))
	require.NoError(t, q.Append("b"))
	item, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", item)

	require.NoError(t, q.Append("c"))
	assert.Equal(t, []string{"b", "c"}, slices.Collect(q.All()))

	q.Clear()
	assert.Zero(t, q.Len())
	_, ok = q.Last()
	assert.False(t, ok)
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[int](0)
	assert.Error(t, q.Append(1))
	assert.Zero(t, q.Len())
}
