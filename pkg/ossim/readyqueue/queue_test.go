package readyqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_FIFOOrder(t *testing.T) {
	q := New()
	q.PushBack(1)
	q.PushBack(2)
	q.PushBack(3)
	assert.Equal(t, []int{1, 2, 3}, q.Slice())

	pid, ok := q.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 1, pid)
	assert.Equal(t, []int{2, 3}, q.Slice())
}

func TestQueue_PushFront(t *testing.T) {
	q := New()
	q.PushBack(1)
	q.PushBack(2)
	q.PushFront(9)
	assert.Equal(t, []int{9, 1, 2}, q.Slice())
}

func TestQueue_Remove(t *testing.T) {
	q := New()
	q.PushBack(1)
	q.PushBack(2)
	q.PushBack(3)
	assert.True(t, q.Remove(2))
	assert.Equal(t, []int{1, 3}, q.Slice())
	assert.False(t, q.Remove(42))
}

func TestQueue_EmptyPopFront(t *testing.T) {
	q := New()
	_, ok := q.PopFront()
	assert.False(t, ok)
}

func TestQueue_Contains(t *testing.T) {
	q := New()
	q.PushBack(5)
	assert.True(t, q.Contains(5))
	assert.False(t, q.Contains(6))
}
