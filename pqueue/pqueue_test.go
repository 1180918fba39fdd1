package pqueue_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x31eq/regulartemp/pqueue"
)

func TestCapIsInfiniteUntilFull(t *testing.T) {
	q := pqueue.New[string](3)
	assert.True(t, math.IsInf(q.Cap(), 1))
	q.Push(1.0, "a")
	q.Push(2.0, "b")
	assert.True(t, math.IsInf(q.Cap(), 1))
	q.Push(3.0, "c")
	assert.Equal(t, 3.0, q.Cap())
}

func TestPushEvictsWorst(t *testing.T) {
	q := pqueue.New[string](2)
	q.Push(5.0, "five")
	q.Push(3.0, "three")
	assert.Equal(t, 5.0, q.Cap())

	ok := q.Push(1.0, "one")
	assert.True(t, ok)
	items := q.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Payload)
	assert.Equal(t, "three", items[1].Payload)
	assert.Equal(t, 3.0, q.Cap())
}

func TestPushRejectsWorseThanCap(t *testing.T) {
	q := pqueue.New[string](2)
	q.Push(1.0, "one")
	q.Push(2.0, "two")
	ok := q.Push(5.0, "five")
	assert.False(t, ok)
	assert.Equal(t, 2, q.Len())
}

func TestAscendingOrder(t *testing.T) {
	q := pqueue.New[int](5)
	for _, v := range []float64{4, 1, 3, 5, 2} {
		q.Push(v, int(v))
	}
	items := q.Items()
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Badness, items[i].Badness)
	}
}

func TestCapacityNeverChanges(t *testing.T) {
	q := pqueue.New[int](2)
	for i := 0; i < 10; i++ {
		q.Push(float64(i), i)
	}
	assert.Equal(t, 2, q.Len())
}
