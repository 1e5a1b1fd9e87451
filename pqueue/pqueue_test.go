package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/pqueue"
)

func TestQueue_Empty(t *testing.T) {
	q := pqueue.New(0)
	_, _, ok := q.Pop()
	assert.False(t, ok)
	_, _, ok = q.Peek()
	assert.False(t, ok)
	assert.False(t, q.Remove(3))
	assert.Equal(t, 0, q.Len())
}

func TestQueue_TieBreakByKey(t *testing.T) {
	q := pqueue.New(4)
	q.Push(7, 1)
	q.Push(2, 1)
	q.Push(5, 0)
	q.Push(3, 1)

	var keys []int
	for q.Len() > 0 {
		k, _, _ := q.Pop()
		keys = append(keys, k)
	}
	assert.Equal(t, []int{5, 2, 3, 7}, keys)
}

func TestQueue_DecreaseAndIncreaseKey(t *testing.T) {
	q := pqueue.New(4)
	q.Push(1, 10)
	q.Push(2, 20)
	q.Push(3, 30)

	q.Push(3, 5) // decrease
	k, p, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, k)
	assert.Equal(t, int64(5), p)

	q.Push(3, 25) // increase
	k, _, _ = q.Peek()
	assert.Equal(t, 1, k)

	prio, ok := q.Priority(3)
	require.True(t, ok)
	assert.Equal(t, int64(25), prio)
	assert.Equal(t, 3, q.Len(), "re-pushing a key must not duplicate it")
}

func TestQueue_Remove(t *testing.T) {
	q := pqueue.New(8)
	for k := 0; k < 8; k++ {
		q.Push(k, int64(8-k))
	}
	assert.True(t, q.Remove(7)) // current minimum
	assert.True(t, q.Remove(3)) // interior
	assert.False(t, q.Contains(3))

	var keys []int
	for q.Len() > 0 {
		k, _, _ := q.Pop()
		keys = append(keys, k)
	}
	assert.Equal(t, []int{6, 5, 4, 2, 1, 0}, keys)
}

func TestQueue_RandomAgainstSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	q := pqueue.New(0)
	want := make(map[int]int64)
	for i := 0; i < 500; i++ {
		k := r.Intn(100)
		p := int64(r.Intn(50))
		switch r.Intn(4) {
		case 0:
			q.Remove(k)
			delete(want, k)
		default:
			q.Push(k, p)
			want[k] = p
		}
	}

	type kv struct {
		k int
		p int64
	}
	var expected []kv
	for k, p := range want {
		expected = append(expected, kv{k, p})
	}
	sort.Slice(expected, func(i, j int) bool {
		if expected[i].p != expected[j].p {
			return expected[i].p < expected[j].p
		}
		return expected[i].k < expected[j].k
	})

	for _, e := range expected {
		k, p, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, e.k, k)
		assert.Equal(t, e.p, p)
	}
	assert.Equal(t, 0, q.Len())
}
