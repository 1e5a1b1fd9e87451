// Package pqueue implements an indexed binary min-heap with decrease-key.
//
// Every Dijkstra-like sweep in lvsteiner needs "node → tentative distance"
// with in-place priority updates and a deterministic pop order. Queue keeps a
// position index per key, so Push on an existing key re-positions it instead
// of leaving a stale duplicate behind (the lazy strategy of the dijkstra
// package).
//
// Ordering: smaller priority first; equal priorities pop the smaller key first.
//
// Complexity:
//
//   - Push / Pop / Remove: O(log n)
//   - Peek / Contains / Priority / Len: O(1)
package pqueue

// item is one heap slot.
type item struct {
	key  int
	prio int64
}

// Queue is an indexed min-heap over int keys with int64 priorities.
// The zero value is not usable; call New.
type Queue struct {
	items []item
	pos   map[int]int // key → index in items
}

// New returns an empty Queue with room for capacity keys.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue{
		items: make([]item, 0, capacity),
		pos:   make(map[int]int, capacity),
	}
}

// Len returns the number of keys in the queue.
func (q *Queue) Len() int { return len(q.items) }

// Contains reports whether key is queued.
func (q *Queue) Contains(key int) bool {
	_, ok := q.pos[key]

	return ok
}

// Priority returns the current priority of key and whether it is queued.
func (q *Queue) Priority(key int) (int64, bool) {
	i, ok := q.pos[key]
	if !ok {
		return 0, false
	}

	return q.items[i].prio, true
}

// Push inserts key with prio, or moves an existing key to prio (up or down).
func (q *Queue) Push(key int, prio int64) {
	if i, ok := q.pos[key]; ok {
		old := q.items[i].prio
		q.items[i].prio = prio
		if prio < old {
			q.up(i)
		} else if prio > old {
			q.down(i)
		}

		return
	}
	q.items = append(q.items, item{key: key, prio: prio})
	i := len(q.items) - 1
	q.pos[key] = i
	q.up(i)
}

// Peek returns the minimum entry without removing it. ok is false on an empty queue.
func (q *Queue) Peek() (key int, prio int64, ok bool) {
	if len(q.items) == 0 {
		return 0, 0, false
	}

	return q.items[0].key, q.items[0].prio, true
}

// Pop removes and returns the minimum entry. ok is false on an empty queue.
func (q *Queue) Pop() (key int, prio int64, ok bool) {
	if len(q.items) == 0 {
		return 0, 0, false
	}
	top := q.items[0]
	q.removeAt(0)

	return top.key, top.prio, true
}

// Remove drops key from the queue. It reports whether key was present.
func (q *Queue) Remove(key int) bool {
	i, ok := q.pos[key]
	if !ok {
		return false
	}
	q.removeAt(i)

	return true
}

// Reset empties the queue, keeping allocated capacity.
func (q *Queue) Reset() {
	q.items = q.items[:0]
	for k := range q.pos {
		delete(q.pos, k)
	}
}

func (q *Queue) removeAt(i int) {
	last := len(q.items) - 1
	delete(q.pos, q.items[i].key)
	if i != last {
		q.items[i] = q.items[last]
		q.pos[q.items[i].key] = i
	}
	q.items = q.items[:last]
	if i < len(q.items) {
		// The moved element may need to travel either way.
		q.down(i)
		q.up(i)
	}
}

func (q *Queue) less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.prio != b.prio {
		return a.prio < b.prio
	}

	return a.key < b.key
}

func (q *Queue) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.pos[q.items[i].key] = i
	q.pos[q.items[j].key] = j
}

func (q *Queue) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue) down(i int) {
	n := len(q.items)
	for {
		smallest := i
		left := 2*i + 1
		right := left + 1
		if left < n && q.less(left, smallest) {
			smallest = left
		}
		if right < n && q.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}
