// ABOUTME: Shuffled track queue
// ABOUTME: Cycles through a fixed set of paths, reshuffling each pass
package queue

import "math/rand/v2"

// Queue hands out track paths in shuffled order. When every path has
// been played once the order is reshuffled and the cycle starts over.
type Queue struct {
	paths []string
	pos   int
}

// New builds a queue over the given paths. The slice is copied.
func New(paths []string) *Queue {
	q := &Queue{paths: append([]string(nil), paths...)}
	q.shuffle()
	return q
}

// Next returns the next path in shuffled order, or "" for an empty queue.
func (q *Queue) Next() string {
	if len(q.paths) == 0 {
		return ""
	}

	if q.pos >= len(q.paths) {
		q.shuffle()
		q.pos = 0
	}

	path := q.paths[q.pos]
	q.pos++
	return path
}

// Len returns the number of tracks in the queue.
func (q *Queue) Len() int {
	return len(q.paths)
}

func (q *Queue) shuffle() {
	rand.Shuffle(len(q.paths), func(i, j int) {
		q.paths[i], q.paths[j] = q.paths[j], q.paths[i]
	})
}
