// Package discover - ordered queue with deduplication.
// Maintains a visited set so the same document is never converted twice
// when it is reachable from several inputs.
package discover

import "path/filepath"

// Queue is a FIFO of conversion jobs with path deduplication.
type Queue struct {
	items   []Job
	visited map[string]bool
	idx     int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues a job if its file hasn't been seen before.
// It reports whether the job was added.
func (q *Queue) Add(job Job) bool {
	key := job.Path
	if abs, err := filepath.Abs(job.Path); err == nil {
		key = abs
	}
	if q.visited[key] {
		return false
	}
	q.visited[key] = true
	q.items = append(q.items, job)
	return true
}

// HasNext returns true if there are unprocessed jobs.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed job and advances the pointer.
func (q *Queue) Next() Job {
	job := q.items[q.idx]
	q.idx++
	return job
}

// Len returns the total number of unique jobs seen.
func (q *Queue) Len() int {
	return len(q.items)
}

// All returns all jobs in discovery order.
func (q *Queue) All() []Job {
	return q.items
}
