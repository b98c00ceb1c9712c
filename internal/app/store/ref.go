package store

import "sync"

// ref is a read-mostly cell. Readers share a lock; swap replaces the value
// and returns the previous one.
type ref[T any] struct {
	mu  sync.RWMutex
	val T
}

func newRef[T any](val T) *ref[T] {
	return &ref[T]{val: val}
}

func (r *ref[T]) load() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

func (r *ref[T]) swap(val T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.val
	r.val = val
	return prev
}
