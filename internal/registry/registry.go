package registry

import "iter"

// Entry is a single registration. Entries are handed out by pointer and
// must not be copied; the pointer is the registration's identity.
type Entry[T any] struct {
	Value T

	prev, next *Entry[T]
	owner      *Registry[T]
	seq        uint64
}

// Next returns the entry registered after e, or nil.
func (e *Entry[T]) Next() *Entry[T] {
	return e.next
}

// Prev returns the entry registered before e, or nil.
func (e *Entry[T]) Prev() *Entry[T] {
	return e.prev
}

// Registry is an append-only list of registrations kept in registration
// order. Register and Unregister are O(1).
//
// A Registry is not safe for concurrent use. It is meant to be filled during
// program start and iterated afterwards, both from a single goroutine.
type Registry[T any] struct {
	head, tail *Entry[T]
	count      int
	seq        uint64
}

// New creates an empty Registry
func New[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Register appends v at the tail and returns its entry.
func (r *Registry[T]) Register(v T) *Entry[T] {
	r.seq++
	e := &Entry[T]{Value: v, prev: r.tail, owner: r, seq: r.seq}

	if r.tail != nil {
		r.tail.next = e
	}
	r.tail = e
	if r.head == nil {
		r.head = e
	}
	r.count++

	return e
}

// Unregister unlinks e wherever it sits. It reports false when e does not
// belong to r, including when it was already unregistered.
func (r *Registry[T]) Unregister(e *Entry[T]) bool {
	if e == nil || e.owner != r {
		return false
	}

	if r.head == e {
		r.head = e.next
	}
	if r.tail == e {
		r.tail = e.prev
	}
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}

	e.prev, e.next, e.owner = nil, nil, nil
	r.count--

	return true
}

// Front returns the first registered entry, or nil.
func (r *Registry[T]) Front() *Entry[T] {
	return r.head
}

// Back returns the last registered entry, or nil.
func (r *Registry[T]) Back() *Entry[T] {
	return r.tail
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	return r.count
}

// All yields the registered values from head to tail. The sequence is lazy
// and can be ranged over any number of times. The loop body may unregister
// any entry, including the one being visited; the iteration continues with
// the first still registered entry that was registered after it.
func (r *Registry[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := r.head; e != nil; {
			prev, next := e.prev, e.next
			if !yield(e.Value) {
				return
			}
			e = r.after(e, prev, next)
		}
	}
}

// after returns the entry to visit once e was visited. prev and next are
// e's neighbours from before the visit.
func (r *Registry[T]) after(e, prev, next *Entry[T]) *Entry[T] {
	switch {
	case e.owner == r:
		return e.next
	case prev != nil && prev.owner == r:
		return prev.next
	case next != nil && next.owner == r:
		return next
	}
	for c := r.head; c != nil; c = c.next {
		if c.seq > e.seq {
			return c
		}
	}
	return nil
}
