// Package xlist is a doubly-linked list whose nodes live in a slice arena and are referred to by
// generation-checked handles rather than pointers.
package xlist

import "sync/atomic"

// Handle refers to a node in a List. The zero Handle refers to no node.
//
// Handles compare equal only if they refer to the same node. A handle to a removed node never
// compares equal to a handle for a node created later, even if the latter reuses the same slot, and
// handles from different lists never compare equal.
type Handle struct {
	list uint64
	pos  uint32
	gen  uint32
}

// lastID is the most recently assigned List id. Zero is never assigned.
var lastID uint64

// IsZero returns true if h refers to no node.
func (h Handle) IsZero() bool { return h.pos == 0 }

// slot positions are 1-based so that the zero value of a position means "none".
type slot[T any] struct {
	prev  uint32
	next  uint32
	gen   uint32
	live  bool
	value T
}

// List is a doubly-linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	// id is assigned on first insert and distinguishes this list's handles from every other list's.
	id    uint64
	slots []slot[T]
	free  []uint32
	front uint32
	back  uint32
	size  int
}

func (l *List[T]) Len() int { return l.size }

func (l *List[T]) Front() Handle { return l.handle(l.front) }
func (l *List[T]) Back() Handle  { return l.handle(l.back) }

// Clear removes every node. Outstanding handles become invalid.
func (l *List[T]) Clear() {
	for pos := l.front; pos != 0; {
		s := l.at(pos)
		next := s.next
		l.release(pos)
		pos = next
	}
	l.front = 0
	l.back = 0
	l.size = 0
}

// Valid returns true if h refers to a node currently in l.
func (l *List[T]) Valid(h Handle) bool {
	if h.pos == 0 || h.list != l.id || int(h.pos) > len(l.slots) {
		return false
	}
	s := l.at(h.pos)
	return s.live && s.gen == h.gen
}

func (l *List[T]) Next(h Handle) Handle { return l.handle(l.mustAt(h).next) }
func (l *List[T]) Prev(h Handle) Handle { return l.handle(l.mustAt(h).prev) }

func (l *List[T]) Value(h Handle) T { return l.mustAt(h).value }

func (l *List[T]) SetValue(h Handle, value T) { l.mustAt(h).value = value }

func (l *List[T]) PushFront(value T) Handle {
	pos := l.alloc(value)
	l.link(pos, 0, l.front)
	return l.handle(pos)
}

func (l *List[T]) PushBack(value T) Handle {
	pos := l.alloc(value)
	l.link(pos, l.back, 0)
	return l.handle(pos)
}

// InsertBefore adds value immediately before mark and returns its handle. mark must be valid.
func (l *List[T]) InsertBefore(value T, mark Handle) Handle {
	prev := l.mustAt(mark).prev
	pos := l.alloc(value)
	l.link(pos, prev, mark.pos)
	return l.handle(pos)
}

// InsertAfter adds value immediately after mark and returns its handle. mark must be valid.
func (l *List[T]) InsertAfter(value T, mark Handle) Handle {
	next := l.mustAt(mark).next
	pos := l.alloc(value)
	l.link(pos, mark.pos, next)
	return l.handle(pos)
}

// Remove unlinks the node referred to by h and invalidates h.
func (l *List[T]) Remove(h Handle) {
	l.mustAt(h)
	l.unlink(h.pos)
	l.release(h.pos)
}

// link splices pos between prev and next, which must be adjacent (or zero at an end). Both
// directions are written together.
func (l *List[T]) link(pos uint32, prev uint32, next uint32) {
	s := l.at(pos)
	s.prev = prev
	s.next = next
	if prev == 0 {
		l.front = pos
	} else {
		l.at(prev).next = pos
	}
	if next == 0 {
		l.back = pos
	} else {
		l.at(next).prev = pos
	}
	l.size++
}

// unlink is the inverse of link.
func (l *List[T]) unlink(pos uint32) {
	s := l.at(pos)
	if s.prev == 0 {
		l.front = s.next
	} else {
		l.at(s.prev).next = s.next
	}
	if s.next == 0 {
		l.back = s.prev
	} else {
		l.at(s.next).prev = s.prev
	}
	s.prev = 0
	s.next = 0
	l.size--
}

func (l *List[T]) alloc(value T) uint32 {
	if l.id == 0 {
		l.id = atomic.AddUint64(&lastID, 1)
	}
	var pos uint32
	if n := len(l.free); n > 0 {
		pos = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.slots = append(l.slots, slot[T]{})
		pos = uint32(len(l.slots))
	}
	s := l.at(pos)
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.live = true
	s.value = value
	return pos
}

func (l *List[T]) release(pos uint32) {
	s := l.at(pos)
	var zero T
	s.value = zero
	s.live = false
	s.prev = 0
	s.next = 0
	l.free = append(l.free, pos)
}

func (l *List[T]) at(pos uint32) *slot[T] { return &l.slots[pos-1] }

func (l *List[T]) mustAt(h Handle) *slot[T] {
	if !l.Valid(h) {
		panic("xlist: invalid handle")
	}
	return l.at(h.pos)
}

func (l *List[T]) handle(pos uint32) Handle {
	if pos == 0 {
		return Handle{}
	}
	return Handle{list: l.id, pos: pos, gen: l.at(pos).gen}
}
