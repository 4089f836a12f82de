// Package linear provides generic linear containers: a resizable Array, a doubly-linked List, and
// the ArrayStack and ListQueue adapters built on them.
//
// None of the types in this package are safe for concurrent use. Mutating a container while an
// iterator over it is in progress gives unspecified results.
package linear

import (
	"fmt"
	"strings"

	"github.com/bradenaw/juniper/iterator"

	"github.com/bradenaw/linear/internal/xlist"
)

// List is a doubly-linked list of items. Searches by value compare items with ==. Duplicate items
// are allowed; searches always act on the first match from the head.
//
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	l xlist.List[T]
}

// Node identifies one node of a List. Nodes compare equal only if they are the same node: two nodes
// holding equal items are still different nodes. The zero Node refers to no node.
//
// Nodes are for inspecting a list's structure, for example in tests. Use Item, Next and Prev to
// follow them.
type Node struct {
	h xlist.Handle
}

// IsZero returns true if n refers to no node.
func (n Node) IsZero() bool { return n.h.IsZero() }

func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

// ListOf returns a List holding items, in order.
func ListOf[T comparable](items ...T) *List[T] {
	l := NewList[T]()
	for _, item := range items {
		l.Append(item)
	}
	return l
}

// CloneList returns a copy of src, which must be a *List[T]. The copy shares no nodes with src.
func CloneList[T comparable](src any) (*List[T], error) {
	l, ok := src.(*List[T])
	if !ok || l == nil {
		return nil, fmt.Errorf("%w: %T is not a %T", ErrTypeMismatch, src, l)
	}
	return l.Clone(), nil
}

// Clone returns a new List with the same items as l, built by appending each in order.
func (l *List[T]) Clone() *List[T] {
	out := NewList[T]()
	iter := l.Iterate()
	for {
		item, ok := iter.Next()
		if !ok {
			break
		}
		out.Append(item)
	}
	return out
}

func (l *List[T]) Len() int { return l.l.Len() }

func (l *List[T]) Empty() bool { return l.l.Len() == 0 }

// Head returns the first node, or the zero Node if l is empty.
func (l *List[T]) Head() Node { return Node{l.l.Front()} }

// Tail returns the last node, or the zero Node if l is empty.
func (l *List[T]) Tail() Node { return Node{l.l.Back()} }

// Item returns the item held by n. The second return is false if n is not currently in l.
func (l *List[T]) Item(n Node) (T, bool) {
	if !l.l.Valid(n.h) {
		var zero T
		return zero, false
	}
	return l.l.Value(n.h), true
}

// Next returns the node after n, or the zero Node if n is the tail or is not in l.
func (l *List[T]) Next(n Node) Node {
	if !l.l.Valid(n.h) {
		return Node{}
	}
	return Node{l.l.Next(n.h)}
}

// Prev returns the node before n, or the zero Node if n is the head or is not in l.
func (l *List[T]) Prev(n Node) Node {
	if !l.l.Valid(n.h) {
		return Node{}
	}
	return Node{l.l.Prev(n.h)}
}

// First returns the item at the head.
func (l *List[T]) First() (T, error) {
	if l.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: first of empty list", ErrEmpty)
	}
	return l.l.Value(l.l.Front()), nil
}

// Last returns the item at the tail.
func (l *List[T]) Last() (T, error) {
	if l.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: last of empty list", ErrEmpty)
	}
	return l.l.Value(l.l.Back()), nil
}

// Append adds item at the tail.
func (l *List[T]) Append(item T) { l.l.PushBack(item) }

// Prepend adds item at the head.
func (l *List[T]) Prepend(item T) { l.l.PushFront(item) }

// InsertBefore adds item immediately before the first node holding anchor. It returns ErrNotFound
// and leaves l unchanged if no node holds anchor.
func (l *List[T]) InsertBefore(anchor T, item T) error {
	h, ok := l.find(anchor)
	if !ok {
		return fmt.Errorf("%w: insert before %v", ErrNotFound, anchor)
	}
	l.l.InsertBefore(item, h)
	return nil
}

// InsertAfter adds item immediately after the first node holding anchor. It returns ErrNotFound
// and leaves l unchanged if no node holds anchor.
func (l *List[T]) InsertAfter(anchor T, item T) error {
	h, ok := l.find(anchor)
	if !ok {
		return fmt.Errorf("%w: insert after %v", ErrNotFound, anchor)
	}
	l.l.InsertAfter(item, h)
	return nil
}

// InsertAtIndex adds item so that it is at index, moving the item previously there and everything
// after it one position later. index must be in [0, Len()).
func (l *List[T]) InsertAtIndex(index int, item T) error {
	h, err := l.nodeAt(index)
	if err != nil {
		return err
	}
	l.l.InsertBefore(item, h)
	return nil
}

// Get returns the item at index. Index 0 is the head.
func (l *List[T]) Get(index int) (T, error) {
	h, err := l.nodeAt(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.l.Value(h), nil
}

// Set replaces the item at index. Index 0 is the head.
func (l *List[T]) Set(index int, item T) error {
	h, err := l.nodeAt(index)
	if err != nil {
		return err
	}
	l.l.SetValue(h, item)
	return nil
}

// RemoveFirst removes the head and returns its item.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: remove first of empty list", ErrEmpty)
	}
	return l.remove(l.l.Front()), nil
}

// RemoveLast removes the tail and returns its item.
func (l *List[T]) RemoveLast() (T, error) {
	if l.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: remove last of empty list", ErrEmpty)
	}
	return l.remove(l.l.Back()), nil
}

// Extract removes the first node holding item.
func (l *List[T]) Extract(item T) error {
	h, ok := l.find(item)
	if !ok {
		return fmt.Errorf("%w: extract %v", ErrNotFound, item)
	}
	l.l.Remove(h)
	return nil
}

// ExtractAll removes every node holding item, returning the number removed. It returns ErrNotFound
// only if no node held item.
func (l *List[T]) ExtractAll(item T) (int, error) {
	n := 0
	for h := l.l.Front(); !h.IsZero(); {
		next := l.l.Next(h)
		if l.l.Value(h) == item {
			l.l.Remove(h)
			n++
		}
		h = next
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: extract all %v", ErrNotFound, item)
	}
	return n, nil
}

// Clear removes every item.
func (l *List[T]) Clear() { l.l.Clear() }

func (l *List[T]) Contains(item T) bool {
	_, ok := l.find(item)
	return ok
}

// Equal returns true if l and other have the same length and equal items in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil || l.Len() != other.Len() {
		return false
	}
	return iterator.Equal(l.Iterate(), other.Iterate())
}

// Iterate returns an iterator over the items of l from head to tail.
func (l *List[T]) Iterate() iterator.Iterator[T] {
	return &listIterator[T]{l: &l.l, h: l.l.Front(), step: l.l.Next}
}

// ReverseIterate returns an iterator over the items of l from tail to head.
func (l *List[T]) ReverseIterate() iterator.Iterator[T] {
	return &listIterator[T]{l: &l.l, h: l.l.Back(), step: l.l.Prev}
}

// Slice returns the items of l from head to tail as a new slice.
func (l *List[T]) Slice() []T {
	return iterator.Collect(l.Iterate())
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for h := l.l.Front(); !h.IsZero(); h = l.l.Next(h) {
		if h != l.l.Front() {
			sb.WriteString(" <-> ")
		}
		fmt.Fprint(&sb, l.l.Value(h))
	}
	sb.WriteByte(']')
	return sb.String()
}

// find returns the first node from the head holding item. It never modifies l.
func (l *List[T]) find(item T) (xlist.Handle, bool) {
	for h := l.l.Front(); !h.IsZero(); h = l.l.Next(h) {
		if l.l.Value(h) == item {
			return h, true
		}
	}
	return xlist.Handle{}, false
}

// nodeAt returns the node index hops from the head. It never modifies l.
func (l *List[T]) nodeAt(index int) (xlist.Handle, error) {
	if index < 0 || index >= l.l.Len() {
		return xlist.Handle{}, fmt.Errorf(
			"%w: list index %d, length %d",
			ErrOutOfRange,
			index,
			l.l.Len(),
		)
	}
	h := l.l.Front()
	for i := 0; i < index; i++ {
		h = l.l.Next(h)
	}
	return h, nil
}

func (l *List[T]) remove(h xlist.Handle) T {
	item := l.l.Value(h)
	l.l.Remove(h)
	return item
}

type listIterator[T any] struct {
	l    *xlist.List[T]
	h    xlist.Handle
	step func(xlist.Handle) xlist.Handle
}

func (iter *listIterator[T]) Next() (T, bool) {
	if iter.h.IsZero() {
		var zero T
		return zero, false
	}
	item := iter.l.Value(iter.h)
	iter.h = iter.step(iter.h)
	return item, true
}
