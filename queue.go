package linear

import "fmt"

// ListQueue is an unbounded first-in first-out queue backed by a List.
//
// The zero value is an empty queue ready to use.
type ListQueue[T comparable] struct {
	items List[T]
}

func NewListQueue[T comparable]() *ListQueue[T] {
	return &ListQueue[T]{}
}

// CloneListQueue returns a copy of src, which must be a *ListQueue[T].
func CloneListQueue[T comparable](src any) (*ListQueue[T], error) {
	q, ok := src.(*ListQueue[T])
	if !ok || q == nil {
		return nil, fmt.Errorf("%w: %T is not a %T", ErrTypeMismatch, src, q)
	}
	return q.Clone(), nil
}

func (q *ListQueue[T]) Clone() *ListQueue[T] {
	return &ListQueue[T]{items: *q.items.Clone()}
}

// Enqueue adds item to the back of the queue.
func (q *ListQueue[T]) Enqueue(item T) { q.items.Append(item) }

// Dequeue removes and returns the item at the front of the queue.
func (q *ListQueue[T]) Dequeue() (T, error) {
	if q.items.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: dequeue", ErrEmpty)
	}
	return q.items.RemoveFirst()
}

// Front returns the item at the front of the queue without removing it.
func (q *ListQueue[T]) Front() (T, error) {
	if q.items.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: queue front", ErrEmpty)
	}
	return q.items.First()
}

func (q *ListQueue[T]) Clear()      { q.items.Clear() }
func (q *ListQueue[T]) Len() int    { return q.items.Len() }
func (q *ListQueue[T]) Empty() bool { return q.items.Empty() }

func (q *ListQueue[T]) Equal(other *ListQueue[T]) bool {
	return other != nil && q.items.Equal(&other.items)
}

// String renders the queue front to back.
func (q *ListQueue[T]) String() string { return q.items.String() }
