package linear

import (
	"fmt"
	"strings"
)

// ArrayStack is a last-in first-out stack with a fixed capacity, backed by an Array.
type ArrayStack[T comparable] struct {
	items *Array[T]
	size  int
}

// NewArrayStack returns an empty ArrayStack that holds at most capacity items.
func NewArrayStack[T comparable](capacity int) (*ArrayStack[T], error) {
	items, err := NewArray[T](capacity)
	if err != nil {
		return nil, err
	}
	return &ArrayStack[T]{items: items}, nil
}

// CloneArrayStack returns a copy of src, which must be an *ArrayStack[T].
func CloneArrayStack[T comparable](src any) (*ArrayStack[T], error) {
	s, ok := src.(*ArrayStack[T])
	if !ok || s == nil {
		return nil, fmt.Errorf("%w: %T is not an %T", ErrTypeMismatch, src, s)
	}
	return s.Clone(), nil
}

func (s *ArrayStack[T]) Clone() *ArrayStack[T] {
	return &ArrayStack[T]{items: s.items.Clone(), size: s.size}
}

// Push adds item to the top of the stack. It returns ErrFull if the stack is at capacity.
func (s *ArrayStack[T]) Push(item T) error {
	if s.Full() {
		return fmt.Errorf("%w: push onto stack of capacity %d", ErrFull, s.Cap())
	}
	if err := s.items.Set(s.size, item); err != nil {
		return err
	}
	s.size++
	return nil
}

// Pop removes and returns the item at the top of the stack.
func (s *ArrayStack[T]) Pop() (T, error) {
	item, err := s.Top()
	if err != nil {
		return item, err
	}
	s.size--
	if err := s.items.Clear(s.size); err != nil {
		return item, err
	}
	return item, nil
}

// Top returns the item at the top of the stack without removing it.
func (s *ArrayStack[T]) Top() (T, error) {
	if s.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: stack", ErrEmpty)
	}
	return s.items.Get(s.size - 1)
}

// Clear removes every item. The capacity is unchanged.
func (s *ArrayStack[T]) Clear() {
	for i := 0; i < s.size; i++ {
		s.items.slots[i] = arraySlot[T]{}
	}
	s.size = 0
}

func (s *ArrayStack[T]) Len() int    { return s.size }
func (s *ArrayStack[T]) Cap() int    { return s.items.Len() }
func (s *ArrayStack[T]) Full() bool  { return s.size == s.items.Len() }
func (s *ArrayStack[T]) Empty() bool { return s.size == 0 }

// Equal returns true if s and other hold the same items in the same order. Capacity is not
// compared.
func (s *ArrayStack[T]) Equal(other *ArrayStack[T]) bool {
	if other == nil || s.size != other.size {
		return false
	}
	for i := 0; i < s.size; i++ {
		a, _ := s.items.Get(i)
		b, _ := other.items.Get(i)
		if a != b {
			return false
		}
	}
	return true
}

// String renders the stack bottom to top.
func (s *ArrayStack[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < s.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		item, _ := s.items.Get(i)
		fmt.Fprint(&sb, item)
	}
	sb.WriteByte(']')
	return sb.String()
}
