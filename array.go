package linear

import (
	"fmt"
	"strings"

	"github.com/bradenaw/juniper/iterator"
	"github.com/bradenaw/juniper/xslices"
)

// Array is a fixed-length sequence of slots. Each slot either holds an item or is empty. The
// length only ever changes through Resize and RemoveAt; Set never grows the array.
//
// Array is not safe for concurrent use.
type Array[T comparable] struct {
	slots []arraySlot[T]
}

type arraySlot[T comparable] struct {
	item T
	set  bool
}

// NewArray returns an Array of size empty slots. It returns ErrInvalidArgument if size is negative.
func NewArray[T comparable](size int) (*Array[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative array size %d", ErrInvalidArgument, size)
	}
	return &Array[T]{slots: make([]arraySlot[T], size)}, nil
}

// ArrayOf returns an Array holding items, in order.
func ArrayOf[T comparable](items ...T) *Array[T] {
	return ArrayConcat(items)
}

// ArrayConcat returns an Array holding the items of each run in turn, flattened into one sequence.
func ArrayConcat[T comparable](runs ...[]T) *Array[T] {
	n := 0
	for _, run := range runs {
		n += len(run)
	}
	a := &Array[T]{slots: make([]arraySlot[T], 0, n)}
	for _, run := range runs {
		for _, item := range run {
			a.slots = append(a.slots, arraySlot[T]{item: item, set: true})
		}
	}
	return a
}

// CloneArray returns a copy of src, which must be an *Array[T]. Items are copied by assignment.
func CloneArray[T comparable](src any) (*Array[T], error) {
	a, ok := src.(*Array[T])
	if !ok || a == nil {
		return nil, fmt.Errorf("%w: %T is not an %T", ErrTypeMismatch, src, a)
	}
	return a.Clone(), nil
}

// Clone returns an independent copy of a.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{slots: xslices.Clone(a.slots)}
}

func (a *Array[T]) Len() int { return len(a.slots) }

// Get returns the item at index, or the zero value of T if the slot is empty.
func (a *Array[T]) Get(index int) (T, error) {
	item, _, err := a.Lookup(index)
	return item, err
}

// Lookup returns the item at index and whether the slot holds one.
func (a *Array[T]) Lookup(index int) (T, bool, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, false, err
	}
	s := a.slots[index]
	return s.item, s.set, nil
}

func (a *Array[T]) Set(index int, item T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.slots[index] = arraySlot[T]{item: item, set: true}
	return nil
}

// Clear empties the slot at index.
func (a *Array[T]) Clear(index int) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.slots[index] = arraySlot[T]{}
	return nil
}

// Resize changes the length of a to size. Shrinking discards the slots at and beyond size, growing
// adds empty slots at the end. Existing slots below size are untouched.
func (a *Array[T]) Resize(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: negative array size %d", ErrInvalidArgument, size)
	}
	if size < len(a.slots) {
		// Zero the tail so dropped items aren't kept alive by the backing array.
		for i := size; i < len(a.slots); i++ {
			a.slots[i] = arraySlot[T]{}
		}
		a.slots = a.slots[:size]
		return nil
	}
	a.slots = append(a.slots, make([]arraySlot[T], size-len(a.slots))...)
	return nil
}

// RemoveAt removes the slot at index, shifting every later slot down by one.
func (a *Array[T]) RemoveAt(index int) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.slots = xslices.Remove(a.slots, index, 1)
	return nil
}

// Contains returns true if any non-empty slot holds item.
func (a *Array[T]) Contains(item T) bool {
	return xslices.Index(a.slots, arraySlot[T]{item: item, set: true}) >= 0
}

// Equal returns true if a and b have the same length and the same slots in the same order.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if b == nil {
		return false
	}
	return xslices.Equal(a.slots, b.slots)
}

// Iterate returns an iterator over the items of a in index order. Empty slots produce the zero
// value of T, so iteration cannot tell an empty slot from one holding the zero value; use Lookup
// for that.
func (a *Array[T]) Iterate() iterator.Iterator[T] {
	return &arrayIterator[T]{a: a}
}

// Slice returns the items of a as a new slice, with the zero value of T in place of empty slots.
// As with Iterate, two arrays with equal Slices are not necessarily Equal.
func (a *Array[T]) Slice() []T {
	return iterator.Collect(a.Iterate())
}

func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range a.slots {
		if i > 0 {
			sb.WriteString(", ")
		}
		if s.set {
			fmt.Fprint(&sb, s.item)
		} else {
			sb.WriteString("<empty>")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array[T]) checkIndex(index int) error {
	if index < 0 || index >= len(a.slots) {
		return fmt.Errorf("%w: array index %d, length %d", ErrOutOfRange, index, len(a.slots))
	}
	return nil
}

type arrayIterator[T comparable] struct {
	a *Array[T]
	i int
}

func (iter *arrayIterator[T]) Next() (T, bool) {
	if iter.i >= len(iter.a.slots) {
		var zero T
		return zero, false
	}
	item := iter.a.slots[iter.i].item
	iter.i++
	return item, true
}
