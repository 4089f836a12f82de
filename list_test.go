package linear

import (
	"testing"

	"github.com/bradenaw/juniper/iterator"
	"github.com/stretchr/testify/require"
)

// checkList verifies the structural invariants of l against its expected contents.
func checkList[T comparable](t *testing.T, l *List[T], expected []T) {
	t.Helper()
	require.Equal(t, len(expected), l.Len())
	require.Equal(t, l.Len() == 0, l.Empty())
	require.Equal(t, l.Head().IsZero(), l.Tail().IsZero())
	require.Equal(t, l.Empty(), l.Head().IsZero())

	var fwd []T
	for n := l.Head(); !n.IsZero(); n = l.Next(n) {
		item, ok := l.Item(n)
		require.True(t, ok)
		fwd = append(fwd, item)
		if next := l.Next(n); !next.IsZero() {
			require.Equal(t, n, l.Prev(next))
		}
		require.LessOrEqual(t, len(fwd), l.Len())
	}
	if len(expected) == 0 {
		require.Empty(t, fwd)
	} else {
		require.Equal(t, expected, fwd)
	}

	rev := iterator.Collect(l.ReverseIterate())
	require.Len(t, rev, len(expected))
	for i := range rev {
		require.Equal(t, expected[len(expected)-1-i], rev[i])
	}
}

func TestListAppendPrepend(t *testing.T) {
	l := NewList[int]()
	checkList(t, l, nil)

	l.Append(2)
	l.Append(3)
	l.Prepend(1)
	l.Prepend(0)
	checkList(t, l, []int{0, 1, 2, 3})

	first, err := l.First()
	require.NoError(t, err)
	require.Equal(t, 0, first)
	last, err := l.Last()
	require.NoError(t, err)
	require.Equal(t, 3, last)
}

func TestListAppendToEmptySetsHeadAndTail(t *testing.T) {
	l := NewList[string]()
	l.Prepend("only")
	require.Equal(t, l.Head(), l.Tail())
	checkList(t, l, []string{"only"})
}

func TestListInsertBeforeHead(t *testing.T) {
	l := ListOf(15, 25, 35, 45)
	oldHead := l.Head()

	require.NoError(t, l.InsertBefore(15, 5))
	checkList(t, l, []int{5, 15, 25, 35, 45})
	require.NotEqual(t, oldHead, l.Head())

	item, ok := l.Item(l.Head())
	require.True(t, ok)
	require.Equal(t, 5, item)
}

func TestListInsertBeforeTailKeepsTail(t *testing.T) {
	l := ListOf(5, 15, 25, 45)
	oldTail := l.Tail()

	require.NoError(t, l.InsertBefore(45, 35))
	checkList(t, l, []int{5, 15, 25, 35, 45})
	require.Equal(t, oldTail, l.Tail())

	v, err := l.Get(3)
	require.NoError(t, err)
	require.Equal(t, 35, v)
}

func TestListInsertBeforeMiddle(t *testing.T) {
	l := ListOf(5, 15, 25, 35, 45)
	require.NoError(t, l.InsertBefore(25, 20))
	checkList(t, l, []int{5, 15, 20, 25, 35, 45})
}

func TestListInsertBeforeRepeatedly(t *testing.T) {
	values := []int{5, 15, 25, 35, 45}
	l := ListOf(values[4])
	for i := 3; i >= 0; i-- {
		require.NoError(t, l.InsertBefore(values[i+1], values[i]))
	}
	checkList(t, l, values)
}

func TestListInsertBeforeSingleNode(t *testing.T) {
	l := ListOf(1)
	oldHead := l.Head()
	require.NoError(t, l.InsertBefore(1, 0))
	require.NotEqual(t, oldHead, l.Head())
	require.Equal(t, oldHead, l.Tail())
	checkList(t, l, []int{0, 1})
}

func TestListInsertAfterHeadKeepsHead(t *testing.T) {
	l := ListOf(5, 25, 35, 45)
	oldHead := l.Head()

	require.NoError(t, l.InsertAfter(5, 15))
	checkList(t, l, []int{5, 15, 25, 35, 45})
	require.Equal(t, oldHead, l.Head())
}

func TestListInsertAfterTail(t *testing.T) {
	l := ListOf(5, 15, 25, 35)
	oldTail := l.Tail()

	require.NoError(t, l.InsertAfter(35, 45))
	checkList(t, l, []int{5, 15, 25, 35, 45})
	require.NotEqual(t, oldTail, l.Tail())
	require.Equal(t, oldTail, l.Prev(l.Tail()))
}

func TestListInsertUsesFirstMatch(t *testing.T) {
	l := ListOf(1, 2, 1)
	require.NoError(t, l.InsertAfter(1, 9))
	checkList(t, l, []int{1, 9, 2, 1})
	require.NoError(t, l.InsertBefore(1, 8))
	checkList(t, l, []int{8, 1, 9, 2, 1})
}

func TestListInsertNotFound(t *testing.T) {
	empty := NewList[int]()
	require.ErrorIs(t, empty.InsertBefore(0, 1000), ErrNotFound)
	require.ErrorIs(t, empty.InsertAfter(0, 1000), ErrNotFound)
	checkList(t, empty, nil)

	l := ListOf(5, 5, 15, 25, 35, 45)
	require.ErrorIs(t, l.InsertBefore(500, 1000), ErrNotFound)
	require.ErrorIs(t, l.InsertAfter(500, 1000), ErrNotFound)
	checkList(t, l, []int{5, 5, 15, 25, 35, 45})
}

func TestListInsertAtIndex(t *testing.T) {
	l := ListOf(0, 1, 2, 3)
	require.NoError(t, l.InsertAtIndex(0, -1))
	checkList(t, l, []int{-1, 0, 1, 2, 3})
	require.NoError(t, l.InsertAtIndex(4, 25))
	checkList(t, l, []int{-1, 0, 1, 2, 25, 3})
	require.NoError(t, l.InsertAtIndex(2, 5))
	checkList(t, l, []int{-1, 0, 5, 1, 2, 25, 3})

	require.ErrorIs(t, l.InsertAtIndex(7, 0), ErrOutOfRange)
	require.ErrorIs(t, l.InsertAtIndex(-1, 0), ErrOutOfRange)
	require.ErrorIs(t, NewList[int]().InsertAtIndex(0, 0), ErrOutOfRange)
	require.Equal(t, 7, l.Len())
}

func TestListGetSet(t *testing.T) {
	l := ListOf("a", "b", "c")
	for i, expected := range []string{"a", "b", "c"} {
		v, err := l.Get(i)
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}

	require.NoError(t, l.Set(0, "A"))
	require.NoError(t, l.Set(2, "C"))
	checkList(t, l, []string{"A", "b", "C"})

	_, err := l.Get(3)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = l.Get(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, l.Set(3, "x"), ErrOutOfRange)
}

func TestListRemoveFirstLast(t *testing.T) {
	l := ListOf(1, 2, 3)

	v, err := l.RemoveFirst()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	checkList(t, l, []int{2, 3})

	v, err = l.RemoveLast()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	checkList(t, l, []int{2})

	v, err = l.RemoveLast()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	checkList(t, l, nil)

	_, err = l.RemoveFirst()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.RemoveLast()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.First()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.Last()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestListRemovedNodeIsGone(t *testing.T) {
	l := ListOf(1, 2)
	head := l.Head()
	_, err := l.RemoveFirst()
	require.NoError(t, err)

	_, ok := l.Item(head)
	require.False(t, ok)
	require.True(t, l.Next(head).IsZero())

	// A new node with the same item is a different node.
	l.Prepend(1)
	require.NotEqual(t, head, l.Head())
}

func TestListExtract(t *testing.T) {
	l := ListOf(1, 2, 3, 2)
	require.NoError(t, l.Extract(2))
	checkList(t, l, []int{1, 3, 2})
	require.NoError(t, l.Extract(1))
	checkList(t, l, []int{3, 2})
	require.NoError(t, l.Extract(2))
	checkList(t, l, []int{3})
	require.ErrorIs(t, l.Extract(7), ErrNotFound)
	require.NoError(t, l.Extract(3))
	checkList(t, l, nil)
	require.ErrorIs(t, l.Extract(3), ErrNotFound)
}

func TestListExtractAll(t *testing.T) {
	l := ListOf(1, 2, 1, 3, 1)
	n, err := l.ExtractAll(1)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	checkList(t, l, []int{2, 3})

	_, err = l.ExtractAll(1)
	require.ErrorIs(t, err, ErrNotFound)
	checkList(t, l, []int{2, 3})

	all := ListOf(4, 4, 4)
	n, err = all.ExtractAll(4)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	checkList(t, all, nil)
}

func TestListContainsEqual(t *testing.T) {
	l := ListOf("x", "y", "z")
	require.True(t, l.Contains("y"))
	require.False(t, l.Contains("w"))
	require.False(t, NewList[string]().Contains("x"))

	require.True(t, l.Equal(ListOf("x", "y", "z")))
	require.False(t, l.Equal(ListOf("x", "y")))
	require.False(t, l.Equal(ListOf("x", "y", "w")))
	require.False(t, l.Equal(nil))
	require.True(t, NewList[string]().Equal(NewList[string]()))
}

func TestListClone(t *testing.T) {
	l := ListOf(1, 2, 3)
	c, err := CloneList[int](l)
	require.NoError(t, err)
	require.True(t, c.Equal(l))
	require.NotEqual(t, l.Head(), c.Head())

	c.Append(4)
	checkList(t, l, []int{1, 2, 3})
	checkList(t, c, []int{1, 2, 3, 4})

	_, err = CloneList[int](ArrayOf(1, 2, 3))
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = CloneList[int]([]int{1, 2, 3})
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestListRejectsForeignNodes(t *testing.T) {
	l := ListOf(1, 2, 3)
	other := ListOf(1, 2, 3)
	require.NotEqual(t, l.Head(), other.Head())
	require.NotEqual(t, l.Tail(), other.Tail())

	for _, n := range []Node{other.Head(), other.Next(other.Head()), other.Tail()} {
		_, ok := l.Item(n)
		require.False(t, ok)
		require.True(t, l.Next(n).IsZero())
		require.True(t, l.Prev(n).IsZero())
	}

	_, ok := NewList[int]().Item(l.Head())
	require.False(t, ok)
}

func TestListIterate(t *testing.T) {
	l := ListOf(1, 2, 3)
	require.Equal(t, []int{1, 2, 3}, iterator.Collect(l.Iterate()))
	require.Equal(t, []int{3, 2, 1}, iterator.Collect(l.ReverseIterate()))

	// Mutations before an iteration starts are seen by it.
	l.Append(4)
	require.Equal(t, []int{1, 2, 3, 4}, l.Slice())
}

func TestListClear(t *testing.T) {
	l := ListOf(1, 2, 3)
	l.Clear()
	checkList(t, l, nil)
	l.Append(5)
	checkList(t, l, []int{5})
}

func TestListString(t *testing.T) {
	require.Equal(t, "[]", NewList[int]().String())
	require.Equal(t, "[1 <-> 2 <-> 3]", ListOf(1, 2, 3).String())
}

func FuzzList(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	f.Fuzz(func(t *testing.T, b []byte) {
		l := NewList[byte]()
		var model []byte

		indexOf := func(x byte) int {
			for i := range model {
				if model[i] == x {
					return i
				}
			}
			return -1
		}

		for i := 0; i+1 < len(b); i += 2 {
			op := b[i] % 11
			x := b[i+1] % 8
			switch op {
			case 0:
				t.Logf("Append(%d)", x)
				l.Append(x)
				model = append(model, x)
			case 1:
				t.Logf("Prepend(%d)", x)
				l.Prepend(x)
				model = append([]byte{x}, model...)
			case 2, 3:
				anchor := x % 4
				t.Logf("InsertBefore(%d, %d)", anchor, x)
				err := l.InsertBefore(anchor, x)
				j := indexOf(anchor)
				if j < 0 {
					require.ErrorIs(t, err, ErrNotFound)
					break
				}
				require.NoError(t, err)
				model = append(model[:j], append([]byte{x}, model[j:]...)...)
			case 4:
				anchor := x % 4
				t.Logf("InsertAfter(%d, %d)", anchor, x)
				err := l.InsertAfter(anchor, x)
				j := indexOf(anchor)
				if j < 0 {
					require.ErrorIs(t, err, ErrNotFound)
					break
				}
				require.NoError(t, err)
				j++
				model = append(model[:j], append([]byte{x}, model[j:]...)...)
			case 5:
				idx := int(x)
				t.Logf("InsertAtIndex(%d, %d)", idx, x)
				err := l.InsertAtIndex(idx, x)
				if idx >= len(model) {
					require.ErrorIs(t, err, ErrOutOfRange)
					break
				}
				require.NoError(t, err)
				model = append(model[:idx], append([]byte{x}, model[idx:]...)...)
			case 6:
				t.Logf("RemoveFirst()")
				v, err := l.RemoveFirst()
				if len(model) == 0 {
					require.ErrorIs(t, err, ErrEmpty)
					break
				}
				require.NoError(t, err)
				require.Equal(t, model[0], v)
				model = model[1:]
			case 7:
				t.Logf("RemoveLast()")
				v, err := l.RemoveLast()
				if len(model) == 0 {
					require.ErrorIs(t, err, ErrEmpty)
					break
				}
				require.NoError(t, err)
				require.Equal(t, model[len(model)-1], v)
				model = model[:len(model)-1]
			case 8:
				t.Logf("Extract(%d)", x)
				err := l.Extract(x)
				j := indexOf(x)
				if j < 0 {
					require.ErrorIs(t, err, ErrNotFound)
					break
				}
				require.NoError(t, err)
				model = append(model[:j], model[j+1:]...)
			case 9:
				t.Logf("ExtractAll(%d)", x)
				n, err := l.ExtractAll(x)
				var kept []byte
				for _, y := range model {
					if y != x {
						kept = append(kept, y)
					}
				}
				if len(kept) == len(model) {
					require.ErrorIs(t, err, ErrNotFound)
					break
				}
				require.NoError(t, err)
				require.Equal(t, len(model)-len(kept), n)
				model = kept
			case 10:
				idx := int(x)
				t.Logf("Set(%d, %d)", idx, x)
				err := l.Set(idx, x)
				if idx >= len(model) {
					require.ErrorIs(t, err, ErrOutOfRange)
					break
				}
				require.NoError(t, err)
				model[idx] = x
			}
			t.Logf("  %s", l)
			checkList(t, l, append([]byte(nil), model...))
		}
	})
}
