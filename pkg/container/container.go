// Package container provides an ordered, insertion indexed collection
// that can be traversed in several orders without duplicating its storage.
//
// Every traversal is exposed as a begin and end cursor pair.
// The traversal order is computed when the cursor is created,
// thus mutating the container while a cursor is in use is the caller's responsibility.
package container

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/orderkit/pkg/cursor"
	"go.llib.dev/orderkit/pkg/permutation"
)

const (
	// ErrIndexOutOfRange is returned when an index is outside of [0, Len()).
	ErrIndexOutOfRange errorkit.Error = "ErrIndexOutOfRange"
	// ErrNotFound is returned by Remove when no element equals the given value.
	ErrNotFound errorkit.Error = "ErrNotFound"
)

// Container is a dense, 0-based sequence of ordered values.
// The zero value is an empty container ready to use.
type Container[T cmp.Ordered] struct {
	vs []T
}

var _ cursor.Source[int] = (*Container[int])(nil)

// Of creates a Container holding the given values in the given order.
func Of[T cmp.Ordered](vs ...T) *Container[T] {
	var c Container[T]
	c.Append(vs...)
	return &c
}

// Add appends a value to the end of the container.
func (c *Container[T]) Add(v T) {
	c.vs = append(c.vs, v)
}

func (c *Container[T]) Append(vs ...T) {
	c.vs = append(c.vs, vs...)
}

// Remove deletes every element equal to v.
// When no such element exists, ErrNotFound is returned and the container is left untouched.
func (c *Container[T]) Remove(v T) error {
	if !slices.Contains(c.vs, v) {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	c.vs = slices.DeleteFunc(c.vs, func(e T) bool { return e == v })
	return nil
}

func (c *Container[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.vs)
}

func (c *Container[T]) IsEmpty() bool {
	return c.Len() == 0
}

func (c *Container[T]) Lookup(index int) (T, bool) {
	if index < 0 || c.Len() <= index {
		var zero T
		return zero, false
	}
	return c.vs[index], true
}

// Get returns the element at the given index.
func (c *Container[T]) Get(index int) (T, error) {
	v, ok := c.Lookup(index)
	if !ok {
		return v, c.errIndex(index)
	}
	return v, nil
}

// At is the read-only element accessor used by the cursors.
func (c *Container[T]) At(index int) (T, error) {
	return c.Get(index)
}

// Set replaces the element at the given index.
func (c *Container[T]) Set(index int, v T) error {
	if index < 0 || c.Len() <= index {
		return c.errIndex(index)
	}
	c.vs[index] = v
	return nil
}

func (c *Container[T]) errIndex(index int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, c.Len())
}

// ToSlice returns a copy of the elements in insertion order.
func (c *Container[T]) ToSlice() []T {
	if c == nil {
		return nil
	}
	return slices.Clone(c.vs)
}

func (c *Container[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for _, v := range c.vs {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone makes an independent copy of the container.
func (c *Container[T]) Clone() *Container[T] {
	return &Container[T]{vs: c.ToSlice()}
}

// Assign replaces the contents of the container with a copy of oth's contents.
func (c *Container[T]) Assign(oth *Container[T]) {
	if c == oth {
		return
	}
	c.vs = oth.ToSlice()
}

// String renders the container as [e0, e1, ..., en-1].
func (c *Container[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range c.ToSlice() {
		if 0 < i {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("]")
	return b.String()
}

// Begin returns a cursor at the first position of the given traversal order.
func (c *Container[T]) Begin(order permutation.Order) (cursor.Cursor[T], error) {
	return c.cursor(order, 0)
}

// End returns the end sentinel cursor of the given traversal order.
func (c *Container[T]) End(order permutation.Order) (cursor.Cursor[T], error) {
	return c.cursor(order, c.Len())
}

// Traverse walks the container in the given order.
func (c *Container[T]) Traverse(order permutation.Order) iterkit.ErrSeq[T] {
	begin, err := c.Begin(order)
	if err != nil {
		return iterkit.Error[T](err)
	}
	end, err := c.End(order)
	if err != nil {
		return iterkit.Error[T](err)
	}
	return cursor.Range(begin, end)
}

func (c *Container[T]) cursor(order permutation.Order, start int) (cursor.Cursor[T], error) {
	var vs []T
	if c != nil {
		vs = c.vs
	}
	perm, err := permutation.Of(order, vs, cmp.Compare[T])
	if err != nil {
		return cursor.Cursor[T]{}, err
	}
	return cursor.New[T](c, order, perm, start), nil
}

func (c *Container[T]) mustCursor(order permutation.Order, start int) cursor.Cursor[T] {
	cur, err := c.cursor(order, start)
	if err != nil {
		panic(err)
	}
	return cur
}

func (c *Container[T]) BeginAscending() cursor.Cursor[T] {
	return c.mustCursor(permutation.Ascending, 0)
}

func (c *Container[T]) EndAscending() cursor.Cursor[T] {
	return c.mustCursor(permutation.Ascending, c.Len())
}

func (c *Container[T]) BeginDescending() cursor.Cursor[T] {
	return c.mustCursor(permutation.Descending, 0)
}

func (c *Container[T]) EndDescending() cursor.Cursor[T] {
	return c.mustCursor(permutation.Descending, c.Len())
}

func (c *Container[T]) BeginSideCross() cursor.Cursor[T] {
	return c.mustCursor(permutation.SideCross, 0)
}

func (c *Container[T]) EndSideCross() cursor.Cursor[T] {
	return c.mustCursor(permutation.SideCross, c.Len())
}

func (c *Container[T]) BeginReverse() cursor.Cursor[T] {
	return c.mustCursor(permutation.Reverse, 0)
}

func (c *Container[T]) EndReverse() cursor.Cursor[T] {
	return c.mustCursor(permutation.Reverse, c.Len())
}

// BeginOrder returns the first cursor of the insertion order traversal.
func (c *Container[T]) BeginOrder() cursor.Cursor[T] {
	return c.mustCursor(permutation.Insertion, 0)
}

// EndOrder returns the end sentinel of the insertion order traversal.
func (c *Container[T]) EndOrder() cursor.Cursor[T] {
	return c.mustCursor(permutation.Insertion, c.Len())
}

func (c *Container[T]) BeginMiddleOut() cursor.Cursor[T] {
	return c.mustCursor(permutation.MiddleOut, 0)
}

func (c *Container[T]) EndMiddleOut() cursor.Cursor[T] {
	return c.mustCursor(permutation.MiddleOut, c.Len())
}
