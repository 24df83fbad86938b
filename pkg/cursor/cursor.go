// Package cursor implements stepwise traversal over an indexed source under a chosen permutation.
//
// A Cursor is positioned either at a valid position or at the end sentinel.
// The permutation is captured when the cursor is created,
// later changes of the Source are not reflected in it.
// Mutating the Source while a cursor is alive is the caller's responsibility;
// a stale cursor reports the Source's lookup error instead of panicking.
package cursor

import (
	"fmt"
	"reflect"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/orderkit/pkg/permutation"
)

// ErrOutOfRange is returned when a cursor at its end sentinel is dereferenced or advanced.
const ErrOutOfRange errorkit.Error = "ErrOutOfRange"

// Source is the read-only accessor a Cursor uses to reach the traversed elements.
//
// Cursor equality compares Source identity.
// Pointer types compare by address.
// Slice and map backed sources compare by their underlying storage.
type Source[T any] interface {
	Len() int
	At(index int) (T, error)
}

type Cursor[T any] struct {
	src   Source[T]
	order permutation.Order
	perm  permutation.Permutation
	pos   int
}

// New creates a Cursor over src that follows perm, starting at the given position.
// The cursor's length equals perm.Len(), and the start position is clamped into [0, perm.Len()].
func New[T any](src Source[T], order permutation.Order, perm permutation.Permutation, start int) Cursor[T] {
	if perm == nil {
		perm = permutation.Identity(0)
	}
	c := Cursor[T]{src: src, order: order, perm: perm}
	switch {
	case start < 0:
		c.pos = 0
	case perm.Len() < start:
		c.pos = perm.Len()
	default:
		c.pos = start
	}
	return c
}

func (c Cursor[T]) Order() permutation.Order { return c.order }

// Position is the logical traversal position of the cursor.
func (c Cursor[T]) Position() int { return c.pos }

// Len is the number of positions the cursor can visit.
func (c Cursor[T]) Len() int {
	if c.perm == nil {
		return 0
	}
	return c.perm.Len()
}

// Done reports whether the cursor is at the end sentinel.
func (c Cursor[T]) Done() bool { return c.Len() <= c.pos }

// Current returns the element at the cursor's position.
func (c Cursor[T]) Current() (T, error) {
	if c.Done() {
		var zero T
		return zero, fmt.Errorf("%w: position %d of %d", ErrOutOfRange, c.pos, c.Len())
	}
	return c.src.At(c.perm.Index(c.pos))
}

// Advance moves the cursor to the next position and returns it.
func (c *Cursor[T]) Advance() (*Cursor[T], error) {
	if c.Done() {
		return c, fmt.Errorf("%w: cannot advance past the end", ErrOutOfRange)
	}
	c.pos++
	return c, nil
}

// PostAdvance moves the cursor to the next position,
// and returns a copy of the cursor as it was before the move.
func (c *Cursor[T]) PostAdvance() (Cursor[T], error) {
	if c.Done() {
		return *c, fmt.Errorf("%w: cannot advance past the end", ErrOutOfRange)
	}
	before := *c
	c.pos++
	return before, nil
}

// Equal reports whether both cursors traverse the same Source and stand at the same position.
// Neither the order nor the permutation is compared.
// Equal never panics, even for a Source whose dynamic type is not comparable.
func (c Cursor[T]) Equal(oth Cursor[T]) bool {
	return c.pos == oth.pos && sameSource(c.src, oth.src)
}

func sameSource[T any](a, b Source[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

// Range walks from begin until it equals end.
// When begin fails to yield an element, the error is yielded and the iteration stops.
func Range[T any](begin, end Cursor[T]) iterkit.ErrSeq[T] {
	return func(yield func(T, error) bool) {
		for c := begin; !c.Equal(end); {
			v, err := c.Current()
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
			if _, err := c.Advance(); err != nil {
				var zero T
				yield(zero, err)
				return
			}
		}
	}
}
