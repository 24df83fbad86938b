// Package permutation computes the traversal orders of an ordered collection.
//
// A Permutation maps a logical traversal position to an index of the traversed sequence.
// Every Permutation produced by this package is a bijection over [0, Len()),
// so no index is repeated or omitted.
//
// Permutations are computed eagerly from a snapshot of the values,
// and they are not updated when the source of the snapshot changes afterwards.
package permutation

import (
	"fmt"
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrUnknownOrder is returned for an Order that is not one of Orders().
const ErrUnknownOrder errorkit.Error = "ErrUnknownOrder"

// Order names a traversal strategy.
type Order string

const (
	// Ascending visits the values from the smallest to the largest.
	// Equal values are visited in their insertion order.
	Ascending Order = "ascending"
	// Descending visits the values from the largest to the smallest.
	// Equal values are visited in their insertion order.
	Descending Order = "descending"
	// Insertion visits the values in the order they were added.
	Insertion Order = "insertion"
	// Reverse visits the values in the opposite of the insertion order.
	Reverse Order = "reverse"
	// SideCross alternates between the smallest and the largest remaining value.
	SideCross Order = "side-cross"
	// MiddleOut starts at the middle position and expands outward, alternating left and right.
	MiddleOut Order = "middle-out"
)

// Orders returns every supported Order.
func Orders() []Order {
	return []Order{Ascending, Descending, Insertion, Reverse, SideCross, MiddleOut}
}

func (o Order) String() string { return string(o) }

func (o Order) Validate() error {
	if slices.Contains(Orders(), o) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownOrder, string(o))
}

// ParseOrder turns the canonical name of an Order into an Order.
func ParseOrder(raw string) (Order, error) {
	o := Order(raw)
	if err := o.Validate(); err != nil {
		return "", err
	}
	return o, nil
}

// Permutation maps a traversal position to an index.
// Index must be called only with a position within [0, Len()).
type Permutation interface {
	Len() int
	Index(position int) int
}

// Identity is the insertion order permutation of a sequence with the given length.
// It doesn't materialise any index.
type Identity int

func (n Identity) Len() int { return int(n) }

func (Identity) Index(position int) int { return position }

// Reversed is the reverse order permutation of a sequence with the given length.
// It doesn't materialise any index.
type Reversed int

func (n Reversed) Len() int { return int(n) }

func (n Reversed) Index(position int) int { return int(n) - 1 - position }

// Indices is a materialised permutation.
type Indices []int

func (is Indices) Len() int { return len(is) }

func (is Indices) Index(position int) int { return is[position] }

// Of computes the Permutation of the given Order over the values.
// The compare function must define a strict weak ordering, as cmp.Compare does.
func Of[T any](order Order, vs []T, compare func(a, b T) int) (Permutation, error) {
	switch order {
	case Ascending:
		return Ascend(vs, compare), nil
	case Descending:
		return Descend(vs, compare), nil
	case Insertion:
		return Identity(len(vs)), nil
	case Reverse:
		return Reversed(len(vs)), nil
	case SideCross:
		return CrossSides(vs, compare), nil
	case MiddleOut:
		return FromMiddle(len(vs)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, string(order))
	}
}

// Ascend returns the indices of vs sorted by their values.
// The sort is stable, ties keep their original index order.
func Ascend[T any](vs []T, compare func(a, b T) int) Indices {
	is := identity(len(vs))
	slices.SortStableFunc(is, func(a, b int) int {
		return compare(vs[a], vs[b])
	})
	return is
}

// Descend returns the indices of vs sorted by their values in reverse.
// The sort is stable with a reversed comparator,
// thus equal values keep their original relative order instead of being mirrored.
func Descend[T any](vs []T, compare func(a, b T) int) Indices {
	is := identity(len(vs))
	slices.SortStableFunc(is, func(a, b int) int {
		return compare(vs[b], vs[a])
	})
	return is
}

// CrossSides takes the ascending permutation and alternately picks from its low and high end,
// until the two ends meet. The meeting element is taken once.
func CrossSides[T any](vs []T, compare func(a, b T) int) Indices {
	var (
		asc     = Ascend(vs, compare)
		out     = make(Indices, 0, len(asc))
		lo, hi  = 0, len(asc) - 1
		takeLow = true
	)
	for lo <= hi {
		if takeLow {
			out = append(out, asc[lo])
			lo++
		} else {
			out = append(out, asc[hi])
			hi--
		}
		takeLow = !takeLow
	}
	return out
}

// FromMiddle starts with the middle index (n/2) and expands outward,
// alternating between the left and the right neighbour, starting with the left one.
// When one side is exhausted, the rest is taken from the other side.
//
// For n=5 the result is [2 1 3 0 4].
func FromMiddle(n int) Indices {
	if n <= 0 {
		return Indices{}
	}
	var (
		mid      = n / 2
		out      = make(Indices, 0, n)
		left     = mid
		right    = mid + 1
		takeLeft = true
	)
	out = append(out, mid)
	for 0 < left || right < n {
		if takeLeft && 0 < left {
			left--
			out = append(out, left)
		} else if !takeLeft && right < n {
			out = append(out, right)
			right++
		}
		switch {
		case left == 0:
			takeLeft = false
		case n <= right:
			takeLeft = true
		default:
			takeLeft = !takeLeft
		}
	}
	return out
}

func identity(n int) Indices {
	is := make(Indices, n)
	for i := range is {
		is[i] = i
	}
	return is
}
