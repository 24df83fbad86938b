package cursorcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/orderkit/pkg/cursor"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// Subject holds cursor factories over a single source instance.
// Every call must construct a fresh cursor.
type Subject[T any] struct {
	Begin func() cursor.Cursor[T]
	End   func() cursor.Cursor[T]
}

// Cursor is the contract every traversal order's cursor must fulfil.
// The make function receives the values the source must hold in insertion order.
func Cursor[T any](mk func(tb testing.TB, vs []T) Subject[T], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	makeValues := func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(1, 12), func() T {
			return c.makeValue(t)
		})
	}

	s.Test("begin equals end when the source is empty", func(t *testcase.T) {
		sub := mk(t, nil)
		assert.True(t, sub.Begin().Equal(sub.End()))
		assert.True(t, sub.Begin().Done())
	})

	s.Test("traversal yields every value exactly once", func(t *testcase.T) {
		vs := makeValues(t)
		sub := mk(t, vs)

		got, err := iterkit.CollectE(cursor.Range(sub.Begin(), sub.End()))
		assert.NoError(t, err)
		assert.Equal(t, len(vs), len(got))
		assert.ContainsExactly(t, vs, got)
	})

	s.Test("traversal is deterministic", func(t *testcase.T) {
		vs := makeValues(t)
		sub := mk(t, vs)

		first, err := iterkit.CollectE(cursor.Range(sub.Begin(), sub.End()))
		assert.NoError(t, err)
		second, err := iterkit.CollectE(cursor.Range(sub.Begin(), sub.End()))
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	if c.Expect != nil {
		s.Test("traversal follows the expected order", func(t *testcase.T) {
			vs := makeValues(t)
			sub := mk(t, vs)

			got, err := iterkit.CollectE(cursor.Range(sub.Begin(), sub.End()))
			assert.NoError(t, err)
			assert.Equal(t, c.Expect(vs), got)
		})
	}

	s.Test("manual stepping reaches the end after as many steps as values", func(t *testcase.T) {
		vs := makeValues(t)
		sub := mk(t, vs)

		var (
			it    = sub.Begin()
			end   = sub.End()
			steps int
		)
		for !it.Equal(end) {
			_, err := it.Current()
			assert.NoError(t, err)
			_, err = it.Advance()
			assert.NoError(t, err)
			steps++
		}
		assert.Equal(t, len(vs), steps)
		assert.True(t, it.Done())
	})

	s.Test("dereferencing or advancing at the end fails", func(t *testcase.T) {
		vs := makeValues(t)
		end := mk(t, vs).End()

		_, err := end.Current()
		assert.ErrorIs(t, err, cursor.ErrOutOfRange)
		_, err = end.Advance()
		assert.ErrorIs(t, err, cursor.ErrOutOfRange)
		_, err = end.PostAdvance()
		assert.ErrorIs(t, err, cursor.ErrOutOfRange)
		assert.Equal(t, len(vs), end.Position(), "failed advance must not move the cursor")
	})

	s.Test("pre-advance returns the cursor after the increment", func(t *testcase.T) {
		sub := mk(t, makeValues(t))
		it := sub.Begin()

		got, err := it.Advance()
		assert.NoError(t, err)
		assert.True(t, got == &it)
		assert.Equal(t, 1, got.Position())
	})

	s.Test("post-advance returns a copy captured before the increment", func(t *testcase.T) {
		sub := mk(t, makeValues(t))
		it := sub.Begin()
		exp, err := it.Current()
		assert.NoError(t, err)

		before, err := it.PostAdvance()
		assert.NoError(t, err)
		assert.Equal(t, 0, before.Position())
		assert.Equal(t, 1, it.Position())

		got, err := before.Current()
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
		assert.False(t, before.Equal(it))
	})

	s.Test("independently constructed cursors at the same position are equal", func(t *testcase.T) {
		sub := mk(t, makeValues(t))
		a, b := sub.Begin(), sub.Begin()
		assert.True(t, a.Equal(b))

		_, err := a.Advance()
		assert.NoError(t, err)
		assert.False(t, a.Equal(b))

		_, err = b.Advance()
		assert.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	s.Test("cursors of different sources are not equal", func(t *testcase.T) {
		vs := makeValues(t)
		a, b := mk(t, vs), mk(t, vs)
		assert.False(t, a.Begin().Equal(b.Begin()))
	})

	s.Test("copies advance independently", func(t *testcase.T) {
		sub := mk(t, makeValues(t))
		a := sub.Begin()
		b := a

		_, err := a.Advance()
		assert.NoError(t, err)
		assert.Equal(t, 1, a.Position())
		assert.Equal(t, 0, b.Position())
	})

	return s.AsSuite(fmt.Sprintf("Cursor[%s]", reflectkit.TypeOf[T]().String()))
}

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeValue creates a random element for the source.
	MakeValue func(testing.TB) T
	// Expect returns the expected traversal of the values, given in insertion order.
	// When nil, only the order independent expectations are checked.
	Expect func(vs []T) []T
}

var _ Option[int] = Config[int]{}

func (c Config[T]) Configure(o *Config[T]) {
	if c.MakeValue != nil {
		o.MakeValue = c.MakeValue
	}
	if c.Expect != nil {
		o.Expect = c.Expect
	}
}

func (c Config[T]) makeValue(tb testing.TB) T {
	if c.MakeValue != nil {
		return c.MakeValue(tb)
	}
	return testcase.ToT(&tb).Random.Make(*new(T)).(T)
}
