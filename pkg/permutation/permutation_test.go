package permutation_test

import (
	"cmp"
	"testing"

	"go.llib.dev/orderkit/pkg/permutation"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func apply[T any](p permutation.Permutation, vs []T) []T {
	out := make([]T, 0, p.Len())
	for pos := 0; pos < p.Len(); pos++ {
		out = append(out, vs[p.Index(pos)])
	}
	return out
}

func indexes(p permutation.Permutation) []int {
	out := make([]int, 0, p.Len())
	for pos := 0; pos < p.Len(); pos++ {
		out = append(out, p.Index(pos))
	}
	return out
}

func TestOf(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		order = testcase.Let[permutation.Order](s, nil)
		vs    = let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(1, 42), func() int {
				return t.Random.IntBetween(-100, 100)
			})
		})
	)
	act := let.Act2(func(t *testcase.T) (permutation.Permutation, error) {
		return permutation.Of(order.Get(t), vs.Get(t), cmp.Compare[int])
	})

	for _, o := range permutation.Orders() {
		s.Context(o.String(), func(s *testcase.Spec) {
			order.LetValue(s, o)

			s.Then("the permutation length matches the number of values", func(t *testcase.T) {
				p, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, len(vs.Get(t)), p.Len())
			})

			s.Then("every index is visited exactly once", func(t *testcase.T) {
				p, err := act(t)
				assert.NoError(t, err)

				var exp []int
				for i := range vs.Get(t) {
					exp = append(exp, i)
				}
				assert.ContainsExactly(t, exp, indexes(p))
			})

			s.Then("the result is deterministic", func(t *testcase.T) {
				p1, err := act(t)
				assert.NoError(t, err)
				p2, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, indexes(p1), indexes(p2))
			})

			s.When("there are no values", func(s *testcase.Spec) {
				vs.Let(s, func(t *testcase.T) []int { return nil })

				s.Then("the permutation is empty", func(t *testcase.T) {
					p, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, 0, p.Len())
				})
			})

			s.When("there is a single value", func(s *testcase.Spec) {
				vs.Let(s, func(t *testcase.T) []int {
					return []int{t.Random.Int()}
				})

				s.Then("the only index is zero", func(t *testcase.T) {
					p, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, []int{0}, indexes(p))
				})
			})
		})
	}

	s.When("order is unknown", func(s *testcase.Spec) {
		order.Let(s, func(t *testcase.T) permutation.Order {
			return permutation.Order(t.Random.StringNC(5, random.CharsetAlpha()))
		})

		s.Then("error is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, permutation.ErrUnknownOrder)
		})
	})
}

func TestAscend(t *testing.T) {
	t.Run("smoke", func(t *testing.T) {
		vs := []int{5, 1, 3, 2, 4}
		assert.Equal(t, []int{1, 2, 3, 4, 5}, apply(permutation.Ascend(vs, cmp.Compare[int]), vs))
	})
	t.Run("floats", func(t *testing.T) {
		vs := []float64{3.1, 2.2, 5.5, -1.0}
		assert.Equal(t, []float64{-1.0, 2.2, 3.1, 5.5}, apply(permutation.Ascend(vs, cmp.Compare[float64]), vs))
	})
	t.Run("strings", func(t *testing.T) {
		vs := []string{"baboon", "arie", "pil"}
		assert.Equal(t, []string{"arie", "baboon", "pil"}, apply(permutation.Ascend(vs, cmp.Compare[string]), vs))
	})
	t.Run("ties are broken by the original index", func(t *testing.T) {
		vs := []int{2, 1, 2, 1}
		assert.Equal(t, permutation.Indices{1, 3, 0, 2}, permutation.Ascend(vs, cmp.Compare[int]))
	})
	t.Run("result is non-decreasing", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		vs := random.Slice(rnd.IntBetween(2, 128), func() int { return rnd.IntBetween(0, 16) })
		got := apply(permutation.Ascend(vs, cmp.Compare[int]), vs)
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1] <= got[i])
		}
	})
}

func TestDescend(t *testing.T) {
	t.Run("smoke", func(t *testing.T) {
		vs := []int{5, 1, 3, 2, 4}
		assert.Equal(t, []int{5, 4, 3, 2, 1}, apply(permutation.Descend(vs, cmp.Compare[int]), vs))
	})
	t.Run("strings", func(t *testing.T) {
		vs := []string{"baboon", "arie", "pil"}
		assert.Equal(t, []string{"pil", "baboon", "arie"}, apply(permutation.Descend(vs, cmp.Compare[string]), vs))
	})
	t.Run("equal values keep their insertion order", func(t *testing.T) {
		vs := []int{2, 1, 2, 1}
		assert.Equal(t, permutation.Indices{0, 2, 1, 3}, permutation.Descend(vs, cmp.Compare[int]))
	})
	t.Run("with distinct values it is the reverse of Ascend", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		vs := random.Slice(rnd.IntBetween(2, 64), rnd.Int, random.UniqueValues)
		asc := apply(permutation.Ascend(vs, cmp.Compare[int]), vs)
		desc := apply(permutation.Descend(vs, cmp.Compare[int]), vs)
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
	})
}

func TestCrossSides(t *testing.T) {
	t.Run("odd length", func(t *testing.T) {
		vs := []int{1, 2, 3, 4, 5}
		assert.Equal(t, []int{1, 5, 2, 4, 3}, apply(permutation.CrossSides(vs, cmp.Compare[int]), vs))
	})
	t.Run("even length", func(t *testing.T) {
		vs := []string{"b", "a", "c", "d"}
		assert.Equal(t, []string{"a", "d", "b", "c"}, apply(permutation.CrossSides(vs, cmp.Compare[string]), vs))
	})
	t.Run("floats", func(t *testing.T) {
		vs := []float64{1.1, 2.2, 3.3, 4.4, 5.5}
		assert.Equal(t, []float64{1.1, 5.5, 2.2, 4.4, 3.3}, apply(permutation.CrossSides(vs, cmp.Compare[float64]), vs))
	})
	t.Run("two values", func(t *testing.T) {
		vs := []int{9, 3}
		assert.Equal(t, permutation.Indices{1, 0}, permutation.CrossSides(vs, cmp.Compare[int]))
	})
}

func TestFromMiddle(t *testing.T) {
	for n, exp := range map[int]permutation.Indices{
		0: {},
		1: {0},
		2: {1, 0},
		3: {1, 0, 2},
		4: {2, 1, 3, 0},
		5: {2, 1, 3, 0, 4},
		6: {3, 2, 4, 1, 5, 0},
		7: {3, 2, 4, 1, 5, 0, 6},
	} {
		assert.Equal(t, exp, permutation.FromMiddle(n), assert.MessageF("n=%d", n))
	}

	vs := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, []string{"c", "b", "d", "a", "e"}, apply(permutation.FromMiddle(len(vs)), vs))
}

func TestIdentity(t *testing.T) {
	p := permutation.Identity(3)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []int{0, 1, 2}, indexes(p))
}

func TestReversed(t *testing.T) {
	p := permutation.Reversed(3)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []int{2, 1, 0}, indexes(p))

	vs := []string{"first", "second", "third"}
	assert.Equal(t, []string{"third", "second", "first"}, apply(p, vs))
}

func TestParseOrder(t *testing.T) {
	for _, o := range permutation.Orders() {
		got, err := permutation.ParseOrder(o.String())
		assert.NoError(t, err)
		assert.Equal(t, o, got)
	}

	_, err := permutation.ParseOrder("sideways")
	assert.ErrorIs(t, err, permutation.ErrUnknownOrder)

	_, err = permutation.ParseOrder("")
	assert.ErrorIs(t, err, permutation.ErrUnknownOrder)
}
