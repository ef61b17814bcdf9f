package audit

import (
	"cmp"
	"fmt"

	"github.com/funvibe/deptypes/pkg/brand"
	"github.com/funvibe/deptypes/pkg/peano"
	"github.com/funvibe/deptypes/pkg/term"
)

// CounterExample is returned by a check when an axiom's claim disagrees
// with runtime evaluation.
type CounterExample struct {
	Claim string
	Got   string
	Want  string
}

func (e *CounterExample) Error() string {
	return fmt.Sprintf("%s fails: got %s, want %s", e.Claim, e.Got, e.Want)
}

// Names for sampled values. Each check runs on its own goroutine, so the
// tags never overlap.
type (
	aTag struct{}
	bTag struct{}
	cTag struct{}
	dTag struct{}
)

type (
	va[N any] = brand.Var[aTag, N]
	vb[N any] = brand.Var[bTag, N]
	vc[N any] = brand.Var[cTag, N]
	vd[N any] = brand.Var[dTag, N]
)

// Sample sizes per arity.
const (
	unaryLimit      = 4001
	binaryLimit     = 129
	ternaryLimit    = 33
	quaternaryLimit = 13
)

func agree[N comparable, A, B any](w term.ValueEq[A, B], lhs term.Value[N, A], rhs term.Value[N, B]) error {
	if !w.Minted() {
		return fmt.Errorf("%s: witness not minted", w)
	}
	if !term.Equal(term.Coerce(lhs, w), rhs).IsLeft() {
		return &CounterExample{Claim: w.String(), Got: fmt.Sprint(lhs.Get()), Want: fmt.Sprint(rhs.Get())}
	}
	return nil
}

func differ[N comparable, A, B any](w term.ValueNe[A, B], lhs term.Value[N, A], rhs term.Value[N, B]) error {
	if !w.Minted() {
		return fmt.Errorf("%s: witness not minted", w)
	}
	if term.Equal(lhs, rhs).IsLeft() {
		return &CounterExample{Claim: w.String(), Got: fmt.Sprint(lhs.Get()), Want: "a different value"}
	}
	return nil
}

func below[N cmp.Ordered, A, B any](w term.ValueLt[A, B], lhs term.Value[N, A], rhs term.Value[N, B]) error {
	if !w.Minted() {
		return fmt.Errorf("%s: witness not minted", w)
	}
	if _, ok := term.Lt(lhs, rhs); !ok {
		return &CounterExample{Claim: w.String(), Got: fmt.Sprint(lhs.Get()), Want: fmt.Sprintf("less than %v", rhs.Get())}
	}
	return nil
}

func atMost[N cmp.Ordered, A, B any](w term.ValueLe[A, B], lhs term.Value[N, A], rhs term.Value[N, B]) error {
	if !w.Minted() {
		return fmt.Errorf("%s: witness not minted", w)
	}
	if _, ok := term.Le(lhs, rhs); !ok {
		return &CounterExample{Claim: w.String(), Got: fmt.Sprint(lhs.Get()), Want: fmt.Sprintf("at most %v", rhs.Get())}
	}
	return nil
}

func named[Tag, N any](x N, body func(term.Value[N, brand.Var[Tag, N]]) error) error {
	return brand.With(func(b brand.Brand[Tag]) error {
		return body(brand.New(b, x))
	})
}

func forAll1[N any](xs []N, body func(term.Value[N, va[N]]) error) error {
	for _, x := range xs {
		if err := named[aTag](x, body); err != nil {
			return fmt.Errorf("a=%v: %w", x, err)
		}
	}
	return nil
}

func forAll2[N any](xs []N, body func(term.Value[N, va[N]], term.Value[N, vb[N]]) error) error {
	for _, x := range xs {
		for _, y := range xs {
			err := named[aTag](x, func(a term.Value[N, va[N]]) error {
				return named[bTag](y, func(b term.Value[N, vb[N]]) error {
					return body(a, b)
				})
			})
			if err != nil {
				return fmt.Errorf("a=%v b=%v: %w", x, y, err)
			}
		}
	}
	return nil
}

func forAll3[N any](xs []N, body func(term.Value[N, va[N]], term.Value[N, vb[N]], term.Value[N, vc[N]]) error) error {
	for _, x := range xs {
		for _, y := range xs {
			for _, z := range xs {
				err := named[aTag](x, func(a term.Value[N, va[N]]) error {
					return named[bTag](y, func(b term.Value[N, vb[N]]) error {
						return named[cTag](z, func(c term.Value[N, vc[N]]) error {
							return body(a, b, c)
						})
					})
				})
				if err != nil {
					return fmt.Errorf("a=%v b=%v c=%v: %w", x, y, z, err)
				}
			}
		}
	}
	return nil
}

func forAll4[N any](xs []N, body func(term.Value[N, va[N]], term.Value[N, vb[N]], term.Value[N, vc[N]], term.Value[N, vd[N]]) error) error {
	return forAll2(xs, func(a term.Value[N, va[N]], b term.Value[N, vb[N]]) error {
		for _, z := range xs {
			for _, w := range xs {
				err := named[cTag](z, func(c term.Value[N, vc[N]]) error {
					return named[dTag](w, func(d term.Value[N, vd[N]]) error {
						return body(a, b, c, d)
					})
				})
				if err != nil {
					return fmt.Errorf("c=%v d=%v: %w", z, w, err)
				}
			}
		}
		return nil
	})
}

// forEqual1 names every x twice and passes both names with their equality.
func forEqual1[N comparable](xs []N, body func(term.Value[N, va[N]], term.Value[N, vb[N]], term.ValueEq[va[N], vb[N]]) error) error {
	for _, x := range xs {
		err := named[aTag](x, func(a term.Value[N, va[N]]) error {
			return named[bTag](x, func(b term.Value[N, vb[N]]) error {
				w, ok := term.Equal(a, b).Left()
				if !ok {
					return fmt.Errorf("%v is not equal to itself", x)
				}
				return body(a, b, w)
			})
		})
		if err != nil {
			return fmt.Errorf("a=b=%v: %w", x, err)
		}
	}
	return nil
}

// forEqual2 names every pair (x, y) as a = b = x and c = d = y.
func forEqual2[N comparable](xs []N, body func(
	a term.Value[N, va[N]], b term.Value[N, vb[N]], c term.Value[N, vc[N]], d term.Value[N, vd[N]],
	ab term.ValueEq[va[N], vb[N]], cd term.ValueEq[vc[N], vd[N]],
) error) error {
	for _, x := range xs {
		for _, y := range xs {
			err := forEqual1([]N{x}, func(a term.Value[N, va[N]], b term.Value[N, vb[N]], ab term.ValueEq[va[N], vb[N]]) error {
				return named[cTag](y, func(c term.Value[N, vc[N]]) error {
					return named[dTag](y, func(d term.Value[N, vd[N]]) error {
						cd, ok := term.Equal(c, d).Left()
						if !ok {
							return fmt.Errorf("%v is not equal to itself", y)
						}
						return body(a, b, c, d, ab, cd)
					})
				})
			})
			if err != nil {
				return fmt.Errorf("c=d=%v: %w", y, err)
			}
		}
	}
	return nil
}

// signedSamples covers [-bound, bound], thinned to at most limit values.
// Zero, the extremes and their neighbours are always included.
func signedSamples(bound, limit int) []int32 {
	return thin(-bound, bound, limit, func(i int) int32 { return int32(i) })
}

func unsignedSamples(bound, limit int) []uint32 {
	return thin(0, bound, limit, func(i int) uint32 { return uint32(i) })
}

// wrappingSamples covers the full range of an 8-bit wrapping type.
func wrappingSamples(limit int) []peano.WrappingU8 {
	return thin(0, 255, limit, func(i int) peano.WrappingU8 { return peano.WrappingU8(i) })
}

func thin[N any](lo, hi, limit int, conv func(int) N) []N {
	n := hi - lo + 1
	if n <= limit {
		out := make([]N, 0, n)
		for i := lo; i <= hi; i++ {
			out = append(out, conv(i))
		}
		return out
	}

	seen := make(map[int]bool, limit)
	var picked []int
	pick := func(i int) {
		if i >= lo && i <= hi && !seen[i] {
			seen[i] = true
			picked = append(picked, i)
		}
	}
	for _, i := range []int{lo, lo + 1, -2, -1, 0, 1, 2, hi - 1, hi} {
		pick(i)
	}
	step := (n + limit - 1) / limit
	for i := lo; i <= hi && len(picked) < limit; i += step {
		pick(i)
	}

	out := make([]N, len(picked))
	for k, i := range picked {
		out[k] = conv(i)
	}
	return out
}
