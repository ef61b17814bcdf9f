package peano

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/deptypes/pkg/brand"
	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

type (
	ta struct{}
	tb struct{}
	tc struct{}
	td struct{}
)

// Fresh names used by the property tests.
type (
	ua = brand.Var[ta, uint32]
	ub = brand.Var[tb, uint32]
	ia = brand.Var[ta, int32]
	ib = brand.Var[tb, int32]
	ic = brand.Var[tc, int32]
	id = brand.Var[td, int32]
)

// agree checks a derived witness against runtime equality: the left side,
// re-tagged through the witness, must equal the right side.
func agree[N comparable, A, B any](t *testing.T, w term.ValueEq[A, B], lhs term.Value[N, A], rhs term.Value[N, B]) {
	t.Helper()
	require.True(t, w.Minted(), "%s not minted", w)
	got := term.Coerce(lhs, w)
	require.True(t, term.Equal(got, rhs).IsLeft(), "%s: %v vs %v", w, lhs, rhs)
}

func name[Tag, N any](v N, body func(term.Value[N, brand.Var[Tag, N]])) {
	brand.With(func(b brand.Brand[Tag]) struct{} {
		body(brand.New(b, v))
		return struct{}{}
	})
}

func name2[N any](a, b N, body func(term.Value[N, brand.Var[ta, N]], term.Value[N, brand.Var[tb, N]])) {
	name[ta](a, func(av term.Value[N, brand.Var[ta, N]]) {
		name[tb](b, func(bv term.Value[N, brand.Var[tb, N]]) {
			body(av, bv)
		})
	})
}

func name3[N any](a, b, c N, body func(term.Value[N, brand.Var[ta, N]], term.Value[N, brand.Var[tb, N]], term.Value[N, brand.Var[tc, N]])) {
	name2(a, b, func(av term.Value[N, brand.Var[ta, N]], bv term.Value[N, brand.Var[tb, N]]) {
		name[tc](c, func(cv term.Value[N, brand.Var[tc, N]]) {
			body(av, bv, cv)
		})
	})
}

func TestUnaryTheoremsAgreeWithEvaluation(t *testing.T) {
	for i := uint32(0); i <= 1000; i++ {
		name[ta](i, func(a term.Value[uint32, ua]) {
			zero := ZeroOf[uint32]()
			agree(t, ZeroAdd[uint32, ua](), AddOf(zero, a), a)
			agree(t, SuccIsAddOne[uint32, ua](), SuccOf(a), AddOf(a, OneOf[uint32]()))
			agree(t, SubSelf[uint32, ua](), SubOf(a, a), zero)
			agree(t, SubZero[uint32, ua](), SubOf(a, zero), a)
			agree(t, SuccSubOne[uint32, ua](), SubOf(SuccOf(a), OneOf[uint32]()), a)
			agree(t, MulOne[uint32, ua](), MulOf(a, OneOf[uint32]()), a)
			agree(t, ZeroMul[uint32, ua](), MulOf(zero, a), zero)

			_, ok := term.Lt(a, SuccOf(a))
			require.True(t, ok)
			require.True(t, LtSucc[uint32, ua]().Minted())
		})
	}
}

func TestSignedUnaryTheoremsAgreeWithEvaluation(t *testing.T) {
	for i := int32(-500); i <= 500; i++ {
		name[ta](i, func(a term.Value[int32, ia]) {
			agree(t, NegNeg[int32, ia](), NegOf(NegOf(a)), a)
			agree(t, SuccPred[int32, ia](), SuccOf(PredOf(a)), a)
			agree(t, NegSucc[int32, ia](), NegOf(SuccOf(a)), PredOf(NegOf(a)))
		})
	}
	agree(t, NegZero[int32](), NegOf(ZeroOf[int32]()), ZeroOf[int32]())
}

func TestBinaryTheoremsAgreeWithEvaluation(t *testing.T) {
	for i := int32(-120); i <= 120; i += 7 {
		for j := int32(-120); j <= 120; j += 11 {
			name2(i, j, func(a term.Value[int32, ia], b term.Value[int32, ib]) {
				agree(t, SuccAdd[int32, ia, ib](), AddOf(SuccOf(a), b), SuccOf(AddOf(a, b)))
				agree(t, SuccAddShift[int32, ia, ib](), AddOf(SuccOf(a), b), AddOf(a, SuccOf(b)))
				agree(t, SuccSubSucc[int32, ia, ib](), SubOf(SuccOf(a), SuccOf(b)), SubOf(a, b))
				agree(t, SuccSub[int32, ia, ib](), SubOf(SuccOf(a), b), SuccOf(SubOf(a, b)))
				agree(t, SuccOfSubSucc[int32, ia, ib](), SuccOf(SubOf(a, SuccOf(b))), SubOf(a, b))
				agree(t, SubSubSelf[int32, ia, ib](), SubOf(a, SubOf(a, b)), b)
				agree(t, AddNeg[int32, ia, ib](), AddOf(a, NegOf(b)), SubOf(a, b))
				agree(t, NegAdd[int32, ia, ib](), NegOf(AddOf(a, b)), SubOf(NegOf(a), b))
				agree(t, NegSubSwap[int32, ia, ib](), NegOf(SubOf(a, b)), SubOf(b, a))
			})
		}
	}
}

func TestTernaryTheoremsAgreeWithEvaluation(t *testing.T) {
	for i := int32(-60); i <= 60; i += 13 {
		for j := int32(-60); j <= 60; j += 17 {
			for k := int32(-60); k <= 60; k += 19 {
				name3(i, j, k, func(a term.Value[int32, ia], b term.Value[int32, ib], c term.Value[int32, ic]) {
					agree(t, AddSubAssoc[int32, ia, ib, ic](), SubOf(AddOf(a, b), c), AddOf(a, SubOf(b, c)))
					agree(t, AddSubComm[int32, ia, ib, ic](), SubOf(AddOf(a, b), c), AddOf(SubOf(a, c), b))
					agree(t, SubSubAssoc[int32, ia, ib, ic](), SubOf(a, SubOf(b, c)), AddOf(SubOf(a, b), c))
					agree(t, SubSubSwap[int32, ia, ib, ic](), SubOf(a, SubOf(b, c)), AddOf(a, SubOf(c, b)))
				})
			}
		}
	}
}

func TestOrderTheorems(t *testing.T) {
	for i := uint32(0); i <= 1000; i += 9 {
		for j := uint32(0); j <= 1000; j += 31 {
			name2(i, j, func(a term.Value[uint32, ua], b term.Value[uint32, ub]) {
				require.True(t, LeAdd[uint32, ua, ub]().Minted())
				_, ok := term.Le(a, AddOf(a, b))
				require.True(t, ok)
			})
		}
	}
	assert.True(t, LeSucc[uint64, x]().Minted())
	assert.True(t, SuccNe[int, x]().Minted())
}

func TestCancellation(t *testing.T) {
	for i := int32(-30); i <= 30; i += 5 {
		for j := int32(-30); j <= 30; j += 3 {
			name2(i, j, func(a term.Value[int32, ia], c term.Value[int32, ib]) {
				name[tc](i, func(b term.Value[int32, ic]) {
					name[td](j, func(d term.Value[int32, id]) {
						cd, ok := term.Equal(c, d).Left()
						require.True(t, ok)

						sum, ok := term.Equal(AddOf(a, c), AddOf(b, d)).Left()
						require.True(t, ok)
						agree(t, AddCancelRight[int32](sum, cd), a, b)

						rsum, ok := term.Equal(AddOf(c, a), AddOf(d, b)).Left()
						require.True(t, ok)
						agree(t, AddCancelLeft[int32](rsum, cd), a, b)

						diff, ok := term.Equal(SubOf(a, c), SubOf(b, d)).Left()
						require.True(t, ok)
						agree(t, SubCancelRight[int32](diff, cd), a, b)

						ldiff, ok := term.Equal(SubOf(c, a), SubOf(d, b)).Left()
						require.True(t, ok)
						agree(t, SubCancelLeft[int32](ldiff, cd), a, b)

						nn, ok := term.Equal(NegOf(a), NegOf(b)).Left()
						require.True(t, ok)
						agree(t, NegInj[int32](nn), a, b)
					})
				})
			})
		}
	}
}

func TestDivRem(t *testing.T) {
	for i := int32(-50); i <= 50; i++ {
		for j := int32(-7); j <= 7; j++ {
			name2(i, j, func(a term.Value[int32, ia], b term.Value[int32, ib]) {
				nz, ok := IsZero(b).Right()
				if !ok {
					return
				}
				lhs := AddOf(MulOf(DivOf(a, b), b), RemOf(a, b))
				agree(t, DivRem[int32, ia](nz), lhs, a)
			})
		}
	}
}

func TestSuccInj(t *testing.T) {
	name2(uint32(6), uint32(6), func(a term.Value[uint32, ua], b term.Value[uint32, ub]) {
		eq, ok := term.Equal(SuccOf(a), SuccOf(b)).Left()
		require.True(t, ok)
		agree(t, SuccInj[uint32](eq), a, b)
	})
}

func TestAxiomsRejectUnsoundRepresentations(t *testing.T) {
	axiomPanic := func(fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			_, ok := r.(*AxiomError)
			require.True(t, ok, "panic value = %T, want *AxiomError", r)
		}()
		fn()
	}

	axiomPanic(func() { LtSucc[WrappingU8, x]() })
	axiomPanic(func() { AddZero[SaturatingU8, x]() })
	axiomPanic(func() { AddComm[SaturatingI32, x, y]() })
	axiomPanic(func() { LeAdd[WrappingU32, x, y]() })

	assert.NotPanics(t, func() { AddZero[WrappingU8, x]() })
	assert.NotPanics(t, func() { NegNeg[WrappingI16, x]() })
	assert.NotPanics(t, func() { NonNeg[SaturatingU8, x]() })
}

// ((2 + 3) - 1) = 4, proved and computed independently.
func TestEndToEnd(t *testing.T) {
	type N = uint8

	// 2 + 3 = 2 + S(2) = S(2 + 2) = S(S(2 + 1)) = S(S(S(2 + 0))) = S(S(S(2)))
	sum := rel.Trans4(
		AddSucc[N, Two[N], Two[N]](),
		SuccCong(AddSucc[N, Two[N], One[N]]()),
		SuccCong(SuccCong(AddSucc[N, Two[N], Zero[N]]())),
		SuccCong(SuccCong(SuccCong(AddZero[N, Two[N]]()))),
	)
	proof := rel.Trans(SubCong(sum, term.Refl[One[N]]()), SuccSubOne[N, Four[N]]())
	assert.Equal(t, "2 + 3 - 1 == 4", proof.String())

	computed := SubOf(AddOf(TwoOf[N](), ThreeOf[N]()), OneOf[N]())
	four := term.Coerce(computed, proof)

	assert.Equal(t, N(4), four.Get())
	assert.Equal(t, FourOf[N]().Get(), four.Get())
	assert.True(t, term.Equal(four, FourOf[N]()).IsLeft())
}

func TestAxiomsAreTiedToTheirRepresentation(t *testing.T) {
	requireRepr := func(t *testing.T, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			_, ok := r.(*rel.ReprError)
			require.True(t, ok, "panic value = %T, want *rel.ReprError", r)
		}()
		fn()
	}

	wrapped := term.Define[x](WrappingU8(255))

	t.Run("combined with a wrapped comparison", func(t *testing.T) {
		back, ok := term.Le(SuccOf(wrapped), wrapped)
		require.True(t, ok, "S(255) wraps to 0")
		requireRepr(t, func() { rel.Antisym(rel.LtLe(LtSucc[uint8, x]()), back) })
	})

	sum := AddOf(wrapped, term.Define[y](WrappingU8(1)))

	t.Run("coercing a wrapped value", func(t *testing.T) {
		requireRepr(t, func() { term.Coerce(sum, AddComm[uint8, x, y]()) })
	})

	t.Run("same representation", func(t *testing.T) {
		v := term.Coerce(sum, AddComm[WrappingU8, x, y]())
		assert.Equal(t, WrappingU8(0), v.Get())
	})
}
