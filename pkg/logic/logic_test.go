package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/deptypes/pkg/brand"
	"github.com/funvibe/deptypes/pkg/term"
)

type (
	p struct{}
	q struct{}
)

type (
	vp = brand.Var[p, bool]
	vq = brand.Var[q, bool]
)

func agree[A, B any](t *testing.T, w term.ValueEq[A, B], lhs Value[A], rhs Value[B]) {
	t.Helper()
	require.True(t, w.Minted(), "%s not minted", w)
	require.True(t, term.Equal(term.Coerce(lhs, w), rhs).IsLeft(), "%s: %v vs %v", w, lhs, rhs)
}

func differ[A, B any](t *testing.T, w term.ValueNe[A, B], lhs Value[A], rhs Value[B]) {
	t.Helper()
	require.True(t, w.Minted(), "%s not minted", w)
	require.False(t, term.Equal(lhs, rhs).IsLeft(), "%s: %v vs %v", w, lhs, rhs)
}

func forBools(body func(a Value[vp], b Value[vq])) {
	for _, x := range []bool{false, true} {
		for _, y := range []bool{false, true} {
			brand.With(func(bp brand.Brand[p]) struct{} {
				return brand.With(func(bq brand.Brand[q]) struct{} {
					body(brand.New(bp, x), brand.New(bq, y))
					return struct{}{}
				})
			})
		}
	}
}

func TestEvaluators(t *testing.T) {
	tests := []struct {
		a, b              bool
		not, and, or, xor bool
	}{
		{false, false, true, false, false, false},
		{false, true, true, false, true, true},
		{true, false, false, false, true, true},
		{true, true, false, true, true, false},
	}
	for _, tt := range tests {
		a, b := term.Define[p](tt.a), term.Define[q](tt.b)
		assert.Equal(t, tt.not, NotOf(a).Get())
		assert.Equal(t, tt.and, AndOf(a, b).Get())
		assert.Equal(t, tt.or, OrOf(a, b).Get())
		assert.Equal(t, tt.xor, XorOf(a, b).Get())
	}
	assert.True(t, TrueValue.Get())
	assert.False(t, FalseValue.Get())
}

func TestChooseIsTotal(t *testing.T) {
	forBools(func(a Value[vp], _ Value[vq]) {
		c := Choose(a)
		eqT, okT := c.Left()
		eqF, okF := c.Right()
		require.NotEqual(t, okT, okF, "exactly one branch")
		if okT {
			require.True(t, a.Get())
			agree(t, eqT, a, TrueValue)
		} else {
			require.False(t, a.Get())
			agree(t, eqF, a, FalseValue)
		}
		agree(t, NotNot[vp](), NotOf(NotOf(a)), a)
	})

	got := If(NotOf(TrueValue),
		func(term.ValueEq[Not[True], True]) string { return "true" },
		func(term.ValueEq[Not[True], False]) string { return "false" },
	)
	assert.Equal(t, "false", got)
}

func TestAxiomsAgreeWithEvaluation(t *testing.T) {
	differ(t, TrueNeFalse(), TrueValue, FalseValue)
	forBools(func(a Value[vp], b Value[vq]) {
		differ(t, NotNe[vp](), NotOf(a), a)

		agree(t, AndTrue[vp](), AndOf(a, TrueValue), a)
		agree(t, AndFalse[vp](), AndOf(a, FalseValue), FalseValue)
		agree(t, AndComm[vp, vq](), AndOf(a, b), AndOf(b, a))
		agree(t, AndIdem[vp](), AndOf(a, a), a)
		agree(t, AndAbsorb[vp, vq](), AndOf(a, OrOf(a, b)), a)

		agree(t, OrFalse[vp](), OrOf(a, FalseValue), a)
		agree(t, OrTrue[vp](), OrOf(a, TrueValue), TrueValue)
		agree(t, OrComm[vp, vq](), OrOf(a, b), OrOf(b, a))
		agree(t, OrIdem[vp](), OrOf(a, a), a)
		agree(t, OrAbsorb[vp, vq](), OrOf(a, AndOf(a, b)), a)
		agree(t, ExcludedMiddle[vp](), OrOf(a, NotOf(a)), TrueValue)
		agree(t, DeMorganAnd[vp, vq](), NotOf(AndOf(a, b)), OrOf(NotOf(a), NotOf(b)))
		agree(t, DeMorganOr[vp, vq](), NotOf(OrOf(a, b)), AndOf(NotOf(a), NotOf(b)))

		agree(t, XorFalse[vp](), XorOf(a, FalseValue), a)
		agree(t, XorTrue[vp](), XorOf(a, TrueValue), NotOf(a))
		agree(t, XorComm[vp, vq](), XorOf(a, b), XorOf(b, a))
		agree(t, XorSelf[vp](), XorOf(a, a), FalseValue)
	})
}

func TestTheoremsAgreeWithEvaluation(t *testing.T) {
	agree(t, NotTrue(), NotOf(TrueValue), FalseValue)
	agree(t, NotFalse(), NotOf(FalseValue), TrueValue)

	forBools(func(a Value[vp], b Value[vq]) {
		agree(t, FalseAnd[vq](), AndOf(FalseValue, b), FalseValue)
		agree(t, TrueAnd[vq](), AndOf(TrueValue, b), b)
		agree(t, FalseOr[vq](), OrOf(FalseValue, b), b)
		agree(t, TrueOr[vq](), OrOf(TrueValue, b), TrueValue)
		agree(t, FalseXor[vq](), XorOf(FalseValue, b), b)
		agree(t, TrueXor[vq](), XorOf(TrueValue, b), NotOf(b))
		agree(t, NonContradiction[vp](), AndOf(a, NotOf(a)), FalseValue)
		agree(t, NotAndFalse[vp](), NotOf(AndOf(a, FalseValue)), TrueValue)
		agree(t, NotOrTrue[vp](), NotOf(OrOf(a, TrueValue)), FalseValue)

		d := term.Equal(a, b)
		if eq, ok := d.Left(); ok {
			differ(t, EqImpliesNotNe(eq), NotOf(a), b)
			return
		}
		ne, _ := d.Right()
		agree(t, NeIsEqNot(ne), a, NotOf(b))
	})
}

func TestConditionalTheorems(t *testing.T) {
	forBools(func(a Value[vp], _ Value[vq]) {
		if ne, ok := term.Equal(a, TrueValue).Right(); ok {
			agree(t, NeTrueIsFalse(ne), a, FalseValue)
		}
		if ne, ok := term.Equal(a, FalseValue).Right(); ok {
			agree(t, NeFalseIsTrue(ne), a, TrueValue)
		}
	})

	forBools(func(a Value[vp], b Value[vq]) {
		if eq, ok := term.Equal(NotOf(a), b).Left(); ok {
			differ(t, NotEqImpliesNe(eq), a, b)
		}
		if eq, ok := term.Equal(NotOf(a), NotOf(b)).Left(); ok {
			agree(t, NotInj(eq), a, b)
		}
	})
}

func TestRendering(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"true ne false", TrueNeFalse().String(), "true != false"},
		{"not not", NotNot[vp]().String(), "!(!p) == p"},
		{"de morgan", DeMorganAnd[p, q]().String(), "!(p & q) == !p | !q"},
		{"xor", TrueXor[q]().String(), "true ^ q == !q"},
		{"excluded middle", ExcludedMiddle[p]().String(), "p | !p == true"},
		{"value", AndOf(TrueValue, FalseValue).String(), "false : true & false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestUnmintedPremiseIsRejected(t *testing.T) {
	var forged term.ValueNe[vp, True]
	assert.Panics(t, func() { NeTrueIsFalse(forged) })
}

func TestOnlyBooleanTermsAreTwoValued(t *testing.T) {
	tests := []struct {
		name string
		term any
		want bool
	}{
		{"constant", True{}, true},
		{"compound", And[p, Not[q]]{}, true},
		{"fresh bool", vp{}, true},
		{"default bool", term.Def[bool]{}, true},
		{"fresh integer", brand.Var[p, uint8]{}, false},
		{"default integer", term.Def[int]{}, false},
		{"free term", p{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.term.(Bool)
			assert.Equal(t, tt.want, ok)
		})
	}

	forBools(func(a Value[vp], b Value[vq]) {
		ac, ok := term.Equal(a, TrueValue).Right()
		if !ok {
			return
		}
		bc, ok := term.Equal(b, TrueValue).Right()
		if !ok {
			return
		}
		agree(t, TwoValued(ac, bc), a, b)
	})
}

func TestResult(t *testing.T) {
	tests := []struct {
		name    string
		ok      bool
		wantT   int
		wantF   string
		wantBit bool
	}{
		{"ok", true, 7, "", true},
		{"err", false, 0, "boom", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brand.With(func(b brand.Brand[p]) struct{} {
				r, cond := Decide(b, 7, "boom", tt.ok)
				assert.Equal(t, tt.ok, cond.Get())

				gotT, gotF, isOk := Unwrap(r, cond)
				assert.Equal(t, tt.wantBit, isOk)
				assert.Equal(t, tt.wantT, gotT)
				assert.Equal(t, tt.wantF, gotF)
				return struct{}{}
			})
		})
	}

	assert.Equal(t, 3, OkValue(Ok[int, error](3)))
	assert.Equal(t, "no", ErrValue(Err[int]("no")))

	_, f, isOk := Unwrap(Err[int]("direct"), FalseValue)
	assert.False(t, isOk)
	assert.Equal(t, "direct", f)
}

func TestResultIsScoped(t *testing.T) {
	type leaked struct {
		r    Result[vp, int, string]
		cond Value[vp]
	}
	l := brand.With(func(b brand.Brand[p]) leaked {
		r, cond := Decide(b, 1, "", true)
		return leaked{r, cond}
	})
	assert.Panics(t, func() { Unwrap(l.r, l.cond) })

	var zero Result[True, int, string]
	assert.Panics(t, func() { OkValue(zero) })
}
