package peano

import (
	"github.com/funvibe/deptypes/pkg/brand"
	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

// IsZero decides a = 0.
func IsZero[N Integer, A any](a Value[N, A]) rel.Or[term.ValueEq[A, Zero[N]], term.ValueNe[A, Zero[N]]] {
	return term.Equal(a, ZeroOf[N]())
}

// SuccOrZero is the result of AsSuccOrZero: either a = S(p) for a fresh
// name p, or a = 0.
type SuccOrZero[Tag any, N UInt, A any] struct {
	pred   Value[N, brand.Var[Tag, N]]
	succEq term.ValueEq[Succ[brand.Var[Tag, N]], A]
	zeroEq term.ValueEq[A, Zero[N]]
	isZero bool
}

// Succ returns the predecessor and the proof S(pred) = a when a != 0.
func (s SuccOrZero[Tag, N, A]) Succ() (Value[N, brand.Var[Tag, N]], term.ValueEq[Succ[brand.Var[Tag, N]], A], bool) {
	return s.pred, s.succEq, !s.isZero
}

// Zero returns the proof a = 0 when a is zero.
func (s SuccOrZero[Tag, N, A]) Zero() (term.ValueEq[A, Zero[N]], bool) {
	return s.zeroEq, s.isZero
}

func (s SuccOrZero[Tag, N, A]) IsZero() bool { return s.isZero }

// AsSuccOrZero splits an unsigned value into zero or the successor of a
// fresh predecessor named by b. Both proofs are grounded in a runtime
// equality check.
func AsSuccOrZero[Tag any, N UInt, A any](b brand.Brand[Tag], a Value[N, A]) SuccOrZero[Tag, N, A] {
	var out SuccOrZero[Tag, N, A]
	if eq, ok := IsZero(a).Left(); ok {
		out.zeroEq = eq
		out.isZero = true
		return out
	}
	var one N = 1
	out.pred = brand.New(b, a.Get()-one)
	eq, ok := term.Equal(SuccOf(out.pred), a).Left()
	if !ok {
		panic("peano: successor of predecessor differs from value")
	}
	out.succEq = eq
	return out
}

// NeZeroIsSucc names the predecessor of a value known to be non-zero.
func NeZeroIsSucc[Tag any, N UInt, A any](b brand.Brand[Tag], a Value[N, A], nz term.ValueNe[A, Zero[N]]) (Value[N, brand.Var[Tag, N]], term.ValueEq[Succ[brand.Var[Tag, N]], A]) {
	nz.Check()
	split := AsSuccOrZero(b, a)
	pred, eq, ok := split.Succ()
	if !ok {
		panic("peano: " + nz.String() + " contradicted by a zero value")
	}
	return pred, eq
}

// Sign is the branch taken by AsSuccOrPred.
type Sign int

const (
	Negative Sign = iota - 1
	ZeroSign
	Positive
)

// SuccOrPred is the three-way split of a signed value: a = S(p) for a
// positive value, a = 0, or a = P(s) for a negative value, where p and s
// are fresh names.
type SuccOrPred[Tag any, N Signed, A any] struct {
	sign   Sign
	fresh  Value[N, brand.Var[Tag, N]]
	succEq term.ValueEq[Succ[brand.Var[Tag, N]], A]
	predEq term.ValueEq[Pred[N, brand.Var[Tag, N]], A]
	zeroEq term.ValueEq[A, Zero[N]]
}

func (s SuccOrPred[Tag, N, A]) Sign() Sign { return s.sign }

// Succ returns p with S(p) = a when a > 0.
func (s SuccOrPred[Tag, N, A]) Succ() (Value[N, brand.Var[Tag, N]], term.ValueEq[Succ[brand.Var[Tag, N]], A], bool) {
	return s.fresh, s.succEq, s.sign == Positive
}

// Pred returns s with P(s) = a when a < 0.
func (s SuccOrPred[Tag, N, A]) Pred() (Value[N, brand.Var[Tag, N]], term.ValueEq[Pred[N, brand.Var[Tag, N]], A], bool) {
	return s.fresh, s.predEq, s.sign == Negative
}

func (s SuccOrPred[Tag, N, A]) Zero() (term.ValueEq[A, Zero[N]], bool) {
	return s.zeroEq, s.sign == ZeroSign
}

// AsSuccOrPred splits a signed value three ways. Neither branch can
// overflow: a positive a has a predecessor and a negative a has a successor.
func AsSuccOrPred[Tag any, N Signed, A any](b brand.Brand[Tag], a Value[N, A]) SuccOrPred[Tag, N, A] {
	var out SuccOrPred[Tag, N, A]
	var zero, one N = 0, 1
	v := a.Get()
	switch {
	case v == zero:
		eq, _ := IsZero(a).Left()
		out.zeroEq = eq
		out.sign = ZeroSign
	case v > zero:
		out.fresh = brand.New(b, v-one)
		eq, ok := term.Equal(SuccOf(out.fresh), a).Left()
		if !ok {
			panic("peano: successor of predecessor differs from value")
		}
		out.succEq = eq
		out.sign = Positive
	default:
		out.fresh = brand.New(b, v+one)
		eq, ok := term.Equal(PredOf(out.fresh), a).Left()
		if !ok {
			panic("peano: predecessor of successor differs from value")
		}
		out.predEq = eq
		out.sign = Negative
	}
	return out
}
