package logic

import (
	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

// --- Negation ---

// NotTrue: !true = false.
func NotTrue() term.ValueEq[Not[True], False] {
	return TwoValued(NotNe[True](), rel.InvertNe(TrueNeFalse()))
}

// NotFalse: !false = true.
func NotFalse() term.ValueEq[Not[False], True] {
	return TwoValued(NotNe[False](), TrueNeFalse())
}

// NeTrueIsFalse: a != true => a = false.
func NeTrueIsFalse[A Bool](w term.ValueNe[A, True]) term.ValueEq[A, False] {
	return TwoValued(w, rel.InvertNe(TrueNeFalse()))
}

// NeFalseIsTrue: a != false => a = true.
func NeFalseIsTrue[A Bool](w term.ValueNe[A, False]) term.ValueEq[A, True] {
	return TwoValued(w, TrueNeFalse())
}

// NeIsEqNot: a != b => a = !b.
func NeIsEqNot[A, B Bool](w term.ValueNe[A, B]) term.ValueEq[A, Not[B]] {
	return TwoValued(w, NotNe[B]())
}

// NotNot: !!a = a.
func NotNot[A Bool]() term.ValueEq[Not[Not[A]], A] {
	return TwoValued(NotNe[Not[A]](), rel.InvertNe(NotNe[A]()))
}

// EqImpliesNotNe: a = b => !a != b.
func EqImpliesNotNe[A, B any](w term.ValueEq[A, B]) term.ValueNe[Not[A], B] {
	return rel.TransNe(NotNe[A](), w)
}

// NotEqImpliesNe: !a = b => a != b.
func NotEqImpliesNe[A, B any](w term.ValueEq[Not[A], B]) term.ValueNe[A, B] {
	return rel.TransNe(rel.InvertNe(NotNe[A]()), w)
}

// NotInj: !a = !b => a = b.
func NotInj[A, B Bool](w term.ValueEq[Not[A], Not[B]]) term.ValueEq[A, B] {
	return rel.Trans3(rel.Invert(NotNot[A]()), NotCong(w), NotNot[B]())
}

// --- Constants on the left ---

func FalseAnd[B any]() term.ValueEq[And[False, B], False] {
	return rel.Trans(AndComm[False, B](), AndFalse[B]())
}

func TrueAnd[B any]() term.ValueEq[And[True, B], B] {
	return rel.Trans(AndComm[True, B](), AndTrue[B]())
}

func FalseOr[B any]() term.ValueEq[Or[False, B], B] {
	return rel.Trans(OrComm[False, B](), OrFalse[B]())
}

func TrueOr[B any]() term.ValueEq[Or[True, B], True] {
	return rel.Trans(OrComm[True, B](), OrTrue[B]())
}

func FalseXor[B any]() term.ValueEq[Xor[False, B], B] {
	return rel.Trans(XorComm[False, B](), XorFalse[B]())
}

// TrueXor: true ^ b = !b.
func TrueXor[B any]() term.ValueEq[Xor[True, B], Not[B]] {
	return rel.Trans(XorComm[True, B](), XorTrue[B]())
}

// --- De Morgan ---

// NonContradiction: a & !a = false.
func NonContradiction[A Bool]() term.ValueEq[And[A, Not[A]], False] {
	// !(a & !a) = !a | !!a = !a | a = a | !a = true
	notAnd := rel.Trans4(
		DeMorganAnd[A, Not[A]](),
		OrCong(term.Refl[Not[A]](), NotNot[A]()),
		OrComm[Not[A], A](),
		ExcludedMiddle[A](),
	)
	return rel.Trans3(rel.Invert(NotNot[And[A, Not[A]]]()), NotCong(notAnd), NotTrue())
}

// NotAndFalse: !(a & false) = true.
func NotAndFalse[A any]() term.ValueEq[Not[And[A, False]], True] {
	return rel.Trans(NotCong(AndFalse[A]()), NotFalse())
}

// NotOrTrue: !(a | true) = false.
func NotOrTrue[A any]() term.ValueEq[Not[Or[A, True]], False] {
	return rel.Trans(NotCong(OrTrue[A]()), NotTrue())
}
