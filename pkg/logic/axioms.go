package logic

import (
	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

// Axioms of the boolean family, stated for bool values. Two-valuedness holds
// only for terms that denote a bool, so TwoValued requires Bool terms.

// --- Congruence ---

func NotCong[A, B any](w term.ValueEq[A, B]) term.ValueEq[Not[A], Not[B]] {
	return rel.AxiomEq[term.ValueCmp, Not[A], Not[B]](rel.Repr[bool](), w)
}

func AndCong[A, B, C, D any](ab term.ValueEq[A, B], cd term.ValueEq[C, D]) term.ValueEq[And[A, C], And[B, D]] {
	return rel.AxiomEq[term.ValueCmp, And[A, C], And[B, D]](rel.Repr[bool](), ab, cd)
}

func OrCong[A, B, C, D any](ab term.ValueEq[A, B], cd term.ValueEq[C, D]) term.ValueEq[Or[A, C], Or[B, D]] {
	return rel.AxiomEq[term.ValueCmp, Or[A, C], Or[B, D]](rel.Repr[bool](), ab, cd)
}

func XorCong[A, B, C, D any](ab term.ValueEq[A, B], cd term.ValueEq[C, D]) term.ValueEq[Xor[A, C], Xor[B, D]] {
	return rel.AxiomEq[term.ValueCmp, Xor[A, C], Xor[B, D]](rel.Repr[bool](), ab, cd)
}

// --- Constants ---

// TrueNeFalse: true != false.
func TrueNeFalse() term.ValueNe[True, False] {
	return rel.AxiomNe[term.ValueCmp, True, False](rel.Repr[bool]())
}

// TwoValued: a != c and b != c imply a = b. With only two values, both a
// and b must be the one that c is not.
func TwoValued[A, B, C Bool](ac term.ValueNe[A, C], bc term.ValueNe[B, C]) term.ValueEq[A, B] {
	return rel.AxiomEq[term.ValueCmp, A, B](rel.Repr[bool](), ac, bc)
}

// NotNe: !a != a.
func NotNe[A any]() term.ValueNe[Not[A], A] {
	return rel.AxiomNe[term.ValueCmp, Not[A], A](rel.Repr[bool]())
}

// --- And ---

// AndTrue: a & true = a.
func AndTrue[A any]() term.ValueEq[And[A, True], A] {
	return rel.AxiomEq[term.ValueCmp, And[A, True], A](rel.Repr[bool]())
}

// AndFalse: a & false = false.
func AndFalse[A any]() term.ValueEq[And[A, False], False] {
	return rel.AxiomEq[term.ValueCmp, And[A, False], False](rel.Repr[bool]())
}

func AndComm[A, B any]() term.ValueEq[And[A, B], And[B, A]] {
	return rel.AxiomEq[term.ValueCmp, And[A, B], And[B, A]](rel.Repr[bool]())
}

func AndIdem[A any]() term.ValueEq[And[A, A], A] {
	return rel.AxiomEq[term.ValueCmp, And[A, A], A](rel.Repr[bool]())
}

// AndAbsorb: a & (a | b) = a.
func AndAbsorb[A, B any]() term.ValueEq[And[A, Or[A, B]], A] {
	return rel.AxiomEq[term.ValueCmp, And[A, Or[A, B]], A](rel.Repr[bool]())
}

// --- Or ---

// OrFalse: a | false = a.
func OrFalse[A any]() term.ValueEq[Or[A, False], A] {
	return rel.AxiomEq[term.ValueCmp, Or[A, False], A](rel.Repr[bool]())
}

// OrTrue: a | true = true.
func OrTrue[A any]() term.ValueEq[Or[A, True], True] {
	return rel.AxiomEq[term.ValueCmp, Or[A, True], True](rel.Repr[bool]())
}

func OrComm[A, B any]() term.ValueEq[Or[A, B], Or[B, A]] {
	return rel.AxiomEq[term.ValueCmp, Or[A, B], Or[B, A]](rel.Repr[bool]())
}

func OrIdem[A any]() term.ValueEq[Or[A, A], A] {
	return rel.AxiomEq[term.ValueCmp, Or[A, A], A](rel.Repr[bool]())
}

// OrAbsorb: a | (a & b) = a.
func OrAbsorb[A, B any]() term.ValueEq[Or[A, And[A, B]], A] {
	return rel.AxiomEq[term.ValueCmp, Or[A, And[A, B]], A](rel.Repr[bool]())
}

// ExcludedMiddle: a | !a = true.
func ExcludedMiddle[A any]() term.ValueEq[Or[A, Not[A]], True] {
	return rel.AxiomEq[term.ValueCmp, Or[A, Not[A]], True](rel.Repr[bool]())
}

// DeMorganAnd: !(a & b) = !a | !b.
func DeMorganAnd[A, B any]() term.ValueEq[Not[And[A, B]], Or[Not[A], Not[B]]] {
	return rel.AxiomEq[term.ValueCmp, Not[And[A, B]], Or[Not[A], Not[B]]](rel.Repr[bool]())
}

// DeMorganOr: !(a | b) = !a & !b.
func DeMorganOr[A, B any]() term.ValueEq[Not[Or[A, B]], And[Not[A], Not[B]]] {
	return rel.AxiomEq[term.ValueCmp, Not[Or[A, B]], And[Not[A], Not[B]]](rel.Repr[bool]())
}

// --- Xor ---

// XorFalse: a ^ false = a.
func XorFalse[A any]() term.ValueEq[Xor[A, False], A] {
	return rel.AxiomEq[term.ValueCmp, Xor[A, False], A](rel.Repr[bool]())
}

// XorTrue: a ^ true = !a.
func XorTrue[A any]() term.ValueEq[Xor[A, True], Not[A]] {
	return rel.AxiomEq[term.ValueCmp, Xor[A, True], Not[A]](rel.Repr[bool]())
}

func XorComm[A, B any]() term.ValueEq[Xor[A, B], Xor[B, A]] {
	return rel.AxiomEq[term.ValueCmp, Xor[A, B], Xor[B, A]](rel.Repr[bool]())
}

// XorSelf: a ^ a = false.
func XorSelf[A any]() term.ValueEq[Xor[A, A], False] {
	return rel.AxiomEq[term.ValueCmp, Xor[A, A], False](rel.Repr[bool]())
}
