package peano

import (
	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

// Theorems derived from axioms.go. Nothing in this file mints a witness.

// --- Addition ---

// ZeroAdd: 0 + a = a.
func ZeroAdd[N Integer, A any]() term.ValueEq[Add[Zero[N], A], A] {
	return rel.Trans(AddComm[N, Zero[N], A](), AddZero[N, A]())
}

// SuccIsAddOne: S(a) = a + 1.
func SuccIsAddOne[N Integer, A any]() term.ValueEq[Succ[A], Add[A, One[N]]] {
	// a + S(0) = S(a + 0) = S(a)
	return rel.Invert(rel.Trans(AddSucc[N, A, Zero[N]](), SuccCong(AddZero[N, A]())))
}

// SuccAdd: S(a) + b = S(a + b).
func SuccAdd[N Integer, A, B any]() term.ValueEq[Add[Succ[A], B], Succ[Add[A, B]]] {
	return rel.Trans3(
		AddComm[N, Succ[A], B](),
		AddSucc[N, B, A](),
		SuccCong(AddComm[N, B, A]()),
	)
}

// SuccAddShift: S(a) + b = a + S(b).
func SuccAddShift[N Integer, A, B any]() term.ValueEq[Add[Succ[A], B], Add[A, Succ[B]]] {
	return rel.Trans(SuccAdd[N, A, B](), rel.Invert(AddSucc[N, A, B]()))
}

// AddSubAssoc: (a + b) - c = a + (b - c).
func AddSubAssoc[N Integer, A, B, C any]() term.ValueEq[Sub[Add[A, B], C], Add[A, Sub[B, C]]] {
	// x := a + (b - c); x = (x + c) - c and x + c = a + ((b - c) + c) = a + b
	xc := rel.Trans(
		rel.Invert(AddAssoc[N, A, Sub[B, C], C]()),
		AddCong(term.Refl[A](), SubAdd[N, B, C]()),
	)
	x := rel.Trans(
		rel.Invert(AddSub[N, Add[A, Sub[B, C]], C]()),
		SubCong(xc, term.Refl[C]()),
	)
	return rel.Invert(x)
}

// AddSubComm: (a + b) - c = (a - c) + b.
func AddSubComm[N Integer, A, B, C any]() term.ValueEq[Sub[Add[A, B], C], Add[Sub[A, C], B]] {
	return rel.Trans3(
		SubCong(AddComm[N, A, B](), term.Refl[C]()),
		AddSubAssoc[N, B, A, C](),
		AddComm[N, B, Sub[A, C]](),
	)
}

// --- Subtraction ---

// SubSubAssoc: a - (b - c) = (a - b) + c.
func SubSubAssoc[N Integer, A, B, C any]() term.ValueEq[Sub[A, Sub[B, C]], Add[Sub[A, B], C]] {
	// y := (a - b) + c; y + (b - c) = (a - b) + (c + (b - c)) = (a - b) + b = a
	yPlus := rel.Trans3(
		rel.Invert(AddAssoc[N, Sub[A, B], C, Sub[B, C]]()),
		AddCong(term.Refl[Sub[A, B]](), rel.Trans(AddComm[N, C, Sub[B, C]](), SubAdd[N, B, C]())),
		SubAdd[N, A, B](),
	)
	y := rel.Trans(
		rel.Invert(AddSub[N, Add[Sub[A, B], C], Sub[B, C]]()),
		SubCong(yPlus, term.Refl[Sub[B, C]]()),
	)
	return rel.Invert(y)
}

// SubSubSwap: a - (b - c) = a + (c - b).
func SubSubSwap[N Integer, A, B, C any]() term.ValueEq[Sub[A, Sub[B, C]], Add[A, Sub[C, B]]] {
	return rel.Trans3(
		SubSubAssoc[N, A, B, C](),
		rel.Invert(AddSubComm[N, A, C, B]()),
		AddSubAssoc[N, A, C, B](),
	)
}

// SubSelf: a - a = 0.
func SubSelf[N Integer, A any]() term.ValueEq[Sub[A, A], Zero[N]] {
	return rel.Trans(
		SubCong(rel.Invert(ZeroAdd[N, A]()), term.Refl[A]()),
		AddSub[N, Zero[N], A](),
	)
}

// SubZero: a - 0 = a.
func SubZero[N Integer, A any]() term.ValueEq[Sub[A, Zero[N]], A] {
	return rel.Trans(
		SubCong(rel.Invert(AddZero[N, A]()), term.Refl[Zero[N]]()),
		AddSub[N, A, Zero[N]](),
	)
}

// SuccSubSucc: S(a) - S(b) = a - b.
func SuccSubSucc[N Integer, A, B any]() term.ValueEq[Sub[Succ[A], Succ[B]], Sub[A, B]] {
	// S(a) = S((a - b) + b) = (a - b) + S(b)
	sa := rel.Trans(
		SuccCong(rel.Invert(SubAdd[N, A, B]())),
		rel.Invert(AddSucc[N, Sub[A, B], B]()),
	)
	return rel.Trans(
		SubCong(sa, term.Refl[Succ[B]]()),
		AddSub[N, Sub[A, B], Succ[B]](),
	)
}

// SuccSub: S(a) - b = S(a - b).
func SuccSub[N Integer, A, B any]() term.ValueEq[Sub[Succ[A], B], Succ[Sub[A, B]]] {
	return rel.Trans3(
		SubCong(SuccIsAddOne[N, A](), term.Refl[B]()),
		AddSubComm[N, A, One[N], B](),
		rel.Invert(SuccIsAddOne[N, Sub[A, B]]()),
	)
}

// SuccSubOne: S(a) - 1 = a.
func SuccSubOne[N Integer, A any]() term.ValueEq[Sub[Succ[A], One[N]], A] {
	return rel.Trans(SuccSubSucc[N, A, Zero[N]](), SubZero[N, A]())
}

// SuccOfSubSucc: S(a - S(b)) = a - b.
func SuccOfSubSucc[N Integer, A, B any]() term.ValueEq[Succ[Sub[A, Succ[B]]], Sub[A, B]] {
	return rel.Trans(
		rel.Invert(SuccSub[N, A, Succ[B]]()),
		SuccSubSucc[N, A, B](),
	)
}

// SuccPred: S(a - 1) = a.
func SuccPred[N Integer, A any]() term.ValueEq[Succ[Pred[N, A]], A] {
	return rel.Trans(SuccOfSubSucc[N, A, Zero[N]](), SubZero[N, A]())
}

// SubSubSelf: a - (a - b) = b.
func SubSubSelf[N Integer, A, B any]() term.ValueEq[Sub[A, Sub[A, B]], B] {
	return rel.Trans3(
		SubSubAssoc[N, A, A, B](),
		AddCong(SubSelf[N, A](), term.Refl[B]()),
		ZeroAdd[N, B](),
	)
}

// --- Negation ---

// NegNeg: -(-a) = a.
func NegNeg[N Integer, A any]() term.ValueEq[Neg[Neg[A]], A] {
	return rel.Trans5(
		NegSub[N, Neg[A]](),
		SubCong(term.Refl[Zero[N]](), NegSub[N, A]()),
		SubSubAssoc[N, Zero[N], Zero[N], A](),
		AddCong(SubSelf[N, Zero[N]](), term.Refl[A]()),
		ZeroAdd[N, A](),
	)
}

// AddNeg: a + -b = a - b.
func AddNeg[N Integer, A, B any]() term.ValueEq[Add[A, Neg[B]], Sub[A, B]] {
	return rel.Trans3(
		AddCong(term.Refl[A](), NegSub[N, B]()),
		rel.Invert(AddSubAssoc[N, A, Zero[N], B]()),
		SubCong(AddZero[N, A](), term.Refl[B]()),
	)
}

// NegAdd: -(a + b) = -a - b.
func NegAdd[N Integer, A, B any]() term.ValueEq[Neg[Add[A, B]], Sub[Neg[A], B]] {
	// a + b = a - (0 - b)
	sum := rel.Trans(
		SubSubAssoc[N, A, Zero[N], B](),
		AddCong(SubZero[N, A](), term.Refl[B]()),
	)
	chain := rel.Trans5(
		NegSub[N, Add[A, B]](),
		SubCong(term.Refl[Zero[N]](), rel.Invert(sum)),
		SubSubAssoc[N, Zero[N], A, Sub[Zero[N], B]](),
		rel.Invert(AddSubAssoc[N, Sub[Zero[N], A], Zero[N], B]()),
		SubCong(AddZero[N, Sub[Zero[N], A]](), term.Refl[B]()),
	)
	return rel.Trans(chain, SubCong(rel.Invert(NegSub[N, A]()), term.Refl[B]()))
}

// NegSubSwap: -(a - b) = b - a.
func NegSubSwap[N Integer, A, B any]() term.ValueEq[Neg[Sub[A, B]], Sub[B, A]] {
	return rel.Trans5(
		NegSub[N, Sub[A, B]](),
		SubSubAssoc[N, Zero[N], A, B](),
		AddComm[N, Sub[Zero[N], A], B](),
		rel.Invert(AddSubAssoc[N, B, Zero[N], A]()),
		SubCong(AddZero[N, B](), term.Refl[A]()),
	)
}

// NegZero: -0 = 0.
func NegZero[N Integer]() term.ValueEq[Neg[Zero[N]], Zero[N]] {
	return rel.Trans(NegSub[N, Zero[N]](), SubSelf[N, Zero[N]]())
}

// NegSucc: -S(a) = P(-a).
func NegSucc[N Integer, A any]() term.ValueEq[Neg[Succ[A]], Pred[N, Neg[A]]] {
	return rel.Trans(NegCong(SuccIsAddOne[N, A]()), NegAdd[N, A, One[N]]())
}

// NegInj: -a = -b implies a = b.
func NegInj[N Integer, A, B any](w term.ValueEq[Neg[A], Neg[B]]) term.ValueEq[A, B] {
	return rel.Trans3(rel.Invert(NegNeg[N, A]()), NegCong(w), NegNeg[N, B]())
}

// --- Cancellation ---

// AddCancelRight: a + c = b + d and c = d imply a = b.
func AddCancelRight[N Integer, A, B, C, D any](sum term.ValueEq[Add[A, C], Add[B, D]], cd term.ValueEq[C, D]) term.ValueEq[A, B] {
	return rel.Trans3(
		rel.Invert(AddSub[N, A, C]()),
		SubCong(sum, cd),
		AddSub[N, B, D](),
	)
}

// AddCancelLeft: c + a = d + b and c = d imply a = b.
func AddCancelLeft[N Integer, A, B, C, D any](sum term.ValueEq[Add[C, A], Add[D, B]], cd term.ValueEq[C, D]) term.ValueEq[A, B] {
	swapped := rel.Trans3(AddComm[N, A, C](), sum, AddComm[N, D, B]())
	return AddCancelRight[N](swapped, cd)
}

// SubCancelRight: a - c = b - d and c = d imply a = b.
func SubCancelRight[N Integer, A, B, C, D any](diff term.ValueEq[Sub[A, C], Sub[B, D]], cd term.ValueEq[C, D]) term.ValueEq[A, B] {
	return rel.Trans3(
		rel.Invert(SubAdd[N, A, C]()),
		AddCong(diff, cd),
		SubAdd[N, B, D](),
	)
}

// SubCancelLeft: c - a = d - b and c = d imply a = b.
func SubCancelLeft[N Integer, A, B, C, D any](diff term.ValueEq[Sub[C, A], Sub[D, B]], cd term.ValueEq[C, D]) term.ValueEq[A, B] {
	return rel.Trans3(
		rel.Invert(SubSubSelf[N, C, A]()),
		SubCong(cd, diff),
		SubSubSelf[N, D, B](),
	)
}

// --- Multiplication ---

// ZeroMul: 0 * a = 0.
func ZeroMul[N Integer, A any]() term.ValueEq[Mul[Zero[N], A], Zero[N]] {
	return rel.Trans(MulComm[N, Zero[N], A](), MulZero[N, A]())
}

// MulOne: a * 1 = a.
func MulOne[N Integer, A any]() term.ValueEq[Mul[A, One[N]], A] {
	return rel.Trans3(
		MulSucc[N, A, Zero[N]](),
		AddCong(MulZero[N, A](), term.Refl[A]()),
		ZeroAdd[N, A](),
	)
}

// --- Order ---

// LeSucc: a <= S(a).
func LeSucc[N Integer, A any]() term.ValueLe[A, Succ[A]] {
	return rel.LtLe(LtSucc[N, A]())
}

// SuccNe: S(a) != a.
func SuccNe[N Integer, A any]() term.ValueNe[Succ[A], A] {
	return rel.InvertNe(rel.LtNe(LtSucc[N, A]()))
}

// LeAdd: a <= a + b for unsigned representations.
func LeAdd[N UInt, A, B any]() term.ValueLe[A, Add[A, B]] {
	return rel.EqLeTrans(
		rel.Invert(AddZero[N, A]()),
		AddLe[N](rel.ReflLe[term.ValueCmp, A](), NonNeg[N, B]()),
	)
}
