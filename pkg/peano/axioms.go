package peano

import (
	"fmt"
	"reflect"

	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

// Axioms of the numeric family. Every function here calls a trusted
// constructor of package rel; each is justified in its comment and checked
// against runtime evaluation by the audit ledger (internal/audit).
//
// Representations limit which axioms are sound. Equational axioms hold for
// exact (checked) arithmetic and for arithmetic modulo 2^bits, so they accept
// Checked and Wrapping representations. Order axioms fail once values wrap
// around, so they accept Checked only. No axiom accepts Saturating.
//
// Each axiom records N as the representation it was stated for. Combining it
// with witnesses decided on values of another representation, or coercing
// such a value with it, panics with *rel.ReprError.

// AxiomError is the panic value raised when an axiom is requested for a
// representation whose arithmetic does not satisfy it.
type AxiomError struct {
	Axiom  string
	Repr   string
	Policy Policy
}

func (e *AxiomError) Error() string {
	return fmt.Sprintf("axiom %s does not hold for %s arithmetic on %s", e.Axiom, e.Policy, e.Repr)
}

func requireRing[N Integer](axiom string) {
	if p := PolicyOf[N](); p == Saturating {
		panic(&AxiomError{Axiom: axiom, Repr: reflect.TypeFor[N]().String(), Policy: p})
	}
}

func requireOrder[N Integer](axiom string) {
	if p := PolicyOf[N](); p != Checked {
		panic(&AxiomError{Axiom: axiom, Repr: reflect.TypeFor[N]().String(), Policy: p})
	}
}

// --- Congruence ---
// Every term constructor is a function of its arguments' values.

func SuccCong[A, B any](w term.ValueEq[A, B]) term.ValueEq[Succ[A], Succ[B]] {
	return rel.AxiomEq[term.ValueCmp, Succ[A], Succ[B]](w)
}

func NegCong[A, B any](w term.ValueEq[A, B]) term.ValueEq[Neg[A], Neg[B]] {
	return rel.AxiomEq[term.ValueCmp, Neg[A], Neg[B]](w)
}

func AddCong[A, B, C, D any](ab term.ValueEq[A, B], cd term.ValueEq[C, D]) term.ValueEq[Add[A, C], Add[B, D]] {
	return rel.AxiomEq[term.ValueCmp, Add[A, C], Add[B, D]](ab, cd)
}

func SubCong[A, B, C, D any](ab term.ValueEq[A, B], cd term.ValueEq[C, D]) term.ValueEq[Sub[A, C], Sub[B, D]] {
	return rel.AxiomEq[term.ValueCmp, Sub[A, C], Sub[B, D]](ab, cd)
}

func MulCong[A, B, C, D any](ab term.ValueEq[A, B], cd term.ValueEq[C, D]) term.ValueEq[Mul[A, C], Mul[B, D]] {
	return rel.AxiomEq[term.ValueCmp, Mul[A, C], Mul[B, D]](ab, cd)
}

func DivCong[A, B, C, D any](ab term.ValueEq[A, B], cd term.ValueEq[C, D]) term.ValueEq[Div[A, C], Div[B, D]] {
	return rel.AxiomEq[term.ValueCmp, Div[A, C], Div[B, D]](ab, cd)
}

func RemCong[A, B, C, D any](ab term.ValueEq[A, B], cd term.ValueEq[C, D]) term.ValueEq[Rem[A, C], Rem[B, D]] {
	return rel.AxiomEq[term.ValueCmp, Rem[A, C], Rem[B, D]](ab, cd)
}

// --- Addition and subtraction ---

// AddZero: a + 0 = a.
func AddZero[N Integer, A any]() term.ValueEq[Add[A, Zero[N]], A] {
	requireRing[N]("a + 0 = a")
	return rel.AxiomEq[term.ValueCmp, Add[A, Zero[N]], A](rel.Repr[N]())
}

// AddSucc: a + S(b) = S(a + b).
func AddSucc[N Integer, A, B any]() term.ValueEq[Add[A, Succ[B]], Succ[Add[A, B]]] {
	requireRing[N]("a + S(b) = S(a + b)")
	return rel.AxiomEq[term.ValueCmp, Add[A, Succ[B]], Succ[Add[A, B]]](rel.Repr[N]())
}

// SubAdd: (a - b) + b = a. When a - b is representable, adding b back is exact.
func SubAdd[N Integer, A, B any]() term.ValueEq[Add[Sub[A, B], B], A] {
	requireRing[N]("(a - b) + b = a")
	return rel.AxiomEq[term.ValueCmp, Add[Sub[A, B], B], A](rel.Repr[N]())
}

// AddSub: (a + b) - b = a.
func AddSub[N Integer, A, B any]() term.ValueEq[Sub[Add[A, B], B], A] {
	requireRing[N]("(a + b) - b = a")
	return rel.AxiomEq[term.ValueCmp, Sub[Add[A, B], B], A](rel.Repr[N]())
}

// NegSub: -a = 0 - a. This is how NegOf evaluates.
func NegSub[N Integer, A any]() term.ValueEq[Neg[A], Sub[Zero[N], A]] {
	requireRing[N]("-a = 0 - a")
	return rel.AxiomEq[term.ValueCmp, Neg[A], Sub[Zero[N], A]](rel.Repr[N]())
}

// AddComm: a + b = b + a.
func AddComm[N Integer, A, B any]() term.ValueEq[Add[A, B], Add[B, A]] {
	requireRing[N]("a + b = b + a")
	return rel.AxiomEq[term.ValueCmp, Add[A, B], Add[B, A]](rel.Repr[N]())
}

// AddAssoc: a + (b + c) = (a + b) + c.
func AddAssoc[N Integer, A, B, C any]() term.ValueEq[Add[A, Add[B, C]], Add[Add[A, B], C]] {
	requireRing[N]("a + (b + c) = (a + b) + c")
	return rel.AxiomEq[term.ValueCmp, Add[A, Add[B, C]], Add[Add[A, B], C]](rel.Repr[N]())
}

// SuccInj: S(a) = S(b) implies a = b. Adding one is injective in both exact
// and modular arithmetic.
func SuccInj[N Integer, A, B any](w term.ValueEq[Succ[A], Succ[B]]) term.ValueEq[A, B] {
	requireRing[N]("S(a) = S(b) => a = b")
	return rel.AxiomEq[term.ValueCmp, A, B](rel.Repr[N](), w)
}

// --- Multiplication and division ---

// MulZero: a * 0 = 0.
func MulZero[N Integer, A any]() term.ValueEq[Mul[A, Zero[N]], Zero[N]] {
	requireRing[N]("a * 0 = 0")
	return rel.AxiomEq[term.ValueCmp, Mul[A, Zero[N]], Zero[N]](rel.Repr[N]())
}

// MulSucc: a * S(b) = a * b + a.
func MulSucc[N Integer, A, B any]() term.ValueEq[Mul[A, Succ[B]], Add[Mul[A, B], A]] {
	requireRing[N]("a * S(b) = a * b + a")
	return rel.AxiomEq[term.ValueCmp, Mul[A, Succ[B]], Add[Mul[A, B], A]](rel.Repr[N]())
}

// MulComm: a * b = b * a.
func MulComm[N Integer, A, B any]() term.ValueEq[Mul[A, B], Mul[B, A]] {
	requireRing[N]("a * b = b * a")
	return rel.AxiomEq[term.ValueCmp, Mul[A, B], Mul[B, A]](rel.Repr[N]())
}

// DivRem: (a / b) * b + a % b = a for b != 0. Go's / truncates and % takes
// the sign of the dividend, which is exactly this identity.
func DivRem[N Integer, A, B any](nz term.ValueNe[B, Zero[N]]) term.ValueEq[Add[Mul[Div[A, B], B], Rem[A, B]], A] {
	requireRing[N]("(a / b) * b + a % b = a")
	return rel.AxiomEq[term.ValueCmp, Add[Mul[Div[A, B], B], Rem[A, B]], A](rel.Repr[N](), nz)
}

// --- Order ---

// LtSucc: a < S(a). S(a) exists only when a + 1 did not overflow.
func LtSucc[N Integer, A any]() term.ValueLt[A, Succ[A]] {
	requireOrder[N]("a < S(a)")
	return rel.AxiomLt[term.ValueCmp, A, Succ[A]](rel.Repr[N]())
}

// NonNeg: 0 <= a for unsigned representations, whatever their policy.
func NonNeg[N UInt, A any]() term.ValueLe[Zero[N], A] {
	return rel.AxiomLe[term.ValueCmp, Zero[N], A](rel.Repr[N]())
}

// AddLe: a <= b and c <= d imply a + c <= b + d.
func AddLe[N Integer, A, B, C, D any](ab term.ValueLe[A, B], cd term.ValueLe[C, D]) term.ValueLe[Add[A, C], Add[B, D]] {
	requireOrder[N]("a <= b, c <= d => a + c <= b + d")
	return rel.AxiomLe[term.ValueCmp, Add[A, C], Add[B, D]](rel.Repr[N](), ab, cd)
}
