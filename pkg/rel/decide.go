package rel

import "fmt"

type orderKind int8

const (
	orderLess orderKind = iota - 1
	orderEqual
	orderGreater
)

// Ordering holds exactly one of T < U, T == U, T > U.
type Ordering[R, T, U any] struct {
	kind orderKind
	proof
}

func (o Ordering[R, T, U]) premise() proof {
	o.check(func() string { return render[T, U]("<=>") })
	return o.proof
}

// Compare returns -1, 0 or +1.
func (o Ordering[R, T, U]) Compare() int {
	o.premise()
	return int(o.kind)
}

// Lt returns the T < U witness when that is the case.
func (o Ordering[R, T, U]) Lt() (Lt[R, T, U], bool) {
	if o.premise(); o.kind != orderLess {
		return Lt[R, T, U]{}, false
	}
	return mintLt[R, T, U](o), true
}

// Eq returns the T == U witness when that is the case.
func (o Ordering[R, T, U]) Eq() (Eq[R, T, U], bool) {
	if o.premise(); o.kind != orderEqual {
		return Eq[R, T, U]{}, false
	}
	return mintEq[R, T, U](o), true
}

// Gt returns the T > U witness when that is the case.
func (o Ordering[R, T, U]) Gt() (Gt[R, T, U], bool) {
	if o.premise(); o.kind != orderGreater {
		return Gt[R, T, U]{}, false
	}
	return mintLt[R, U, T](o), true
}

// Reverse views the same comparison from the other side.
func (o Ordering[R, T, U]) Reverse() Ordering[R, U, T] {
	return Ordering[R, U, T]{kind: -o.kind, proof: derive[U, T]([]Premise{o})}
}

func (o Ordering[R, T, U]) String() string {
	switch {
	case !o.minted:
		return render[T, U]("<=>")
	case o.kind == orderLess:
		return render[T, U]("<")
	case o.kind == orderGreater:
		return render[T, U](">")
	default:
		return render[T, U]("==")
	}
}

// OrderingOfLt packages an existing T < U witness.
func OrderingOfLt[R, T, U any](w Lt[R, T, U]) Ordering[R, T, U] {
	return Ordering[R, T, U]{kind: orderLess, proof: derive[T, U]([]Premise{w})}
}

func OrderingOfEq[R, T, U any](w Eq[R, T, U]) Ordering[R, T, U] {
	return Ordering[R, T, U]{kind: orderEqual, proof: derive[T, U]([]Premise{w})}
}

func OrderingOfGt[R, T, U any](w Gt[R, T, U]) Ordering[R, T, U] {
	return Ordering[R, T, U]{kind: orderGreater, proof: derive[T, U]([]Premise{w})}
}

// Or holds exactly one of two witnesses. It is the result type of every
// runtime decision (equal or not, zero or successor, true or false).
type Or[P, Q Witness] struct {
	left   P
	right  Q
	isLeft bool
}

func Left[P, Q Witness](p P) Or[P, Q] {
	p.Check()
	return Or[P, Q]{left: p, isLeft: true}
}

func Right[P, Q Witness](q Q) Or[P, Q] {
	q.Check()
	return Or[P, Q]{right: q}
}

func (o Or[P, Q]) IsLeft() bool { return o.isLeft }

func (o Or[P, Q]) Left() (P, bool) {
	return o.left, o.isLeft
}

func (o Or[P, Q]) Right() (Q, bool) {
	return o.right, !o.isLeft
}

// Match calls exactly one of the two functions.
func (o Or[P, Q]) Match(onLeft func(P), onRight func(Q)) {
	if o.isLeft {
		onLeft(o.left)
	} else {
		onRight(o.right)
	}
}

func (o Or[P, Q]) String() string {
	if o.isLeft {
		return fmt.Sprintf("Left(%s)", o.left.String())
	}
	return fmt.Sprintf("Right(%s)", o.right.String())
}
