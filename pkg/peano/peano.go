// Package peano is the numeric term family: Zero, Succ, Add, Sub, Neg, Mul,
// Div and Rem over Go integer representations, their axioms, and the
// theorems derived from those axioms with the combinators of package rel.
//
// Terms are empty structs. Evaluators (SuccOf, AddOf, ...) compute the
// runtime value with checked arithmetic and tag it with the term. Overflow
// panics with *OverflowError unless the representation is one of the
// Wrapping or Saturating types.
package peano

import (
	"github.com/funvibe/deptypes/internal/prettyprinter"
	"github.com/funvibe/deptypes/pkg/term"
)

func init() {
	prettyprinter.RegisterSucc("peano.Succ")
	prettyprinter.RegisterInfix("peano.Add", "+")
	prettyprinter.RegisterInfix("peano.Sub", "-")
	prettyprinter.RegisterInfix("peano.Mul", "*")
	prettyprinter.RegisterInfix("peano.Div", "/")
	prettyprinter.RegisterInfix("peano.Rem", "%")
	prettyprinter.RegisterPrefix("peano.Neg", "-")
}

// UInt is the set of unsigned representations.
type UInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Signed is the set of signed representations.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Integer is every integer representation.
type Integer interface {
	UInt | Signed
}

type (
	// Succ is a + 1.
	Succ[A any] struct{}
	Add[A, B any] struct{}
	Sub[A, B any] struct{}
	// Neg is the additive inverse, 0 - a.
	Neg[A any] struct{}
	Mul[A, B any] struct{}
	// Div is truncated division.
	Div[A, B any] struct{}
	// Rem is the remainder of truncated division.
	Rem[A, B any] struct{}
)

// Zero is the zero value of N.
type Zero[N any] = term.Def[N]

type (
	One[N any]   = Succ[Zero[N]]
	Two[N any]   = Succ[One[N]]
	Three[N any] = Succ[Two[N]]
	Four[N any]  = Succ[Three[N]]
)

// Pred is a - 1.
type Pred[N, A any] = Sub[A, One[N]]

func (Succ[A]) ScopedTerm() bool   { return term.IsScoped[A]() }
func (Neg[A]) ScopedTerm() bool    { return term.IsScoped[A]() }
func (Add[A, B]) ScopedTerm() bool { return term.IsScoped[A]() || term.IsScoped[B]() }
func (Sub[A, B]) ScopedTerm() bool { return term.IsScoped[A]() || term.IsScoped[B]() }
func (Mul[A, B]) ScopedTerm() bool { return term.IsScoped[A]() || term.IsScoped[B]() }
func (Div[A, B]) ScopedTerm() bool { return term.IsScoped[A]() || term.IsScoped[B]() }
func (Rem[A, B]) ScopedTerm() bool { return term.IsScoped[A]() || term.IsScoped[B]() }
