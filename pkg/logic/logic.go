// Package logic is the boolean term family: True, False, Not, And, Or and
// Xor over bool, with their axioms, derived theorems and the runtime case
// split Choose.
package logic

import (
	"github.com/funvibe/deptypes/internal/prettyprinter"
	"github.com/funvibe/deptypes/pkg/term"
)

func init() {
	prettyprinter.RegisterConst("logic.True", "true")
	prettyprinter.RegisterConst("logic.False", "false")
	prettyprinter.RegisterPrefix("logic.Not", "!")
	prettyprinter.RegisterInfix("logic.And", "&")
	prettyprinter.RegisterInfix("logic.Or", "|")
	prettyprinter.RegisterInfix("logic.Xor", "^")
}

type (
	True  struct{}
	False struct{}

	Not[A any]    struct{}
	And[A, B any] struct{}
	Or[A, B any]  struct{}
	Xor[A, B any] struct{}
)

// Bool is satisfied by the terms that denote a bool: the terms of this
// package, fresh names of bool values and term.Def[bool].
type Bool = term.Repr[bool]

func (True) Repr() bool      { return false }
func (False) Repr() bool     { return false }
func (Not[A]) Repr() bool    { return false }
func (And[A, B]) Repr() bool { return false }
func (Or[A, B]) Repr() bool  { return false }
func (Xor[A, B]) Repr() bool { return false }

func (Not[A]) ScopedTerm() bool    { return term.IsScoped[A]() }
func (And[A, B]) ScopedTerm() bool { return term.IsScoped[A]() || term.IsScoped[B]() }
func (Or[A, B]) ScopedTerm() bool  { return term.IsScoped[A]() || term.IsScoped[B]() }
func (Xor[A, B]) ScopedTerm() bool { return term.IsScoped[A]() || term.IsScoped[B]() }

type Value[A any] = term.Value[bool, A]

var (
	TrueValue  = term.Define[True](true)
	FalseValue = term.Define[False](false)
)

func NotOf[A any](a Value[A]) Value[Not[A]] {
	return term.DefineFrom[Not[A]](!a.Get(), a)
}

func AndOf[A, B any](a Value[A], b Value[B]) Value[And[A, B]] {
	return term.DefineFrom[And[A, B]](a.Get() && b.Get(), a, b)
}

func OrOf[A, B any](a Value[A], b Value[B]) Value[Or[A, B]] {
	return term.DefineFrom[Or[A, B]](a.Get() || b.Get(), a, b)
}

func XorOf[A, B any](a Value[A], b Value[B]) Value[Xor[A, B]] {
	return term.DefineFrom[Xor[A, B]](a.Get() != b.Get(), a, b)
}
