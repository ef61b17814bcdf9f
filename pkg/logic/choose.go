package logic

import (
	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

// Choice is the result of Choose: b = true or b = false, exactly one.
type Choice[B any] = rel.Or[term.ValueEq[B, True], term.ValueEq[B, False]]

// Choose splits a boolean value into the branch it takes, with the proof.
func Choose[B any](b Value[B]) Choice[B] {
	d := term.Equal(b, TrueValue)
	if eq, ok := d.Left(); ok {
		return rel.Left[term.ValueEq[B, True], term.ValueEq[B, False]](eq)
	}
	// b holds a bool that is not true.
	eq, ok := term.Equal(b, FalseValue).Left()
	if !ok {
		panic("logic: bool value is neither true nor false")
	}
	return rel.Right[term.ValueEq[B, True]](eq)
}

// If runs onTrue or onFalse depending on b, passing the matching proof.
func If[B, R any](b Value[B], onTrue func(term.ValueEq[B, True]) R, onFalse func(term.ValueEq[B, False]) R) R {
	c := Choose(b)
	if eq, ok := c.Left(); ok {
		return onTrue(eq)
	}
	eq, _ := c.Right()
	return onFalse(eq)
}
