package peano

import (
	"fmt"
	"reflect"

	"github.com/funvibe/deptypes/internal/prettyprinter"
	"github.com/funvibe/deptypes/pkg/term"
)

// numeral is implemented by Succ. depth counts the Succ layers down to the
// term whose type is zero.
type numeral interface {
	depth(zero reflect.Type) (uint64, bool)
}

func (Succ[A]) depth(zero reflect.Type) (uint64, bool) {
	return depthOf[A](zero)
}

func depthOf[A any](zero reflect.Type) (uint64, bool) {
	if reflect.TypeFor[A]() == zero {
		return 0, true
	}
	var a A
	n, ok := any(a).(numeral)
	if !ok {
		return 0, false
	}
	d, ok := n.depth(zero)
	return d + 1, ok
}

// Lit evaluates a numeral term: Zero[N] under any number of Succ, such as
// Three[N] or Succ[Four[N]]. The value is built one successor at a time, so
// N's overflow policy applies. Lit panics with *NumeralError for any other
// term.
func Lit[N Integer, A any]() Value[N, A] {
	d, ok := depthOf[A](reflect.TypeFor[Zero[N]]())
	if !ok {
		panic(&NumeralError{Term: prettyprinter.Term(reflect.TypeFor[A]()), Repr: reflect.TypeFor[N]().String()})
	}
	var v, one N = 0, 1
	for range d {
		v = add(v, one)
	}
	// A is S^d(0), which is what v counts.
	return term.Define[A](v)
}

// NumeralError is the panic value of Lit for a term that is not a numeral
// of the requested representation.
type NumeralError struct {
	Term string
	Repr string
}

func (e *NumeralError) Error() string {
	return fmt.Sprintf("peano: %s is not a numeral over %s", e.Term, e.Repr)
}
