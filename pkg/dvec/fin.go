// Package dvec holds containers whose length is a term: Vec[T, L] and
// Slice[T, L] carry exactly L elements, and Fin[L] is an index proven to be
// below L. Length-changing operations compute the new length term with
// package peano and justify it with peano's theorems.
package dvec

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/funvibe/deptypes/internal/prettyprinter"
	"github.com/funvibe/deptypes/pkg/peano"
	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

// Len is the value of a length term.
type Len[L any] = term.Value[uint, L]

// Fin is an index i with i < L. The zero Fin is not an index: using it
// panics with *IndexError.
type Fin[L any] struct {
	i      uint
	ok     bool
	leases rel.Leases
}

var lenRepr = reflect.TypeFor[uint]()

// finOf is index i below a length that depends on ls.
func finOf[L any](i uint, ls rel.Leases) Fin[L] {
	f := Fin[L]{i: i, ok: true}
	if term.IsScoped[L]() {
		f.leases = ls
	}
	return f
}

// FinFrom returns i as a Fin[L] when i < n.
func FinFrom[L any](n Len[L], i uint) (Fin[L], bool) {
	if i < n.Get() {
		return finOf[L](i, n.Leases()), true
	}
	return Fin[L]{}, false
}

// FinFromLt turns a proof i < L into an index.
func FinFromLt[I, L any](i Len[I], lt term.ValueLt[I, L]) Fin[L] {
	v := i.Get()
	return finOf[L](v, rel.Use(lt, lenRepr, i.Leases()))
}

// FinRange yields 0, 1, ..., n-1.
func FinRange[L any](n Len[L]) iter.Seq[Fin[L]] {
	return func(yield func(Fin[L]) bool) {
		ls := n.Leases()
		for i := range n.Get() {
			if !yield(finOf[L](i, ls)) {
				return
			}
		}
	}
}

func (f Fin[L]) Index() uint {
	f.check()
	return f.i
}

func (f Fin[L]) check() {
	if !f.ok {
		panic(&IndexError{Bound: prettyprinter.Term(reflect.TypeFor[L]())})
	}
	if err := f.leases.Valid(); err != nil {
		panic(err)
	}
}

// within returns the position of f in a container of length n.
func (f Fin[L]) within(n Len[L]) uint {
	f.check()
	if len(f.leases) > 0 {
		n.Leases().With(f.leases...)
	}
	return f.i
}

func (f Fin[L]) String() string {
	if !f.ok {
		return "<undefined> < " + prettyprinter.Term(reflect.TypeFor[L]())
	}
	return fmt.Sprintf("%d < %s", f.i, prettyprinter.Term(reflect.TypeFor[L]()))
}

// ReindexFin moves f to an equal bound.
func ReindexFin[A, B any](f Fin[A], w term.ValueEq[A, B]) Fin[B] {
	f.check()
	return finOf[B](f.i, rel.Use(w, lenRepr, f.leases))
}

// WidenFin moves f to a bound at least as large.
func WidenFin[A, B any](f Fin[A], w term.ValueLe[A, B]) Fin[B] {
	f.check()
	return finOf[B](f.i, rel.Use(w, lenRepr, f.leases))
}

// Last is the largest index of a non-empty length.
func Last[L any](n Len[peano.Succ[L]]) Fin[peano.Succ[L]] {
	return finOf[peano.Succ[L]](n.Get()-1, n.Leases())
}

// AddFin adds indices: i < A and j < B give i + j < A + B.
func AddFin[A, B any](i Fin[A], j Fin[B]) Fin[peano.Add[A, B]] {
	i.check()
	j.check()
	return finOf[peano.Add[A, B]](i.i+j.i, i.leases.With(j.leases...))
}

// IndexError is the panic value raised when a zero Fin is used.
type IndexError struct {
	Bound string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dvec: index below %s used without being made", e.Bound)
}
