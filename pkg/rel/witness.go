// Package rel implements relation witnesses: values whose type states a fact
// (T == U, T != U, T <= U, T < U) under a relation family R.
//
// Witnesses enter the system only through the functions in trusted.go.
// Everything else in this package derives new witnesses from existing ones.
// The Go zero value of a witness is not a proof: it carries no mint mark and
// every operation that consumes it panics with *UnmintedError.
//
// A witness also records what it depends on: the brand scopes of the fresh
// names it mentions, and the representation its axioms were checked for.
// Combining witnesses from different scopes of the same name, or proven for
// different representations, panics.
package rel

import (
	"reflect"

	"github.com/funvibe/deptypes/internal/prettyprinter"
)

// Eq witnesses that T and U are equal under relation R.
type Eq[R, T, U any] struct {
	_ [0]func() (R, T, U)
	proof
}

// Ne witnesses that T and U are not equal under relation R.
type Ne[R, T, U any] struct {
	_ [0]func() (R, T, U)
	proof
}

// Le witnesses T <= U under relation R.
type Le[R, T, U any] struct {
	_ [0]func() (R, T, U)
	proof
}

// Lt witnesses T < U under relation R.
type Lt[R, T, U any] struct {
	_ [0]func() (R, T, U)
	proof
}

// Ge witnesses T >= U. It is the same type as Le with the operands swapped.
type Ge[R, T, U any] = Le[R, U, T]

// Gt witnesses T > U.
type Gt[R, T, U any] = Lt[R, U, T]

// Reflexive is implemented by relation tags for which every term relates to
// itself. Refl and ReflLe are only available for such tags.
type Reflexive interface {
	Reflexive()
}

// Witness is the common behaviour of all relation witnesses.
type Witness interface {
	Premise
	Minted() bool
	Check()
	String() string
}

// proof is the runtime part of a witness.
type proof struct {
	minted bool
	leases Leases
	repr   reflect.Type
}

func (p proof) Minted() bool { return p.minted }

func (p proof) check(claim func() string) {
	if !p.minted {
		panic(newUnmintedError(claim()))
	}
	if err := p.leases.Valid(); err != nil {
		panic(err)
	}
}

// Check panics if w was not produced by a trusted constructor or a
// derivation, or if a scope it depends on has ended.
func (w Eq[R, T, U]) Check() { w.check(w.String) }
func (w Ne[R, T, U]) Check() { w.check(w.String) }
func (w Le[R, T, U]) Check() { w.check(w.String) }
func (w Lt[R, T, U]) Check() { w.check(w.String) }

func (w Eq[R, T, U]) premise() proof { w.Check(); return w.proof }
func (w Ne[R, T, U]) premise() proof { w.Check(); return w.proof }
func (w Le[R, T, U]) premise() proof { w.Check(); return w.proof }
func (w Lt[R, T, U]) premise() proof { w.Check(); return w.proof }

func (w Eq[R, T, U]) String() string { return render[T, U]("==") }
func (w Ne[R, T, U]) String() string { return render[T, U]("!=") }
func (w Le[R, T, U]) String() string { return render[T, U]("<=") }
func (w Lt[R, T, U]) String() string { return render[T, U]("<") }

func render[T, U any](op string) string {
	return prettyprinter.Relation(reflect.TypeFor[T](), op, reflect.TypeFor[U]())
}
