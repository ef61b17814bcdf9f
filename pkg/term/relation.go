package term

import (
	"reflect"

	"github.com/funvibe/deptypes/internal/prettyprinter"
	"github.com/funvibe/deptypes/pkg/rel"
)

func init() {
	prettyprinter.RegisterConst("term.Def", "0")
	prettyprinter.RegisterConst("term.Erased", "_")
}

// ValueCmp is the relation tag for equality and order of runtime values.
type ValueCmp struct{}

func (ValueCmp) Reflexive() {}

type (
	ValueEq[X, Y any]       = rel.Eq[ValueCmp, X, Y]
	ValueNe[X, Y any]       = rel.Ne[ValueCmp, X, Y]
	ValueLe[X, Y any]       = rel.Le[ValueCmp, X, Y]
	ValueLt[X, Y any]       = rel.Lt[ValueCmp, X, Y]
	ValueGe[X, Y any]       = rel.Ge[ValueCmp, X, Y]
	ValueGt[X, Y any]       = rel.Gt[ValueCmp, X, Y]
	ValueOrdering[X, Y any] = rel.Ordering[ValueCmp, X, Y]
)

// Refl proves X == X for values.
func Refl[X any]() ValueEq[X, X] {
	return rel.Refl[ValueCmp, X]()
}

// Coerce re-tags x with term B using a proof that A and B have equal values.
// A result tagged with an unscoped term no longer depends on any scope.
// It panics when w was proven for another representation than N, or in a
// different scope of a fresh name x mentions.
func Coerce[N, A, B any](x Value[N, A], w ValueEq[A, B]) Value[N, B] {
	x.check()
	leases := rel.Use(w, reflect.TypeFor[N](), x.leases)
	y := Value[N, B]{v: x.v, ok: true}
	if IsScoped[B]() {
		y.leases = leases
	}
	return y
}
