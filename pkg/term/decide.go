package term

import (
	"cmp"
	"math"
	"reflect"

	"github.com/funvibe/deptypes/pkg/rel"
)

// Equal compares two values at run time and mints the matching witness.
// A float NaN compares equal to NaN, consistent with cmp.Compare.
func Equal[N comparable, A, B any](a Value[N, A], b Value[N, B]) rel.Or[ValueEq[A, B], ValueNe[A, B]] {
	x, y := a.Get(), b.Get()
	if x == y || (isNaN(x) && isNaN(y)) {
		eq, _ := rel.DefineEq[ValueCmp, A, B](true, premises(a, b)...)
		return rel.Left[ValueEq[A, B], ValueNe[A, B]](eq)
	}
	ne, _ := rel.DefineNe[ValueCmp, A, B](true, premises(a, b)...)
	return rel.Right[ValueEq[A, B]](ne)
}

// Cmp is the three-way comparison of two ordered values.
func Cmp[N cmp.Ordered, A, B any](a Value[N, A], b Value[N, B]) ValueOrdering[A, B] {
	return rel.DefineOrdering[ValueCmp, A, B](cmp.Compare(a.Get(), b.Get()), premises(a, b)...)
}

// Le returns a witness of A <= B when it holds.
func Le[N cmp.Ordered, A, B any](a Value[N, A], b Value[N, B]) (ValueLe[A, B], bool) {
	return rel.DefineLe[ValueCmp, A, B](cmp.Compare(a.Get(), b.Get()) <= 0, premises(a, b)...)
}

// Lt returns a witness of A < B when it holds.
func Lt[N cmp.Ordered, A, B any](a Value[N, A], b Value[N, B]) (ValueLt[A, B], bool) {
	return rel.DefineLt[ValueCmp, A, B](cmp.Compare(a.Get(), b.Get()) < 0, premises(a, b)...)
}

// premises ties a witness decided from a and b to their representation and
// scopes.
func premises[N, A, B any](a Value[N, A], b Value[N, B]) []rel.Premise {
	return []rel.Premise{rel.Repr[N](), rel.Scope(a.leases), rel.Scope(b.leases)}
}

func isNaN[N comparable](x N) bool {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	}
	return false
}

// LeOrGt decides A <= B against A > B.
func LeOrGt[N cmp.Ordered, A, B any](a Value[N, A], b Value[N, B]) rel.Or[ValueLe[A, B], ValueGt[A, B]] {
	if le, ok := Le(a, b); ok {
		return rel.Left[ValueLe[A, B], ValueGt[A, B]](le)
	}
	gt, _ := Lt(b, a)
	return rel.Right[ValueLe[A, B]](gt)
}

// LtOrGe decides A < B against A >= B.
func LtOrGe[N cmp.Ordered, A, B any](a Value[N, A], b Value[N, B]) rel.Or[ValueLt[A, B], ValueGe[A, B]] {
	if lt, ok := Lt(a, b); ok {
		return rel.Left[ValueLt[A, B], ValueGe[A, B]](lt)
	}
	ge, _ := Le(b, a)
	return rel.Right[ValueLt[A, B]](ge)
}
