package rel

import "reflect"

// TypeIdentity relates two Go types that are the same type.
type TypeIdentity struct{}

func (TypeIdentity) Reflexive() {}

// TypeEq witnesses that T and U are the same Go type.
type TypeEq[T, U any] = Eq[TypeIdentity, T, U]

// SameType compares T and U at run time.
func SameType[T, U any]() (TypeEq[T, U], bool) {
	return DefineEq[TypeIdentity, T, U](reflect.TypeFor[T]() == reflect.TypeFor[U]())
}

// Cast converts t to U using a proof that the two types are identical.
func Cast[T, U any](t T, w TypeEq[T, U]) U {
	w.Check()
	if u, ok := any(t).(U); ok {
		return u
	}
	// nil interface value
	var zero U
	return zero
}
