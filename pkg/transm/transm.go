// Package transm is the coercion runtime: it reinterprets the bits of a value
// as another type, gated by a witness that the two layouts are compatible.
//
// Equiv[T, U] states that T and U have identical layout. Transm[T, U] states
// the weaker fact that a U can be read from a prefix of a T. Both are
// relation witnesses under the Transmutability tag and compose with the
// combinators of package rel.
//
// Coercion is a hand-off. For reference types (pointers, slices) the result
// shares memory with the argument, so callers must stop using the source
// binding once it has been coerced.
package transm

import (
	"unsafe"

	"github.com/funvibe/deptypes/pkg/rel"
)

// Transmutability is the relation tag for layout compatibility.
type Transmutability struct{}

func (Transmutability) Reflexive() {}

// Equiv witnesses that T and U have identical layout.
type Equiv[T, U any] = rel.Eq[Transmutability, T, U]

// Transm witnesses that U is readable from a prefix of T.
type Transm[T, U any] = rel.Le[Transmutability, U, T]

// Coerce reinterprets t as a U.
func Coerce[T, U any](t T, w Equiv[T, U]) U {
	w.Check()
	checkSize[T, U](true)
	return *(*U)(unsafe.Pointer(&t))
}

// Narrow reads a U from the leading bytes of t.
func Narrow[T, U any](t T, w Transm[T, U]) U {
	w.Check()
	checkSize[T, U](false)
	return *(*U)(unsafe.Pointer(&t))
}

// CoerceSlice reinterprets the backing array of s in place. Length and
// capacity are preserved; s must not be used afterwards.
func CoerceSlice[T, U any](s []T, w Equiv[T, U]) []U {
	w.Check()
	checkSize[T, U](true)
	if s == nil {
		return nil
	}
	data := (*U)(unsafe.Pointer(unsafe.SliceData(s)))
	return unsafe.Slice(data, cap(s))[:len(s)]
}

// Id is the identity coercion.
func Id[T any]() Equiv[T, T] {
	return rel.Refl[Transmutability, T]()
}

// Weaken turns a layout equivalence into a narrowing.
func Weaken[T, U any](w Equiv[T, U]) Transm[T, U] {
	return rel.EqLe(rel.Invert(w))
}

// Chain composes two narrowings.
func Chain[T, U, V any](tu Transm[T, U], uv Transm[U, V]) Transm[T, V] {
	return rel.TransLe(uv, tu)
}
