package transm

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/funvibe/deptypes/pkg/rel"
)

// LayoutError is the panic value raised when a witness claims a layout
// relation that the types' sizes or shapes contradict.
type LayoutError struct {
	Src    string
	Dst    string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("transm: cannot reinterpret %s as %s: %s", e.Src, e.Dst, e.Reason)
}

func layoutError[T, U any](format string, args ...any) *LayoutError {
	return &LayoutError{
		Src:    reflect.TypeFor[T]().String(),
		Dst:    reflect.TypeFor[U]().String(),
		Reason: fmt.Sprintf(format, args...),
	}
}

func checkSize[T, U any](exact bool) {
	var t T
	var u U
	ts, us := unsafe.Sizeof(t), unsafe.Sizeof(u)
	switch {
	case exact && ts != us:
		panic(layoutError[T, U]("size %d != %d", ts, us))
	case !exact && us > ts:
		panic(layoutError[T, U]("size %d < %d", ts, us))
	case unsafe.Alignof(u) > unsafe.Alignof(t):
		panic(layoutError[T, U]("alignment %d < %d", unsafe.Alignof(t), unsafe.Alignof(u)))
	}
}

// The functions below are the derivation rules of the Transmutability
// relation. Each one states a layout fact of the Go memory model and is
// listed by `deptypes scan` with the other trusted sites.

// Ptr lifts a layout equivalence to pointers: *T and *U point at
// interchangeable memory.
func Ptr[T, U any](w Equiv[T, U]) Equiv[*T, *U] {
	w.Check()
	return rel.AxiomEq[Transmutability, *T, *U]()
}

// PtrTransm lifts a narrowing to pointers.
func PtrTransm[T, U any](w Transm[T, U]) Transm[*T, *U] {
	w.Check()
	return rel.AxiomLe[Transmutability, *U, *T]()
}

// Slice lifts a layout equivalence to slices: same header, same stride.
func Slice[T, U any](w Equiv[T, U]) Equiv[[]T, []U] {
	w.Check()
	return rel.AxiomEq[Transmutability, []T, []U]()
}

// Array lifts an element equivalence to fixed-size arrays AT and AU.
// AT must be [n]T and AU must be [n]U for the same n.
func Array[AT, AU, T, U any](w Equiv[T, U]) Equiv[AT, AU] {
	w.Check()
	checkArrays[AT, AU, T, U](true)
	return rel.AxiomEq[Transmutability, AT, AU]()
}

// ArrayTransm lifts an element equivalence to a prefix: [n]T narrows to
// [m]U when m <= n.
func ArrayTransm[AT, AU, T, U any](w Equiv[T, U]) Transm[AT, AU] {
	w.Check()
	checkArrays[AT, AU, T, U](false)
	return rel.AxiomLe[Transmutability, AU, AT]()
}

func checkArrays[AT, AU, T, U any](sameLen bool) {
	at, au := reflect.TypeFor[AT](), reflect.TypeFor[AU]()
	if at.Kind() != reflect.Array || at.Elem() != reflect.TypeFor[T]() {
		panic(layoutError[AT, AU]("%s is not an array of %s", at, reflect.TypeFor[T]()))
	}
	if au.Kind() != reflect.Array || au.Elem() != reflect.TypeFor[U]() {
		panic(layoutError[AT, AU]("%s is not an array of %s", au, reflect.TypeFor[U]()))
	}
	switch {
	case sameLen && at.Len() != au.Len():
		panic(layoutError[AT, AU]("length %d != %d", at.Len(), au.Len()))
	case !sameLen && au.Len() > at.Len():
		panic(layoutError[AT, AU]("length %d < %d", at.Len(), au.Len()))
	}
}

// DefineEquiv proves T and U interchangeable when they share an underlying
// type, as with `type Celsius float64`. Interface types are rejected: empty
// and non-empty interfaces have different headers.
func DefineEquiv[T, U any]() (Equiv[T, U], bool) {
	return rel.DefineEq[Transmutability, T, U](sameUnderlying(reflect.TypeFor[T](), reflect.TypeFor[U]()))
}

func sameUnderlying(t, u reflect.Type) bool {
	if t == u {
		return true
	}
	if t.Kind() != u.Kind() || t.Kind() == reflect.Interface {
		return false
	}
	// Conversion between non-numeric types of one kind requires identical
	// underlying types; numeric kinds fix the representation.
	return t.Size() == u.Size() && t.ConvertibleTo(u)
}
