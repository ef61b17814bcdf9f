// Package term implements the term/value model: a Value[N, A] is a runtime
// N tagged with the symbolic term A it is known to equal.
//
// Terms are Go types used only as type arguments. Two Values tagged with the
// same unscoped term always hold equal runtime values, so the term itself
// serves as the proof. Terms mentioning a brand's fresh name are scoped: their
// Values carry a lease and become unreadable once the brand's scope ends.
//
// A term is scoped when it implements Scoped and reports so, or, failing
// that, when one of its type arguments is a brand's fresh name. Compound
// terms declared outside this module are therefore tracked without extra
// methods, as long as the fresh name appears among their type arguments.
package term

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/funvibe/deptypes/internal/prettyprinter"
	"github.com/funvibe/deptypes/pkg/rel"
)

// Value is a runtime value of representation N known to equal term A.
// The zero Value is not a proof and panics when read.
type Value[N, A any] struct {
	v      N
	leases rel.Leases
	ok     bool
}

// Lease guards Values of scoped terms. Valid returns a non-nil error once the
// scope that produced the Value has ended.
type Lease = rel.Lease

// Scoped is implemented by term types that mention a fresh name.
type Scoped = rel.Scoped

// IsScoped reports whether term A mentions a fresh name.
func IsScoped[A any]() bool {
	return rel.IsScoped[A]()
}

// Repr is implemented by terms that only ever denote values of
// representation N. Repr returns the zero N; it exists for its type.
type Repr[N any] interface {
	Repr() N
}

// Dependency is satisfied by every Value. DefineFrom uses it to carry the
// leases of scoped arguments over to a computed result.
type Dependency interface {
	leasesOf() rel.Leases
}

func (x Value[N, A]) leasesOf() rel.Leases { return x.leases }

// Leases returns the scopes x depends on.
func (x Value[N, A]) Leases() rel.Leases {
	return slices.Clone(x.leases)
}

// Get returns the underlying value.
func (x Value[N, A]) Get() N {
	x.check()
	return x.v
}

// Valid reports whether x may be read: it was minted and its scope, if any,
// is still open.
func (x Value[N, A]) Valid() bool {
	if !x.ok {
		return false
	}
	return x.leases.Valid() == nil
}

func (x Value[N, A]) check() {
	if !x.ok {
		panic(&UndefinedError{Term: termName[A]()})
	}
	if err := x.leases.Valid(); err != nil {
		panic(err)
	}
}

// Term renders the symbolic term of x.
func (x Value[N, A]) Term() string {
	return termName[A]()
}

func (x Value[N, A]) String() string {
	if !x.ok {
		return "<undefined> : " + termName[A]()
	}
	return fmt.Sprintf("%v : %s", x.v, termName[A]())
}

func termName[A any]() string {
	return prettyprinter.Term(reflect.TypeFor[A]())
}

// UndefinedError is the panic value raised when a zero Value is read.
type UndefinedError struct {
	Term string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("term: value of %s read without being defined", e.Term)
}
