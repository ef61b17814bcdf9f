package rel

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Premise is something a new witness depends on: another witness, the
// representation it was checked for (Repr) or the scope of a fresh name it
// mentions (Scope).
type Premise interface {
	premise() proof
}

type reprPremise struct{ t reflect.Type }

func (r reprPremise) premise() proof { return proof{minted: true, repr: r.t} }

// Repr records that a claim was checked for values of representation N.
func Repr[N any]() Premise {
	return reprPremise{t: reflect.TypeFor[N]()}
}

type scopePremise struct{ l Lease }

func (s scopePremise) premise() proof {
	if s.l == nil {
		return proof{minted: true}
	}
	if err := s.l.Valid(); err != nil {
		panic(err)
	}
	return proof{minted: true, leases: Leases{}.With(s.l)}
}

// Scope records that a claim mentions a fresh name leased by l. A nil l
// records nothing.
func Scope(l Lease) Premise {
	return scopePremise{l: l}
}

// derive is the proof of a claim about T and U that follows from ps. Leases
// are kept only while T or U mentions a fresh name.
func derive[T, U any](ps []Premise) proof {
	p := proof{minted: true}
	for _, q := range ps {
		if q == nil {
			continue
		}
		pq := q.premise()
		p.leases = p.leases.With(pq.leases...)
		if pq.repr == nil {
			continue
		}
		if p.repr != nil && p.repr != pq.repr {
			panic(&ReprError{Claim: render[T, U]("~"), Have: pq.repr.String(), Want: p.repr.String()})
		}
		p.repr = pq.repr
	}
	if !IsScoped[T]() && !IsScoped[U]() {
		p.leases = nil
	}
	return p
}

// Use checks that w may be applied to a value of representation repr that
// depends on ls, and returns the leases of the result. It panics when w is
// not minted or stale, when it was proven for another representation, or
// when its scopes conflict with ls.
func Use(w Premise, repr reflect.Type, ls Leases) Leases {
	p := w.premise()
	if p.repr != nil && repr != nil && p.repr != repr {
		panic(&ReprError{Claim: describe(w), Have: repr.String(), Want: p.repr.String()})
	}
	return ls.With(p.leases...)
}

func describe(p Premise) string {
	if w, ok := p.(Witness); ok {
		return w.String()
	}
	return "premise"
}

// ReprOf returns the representation w was proven for, or nil when its proof
// holds for every representation.
func ReprOf(w Premise) reflect.Type {
	return w.premise().repr
}

// --- Leases ---

// Lease ties a witness or a value to the brand scope that named one of its
// terms.
type Lease interface {
	// Valid returns a non-nil error once the scope has ended.
	Valid() error
	// Conflicts returns a non-nil error when other leases the same fresh
	// name from a different scope.
	Conflicts(other Lease) error
}

// Leases is a set of leases no two of which conflict. It is itself a Lease.
type Leases []Lease

// With returns s extended by ls. Nested Leases are flattened. It panics with
// the conflict error when two members lease the same name from different
// scopes.
func (s Leases) With(ls ...Lease) Leases {
	out := s
	for _, l := range ls {
		if l == nil {
			continue
		}
		if inner, ok := l.(Leases); ok {
			out = out.With(inner...)
			continue
		}
		if slices.Contains(out, l) {
			continue
		}
		for _, have := range out {
			if err := have.Conflicts(l); err != nil {
				panic(err)
			}
		}
		out = append(out[:len(out):len(out)], l)
	}
	return out
}

func (s Leases) Valid() error {
	for _, l := range s {
		if err := l.Valid(); err != nil {
			return err
		}
	}
	return nil
}

func (s Leases) Conflicts(other Lease) error {
	for _, l := range s {
		if err := l.Conflicts(other); err != nil {
			return err
		}
	}
	return nil
}

// --- Scoped terms ---

// Scoped is implemented by term types that mention a fresh name.
// Compound terms report whether any of their arguments is scoped.
type Scoped interface {
	ScopedTerm() bool
}

// freshName is how a brand's fresh name appears among the type arguments
// of a compound term.
const freshName = "github.com/funvibe/deptypes/pkg/brand.Var["

var scopedCache sync.Map // reflect.Type -> bool

// IsScoped reports whether term A mentions a fresh name. Terms that do not
// implement Scoped are inspected through their type arguments.
func IsScoped[A any]() bool {
	var a A
	if s, ok := any(a).(Scoped); ok {
		return s.ScopedTerm()
	}
	t := reflect.TypeFor[A]()
	if v, ok := scopedCache.Load(t); ok {
		return v.(bool)
	}
	scoped := strings.Contains(t.String(), freshName)
	scopedCache.Store(t, scoped)
	return scoped
}
