// Package brand hands out fresh symbolic names that are valid only inside
// the scope that produced them.
//
// A scope is opened with With (or Begin) for a caller-declared Tag type.
// Two brand sites declare two Tag types, so their names are distinct Go
// types and cannot be mixed up at compile time. Go has no lifetimes, so
// escape from the scope is caught at run time: every brand carries a
// generation number, and Values minted from it panic with *ScopeError once
// the scope has closed.
//
// Names of the same Tag from different scopes are the same Go type. Values
// and witnesses record their scope, and combining two scopes of one Tag
// panics with a Mixed *ScopeError. This covers sequential scopes, a scope
// and its Nest children, and scopes open on different goroutines.
package brand

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"

	"github.com/funvibe/deptypes/internal/prettyprinter"
	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

func init() {
	prettyprinter.RegisterLabel("brand.Var")
}

// Var is the fresh name minted by a Brand[Tag] for a value of
// representation N.
type Var[Tag, N any] struct{}

func (Var[Tag, N]) ScopedTerm() bool { return true }

func (Var[Tag, N]) Repr() (n N) { return n }

// Brand is the capability to mint exactly one fresh name.
type Brand[Tag any] struct {
	s *scope
}

var generation atomic.Uint64

type openKey struct {
	gid int64
	tag reflect.Type
}

var (
	openMu sync.Mutex
	open   = map[openKey]int{}
)

type scope struct {
	gen    uint64
	key    openKey
	closed atomic.Bool
	used   atomic.Bool
}

// Valid implements term.Lease.
func (s *scope) Valid() error {
	if s.closed.Load() {
		return s.err(Stale)
	}
	return nil
}

// Conflicts reports another scope of the same Tag.
func (s *scope) Conflicts(other rel.Lease) error {
	o, ok := other.(*scope)
	if !ok || o == s || o.key.tag != s.key.tag {
		return nil
	}
	return &ScopeError{Kind: Mixed, Tag: s.key.tag.String(), Generation: s.gen, Other: o.gen}
}

// Mint implements term.Minter: a scope names exactly one value.
func (s *scope) Mint() error {
	if s.closed.Load() {
		return s.err(Closed)
	}
	if !s.used.CompareAndSwap(false, true) {
		return s.err(Reused)
	}
	return nil
}

func (s *scope) err(kind ScopeErrorKind) *ScopeError {
	return &ScopeError{Kind: kind, Tag: s.key.tag.String(), Generation: s.gen}
}

func openScope(key openKey, nested bool) *scope {
	openMu.Lock()
	defer openMu.Unlock()
	if !nested && open[key] > 0 {
		panic(&ScopeError{Kind: Overlap, Tag: key.tag.String()})
	}
	open[key]++
	return &scope{gen: generation.Add(1), key: key}
}

func (s *scope) close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	openMu.Lock()
	defer openMu.Unlock()
	if open[s.key]--; open[s.key] <= 0 {
		delete(open, s.key)
	}
}

func keyFor[Tag any]() openKey {
	return openKey{gid: goid.Get(), tag: reflect.TypeFor[Tag]()}
}

// With opens a scope for Tag, runs body with its brand and closes the scope
// when body returns or panics. Opening Tag again on the same goroutine while
// it is open panics; use Brand.Nest for deliberate nesting.
func With[Tag, R any](body func(Brand[Tag]) R) R {
	b, done := Begin[Tag]()
	defer done()
	return body(b)
}

// Begin opens a scope and returns its brand with the function that closes
// it. Closing is idempotent.
func Begin[Tag any]() (Brand[Tag], func()) {
	s := openScope(keyFor[Tag](), false)
	return Brand[Tag]{s: s}, s.close
}

// Nest opens a child scope with the same Tag while b is still open.
// The child may outlive b. Its name is distinct from b's: values and
// witnesses of the two cannot be combined.
func (b Brand[Tag]) Nest() (Brand[Tag], func()) {
	p := b.live()
	s := openScope(p.key, true)
	return Brand[Tag]{s: s}, s.close
}

// Generation identifies the scope. Generations are unique per process.
func (b Brand[Tag]) Generation() uint64 {
	return b.live().gen
}

// Open reports whether the brand's scope has not ended yet.
func (b Brand[Tag]) Open() bool {
	return b.s != nil && !b.s.closed.Load()
}

func (b Brand[Tag]) live() *scope {
	if b.s == nil {
		panic(&ScopeError{Kind: NoScope, Tag: reflect.TypeFor[Tag]().String()})
	}
	if b.s.closed.Load() {
		panic(b.s.err(Closed))
	}
	return b.s
}

// New mints the brand's fresh name for n.
func New[Tag, N any](b Brand[Tag], n N) term.Value[N, Var[Tag, N]] {
	return term.DefineScoped[Var[Tag, N]](n, b.live())
}

// Erase forgets the term of x and names its value with the brand's fresh name.
func Erase[Tag, N, A any](b Brand[Tag], x term.Value[N, A]) term.Value[N, Var[Tag, N]] {
	n := x.Get()
	return New(b, n)
}

// Alias re-tags x under the brand's fresh name and proves the old and new
// names equal.
func Alias[Tag, N, A any](b Brand[Tag], x term.Value[N, A]) (term.Value[N, Var[Tag, N]], term.ValueEq[A, Var[Tag, N]]) {
	v := Erase(b, x)
	// x and v hold the same runtime value by construction.
	eq, _ := rel.DefineEq[term.ValueCmp, A, Var[Tag, N]](true,
		rel.Repr[N](), rel.Scope(x.Leases()), rel.Scope(v.Leases()))
	return v, eq
}
