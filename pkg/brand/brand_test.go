package brand

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

type (
	outer struct{}
	inner struct{}
	loop  struct{}
	other struct{}
)

type answer struct{}

func scopeKind(t *testing.T, fn func()) ScopeErrorKind {
	t.Helper()
	var kind ScopeErrorKind = -1
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			err, ok := r.(*ScopeError)
			require.True(t, ok, "panic value = %T, want *ScopeError", r)
			kind = err.Kind
		}()
		fn()
	}()
	return kind
}

func TestNewInsideScope(t *testing.T) {
	got := With(func(b Brand[outer]) int {
		v := New(b, 41)
		return v.Get() + 1
	})
	assert.Equal(t, 42, got)
}

func TestAlias(t *testing.T) {
	x := term.Define[answer](uint8(42))
	With(func(b Brand[outer]) struct{} {
		v, eq := Alias(b, x)
		assert.Equal(t, uint8(42), v.Get())
		assert.True(t, eq.Minted())
		assert.Equal(t, "answer == outer", eq.String())

		back := term.Coerce(v, rel.Invert(eq))
		assert.Equal(t, uint8(42), back.Get())
		return struct{}{}
	})
}

func TestStaleValue(t *testing.T) {
	leaked := With(func(b Brand[outer]) term.Value[int, Var[outer, int]] {
		return New(b, 7)
	})
	assert.False(t, leaked.Valid())
	assert.Equal(t, Stale, scopeKind(t, func() { leaked.Get() }))
}

func TestBrandMintsOnce(t *testing.T) {
	With(func(b Brand[outer]) struct{} {
		New(b, 1)
		assert.Equal(t, Reused, scopeKind(t, func() { New(b, 2) }))
		assert.Equal(t, Reused, scopeKind(t, func() { Erase(b, term.Define[answer](3)) }))
		return struct{}{}
	})
}

func TestMintAfterClose(t *testing.T) {
	b, done := Begin[outer]()
	assert.True(t, b.Open())
	done()
	done()
	assert.False(t, b.Open())
	assert.Equal(t, Closed, scopeKind(t, func() { New(b, 1) }))
	assert.Equal(t, Closed, scopeKind(t, func() { b.Nest() }))
}

func TestZeroBrand(t *testing.T) {
	var b Brand[outer]
	assert.Equal(t, NoScope, scopeKind(t, func() { New(b, 1) }))
}

func TestOverlap(t *testing.T) {
	With(func(Brand[outer]) struct{} {
		assert.Equal(t, Overlap, scopeKind(t, func() {
			With(func(Brand[outer]) struct{} { return struct{}{} })
		}))

		// A different tag is a different brand site.
		With(func(b Brand[inner]) struct{} {
			New(b, 0)
			return struct{}{}
		})

		// Other goroutines have their own scopes.
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			With(func(b Brand[outer]) struct{} {
				New(b, 0)
				return struct{}{}
			})
		}()
		wg.Wait()
		return struct{}{}
	})

	// Closed again, so the tag can be reopened.
	With(func(Brand[outer]) struct{} { return struct{}{} })
}

func TestPanicClosesScope(t *testing.T) {
	func() {
		defer func() { _ = recover() }()
		With(func(Brand[loop]) struct{} { panic("boom") })
	}()
	assert.NotPanics(t, func() {
		With(func(Brand[loop]) struct{} { return struct{}{} })
	})
}

func TestNest(t *testing.T) {
	parent, closeParent := Begin[loop]()
	child, closeChild := parent.Nest()
	assert.NotEqual(t, parent.Generation(), child.Generation())

	pv := New(parent, 1)
	cv := New(child, 2)

	closeParent()
	assert.False(t, pv.Valid())
	assert.True(t, cv.Valid())

	closeChild()
	assert.False(t, cv.Valid())

	assert.NotPanics(t, func() {
		_, done := Begin[loop]()
		done()
	})
}

func TestGenerationsAreUnique(t *testing.T) {
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		g := With(func(b Brand[other]) uint64 { return b.Generation() })
		assert.False(t, seen[g], "generation %d reused", g)
		seen[g] = true
	}
}

func TestDistinctSitesAreDistinctTypes(t *testing.T) {
	a := reflect.TypeFor[Var[outer, int]]()
	b := reflect.TypeFor[Var[inner, int]]()
	assert.NotEqual(t, a, b)
	assert.True(t, term.IsScoped[Var[outer, int]]())
}

func TestScopeErrorMessage(t *testing.T) {
	err := &ScopeError{Kind: Stale, Tag: "brand.outer", Generation: 3}
	assert.Equal(t, "brand brand.outer#3: value used after its scope ended", err.Error())
	assert.Equal(t, "overlap", Overlap.String())

	mixed := &ScopeError{Kind: Mixed, Tag: "brand.loop", Generation: 4, Other: 9}
	assert.Equal(t, "brand brand.loop#4: combined with a name from scope #9", mixed.Error())
	assert.Equal(t, "mixed", Mixed.String())
}

func TestWitnessFromEndedScope(t *testing.T) {
	eq := With(func(b Brand[outer]) term.ValueEq[Var[outer, int], answer] {
		w, ok := term.Equal(New(b, 5), term.Define[answer](5)).Left()
		require.True(t, ok)
		return w
	})

	With(func(b Brand[outer]) struct{} {
		v := New(b, 5)
		assert.Equal(t, Stale, scopeKind(t, func() { term.Coerce(v, eq) }))
		assert.Equal(t, Stale, scopeKind(t, func() { rel.Invert(eq) }))
		return struct{}{}
	})
}

func TestScopesOfOneTagDoNotMix(t *testing.T) {
	forged := func(x term.Value[int, Var[loop, int]]) term.ValueEq[Var[loop, int], answer] {
		w, ok := term.Equal(x, term.Define[answer](5)).Left()
		require.True(t, ok)
		return w
	}

	t.Run("nested", func(t *testing.T) {
		parent, closeParent := Begin[loop]()
		defer closeParent()
		child, closeChild := parent.Nest()
		defer closeChild()

		pv, cv := New(parent, 5), New(child, 5)
		eq := forged(pv)
		assert.Equal(t, 5, term.Coerce(pv, eq).Get())
		assert.Equal(t, Mixed, scopeKind(t, func() { term.Coerce(cv, eq) }))
		assert.Equal(t, Mixed, scopeKind(t, func() { term.Equal(pv, cv) }))
	})

	t.Run("goroutines", func(t *testing.T) {
		type opened struct {
			b    Brand[loop]
			done func()
		}
		ch := make(chan opened)
		go func() {
			b, done := Begin[loop]()
			ch <- opened{b, done}
		}()
		theirs := <-ch
		defer theirs.done()

		mine, done := Begin[loop]()
		defer done()

		eq := forged(New(theirs.b, 5))
		v := New(mine, 5)
		assert.Equal(t, Mixed, scopeKind(t, func() { term.Coerce(v, eq) }))
	})
}

// wrap is a compound term that does not report whether it is scoped.
type wrap[A any] struct{}

func TestScopedDetectedFromTypeArguments(t *testing.T) {
	assert.True(t, term.IsScoped[wrap[Var[outer, int]]]())
	assert.True(t, term.IsScoped[wrap[wrap[Var[outer, int]]]]())
	assert.False(t, term.IsScoped[wrap[answer]]())

	eq := With(func(b Brand[outer]) term.ValueEq[wrap[Var[outer, int]], answer] {
		x := term.DefineFrom[wrap[Var[outer, int]]](1, New(b, 1))
		w, ok := term.Equal(x, term.Define[answer](1)).Left()
		require.True(t, ok)
		return w
	})
	assert.Equal(t, Stale, scopeKind(t, func() { eq.Check() }))
}

func TestPair(t *testing.T) {
	type positive struct{ ok bool }
	p := With(func(b Brand[outer]) Pair[int, positive] {
		v := New(b, 9)
		return Pack(v, term.Index[Var[outer, int]](positive{ok: v.Get() > 0}))
	})
	require.True(t, p.Valid())
	assert.Equal(t, "(9, {true})", p.String())

	With(func(b Brand[inner]) struct{} {
		v, d := Unpack(b, p)
		assert.Equal(t, 9, v.Get())
		assert.True(t, d.Data().ok)
		return struct{}{}
	})

	var zero Pair[int, positive]
	assert.False(t, zero.Valid())
	With(func(b Brand[inner]) struct{} {
		assert.Panics(t, func() { Unpack(b, zero) })
		return struct{}{}
	})
}
