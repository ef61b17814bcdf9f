package term

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/transm"
)

type (
	x struct{}
	y struct{}
)

// scopedTerm stands in for a term that mentions a fresh name.
type scopedTerm struct{}

func (scopedTerm) ScopedTerm() bool { return true }

type fakeLease struct {
	closed bool
	gen    int
	minted bool
}

var (
	errClosed = errors.New("scope closed")
	errMixed  = errors.New("scopes mixed")
	errReused = errors.New("scope reused")
)

func (l *fakeLease) Valid() error {
	if l.closed {
		return errClosed
	}
	return nil
}

func (l *fakeLease) Conflicts(other Lease) error {
	if o, ok := other.(*fakeLease); ok && o.gen != l.gen {
		return errMixed
	}
	return nil
}

func (l *fakeLease) Mint() error {
	if l.minted {
		return errReused
	}
	l.minted = true
	return l.Valid()
}

func TestDefineAndGet(t *testing.T) {
	v := Define[x](uint8(7))
	assert.Equal(t, uint8(7), v.Get())
	assert.True(t, v.Valid())
	assert.Equal(t, "7 : x", v.String())

	var zero Value[uint8, x]
	assert.False(t, zero.Valid())
	defer func() {
		r := recover()
		_, ok := r.(*UndefinedError)
		assert.True(t, ok, "panic value = %T, want *UndefinedError", r)
	}()
	zero.Get()
}

func TestDefOf(t *testing.T) {
	assert.Equal(t, 0, DefOf[int]().Get())
	assert.Equal(t, "", DefOf[string]().Get())
	assert.False(t, DefOf[bool]().Get())
	assert.Equal(t, "0", DefOf[int]().Term())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  int
		equal bool
	}{
		{"same", 3, 3, true},
		{"different", 3, 4, false},
		{"negative", -1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Equal(Define[x](tt.a), Define[y](tt.b))
			assert.Equal(t, tt.equal, o.IsLeft())
			if eq, ok := o.Left(); ok {
				assert.True(t, eq.Minted())
			}
			if ne, ok := o.Right(); ok {
				assert.True(t, ne.Minted())
			}
		})
	}

	nan := math.NaN()
	assert.True(t, Equal(Define[x](nan), Define[y](nan)).IsLeft())
	assert.True(t, Equal(Define[x](float32(nan)), Define[y](float32(nan))).IsLeft())
}

func TestEqualNaNOnlyForFloats(t *testing.T) {
	type pair struct {
		f float64
		n int
	}
	type celsius float64
	nan := math.NaN()

	tests := []struct {
		name  string
		equal func() bool
		want  bool
	}{
		{"named float", func() bool {
			return Equal(Define[x](celsius(nan)), Define[y](celsius(nan))).IsLeft()
		}, true},
		{"structs differing outside the NaN", func() bool {
			return Equal(Define[x](pair{nan, 1}), Define[y](pair{nan, 2})).IsLeft()
		}, false},
		{"structs holding NaN", func() bool {
			return Equal(Define[x](pair{nan, 1}), Define[y](pair{nan, 1})).IsLeft()
		}, false},
		{"plain structs", func() bool {
			return Equal(Define[x](pair{1, 1}), Define[y](pair{1, 1})).IsLeft()
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.equal())
		})
	}
}

func TestOrdering(t *testing.T) {
	a, b := Define[x](2), Define[y](5)

	_, ok := Cmp(a, b).Lt()
	assert.True(t, ok)
	assert.Equal(t, 1, Cmp(b, a).Compare())

	_, ok = Le(a, b)
	assert.True(t, ok)
	_, ok = Le(b, a)
	assert.False(t, ok)
	_, ok = Lt(a, a)
	assert.False(t, ok)
	_, ok = Le(a, a)
	assert.True(t, ok)

	assert.True(t, LeOrGt(a, b).IsLeft())
	assert.False(t, LeOrGt(b, a).IsLeft())
	assert.True(t, LtOrGe(a, b).IsLeft())
	assert.False(t, LtOrGe(a, a).IsLeft())
}

func TestTotalFloat(t *testing.T) {
	negZero := math.Copysign(0, -1)

	assert.False(t, TotalEqual(Define[x](0.0), Define[y](negZero)).IsLeft())
	assert.True(t, TotalEqual(Define[x](math.NaN()), Define[y](math.NaN())).IsLeft())

	_, ok := TotalLt(Define[x](negZero), Define[y](0.0))
	assert.True(t, ok)
	_, ok = TotalLe(Define[x](math.Inf(1)), Define[y](math.NaN()))
	assert.True(t, ok)
	_, ok = TotalLt(Define[x](float32(-1)), Define[y](float32(-2)))
	assert.False(t, ok)

	assert.Equal(t, -1, TotalCmp(Define[x](float32(-3)), Define[y](float32(2))).Compare())
	assert.Equal(t, 0, TotalCmp(Define[x](1.5), Define[y](1.5)).Compare())
}

func TestCoerce(t *testing.T) {
	eq, ok := Equal(Define[x](4), Define[y](4)).Left()
	require.True(t, ok)

	got := Coerce(Define[x](4), eq)
	assert.Equal(t, 4, got.Get())
	assert.Equal(t, "y", got.Term())

	var forged ValueEq[x, y]
	assert.Panics(t, func() { Coerce(Define[x](4), forged) })
}

func TestCoerceChecksRepresentation(t *testing.T) {
	eq8, ok := Equal(Define[x](uint8(4)), Define[y](uint8(4))).Left()
	require.True(t, ok)

	defer func() {
		r := recover()
		err, ok := r.(*rel.ReprError)
		require.True(t, ok, "panic value = %T, want *rel.ReprError", r)
		assert.Equal(t, "uint8", err.Want)
		assert.Equal(t, "int", err.Have)
	}()
	Coerce(Define[x](4), eq8)
}

func TestCoerceRejectsOtherScope(t *testing.T) {
	first := &fakeLease{gen: 1}
	second := &fakeLease{gen: 2}

	a := DefineScoped[scopedTerm](5, first)
	eq, ok := Equal(a, Define[y](5)).Left()
	require.True(t, ok)
	assert.Equal(t, 5, Coerce(a, eq).Get())

	b := DefineScoped[scopedTerm](6, second)
	assert.PanicsWithValue(t, errMixed, func() { Coerce(b, eq) })
	assert.PanicsWithValue(t, errMixed, func() { DefineFrom[scopedTerm](11, a, b) })
}

func TestDefineScopedMintsOnce(t *testing.T) {
	l := &fakeLease{}
	DefineScoped[scopedTerm](1, l)
	assert.PanicsWithValue(t, errReused, func() { DefineScoped[scopedTerm](2, l) })

	closed := &fakeLease{closed: true}
	assert.PanicsWithValue(t, errClosed, func() { DefineScoped[scopedTerm](3, closed) })
}

func TestLeasesAccessor(t *testing.T) {
	l := &fakeLease{}
	s := DefineScoped[scopedTerm](1, l)
	got := s.Leases()
	require.Equal(t, rel.Leases{l}, got)
	got[0] = nil
	assert.True(t, s.Valid())
	assert.Empty(t, Define[x](1).Leases())
}

func TestLeases(t *testing.T) {
	lease := &fakeLease{}
	s := DefineScoped[scopedTerm](10, lease)
	assert.True(t, IsScoped[scopedTerm]())
	assert.False(t, IsScoped[x]())

	derived := DefineFrom[scopedTerm](s.Get()+1, s, Define[x](1))
	plain := DefineFrom[x](s.Get()+1, s)
	unscoped := Coerce(s, rel.AxiomEq[ValueCmp, scopedTerm, y]())

	lease.closed = true
	assert.False(t, s.Valid())
	assert.False(t, derived.Valid())
	assert.True(t, plain.Valid())
	assert.Equal(t, 10, unscoped.Get())

	defer func() {
		assert.Equal(t, errClosed, recover())
	}()
	s.Get()
}

func TestMultiLease(t *testing.T) {
	l1, l2 := &fakeLease{}, &fakeLease{}
	a := DefineScoped[scopedTerm](1, l1)
	b := DefineScoped[scopedTerm](2, l2)
	c := DefineFrom[scopedTerm](3, a, b, a)
	d := DefineFrom[scopedTerm](4, c, b)

	assert.True(t, d.Valid())
	l2.closed = true
	assert.False(t, c.Valid())
	assert.False(t, d.Valid())
}

func TestValueEquiv(t *testing.T) {
	eq, ok := Equal(Define[x](9), Define[y](9)).Left()
	require.True(t, ok)

	vals := []Value[int, x]{Define[x](9), Define[x](9)}
	out := transm.CoerceSlice(vals, ValueEquiv[int](eq))
	require.Len(t, out, 2)
	assert.Equal(t, 9, out[1].Get())
	assert.Equal(t, "y", out[0].Term())

	eq32, ok := Equal(Define[x](uint32(3)), Define[y](uint32(3))).Left()
	require.True(t, ok)
	w := ValueEquivWith[uint32](eq32, transm.Id[uint32]())
	assert.Equal(t, uint32(3), transm.Coerce(Define[x](uint32(3)), w).Get())

	assert.Panics(t, func() { ValueEquiv[uint32](eq) })

	scoped := rel.AxiomEq[ValueCmp, scopedTerm, y]()
	assert.PanicsWithError(t,
		"term: scopedTerm == y mentions a fresh name and cannot convert values in place",
		func() { ValueEquiv[int](scoped) })
}
