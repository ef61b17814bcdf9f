package dvec

import (
	"iter"
	"slices"

	"github.com/funvibe/deptypes/pkg/brand"
	"github.com/funvibe/deptypes/pkg/induction"
	"github.com/funvibe/deptypes/pkg/peano"
	"github.com/funvibe/deptypes/pkg/term"
	"github.com/funvibe/deptypes/pkg/transm"
)

// Vec is a growable vector of exactly L elements.
//
// Operations that change the length consume their receiver: the old vector
// may share storage with the new one and must not be used again.
type Vec[T, L any] struct {
	items []T
	n     Len[L]
}

type Zero = peano.Zero[uint]

func Empty[T any]() Vec[T, Zero] {
	return Vec[T, Zero]{n: peano.ZeroOf[uint]()}
}

func WithCapacity[T any](c int) Vec[T, Zero] {
	return Vec[T, Zero]{items: make([]T, 0, c), n: peano.ZeroOf[uint]()}
}

// FromSlice takes ownership of items and names its length with b.
func FromSlice[Tag, T any](b brand.Brand[Tag], items []T) Vec[T, brand.Var[Tag, uint]] {
	return Vec[T, brand.Var[Tag, uint]]{items: items, n: brand.New(b, uint(len(items)))}
}

// WithLen takes ownership of items when their length is n.
func WithLen[T, L any](items []T, n Len[L]) (Vec[T, L], bool) {
	if uint(len(items)) != n.Get() {
		return Vec[T, L]{}, false
	}
	return Vec[T, L]{items: items, n: n}, true
}

func (v Vec[T, L]) Len() Len[L] { return v.n }

func (v Vec[T, L]) At(i Fin[L]) T { return v.items[i.within(v.n)] }

func (v Vec[T, L]) Set(i Fin[L], x T) { v.items[i.within(v.n)] = x }

func (v Vec[T, L]) Items() []T { return v.items }

func (v Vec[T, L]) AsSlice() Slice[T, L] {
	return Slice[T, L]{items: v.items, n: v.n}
}

func (v Vec[T, L]) All() iter.Seq2[Fin[L], T] {
	return v.AsSlice().All()
}

func (v Vec[T, L]) Iter() Iter[T, L] {
	return Iter[T, L]{items: v.items, n: v.n}
}

func (v Vec[T, L]) Push(x T) Vec[T, peano.Succ[L]] {
	return Vec[T, peano.Succ[L]]{items: append(v.items, x), n: peano.SuccOf(v.n)}
}

func (v Vec[T, L]) Clear() Vec[T, Zero] {
	clear(v.items)
	return Vec[T, Zero]{items: v.items[:0], n: peano.ZeroOf[uint]()}
}

// predLen is L for a vector of length S(L).
func predLen[L any](n Len[peano.Succ[L]]) Len[L] {
	return term.Coerce(peano.SubOf(n, peano.OneOf[uint]()), peano.SuccSubOne[uint, L]())
}

// SwapRemove removes element i and moves the last element into its place.
func SwapRemove[T, L any](v Vec[T, peano.Succ[L]], i Fin[peano.Succ[L]]) (Vec[T, L], T) {
	last := len(v.items) - 1
	at := i.within(v.n)
	x := v.items[at]
	v.items[at] = v.items[last]
	var zero T
	v.items[last] = zero
	return Vec[T, L]{items: v.items[:last], n: predLen(v.n)}, x
}

// Pop removes the last element.
func Pop[T, L any](v Vec[T, peano.Succ[L]]) (Vec[T, L], T) {
	last := len(v.items) - 1
	x := v.items[last]
	var zero T
	v.items[last] = zero
	return Vec[T, L]{items: v.items[:last], n: predLen(v.n)}, x
}

type extendTag struct{}

type extendState[T any] struct {
	items []T
	src   []T
}

type extendVar = induction.Var[extendTag, uint]

// Extend appends every element of it to v.
func Extend[T, L, M any](v Vec[T, L], it Iter[T, M]) Vec[T, peano.Add[L, M]] {
	n := peano.AddOf(v.n, it.n)
	start := extendState[T]{items: slices.Grow(v.items, len(it.items)), src: it.items}
	out := induction.RepeatToZero[extendTag](it.n, induction.Of[M](start),
		func(_ term.Value[uint, extendVar], acc induction.Indexed[peano.Succ[extendVar], extendState[T]]) induction.Indexed[extendVar, extendState[T]] {
			s := acc.Data()
			s.items = append(s.items, s.src[0])
			s.src = s.src[1:]
			return induction.Of[extendVar](s)
		})
	return Vec[T, peano.Add[L, M]]{items: out.Data().items, n: n}
}

// Append concatenates a and b.
func Append[T, L, M any](a Vec[T, L], b Vec[T, M]) Vec[T, peano.Add[L, M]] {
	return Extend(a, b.Iter())
}

// Generate builds a vector of length n from f(0), ..., f(n-1), in that
// order. Tag names the counter and must not be open on the calling
// goroutine.
func Generate[Tag, T, X any](n Len[X], f func(Fin[X]) T) Vec[T, X] {
	ls := n.Leases()
	out := induction.Compute[Tag](n, induction.Of[Zero](make([]T, 0, n.Get())),
		func(i term.Value[uint, induction.Var[Tag, uint]], hyp induction.Indexed[induction.Var[Tag, uint], []T]) induction.Indexed[peano.Succ[induction.Var[Tag, uint]], []T] {
			return induction.Of[peano.Succ[induction.Var[Tag, uint]]](append(hyp.Data(), f(finOf[X](i.Get(), ls))))
		})
	return Vec[T, X]{items: out.Data(), n: n}
}

// Reindex moves v to an equal length term.
func Reindex[T, A, B any](v Vec[T, A], w term.ValueEq[A, B]) Vec[T, B] {
	return Vec[T, B]{items: v.items, n: term.Coerce(v.n, w)}
}

// Convert reinterprets the elements as U without copying.
func Convert[T, U, L any](v Vec[T, L], w transm.Equiv[T, U]) Vec[U, L] {
	return Vec[U, L]{items: transm.CoerceSlice(v.items, w), n: v.n}
}
