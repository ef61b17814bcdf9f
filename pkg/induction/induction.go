// Package induction runs computations whose result type is indexed by an
// unsigned term: Compute builds P(x) from P(0) and a step P(n) -> P(S(n)),
// RepeatToZero counts a value down to zero while threading a state.
//
// Both loops are iterative. Every level names its counter with a fresh
// brand scope of the caller's Tag, and closes it before the next level
// opens. Values and witnesses a level lets escape are stale in every later
// level.
package induction

import (
	"github.com/funvibe/deptypes/pkg/brand"
	"github.com/funvibe/deptypes/pkg/peano"
	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

// Indexed is a payload D that stands for a statement about term A.
type Indexed[A, D any] = term.Indexed[A, D]

func Of[A, D any](d D) Indexed[A, D] {
	return term.Index[A](d)
}

// Reindex moves x to an equal term.
func Reindex[A, B, D any](x Indexed[A, D], w term.ValueEq[A, B]) Indexed[B, D] {
	return term.Reindex(x, w)
}

// Var is the name a level gives its counter.
type Var[Tag any, N peano.UInt] = brand.Var[Tag, N]

// Step is one induction step: from P(n) for the fresh name n, build P(S(n)).
type Step[Tag any, N peano.UInt, D any] func(n term.Value[N, Var[Tag, N]], hyp Indexed[Var[Tag, N], D]) Indexed[peano.Succ[Var[Tag, N]], D]

// Compute proves P(x) by induction on x. The base case is combined first,
// then step is applied for n = 0, 1, ..., x-1.
//
// Tag must not already be open on the calling goroutine.
func Compute[Tag any, N peano.UInt, X, D any](x term.Value[N, X], base Indexed[peano.Zero[N], D], step Step[Tag, N, D]) Indexed[X, D] {
	if z, ok := peano.IsZero(x).Left(); ok {
		return Reindex(base, rel.Invert(z))
	}

	// P(k) for the k of the current level; P(0) to start.
	acc := base.Data()
	last := x.Get()
	for k := N(0); k < last; k++ {
		acc = brand.With(func(b brand.Brand[Tag]) D {
			n := brand.New(b, k)
			return step(n, Of[Var[Tag, N]](acc)).Data()
		})
	}
	// S(x-1) = x
	return Of[X](acc)
}

// Body is one countdown iteration: given the state for S(n), produce the
// state for n.
type Body[Tag any, N peano.UInt, D any] func(n term.Value[N, Var[Tag, N]], acc Indexed[peano.Succ[Var[Tag, N]], D]) Indexed[Var[Tag, N], D]

// RepeatToZero applies body while the counter is not zero, starting from
// x, and returns the state indexed by zero.
//
// Tag must not already be open on the calling goroutine.
func RepeatToZero[Tag any, N peano.UInt, X, D any](x term.Value[N, X], initial Indexed[X, D], body Body[Tag, N, D]) Indexed[peano.Zero[N], D] {
	if z, ok := peano.IsZero(x).Left(); ok {
		return Reindex(initial, z)
	}

	// The state for S(n) where n is the next counter.
	acc := initial.Data()
	for cur := x.Get(); cur > 0; cur-- {
		acc = brand.With(func(b brand.Brand[Tag]) D {
			n := brand.New(b, cur-1)
			return body(n, Of[peano.Succ[Var[Tag, N]]](acc)).Data()
		})
	}
	return Of[peano.Zero[N]](acc)
}
