package dvec

import (
	"iter"

	"github.com/funvibe/deptypes/pkg/peano"
	"github.com/funvibe/deptypes/pkg/term"
)

// Iter yields exactly L elements. Each Next consumes the iterator and
// returns one with a length one smaller.
type Iter[T, L any] struct {
	items []T
	n     Len[L]
}

func (it Iter[T, L]) Len() Len[L] { return it.n }

// Next returns the first element and the rest, or false when L is zero.
func (it Iter[T, L]) Next() (Iter[T, peano.Pred[uint, L]], T, bool) {
	if len(it.items) == 0 {
		var zero T
		return Iter[T, peano.Pred[uint, L]]{}, zero, false
	}
	rest := Iter[T, peano.Pred[uint, L]]{items: it.items[1:], n: peano.PredOf(it.n)}
	return rest, it.items[0], true
}

// Done proves L = 0 once the iterator is exhausted.
func (it Iter[T, L]) Done() (term.ValueEq[L, peano.Zero[uint]], bool) {
	return peano.IsZero(it.n).Left()
}

// Seq adapts the iterator to a range-over-func sequence.
func (it Iter[T, L]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range it.items {
			if !yield(v) {
				return
			}
		}
	}
}
