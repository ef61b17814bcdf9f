package dvec

import (
	"iter"

	"github.com/funvibe/deptypes/pkg/brand"
	"github.com/funvibe/deptypes/pkg/term"
)

// Slice is a view of exactly L elements. It shares its backing array
// with the slice it was made from.
type Slice[T, L any] struct {
	items []T
	n     Len[L]
}

// NewSlice views items with a length named by b.
func NewSlice[Tag, T any](b brand.Brand[Tag], items []T) Slice[T, brand.Var[Tag, uint]] {
	return Slice[T, brand.Var[Tag, uint]]{items: items, n: brand.New(b, uint(len(items)))}
}

// ArraySlice views an array whose length is already known as the term L.
func ArraySlice[T, L any](items []T, n Len[L]) (Slice[T, L], bool) {
	if uint(len(items)) != n.Get() {
		return Slice[T, L]{}, false
	}
	return Slice[T, L]{items: items, n: n}, true
}

func (s Slice[T, L]) Len() Len[L] { return s.n }

func (s Slice[T, L]) At(i Fin[L]) T { return s.items[i.within(s.n)] }

func (s Slice[T, L]) Set(i Fin[L], v T) { s.items[i.within(s.n)] = v }

// Ptr returns the address of element i.
func (s Slice[T, L]) Ptr(i Fin[L]) *T { return &s.items[i.within(s.n)] }

func (s Slice[T, L]) Items() []T { return s.items }

// All yields every index with its element.
func (s Slice[T, L]) All() iter.Seq2[Fin[L], T] {
	return func(yield func(Fin[L], T) bool) {
		ls := s.n.Leases()
		for i, v := range s.items {
			if !yield(finOf[L](uint(i), ls), v) {
				return
			}
		}
	}
}

// Iter consumes the slice front to back.
func (s Slice[T, L]) Iter() Iter[T, L] {
	return Iter[T, L]{items: s.items, n: s.n}
}

// ReindexSlice moves s to an equal length term.
func ReindexSlice[T, A, B any](s Slice[T, A], w term.ValueEq[A, B]) Slice[T, B] {
	return Slice[T, B]{items: s.items, n: term.Coerce(s.n, w)}
}
