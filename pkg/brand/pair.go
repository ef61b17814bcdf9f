package brand

import (
	"fmt"

	"github.com/funvibe/deptypes/pkg/term"
)

// Pair packs a value with a payload about it, forgetting the value's term.
// The payload is reachable again only through Unpack, which names the value
// afresh, so the pair may outlive the scope its value came from.
type Pair[N, D any] struct {
	v  N
	d  term.Indexed[term.Erased[N], D]
	ok bool
}

// Pack erases the term of x from both x and d.
func Pack[N, A, D any](x term.Value[N, A], d term.Indexed[A, D]) Pair[N, D] {
	return Pair[N, D]{v: x.Get(), d: term.Index[term.Erased[N]](d.Data()), ok: true}
}

// Unpack names the packed value with b's fresh name and files the payload
// under it.
func Unpack[Tag, N, D any](b Brand[Tag], p Pair[N, D]) (term.Value[N, Var[Tag, N]], term.Indexed[Var[Tag, N], D]) {
	if !p.ok {
		panic(&term.UndefinedError{Term: "pair"})
	}
	v := New(b, p.v)
	return v, term.Index[Var[Tag, N]](p.d.Data())
}

// Valid reports whether p was produced by Pack.
func (p Pair[N, D]) Valid() bool { return p.ok }

func (p Pair[N, D]) String() string {
	if !p.ok {
		return "<undefined pair>"
	}
	return fmt.Sprintf("(%v, %v)", p.v, p.d.Data())
}
