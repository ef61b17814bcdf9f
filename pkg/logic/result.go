package logic

import (
	"reflect"

	"github.com/funvibe/deptypes/internal/prettyprinter"
	"github.com/funvibe/deptypes/pkg/brand"
	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/term"
)

// Result holds a T when B is true and an F when B is false. Which one it
// holds is read back only together with the value of B.
type Result[B Bool, T, F any] struct {
	t      T
	f      F
	isOk   bool
	leases rel.Leases
	minted bool
}

// Ok is the result of a true condition.
func Ok[T, F any](t T) Result[True, T, F] {
	return Result[True, T, F]{t: t, isOk: true, minted: true}
}

// Err is the result of a false condition.
func Err[T, F any](f F) Result[False, T, F] {
	return Result[False, T, F]{f: f, minted: true}
}

func (r Result[B, T, F]) check() {
	if !r.minted {
		panic(&term.UndefinedError{Term: "result of " + prettyprinter.Term(reflect.TypeFor[B]())})
	}
	if err := r.leases.Valid(); err != nil {
		panic(err)
	}
}

// OkValue returns the T of a result known to be true.
func OkValue[T, F any](r Result[True, T, F]) T {
	r.check()
	if !r.isOk {
		panic("logic: true result holds no value")
	}
	return r.t
}

// ErrValue returns the F of a result known to be false.
func ErrValue[T, F any](r Result[False, T, F]) F {
	r.check()
	if r.isOk {
		panic("logic: false result holds no error")
	}
	return r.f
}

// ReindexResult moves r to an equal condition.
func ReindexResult[B, B1 Bool, T, F any](r Result[B, T, F], w term.ValueEq[B, B1]) Result[B1, T, F] {
	r.check()
	leases := rel.Use(w, reflect.TypeFor[bool](), r.leases)
	out := Result[B1, T, F]{t: r.t, f: r.f, isOk: r.isOk, minted: true}
	if term.IsScoped[B1]() {
		out.leases = leases
	}
	return out
}

// Decide names the outcome ok with b's fresh name and stores t or f
// accordingly. The returned value is the condition the result depends on.
func Decide[Tag, T, F any](b brand.Brand[Tag], t T, f F, ok bool) (Result[brand.Var[Tag, bool], T, F], Value[brand.Var[Tag, bool]]) {
	cond := brand.New(b, ok)
	c := Choose(cond)
	if eq, isTrue := c.Left(); isTrue {
		return ReindexResult(Ok[T, F](t), rel.Invert(eq)), cond
	}
	eq, _ := c.Right()
	return ReindexResult(Err[T](f), rel.Invert(eq)), cond
}

// Unwrap reads r under the value of its condition: the T and true when b is
// true, the F and false otherwise.
func Unwrap[B Bool, T, F any](r Result[B, T, F], b Value[B]) (T, F, bool) {
	var t T
	var f F
	c := Choose(b)
	if eq, ok := c.Left(); ok {
		t = OkValue(ReindexResult(r, eq))
		return t, f, true
	}
	eq, _ := c.Right()
	f = ErrValue(ReindexResult(r, eq))
	return t, f, false
}
