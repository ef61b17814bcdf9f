package term

import (
	"fmt"
	"reflect"

	"github.com/funvibe/deptypes/pkg/rel"
	"github.com/funvibe/deptypes/pkg/transm"
)

// ValueEquiv lifts A == B to a layout equivalence between the Value types.
// The term is a phantom, so Value[N, A] and Value[N, B] share one layout;
// the value witness keeps the re-tagging honest. Scoped terms are refused:
// an in-place conversion could not check each element's scope.
func ValueEquiv[N, A, B any](w ValueEq[A, B]) transm.Equiv[Value[N, A], Value[N, B]] {
	checkEquiv[N, A, B](w)
	return rel.AxiomEq[transm.Transmutability, Value[N, A], Value[N, B]]()
}

// ValueEquivWith also changes the representation along a layout equivalence.
func ValueEquivWith[N, M, A, B any](w ValueEq[A, B], layout transm.Equiv[N, M]) transm.Equiv[Value[N, A], Value[M, B]] {
	checkEquiv[N, A, B](w)
	layout.Check()
	return rel.AxiomEq[transm.Transmutability, Value[N, A], Value[M, B]]()
}

func checkEquiv[N, A, B any](w ValueEq[A, B]) {
	rel.Use(w, reflect.TypeFor[N](), nil)
	if IsScoped[A]() || IsScoped[B]() {
		panic(&ScopedEquivError{Claim: w.String()})
	}
}

// ScopedEquivError is the panic value raised when a layout equivalence is
// requested between Values of scoped terms.
type ScopedEquivError struct {
	Claim string
}

func (e *ScopedEquivError) Error() string {
	return fmt.Sprintf("term: %s mentions a fresh name and cannot convert values in place", e.Claim)
}
