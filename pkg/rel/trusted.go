package rel

// This file holds every constructor that mints a witness from nothing.
// It is the unit of audit: `deptypes scan` lists all call sites of these
// functions, and each call site must carry a written justification.
//
// The optional premises do not add evidence. They record what the claim
// depends on, so that it cannot outlive a scope or cross a representation.

// AxiomEq asserts T == U under R without evidence.
// The caller takes responsibility for the claim.
func AxiomEq[R, T, U any](ps ...Premise) Eq[R, T, U] {
	return mintEq[R, T, U](ps...)
}

// AxiomNe asserts T != U under R without evidence.
func AxiomNe[R, T, U any](ps ...Premise) Ne[R, T, U] {
	return mintNe[R, T, U](ps...)
}

// AxiomLe asserts T <= U under R without evidence.
func AxiomLe[R, T, U any](ps ...Premise) Le[R, T, U] {
	return mintLe[R, T, U](ps...)
}

// AxiomLt asserts T < U under R without evidence.
func AxiomLt[R, T, U any](ps ...Premise) Lt[R, T, U] {
	return mintLt[R, T, U](ps...)
}

// DefineEq mints T == U from a runtime check performed by the caller.
// The witness exists only when holds is true.
func DefineEq[R, T, U any](holds bool, ps ...Premise) (Eq[R, T, U], bool) {
	if !holds {
		return Eq[R, T, U]{}, false
	}
	return mintEq[R, T, U](ps...), true
}

// DefineNe mints T != U from a runtime check.
func DefineNe[R, T, U any](holds bool, ps ...Premise) (Ne[R, T, U], bool) {
	if !holds {
		return Ne[R, T, U]{}, false
	}
	return mintNe[R, T, U](ps...), true
}

// DefineLe mints T <= U from a runtime check.
func DefineLe[R, T, U any](holds bool, ps ...Premise) (Le[R, T, U], bool) {
	if !holds {
		return Le[R, T, U]{}, false
	}
	return mintLe[R, T, U](ps...), true
}

// DefineLt mints T < U from a runtime check.
func DefineLt[R, T, U any](holds bool, ps ...Premise) (Lt[R, T, U], bool) {
	if !holds {
		return Lt[R, T, U]{}, false
	}
	return mintLt[R, T, U](ps...), true
}

// DefineOrdering mints the Ordering matching a runtime three-way comparison
// result c (negative, zero or positive, as returned by cmp.Compare).
func DefineOrdering[R, T, U any](c int, ps ...Premise) Ordering[R, T, U] {
	o := Ordering[R, T, U]{proof: derive[T, U](ps)}
	switch {
	case c < 0:
		o.kind = orderLess
	case c > 0:
		o.kind = orderGreater
	default:
		o.kind = orderEqual
	}
	return o
}

// The mint functions are the derivation-internal constructors. Combinators
// pass every input witness as a premise.
func mintEq[R, T, U any](ps ...Premise) Eq[R, T, U] { return Eq[R, T, U]{proof: derive[T, U](ps)} }
func mintNe[R, T, U any](ps ...Premise) Ne[R, T, U] { return Ne[R, T, U]{proof: derive[T, U](ps)} }
func mintLe[R, T, U any](ps ...Premise) Le[R, T, U] { return Le[R, T, U]{proof: derive[T, U](ps)} }
func mintLt[R, T, U any](ps ...Premise) Lt[R, T, U] { return Lt[R, T, U]{proof: derive[T, U](ps)} }
