package rel

// --- Equality ---

// Refl proves T == T for any reflexive relation.
func Refl[R Reflexive, T any]() Eq[R, T, T] {
	return mintEq[R, T, T]()
}

// ReflLe proves T <= T for any reflexive relation.
func ReflLe[R Reflexive, T any]() Le[R, T, T] {
	return mintLe[R, T, T]()
}

// Invert turns T == U into U == T.
func Invert[R, T, U any](w Eq[R, T, U]) Eq[R, U, T] {
	return mintEq[R, U, T](w)
}

// Trans composes A == B and B == C into A == C.
func Trans[R, A, B, C any](ab Eq[R, A, B], bc Eq[R, B, C]) Eq[R, A, C] {
	return mintEq[R, A, C](ab, bc)
}

// TransInv composes A == B and C == B into A == C.
func TransInv[R, A, B, C any](ab Eq[R, A, B], cb Eq[R, C, B]) Eq[R, A, C] {
	return Trans(ab, Invert(cb))
}

func Trans3[R, A, B, C, D any](ab Eq[R, A, B], bc Eq[R, B, C], cd Eq[R, C, D]) Eq[R, A, D] {
	return Trans(Trans(ab, bc), cd)
}

func Trans4[R, A, B, C, D, E any](ab Eq[R, A, B], bc Eq[R, B, C], cd Eq[R, C, D], de Eq[R, D, E]) Eq[R, A, E] {
	return Trans(Trans3(ab, bc, cd), de)
}

func Trans5[R, A, B, C, D, E, F any](ab Eq[R, A, B], bc Eq[R, B, C], cd Eq[R, C, D], de Eq[R, D, E], ef Eq[R, E, F]) Eq[R, A, F] {
	return Trans(Trans4(ab, bc, cd, de), ef)
}

// --- Disequality ---

// InvertNe turns T != U into U != T.
func InvertNe[R, T, U any](w Ne[R, T, U]) Ne[R, U, T] {
	return mintNe[R, U, T](w)
}

// TransNe rewrites the right side of a disequality: A != B, B == C gives A != C.
func TransNe[R, A, B, C any](ab Ne[R, A, B], bc Eq[R, B, C]) Ne[R, A, C] {
	return mintNe[R, A, C](ab, bc)
}

// EqNe rewrites the left side: A == B, B != C gives A != C.
func EqNe[R, A, B, C any](ab Eq[R, A, B], bc Ne[R, B, C]) Ne[R, A, C] {
	return mintNe[R, A, C](ab, bc)
}

// NeTransLeft is EqNe with the equality oriented the other way: C == A, A != B gives C != B.
func NeTransLeft[R, A, B, C any](ab Ne[R, A, B], ca Eq[R, C, A]) Ne[R, C, B] {
	return EqNe(ca, ab)
}

// --- Order ---

// EqLe weakens A == B to A <= B.
func EqLe[R, A, B any](w Eq[R, A, B]) Le[R, A, B] {
	return mintLe[R, A, B](w)
}

// LtLe weakens A < B to A <= B.
func LtLe[R, A, B any](w Lt[R, A, B]) Le[R, A, B] {
	return mintLe[R, A, B](w)
}

// LtNe turns A < B into A != B.
func LtNe[R, A, B any](w Lt[R, A, B]) Ne[R, A, B] {
	return mintNe[R, A, B](w)
}

func TransLe[R, A, B, C any](ab Le[R, A, B], bc Le[R, B, C]) Le[R, A, C] {
	return mintLe[R, A, C](ab, bc)
}

// TransLt composes A < B and B <= C into A < C.
func TransLt[R, A, B, C any](ab Lt[R, A, B], bc Le[R, B, C]) Lt[R, A, C] {
	return mintLt[R, A, C](ab, bc)
}

// TransLeLt composes A <= B and B < C into A < C.
func TransLeLt[R, A, B, C any](ab Le[R, A, B], bc Lt[R, B, C]) Lt[R, A, C] {
	return mintLt[R, A, C](ab, bc)
}

// LeEq rewrites the upper bound: A <= B, B == C gives A <= C.
func LeEq[R, A, B, C any](ab Le[R, A, B], bc Eq[R, B, C]) Le[R, A, C] {
	return TransLe(ab, EqLe(bc))
}

// EqLeTrans rewrites the lower bound: A == B, B <= C gives A <= C.
func EqLeTrans[R, A, B, C any](ab Eq[R, A, B], bc Le[R, B, C]) Le[R, A, C] {
	return TransLe(EqLe(ab), bc)
}

// LtEq rewrites the upper bound of a strict order.
func LtEq[R, A, B, C any](ab Lt[R, A, B], bc Eq[R, B, C]) Lt[R, A, C] {
	return TransLt(ab, EqLe(bc))
}

// EqLt rewrites the lower bound of a strict order.
func EqLt[R, A, B, C any](ab Eq[R, A, B], bc Lt[R, B, C]) Lt[R, A, C] {
	return TransLeLt(EqLe(ab), bc)
}

// Antisym collapses A <= B and B <= A into A == B.
func Antisym[R, A, B any](ab Le[R, A, B], ba Le[R, B, A]) Eq[R, A, B] {
	return mintEq[R, A, B](ab, ba)
}

// Strict strengthens A <= B to A < B given A != B.
func Strict[R, A, B any](le Le[R, A, B], ne Ne[R, A, B]) Lt[R, A, B] {
	return mintLt[R, A, B](le, ne)
}
