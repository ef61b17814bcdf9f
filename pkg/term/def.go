package term

// Def is the term for the default (zero) value of N.
type Def[N any] struct{}

func (Def[N]) Repr() (n N) { return n }

// DefOf returns the zero value of N tagged with Def[N].
func DefOf[N any]() Value[N, Def[N]] {
	var zero N
	return Define[Def[N]](zero)
}

// Erased is the term of a value whose term has been forgotten. No Value is
// tagged with it: a payload indexed by Erased[N] is reachable only by
// unpacking the pair that holds it under a fresh name.
type Erased[N any] struct{}

func (Erased[N]) Repr() (n N) { return n }
