package term

// Indexed is a payload D that stands for a statement about term A.
// Changing the index needs a proof that the old and new terms are equal.
type Indexed[A, D any] struct {
	data D
}

// Index files d under term A.
func Index[A, D any](d D) Indexed[A, D] {
	return Indexed[A, D]{data: d}
}

func (x Indexed[A, D]) Data() D { return x.data }

// Reindex moves x to an equal term.
func Reindex[A, B, D any](x Indexed[A, D], w ValueEq[A, B]) Indexed[B, D] {
	w.Check()
	return Indexed[B, D]{data: x.data}
}
