package term

import (
	"cmp"
	"math"
	"unsafe"

	"github.com/funvibe/deptypes/pkg/rel"
)

// Float is the set of floating-point representations.
type Float interface {
	~float32 | ~float64
}

// totalKey maps f to an unsigned key whose natural order is the IEEE 754
// totalOrder predicate: -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN.
func totalKey[F Float](f F) uint64 {
	if unsafe.Sizeof(f) == 4 {
		b := uint64(math.Float32bits(float32(f)))
		if b&(1<<31) != 0 {
			return ^b & 0xffffffff
		}
		return b | 1<<31
	}
	b := math.Float64bits(float64(f))
	if b&(1<<63) != 0 {
		return ^b
	}
	return b | 1<<63
}

// TotalEqual compares floats by bit pattern. Unlike ==, it is reflexive for
// NaN and tells -0 from +0.
func TotalEqual[F Float, A, B any](a Value[F, A], b Value[F, B]) rel.Or[ValueEq[A, B], ValueNe[A, B]] {
	if totalKey(a.Get()) == totalKey(b.Get()) {
		eq, _ := rel.DefineEq[ValueCmp, A, B](true, premises(a, b)...)
		return rel.Left[ValueEq[A, B], ValueNe[A, B]](eq)
	}
	ne, _ := rel.DefineNe[ValueCmp, A, B](true, premises(a, b)...)
	return rel.Right[ValueEq[A, B]](ne)
}

// TotalCmp is the three-way comparison under the IEEE 754 total order.
func TotalCmp[F Float, A, B any](a Value[F, A], b Value[F, B]) ValueOrdering[A, B] {
	return rel.DefineOrdering[ValueCmp, A, B](cmp.Compare(totalKey(a.Get()), totalKey(b.Get())), premises(a, b)...)
}

func TotalLe[F Float, A, B any](a Value[F, A], b Value[F, B]) (ValueLe[A, B], bool) {
	return rel.DefineLe[ValueCmp, A, B](totalKey(a.Get()) <= totalKey(b.Get()), premises(a, b)...)
}

func TotalLt[F Float, A, B any](a Value[F, A], b Value[F, B]) (ValueLt[A, B], bool) {
	return rel.DefineLt[ValueCmp, A, B](totalKey(a.Get()) < totalKey(b.Get()), premises(a, b)...)
}
