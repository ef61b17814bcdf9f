package peano

import "github.com/funvibe/deptypes/pkg/term"

type Value[N, A any] = term.Value[N, A]

func ZeroOf[N Integer]() Value[N, Zero[N]] {
	return term.DefOf[N]()
}

func OneOf[N Integer]() Value[N, One[N]] {
	return SuccOf(ZeroOf[N]())
}

func TwoOf[N Integer]() Value[N, Two[N]] {
	return SuccOf(OneOf[N]())
}

func ThreeOf[N Integer]() Value[N, Three[N]] {
	return SuccOf(TwoOf[N]())
}

func FourOf[N Integer]() Value[N, Four[N]] {
	return SuccOf(ThreeOf[N]())
}

func SuccOf[N Integer, A any](a Value[N, A]) Value[N, Succ[A]] {
	var one N = 1
	return term.DefineFrom[Succ[A]](add(a.Get(), one), a)
}

func PredOf[N Integer, A any](a Value[N, A]) Value[N, Pred[N, A]] {
	return SubOf(a, OneOf[N]())
}

func AddOf[N Integer, A, B any](a Value[N, A], b Value[N, B]) Value[N, Add[A, B]] {
	return term.DefineFrom[Add[A, B]](add(a.Get(), b.Get()), a, b)
}

func SubOf[N Integer, A, B any](a Value[N, A], b Value[N, B]) Value[N, Sub[A, B]] {
	return term.DefineFrom[Sub[A, B]](sub(a.Get(), b.Get()), a, b)
}

func NegOf[N Integer, A any](a Value[N, A]) Value[N, Neg[A]] {
	return term.DefineFrom[Neg[A]](neg(a.Get()), a)
}

func MulOf[N Integer, A, B any](a Value[N, A], b Value[N, B]) Value[N, Mul[A, B]] {
	return term.DefineFrom[Mul[A, B]](mul(a.Get(), b.Get()), a, b)
}

// DivOf panics when b is zero.
func DivOf[N Integer, A, B any](a Value[N, A], b Value[N, B]) Value[N, Div[A, B]] {
	return term.DefineFrom[Div[A, B]](div(a.Get(), b.Get()), a, b)
}

// RemOf panics when b is zero.
func RemOf[N Integer, A, B any](a Value[N, A], b Value[N, B]) Value[N, Rem[A, B]] {
	return term.DefineFrom[Rem[A, B]](rem(a.Get(), b.Get()), a, b)
}
