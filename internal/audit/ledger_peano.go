package audit

import (
	"fmt"

	"github.com/funvibe/deptypes/internal/config"
	"github.com/funvibe/deptypes/pkg/peano"
	"github.com/funvibe/deptypes/pkg/term"
)

// Trust notes
const (
	trustAny      = "any representation"
	trustRing     = "checked, wrapping"
	trustOrder    = "checked"
	trustUnsigned = "unsigned"
	trustBoolean  = "boolean terms"
)

type w8 = peano.WrappingU8

// ring checks an equational axiom on int32 samples up to the bound and on
// 8-bit wrapping values, where every overflow case is reachable.
func ring(limit int, on32 func([]int32) error, on8 func([]w8) error) func(int) error {
	return func(bound int) error {
		if err := on32(signedSamples(bound, limit)); err != nil {
			return fmt.Errorf("int32: %w", err)
		}
		if err := on8(wrappingSamples(limit)); err != nil {
			return fmt.Errorf("WrappingU8: %w", err)
		}
		return nil
	}
}

func order(limit int, on32 func([]int32) error) func(int) error {
	return func(bound int) error {
		if err := on32(signedSamples(bound, limit)); err != nil {
			return fmt.Errorf("int32: %w", err)
		}
		return nil
	}
}

func peanoEntries() []*Entry {
	entry := func(name, statement, trust string, check func(int) error) *Entry {
		return &Entry{Family: config.FamilyPeano, Name: name, Statement: statement, Trust: trust, Check: check}
	}
	return []*Entry{
		entry("SuccCong", "a = b => S(a) = S(b)", trustAny, ring(unaryLimit, succCong[int32], succCong[w8])),
		entry("NegCong", "a = b => -a = -b", trustAny, ring(unaryLimit, negCong[int32], negCong[w8])),
		entry("AddCong", "a = b, c = d => a + c = b + d", trustAny, ring(binaryLimit, addCong[int32], addCong[w8])),
		entry("SubCong", "a = b, c = d => a - c = b - d", trustAny, ring(binaryLimit, subCong[int32], subCong[w8])),
		entry("MulCong", "a = b, c = d => a * c = b * d", trustAny, ring(binaryLimit, mulCong[int32], mulCong[w8])),
		entry("DivCong", "a = b, c = d => a / c = b / d", trustAny, ring(binaryLimit, divCong[int32], divCong[w8])),
		entry("RemCong", "a = b, c = d => a % c = b % d", trustAny, ring(binaryLimit, remCong[int32], remCong[w8])),

		entry("AddZero", "a + 0 = a", trustRing, ring(unaryLimit, addZero[int32], addZero[w8])),
		entry("AddSucc", "a + S(b) = S(a + b)", trustRing, ring(binaryLimit, addSucc[int32], addSucc[w8])),
		entry("SubAdd", "(a - b) + b = a", trustRing, ring(binaryLimit, subAdd[int32], subAdd[w8])),
		entry("AddSub", "(a + b) - b = a", trustRing, ring(binaryLimit, addSub[int32], addSub[w8])),
		entry("NegSub", "-a = 0 - a", trustRing, ring(unaryLimit, negSub[int32], negSub[w8])),
		entry("AddComm", "a + b = b + a", trustRing, ring(binaryLimit, addComm[int32], addComm[w8])),
		entry("AddAssoc", "a + (b + c) = (a + b) + c", trustRing, ring(ternaryLimit, addAssoc[int32], addAssoc[w8])),
		entry("SuccInj", "S(a) = S(b) => a = b", trustRing, ring(binaryLimit, succInj[int32], succInj[w8])),

		entry("MulZero", "a * 0 = 0", trustRing, ring(unaryLimit, mulZero[int32], mulZero[w8])),
		entry("MulSucc", "a * S(b) = a * b + a", trustRing, ring(binaryLimit, mulSucc[int32], mulSucc[w8])),
		entry("MulComm", "a * b = b * a", trustRing, ring(binaryLimit, mulComm[int32], mulComm[w8])),
		entry("DivRem", "b != 0 => (a / b) * b + a % b = a", trustRing, ring(binaryLimit, divRem[int32], divRem[w8])),

		entry("LtSucc", "a < S(a)", trustOrder, order(unaryLimit, ltSucc[int32])),
		entry("NonNeg", "0 <= a", trustUnsigned, func(bound int) error {
			if err := nonNeg(unsignedSamples(bound, unaryLimit)); err != nil {
				return fmt.Errorf("uint32: %w", err)
			}
			if err := nonNeg(wrappingSamples(unaryLimit)); err != nil {
				return fmt.Errorf("WrappingU8: %w", err)
			}
			return nil
		}),
		entry("AddLe", "a <= b, c <= d => a + c <= b + d", trustOrder, order(quaternaryLimit, addLe[int32])),
	}
}

type (
	val[N, A any] = term.Value[N, A]
)

// --- Congruence ---

func succCong[N peano.Integer](xs []N) error {
	return forEqual1(xs, func(a val[N, va[N]], b val[N, vb[N]], w term.ValueEq[va[N], vb[N]]) error {
		return agree(peano.SuccCong(w), peano.SuccOf(a), peano.SuccOf(b))
	})
}

func negCong[N peano.Integer](xs []N) error {
	return forEqual1(xs, func(a val[N, va[N]], b val[N, vb[N]], w term.ValueEq[va[N], vb[N]]) error {
		return agree(peano.NegCong(w), peano.NegOf(a), peano.NegOf(b))
	})
}

func addCong[N peano.Integer](xs []N) error {
	return forEqual2(xs, func(a val[N, va[N]], b val[N, vb[N]], c val[N, vc[N]], d val[N, vd[N]], ab term.ValueEq[va[N], vb[N]], cd term.ValueEq[vc[N], vd[N]]) error {
		return agree(peano.AddCong(ab, cd), peano.AddOf(a, c), peano.AddOf(b, d))
	})
}

func subCong[N peano.Integer](xs []N) error {
	return forEqual2(xs, func(a val[N, va[N]], b val[N, vb[N]], c val[N, vc[N]], d val[N, vd[N]], ab term.ValueEq[va[N], vb[N]], cd term.ValueEq[vc[N], vd[N]]) error {
		return agree(peano.SubCong(ab, cd), peano.SubOf(a, c), peano.SubOf(b, d))
	})
}

func mulCong[N peano.Integer](xs []N) error {
	return forEqual2(xs, func(a val[N, va[N]], b val[N, vb[N]], c val[N, vc[N]], d val[N, vd[N]], ab term.ValueEq[va[N], vb[N]], cd term.ValueEq[vc[N], vd[N]]) error {
		return agree(peano.MulCong(ab, cd), peano.MulOf(a, c), peano.MulOf(b, d))
	})
}

func divCong[N peano.Integer](xs []N) error {
	return forEqual2(xs, func(a val[N, va[N]], b val[N, vb[N]], c val[N, vc[N]], d val[N, vd[N]], ab term.ValueEq[va[N], vb[N]], cd term.ValueEq[vc[N], vd[N]]) error {
		if c.Get() == 0 {
			return nil
		}
		return agree(peano.DivCong(ab, cd), peano.DivOf(a, c), peano.DivOf(b, d))
	})
}

func remCong[N peano.Integer](xs []N) error {
	return forEqual2(xs, func(a val[N, va[N]], b val[N, vb[N]], c val[N, vc[N]], d val[N, vd[N]], ab term.ValueEq[va[N], vb[N]], cd term.ValueEq[vc[N], vd[N]]) error {
		if c.Get() == 0 {
			return nil
		}
		return agree(peano.RemCong(ab, cd), peano.RemOf(a, c), peano.RemOf(b, d))
	})
}

// --- Addition and subtraction ---

func addZero[N peano.Integer](xs []N) error {
	return forAll1(xs, func(a val[N, va[N]]) error {
		return agree(peano.AddZero[N, va[N]](), peano.AddOf(a, peano.ZeroOf[N]()), a)
	})
}

func addSucc[N peano.Integer](xs []N) error {
	return forAll2(xs, func(a val[N, va[N]], b val[N, vb[N]]) error {
		return agree(peano.AddSucc[N, va[N], vb[N]](), peano.AddOf(a, peano.SuccOf(b)), peano.SuccOf(peano.AddOf(a, b)))
	})
}

func subAdd[N peano.Integer](xs []N) error {
	return forAll2(xs, func(a val[N, va[N]], b val[N, vb[N]]) error {
		return agree(peano.SubAdd[N, va[N], vb[N]](), peano.AddOf(peano.SubOf(a, b), b), a)
	})
}

func addSub[N peano.Integer](xs []N) error {
	return forAll2(xs, func(a val[N, va[N]], b val[N, vb[N]]) error {
		return agree(peano.AddSub[N, va[N], vb[N]](), peano.SubOf(peano.AddOf(a, b), b), a)
	})
}

func negSub[N peano.Integer](xs []N) error {
	return forAll1(xs, func(a val[N, va[N]]) error {
		return agree(peano.NegSub[N, va[N]](), peano.NegOf(a), peano.SubOf(peano.ZeroOf[N](), a))
	})
}

func addComm[N peano.Integer](xs []N) error {
	return forAll2(xs, func(a val[N, va[N]], b val[N, vb[N]]) error {
		return agree(peano.AddComm[N, va[N], vb[N]](), peano.AddOf(a, b), peano.AddOf(b, a))
	})
}

func addAssoc[N peano.Integer](xs []N) error {
	return forAll3(xs, func(a val[N, va[N]], b val[N, vb[N]], c val[N, vc[N]]) error {
		return agree(peano.AddAssoc[N, va[N], vb[N], vc[N]](),
			peano.AddOf(a, peano.AddOf(b, c)), peano.AddOf(peano.AddOf(a, b), c))
	})
}

// succInj only has a premise on the diagonal.
func succInj[N peano.Integer](xs []N) error {
	return forAll2(xs, func(a val[N, va[N]], b val[N, vb[N]]) error {
		w, ok := term.Equal(peano.SuccOf(a), peano.SuccOf(b)).Left()
		if !ok {
			return nil
		}
		return agree(peano.SuccInj[N](w), a, b)
	})
}

// --- Multiplication and division ---

func mulZero[N peano.Integer](xs []N) error {
	return forAll1(xs, func(a val[N, va[N]]) error {
		return agree(peano.MulZero[N, va[N]](), peano.MulOf(a, peano.ZeroOf[N]()), peano.ZeroOf[N]())
	})
}

func mulSucc[N peano.Integer](xs []N) error {
	return forAll2(xs, func(a val[N, va[N]], b val[N, vb[N]]) error {
		return agree(peano.MulSucc[N, va[N], vb[N]](), peano.MulOf(a, peano.SuccOf(b)), peano.AddOf(peano.MulOf(a, b), a))
	})
}

func mulComm[N peano.Integer](xs []N) error {
	return forAll2(xs, func(a val[N, va[N]], b val[N, vb[N]]) error {
		return agree(peano.MulComm[N, va[N], vb[N]](), peano.MulOf(a, b), peano.MulOf(b, a))
	})
}

func divRem[N peano.Integer](xs []N) error {
	return forAll2(xs, func(a val[N, va[N]], b val[N, vb[N]]) error {
		nz, ok := term.Equal(b, peano.ZeroOf[N]()).Right()
		if !ok {
			return nil
		}
		lhs := peano.AddOf(peano.MulOf(peano.DivOf(a, b), b), peano.RemOf(a, b))
		return agree(peano.DivRem[N, va[N], vb[N]](nz), lhs, a)
	})
}

// --- Order ---

func ltSucc[N peano.Integer](xs []N) error {
	return forAll1(xs, func(a val[N, va[N]]) error {
		return below(peano.LtSucc[N, va[N]](), a, peano.SuccOf(a))
	})
}

func nonNeg[N peano.UInt](xs []N) error {
	return forAll1(xs, func(a val[N, va[N]]) error {
		return atMost(peano.NonNeg[N, va[N]](), peano.ZeroOf[N](), a)
	})
}

func addLe[N peano.Integer](xs []N) error {
	return forAll4(xs, func(a val[N, va[N]], b val[N, vb[N]], c val[N, vc[N]], d val[N, vd[N]]) error {
		ab, ok := term.Le(a, b)
		if !ok {
			return nil
		}
		cd, ok := term.Le(c, d)
		if !ok {
			return nil
		}
		return atMost(peano.AddLe[N](ab, cd), peano.AddOf(a, c), peano.AddOf(b, d))
	})
}
