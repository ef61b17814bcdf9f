package audit

import (
	"github.com/funvibe/deptypes/internal/config"
	"github.com/funvibe/deptypes/pkg/logic"
	"github.com/funvibe/deptypes/pkg/term"
)

var bools = []bool{false, true}

// Boolean checks are exhaustive; the bound does not apply.
func exhaustive(check func([]bool) error) func(int) error {
	return func(int) error { return check(bools) }
}

type (
	ba = logic.Value[va[bool]]
	bb = logic.Value[vb[bool]]
	bc = logic.Value[vc[bool]]
	bd = logic.Value[vd[bool]]
)

func logicEntries() []*Entry {
	entry := func(name, statement, trust string, check func([]bool) error) *Entry {
		return &Entry{Family: config.FamilyLogic, Name: name, Statement: statement, Trust: trust, Check: exhaustive(check)}
	}
	return []*Entry{
		entry("NotCong", "a = b => !a = !b", trustAny, notCong),
		entry("AndCong", "a = b, c = d => a & c = b & d", trustAny, andCong),
		entry("OrCong", "a = b, c = d => a | c = b | d", trustAny, orCong),
		entry("XorCong", "a = b, c = d => a ^ c = b ^ d", trustAny, xorCong),

		entry("TrueNeFalse", "true != false", trustAny, trueNeFalse),
		entry("TwoValued", "a != c, b != c => a = b", trustBoolean, twoValued),
		entry("NotNe", "!a != a", trustAny, notNe),

		entry("AndTrue", "a & true = a", trustAny, boolEq1(func(a ba) error { return agree(logic.AndTrue[va[bool]](), logic.AndOf(a, logic.TrueValue), a) })),
		entry("AndFalse", "a & false = false", trustAny, boolEq1(func(a ba) error {
			return agree(logic.AndFalse[va[bool]](), logic.AndOf(a, logic.FalseValue), logic.FalseValue)
		})),
		entry("AndComm", "a & b = b & a", trustAny, boolEq2(func(a ba, b bb) error {
			return agree(logic.AndComm[va[bool], vb[bool]](), logic.AndOf(a, b), logic.AndOf(b, a))
		})),
		entry("AndIdem", "a & a = a", trustAny, boolEq1(func(a ba) error { return agree(logic.AndIdem[va[bool]](), logic.AndOf(a, a), a) })),
		entry("AndAbsorb", "a & (a | b) = a", trustAny, boolEq2(func(a ba, b bb) error {
			return agree(logic.AndAbsorb[va[bool], vb[bool]](), logic.AndOf(a, logic.OrOf(a, b)), a)
		})),

		entry("OrFalse", "a | false = a", trustAny, boolEq1(func(a ba) error { return agree(logic.OrFalse[va[bool]](), logic.OrOf(a, logic.FalseValue), a) })),
		entry("OrTrue", "a | true = true", trustAny, boolEq1(func(a ba) error {
			return agree(logic.OrTrue[va[bool]](), logic.OrOf(a, logic.TrueValue), logic.TrueValue)
		})),
		entry("OrComm", "a | b = b | a", trustAny, boolEq2(func(a ba, b bb) error {
			return agree(logic.OrComm[va[bool], vb[bool]](), logic.OrOf(a, b), logic.OrOf(b, a))
		})),
		entry("OrIdem", "a | a = a", trustAny, boolEq1(func(a ba) error { return agree(logic.OrIdem[va[bool]](), logic.OrOf(a, a), a) })),
		entry("OrAbsorb", "a | (a & b) = a", trustAny, boolEq2(func(a ba, b bb) error {
			return agree(logic.OrAbsorb[va[bool], vb[bool]](), logic.OrOf(a, logic.AndOf(a, b)), a)
		})),
		entry("ExcludedMiddle", "a | !a = true", trustAny, boolEq1(func(a ba) error {
			return agree(logic.ExcludedMiddle[va[bool]](), logic.OrOf(a, logic.NotOf(a)), logic.TrueValue)
		})),
		entry("DeMorganAnd", "!(a & b) = !a | !b", trustAny, boolEq2(func(a ba, b bb) error {
			return agree(logic.DeMorganAnd[va[bool], vb[bool]](), logic.NotOf(logic.AndOf(a, b)), logic.OrOf(logic.NotOf(a), logic.NotOf(b)))
		})),
		entry("DeMorganOr", "!(a | b) = !a & !b", trustAny, boolEq2(func(a ba, b bb) error {
			return agree(logic.DeMorganOr[va[bool], vb[bool]](), logic.NotOf(logic.OrOf(a, b)), logic.AndOf(logic.NotOf(a), logic.NotOf(b)))
		})),

		entry("XorFalse", "a ^ false = a", trustAny, boolEq1(func(a ba) error { return agree(logic.XorFalse[va[bool]](), logic.XorOf(a, logic.FalseValue), a) })),
		entry("XorTrue", "a ^ true = !a", trustAny, boolEq1(func(a ba) error {
			return agree(logic.XorTrue[va[bool]](), logic.XorOf(a, logic.TrueValue), logic.NotOf(a))
		})),
		entry("XorComm", "a ^ b = b ^ a", trustAny, boolEq2(func(a ba, b bb) error {
			return agree(logic.XorComm[va[bool], vb[bool]](), logic.XorOf(a, b), logic.XorOf(b, a))
		})),
		entry("XorSelf", "a ^ a = false", trustAny, boolEq1(func(a ba) error { return agree(logic.XorSelf[va[bool]](), logic.XorOf(a, a), logic.FalseValue) })),
	}
}

func boolEq1(body func(ba) error) func([]bool) error {
	return func(xs []bool) error { return forAll1(xs, body) }
}

func boolEq2(body func(ba, bb) error) func([]bool) error {
	return func(xs []bool) error { return forAll2(xs, body) }
}

func notCong(xs []bool) error {
	return forEqual1(xs, func(a ba, b bb, w term.ValueEq[va[bool], vb[bool]]) error {
		return agree(logic.NotCong(w), logic.NotOf(a), logic.NotOf(b))
	})
}

func andCong(xs []bool) error {
	return forEqual2(xs, func(a ba, b bb, c bc, d bd, ab term.ValueEq[va[bool], vb[bool]], cd term.ValueEq[vc[bool], vd[bool]]) error {
		return agree(logic.AndCong(ab, cd), logic.AndOf(a, c), logic.AndOf(b, d))
	})
}

func orCong(xs []bool) error {
	return forEqual2(xs, func(a ba, b bb, c bc, d bd, ab term.ValueEq[va[bool], vb[bool]], cd term.ValueEq[vc[bool], vd[bool]]) error {
		return agree(logic.OrCong(ab, cd), logic.OrOf(a, c), logic.OrOf(b, d))
	})
}

func xorCong(xs []bool) error {
	return forEqual2(xs, func(a ba, b bb, c bc, d bd, ab term.ValueEq[va[bool], vb[bool]], cd term.ValueEq[vc[bool], vd[bool]]) error {
		return agree(logic.XorCong(ab, cd), logic.XorOf(a, c), logic.XorOf(b, d))
	})
}

func trueNeFalse([]bool) error {
	return differ(logic.TrueNeFalse(), logic.TrueValue, logic.FalseValue)
}

func notNe(xs []bool) error {
	return forAll1(xs, func(a ba) error {
		return differ(logic.NotNe[va[bool]](), logic.NotOf(a), a)
	})
}

// twoValued checks every triple where both premises hold.
func twoValued(xs []bool) error {
	return forAll3(xs, func(a ba, b bb, c bc) error {
		ac, ok := term.Equal(a, c).Right()
		if !ok {
			return nil
		}
		bcNe, ok := term.Equal(b, c).Right()
		if !ok {
			return nil
		}
		return agree(logic.TwoValued(ac, bcNe), a, b)
	})
}
