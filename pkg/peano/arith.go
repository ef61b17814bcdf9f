package peano

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Policy says what a representation does when arithmetic leaves its range.
type Policy int

const (
	// Checked panics with *OverflowError. This is the default.
	Checked Policy = iota
	// Wrapping reduces modulo 2^bits.
	Wrapping
	// Saturating clamps to the representable range.
	Saturating
)

func (p Policy) String() string {
	switch p {
	case Wrapping:
		return "wrapping"
	case Saturating:
		return "saturating"
	default:
		return "checked"
	}
}

type policied interface {
	OverflowPolicy() Policy
}

// PolicyOf reports the overflow policy of representation N.
func PolicyOf[N Integer]() Policy {
	var n N
	if p, ok := any(n).(policied); ok {
		return p.OverflowPolicy()
	}
	return Checked
}

type (
	WrappingU8  uint8
	WrappingU16 uint16
	WrappingU32 uint32
	WrappingU64 uint64
	WrappingI8  int8
	WrappingI16 int16
	WrappingI32 int32
	WrappingI64 int64

	SaturatingU8  uint8
	SaturatingU16 uint16
	SaturatingU32 uint32
	SaturatingU64 uint64
	SaturatingI8  int8
	SaturatingI16 int16
	SaturatingI32 int32
	SaturatingI64 int64
)

func (WrappingU8) OverflowPolicy() Policy  { return Wrapping }
func (WrappingU16) OverflowPolicy() Policy { return Wrapping }
func (WrappingU32) OverflowPolicy() Policy { return Wrapping }
func (WrappingU64) OverflowPolicy() Policy { return Wrapping }
func (WrappingI8) OverflowPolicy() Policy  { return Wrapping }
func (WrappingI16) OverflowPolicy() Policy { return Wrapping }
func (WrappingI32) OverflowPolicy() Policy { return Wrapping }
func (WrappingI64) OverflowPolicy() Policy { return Wrapping }

func (SaturatingU8) OverflowPolicy() Policy  { return Saturating }
func (SaturatingU16) OverflowPolicy() Policy { return Saturating }
func (SaturatingU32) OverflowPolicy() Policy { return Saturating }
func (SaturatingU64) OverflowPolicy() Policy { return Saturating }
func (SaturatingI8) OverflowPolicy() Policy  { return Saturating }
func (SaturatingI16) OverflowPolicy() Policy { return Saturating }
func (SaturatingI32) OverflowPolicy() Policy { return Saturating }
func (SaturatingI64) OverflowPolicy() Policy { return Saturating }

// OverflowError is the panic value raised when checked term evaluation
// leaves the range of its representation.
type OverflowError struct {
	Op   string
	Repr string
	Args []string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("overflow in term evaluation: %s%v on %s", e.Op, e.Args, e.Repr)
}

func overflow[N Integer](op string, args ...N) *OverflowError {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = fmt.Sprint(a)
	}
	return &OverflowError{Op: op, Repr: reflect.TypeFor[N]().String(), Args: strs}
}

func isSigned[N Integer]() bool {
	var z N
	return z-1 < z
}

// minusOne is -1 for signed N and the maximum for unsigned N.
func minusOne[N Integer]() N {
	var z N
	return z - 1
}

func bounds[N Integer]() (lo, hi N) {
	if !isSigned[N]() {
		var z N
		return z, ^z
	}
	var one N = 1
	bits := unsafe.Sizeof(one) * 8
	hi = one<<(bits-1) - 1
	return -hi - 1, hi
}

// resolve applies N's policy to an operation whose exact result did not fit.
// high tells which end of the range the exact result fell off.
func resolve[N Integer](wrapped N, high bool, op string, args ...N) N {
	switch PolicyOf[N]() {
	case Wrapping:
		return wrapped
	case Saturating:
		lo, hi := bounds[N]()
		if high {
			return hi
		}
		return lo
	default:
		panic(overflow(op, args...))
	}
}

func add[N Integer](a, b N) N {
	r := a + b
	var z N
	switch {
	case !isSigned[N]() && r < a:
		return resolve(r, true, "add", a, b)
	case isSigned[N]() && b > z && r < a:
		return resolve(r, true, "add", a, b)
	case isSigned[N]() && b < z && r > a:
		return resolve(r, false, "add", a, b)
	}
	return r
}

func sub[N Integer](a, b N) N {
	r := a - b
	var z N
	switch {
	case !isSigned[N]() && b > a:
		return resolve(r, false, "sub", a, b)
	case isSigned[N]() && b > z && r > a:
		return resolve(r, false, "sub", a, b)
	case isSigned[N]() && b < z && r < a:
		return resolve(r, true, "sub", a, b)
	}
	return r
}

func neg[N Integer](a N) N {
	var z N
	return sub(z, a)
}

func mul[N Integer](a, b N) N {
	var z N
	if a == z || b == z {
		return z
	}
	r := a * b
	lo, _ := bounds[N]()
	m1 := minusOne[N]()
	negative := isSigned[N]() && (a < z) != (b < z)
	if isSigned[N]() && ((a == m1 && b == lo) || (b == m1 && a == lo)) {
		return resolve(r, true, "mul", a, b)
	}
	if r/b != a {
		return resolve(r, !negative, "mul", a, b)
	}
	return r
}

func div[N Integer](a, b N) N {
	var z N
	if b == z {
		panic(overflow("div", a, b))
	}
	lo, _ := bounds[N]()
	if isSigned[N]() && a == lo && b == minusOne[N]() {
		return resolve(a, true, "div", a, b)
	}
	return a / b
}

func rem[N Integer](a, b N) N {
	var z N
	if b == z {
		panic(overflow("rem", a, b))
	}
	lo, _ := bounds[N]()
	if isSigned[N]() && a == lo && b == minusOne[N]() {
		return z
	}
	return a % b
}
