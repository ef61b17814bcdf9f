package term

import "github.com/funvibe/deptypes/pkg/rel"

// This file holds the constructors that tag a runtime value with a term on
// the caller's word. Together with the witness constructors of package rel
// they are what `deptypes scan` audits.

// Define tags n with term A. The caller asserts that n is the value of A;
// term constructors call it with the result of evaluating their operation.
func Define[A, N any](n N) Value[N, A] {
	return Value[N, A]{v: n, ok: true}
}

// DefineFrom tags n with term A, which was computed from deps. When A is a
// scoped term the result inherits the leases of the scoped dependencies.
// It panics when two dependencies name the same fresh name from different
// scopes.
func DefineFrom[A, N any](n N, deps ...Dependency) Value[N, A] {
	var leases rel.Leases
	for _, d := range deps {
		leases = leases.With(d.leasesOf()...)
	}
	x := Value[N, A]{v: n, ok: true}
	if IsScoped[A]() {
		x.leases = leases
	}
	return x
}

// Minter is the lease of a scope that hands out fresh names. Mint fails once
// the scope has ended or has already named a value.
type Minter interface {
	Lease
	Mint() error
}

// DefineScoped tags n with a scoped term under the scope m, which must
// accept the mint.
func DefineScoped[A, N any](n N, m Minter) Value[N, A] {
	if err := m.Mint(); err != nil {
		panic(err)
	}
	return Value[N, A]{v: n, leases: rel.Leases{m}, ok: true}
}
