package rel

import "fmt"

// UnmintedError is the panic value raised when a witness that was never
// minted (a Go zero value) reaches a combinator or a consumer.
type UnmintedError struct {
	Claim string
}

func newUnmintedError(claim string) *UnmintedError {
	return &UnmintedError{Claim: claim}
}

func (e *UnmintedError) Error() string {
	return fmt.Sprintf("rel: witness %q used without being minted", e.Claim)
}

// ReprError is the panic value raised when witnesses proven for different
// value representations are combined, or a witness is applied to a value of
// another representation.
type ReprError struct {
	Claim string
	Have  string
	Want  string
}

func (e *ReprError) Error() string {
	return fmt.Sprintf("rel: %s: proven for %s, used with %s", e.Claim, e.Want, e.Have)
}
