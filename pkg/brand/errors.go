package brand

import "fmt"

// ScopeErrorKind classifies brand misuse.
type ScopeErrorKind int

const (
	// Stale: a branded value was read after its scope ended.
	Stale ScopeErrorKind = iota
	// Closed: a name was minted from a brand whose scope ended.
	Closed
	// Reused: a brand minted a second name.
	Reused
	// Overlap: a Tag was opened again on a goroutine where it is open.
	Overlap
	// NoScope: the zero Brand was used.
	NoScope
	// Mixed: names of one Tag from two different scopes were combined.
	Mixed
)

func (k ScopeErrorKind) String() string {
	switch k {
	case Stale:
		return "stale"
	case Closed:
		return "closed"
	case Reused:
		return "reused"
	case Overlap:
		return "overlap"
	case NoScope:
		return "no scope"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("ScopeErrorKind(%d)", int(k))
	}
}

// ScopeError is the panic value for every brand discipline violation.
type ScopeError struct {
	Kind       ScopeErrorKind
	Tag        string
	Generation uint64
	// Other is the second scope of a Mixed error.
	Other uint64
}

func (e *ScopeError) Error() string {
	switch e.Kind {
	case Stale:
		return fmt.Sprintf("brand %s#%d: value used after its scope ended", e.Tag, e.Generation)
	case Closed:
		return fmt.Sprintf("brand %s#%d: name minted after its scope ended", e.Tag, e.Generation)
	case Reused:
		return fmt.Sprintf("brand %s#%d: brand already minted its name", e.Tag, e.Generation)
	case Overlap:
		return fmt.Sprintf("brand %s: scope already open on this goroutine", e.Tag)
	case Mixed:
		return fmt.Sprintf("brand %s#%d: combined with a name from scope #%d", e.Tag, e.Generation, e.Other)
	default:
		return fmt.Sprintf("brand %s: %s", e.Tag, e.Kind)
	}
}
