package audit

import (
	"fmt"
	"slices"
)

// Entry is one axiom of the trusted base.
type Entry struct {
	Family    string
	Name      string
	Statement string
	// Trust says which representations the axiom is accepted for.
	Trust string
	// Check evaluates the claim over values up to bound and returns a
	// *CounterExample, wrapped with the inputs, when it fails.
	Check func(bound int) error
}

// Ledger is an ordered registry of axioms.
type Ledger struct {
	entries []*Entry
	byName  map[string]*Entry
}

// NewLedger builds a ledger. It panics on duplicate names.
func NewLedger(entries ...*Entry) *Ledger {
	l := &Ledger{byName: make(map[string]*Entry, len(entries))}
	for _, e := range entries {
		if _, dup := l.byName[e.Name]; dup {
			panic(fmt.Sprintf("audit: axiom %s registered twice", e.Name))
		}
		l.byName[e.Name] = e
		l.entries = append(l.entries, e)
	}
	return l
}

// DefaultLedger records every axiom of the peano and logic packages.
var DefaultLedger = NewLedger(slices.Concat(peanoEntries(), logicEntries())...)

func (l *Ledger) Lookup(name string) (*Entry, bool) {
	e, ok := l.byName[name]
	return e, ok
}

// Entries returns the axioms in registration order.
func (l *Ledger) Entries() []*Entry {
	return slices.Clone(l.entries)
}

// Family returns the axioms of one family.
func (l *Ledger) Family(name string) []*Entry {
	var out []*Entry
	for _, e := range l.entries {
		if e.Family == name {
			out = append(out, e)
		}
	}
	return out
}

func (l *Ledger) Len() int { return len(l.entries) }
