package prettyprinter

import (
	"bytes"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// --- Term Printer (Output looks like arithmetic) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[string]int{
	"==": 1,
	"!=": 1,
	"<":  1,
	"<=": 1,
	">":  1,
	">=": 1,
	"|":  2,
	"^":  3,
	"&":  4,
	"+":  5,
	"-":  5,
	"*":  6,
	"/":  6,
	"%":  6,
}

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10
}

type notationKind int

const (
	notationConst notationKind = iota
	notationPrefix
	notationInfix
	notationFunc
	notationSucc
	notationLabel
)

type notation struct {
	kind   notationKind
	symbol string
}

var (
	notationsMu sync.RWMutex
	notations   = map[string]notation{}
)

func register(name string, n notation) {
	notationsMu.Lock()
	defer notationsMu.Unlock()
	notations[name] = n
}

// RegisterConst renders the term type name (e.g. "logic.True") as a fixed symbol.
func RegisterConst(name, symbol string) { register(name, notation{notationConst, symbol}) }

// RegisterPrefix renders a one-argument term as op followed by its argument.
func RegisterPrefix(name, op string) { register(name, notation{notationPrefix, op}) }

// RegisterInfix renders a two-argument term as "a op b".
func RegisterInfix(name, op string) { register(name, notation{notationInfix, op}) }

// RegisterFunc renders a term as fn(args...).
func RegisterFunc(name, fn string) { register(name, notation{notationFunc, fn}) }

// RegisterSucc marks the successor constructor. Chains ending in the
// zero constant collapse to numerals.
func RegisterSucc(name string) { register(name, notation{notationSucc, "S"}) }

// RegisterLabel renders a term by the bare name of its first type argument.
// Used for fresh names, where the argument is the scope's tag type.
func RegisterLabel(name string) { register(name, notation{notationLabel, ""}) }

func lookup(name string) (notation, bool) {
	notationsMu.RLock()
	defer notationsMu.RUnlock()
	n, ok := notations[name]
	return n, ok
}

// node is a parsed type name: Name[Args...]
type node struct {
	name string
	args []*node
}

type TermPrinter struct {
	buf bytes.Buffer
}

func NewTermPrinter() *TermPrinter {
	return &TermPrinter{}
}

func (p *TermPrinter) String() string {
	return p.buf.String()
}

func (p *TermPrinter) write(s string) {
	p.buf.WriteString(s)
}

// Term renders a term type in arithmetic notation.
func Term(t reflect.Type) string {
	p := NewTermPrinter()
	p.PrintType(t)
	return p.String()
}

// Relation renders "lhs op rhs" for two term types.
func Relation(lhs reflect.Type, op string, rhs reflect.Type) string {
	p := NewTermPrinter()
	p.PrintType(lhs)
	p.write(" " + op + " ")
	p.PrintType(rhs)
	return p.String()
}

func (p *TermPrinter) PrintType(t reflect.Type) {
	if t == nil {
		p.write("<nil>")
		return
	}
	raw := t.String()
	n, rest, ok := parseNode(raw)
	if !ok || strings.TrimSpace(rest) != "" {
		p.write(shortName(raw))
		return
	}
	p.printNode(n, 0, false)
}

func (p *TermPrinter) printNode(n *node, parentPrec int, isRight bool) {
	nt, ok := lookup(n.name)
	if !ok {
		p.write(shortName(n.name))
		if len(n.args) > 0 {
			p.write("[")
			for i, a := range n.args {
				if i > 0 {
					p.write(", ")
				}
				p.printNode(a, 0, false)
			}
			p.write("]")
		}
		return
	}

	switch nt.kind {
	case notationConst:
		p.write(nt.symbol)
	case notationLabel:
		if len(n.args) > 0 {
			p.write(shortName(n.args[0].name))
		} else {
			p.write(shortName(n.name))
		}
	case notationPrefix:
		p.write(nt.symbol)
		if len(n.args) > 0 {
			arg := n.args[0]
			if ant, ok := lookup(arg.name); ok && ant.kind == notationPrefix {
				p.write("(")
				p.printNode(arg, 0, false)
				p.write(")")
				return
			}
			// Prefix has high precedence
			p.printNode(arg, 100, false)
		}
	case notationSucc:
		if k, ok := numeral(n); ok {
			p.write(strconv.Itoa(k))
			return
		}
		p.write("S(")
		if len(n.args) > 0 {
			p.printNode(n.args[0], 0, false)
		}
		p.write(")")
	case notationFunc:
		p.write(nt.symbol + "(")
		for i, a := range n.args {
			if i > 0 {
				p.write(", ")
			}
			p.printNode(a, 0, false)
		}
		p.write(")")
	case notationInfix:
		if len(n.args) != 2 {
			p.write(shortName(n.name))
			return
		}
		prec := getPrecedence(nt.symbol)
		// All term operators are left-associative
		needParens := prec < parentPrec || (prec == parentPrec && isRight)
		if needParens {
			p.write("(")
		}
		p.printNode(n.args[0], prec, false)
		p.write(" " + nt.symbol + " ")
		p.printNode(n.args[1], prec, true)
		if needParens {
			p.write(")")
		}
	}
}

// numeral reports k when n is S^k(0).
func numeral(n *node) (int, bool) {
	k := 0
	for {
		nt, ok := lookup(n.name)
		if !ok {
			return 0, false
		}
		switch {
		case nt.kind == notationSucc && len(n.args) == 1:
			k++
			n = n.args[0]
		case nt.kind == notationConst && nt.symbol == "0":
			return k, true
		default:
			return 0, false
		}
	}
}

// parseNode reads Name[Arg, ...] from the front of s. Names inside type
// arguments carry full import paths; they are normalized to pkg.Name.
func parseNode(s string) (*node, string, bool) {
	s = strings.TrimLeft(s, " ")
	i := 0
	for i < len(s) && s[i] != '[' && s[i] != ']' && s[i] != ',' {
		i++
	}
	if i == 0 {
		return nil, s, false
	}
	n := &node{name: qualifiedName(strings.TrimSpace(s[:i]))}
	rest := s[i:]
	if !strings.HasPrefix(rest, "[") {
		return n, rest, true
	}
	rest = rest[1:]
	for {
		arg, r, ok := parseNode(rest)
		if !ok {
			return nil, s, false
		}
		n.args = append(n.args, arg)
		r = strings.TrimLeft(r, " ")
		if strings.HasPrefix(r, ",") {
			rest = r[1:]
			continue
		}
		if strings.HasPrefix(r, "]") {
			return n, r[1:], true
		}
		return nil, s, false
	}
}

// qualifiedName turns "github.com/x/y/pkg/term.Def" into "term.Def".
func qualifiedName(name string) string {
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		return name[idx+1:]
	}
	return name
}

// shortName drops the package qualifier: "term.Def" -> "Def".
func shortName(name string) string {
	name = qualifiedName(name)
	stars := len(name) - len(strings.TrimLeft(name, "*"))
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return name[:stars] + name[idx+1:]
	}
	return name
}
