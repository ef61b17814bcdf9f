package audit

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Printer writes audit output as aligned plain text, optionally coloured.
type Printer struct {
	Out   io.Writer
	Color bool
}

func (p *Printer) paint(code int, s string) string {
	if !p.Color {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[39m", code, s)
}

func (p *Printer) status(s Status) string {
	label := strings.ToUpper(string(s))
	pad := strings.Repeat(" ", len("SKIPPED")-len(label))
	switch s {
	case StatusPass:
		return p.paint(32, label) + pad
	case StatusFail:
		return p.paint(31, label) + pad
	default:
		return p.paint(33, label) + pad
	}
}

// Report writes one run, one line per axiom, with failure details
// indented below the failing line.
func (p *Printer) Report(r *Report) error {
	nameWidth := 0
	for _, res := range r.Results {
		nameWidth = max(nameWidth, len(res.Family)+1+len(res.Axiom))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "run %s  bound %d  %s\n", r.RunID, r.Bound, r.Started.Format(time.RFC3339))
	for _, res := range r.Results {
		name := res.Family + "." + res.Axiom
		fmt.Fprintf(&b, "  %s  %-*s  %s", p.status(res.Status), nameWidth, name, res.Statement)
		if res.Status != StatusSkipped {
			fmt.Fprintf(&b, "  (%s)", res.Duration.Round(time.Microsecond))
		}
		b.WriteByte('\n')
		if res.Detail != "" {
			fmt.Fprintf(&b, "      %s\n", res.Detail)
		}
	}

	counts := r.Counts()
	fmt.Fprintf(&b, "%d passed, %d failed, %d skipped\n", counts[StatusPass], counts[StatusFail], counts[StatusSkipped])
	_, err := io.WriteString(p.Out, b.String())
	return err
}

// Runs writes the run history.
func (p *Printer) Runs(runs []RunSummary) error {
	var b strings.Builder
	for _, r := range runs {
		failed := fmt.Sprintf("%d failed", r.Failed)
		if r.Failed > 0 {
			failed = p.paint(31, failed)
		}
		fmt.Fprintf(&b, "%s  %s  bound %-6d %d passed, %s, %d skipped\n",
			r.RunID, r.Started.Local().Format(time.DateTime), r.Bound, r.Passed, failed, r.Skipped)
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}

// Sites writes trusted constructor references; unexpected ones are marked.
func (p *Printer) Sites(sites []Site) error {
	var b strings.Builder
	for _, s := range sites {
		mark := "  "
		if !s.Allowed {
			mark = p.paint(31, "! ")
		}
		fmt.Fprintf(&b, "%s%s\n", mark, s)
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}

// Ledger writes the registered axioms grouped by family.
func (p *Printer) Ledger(l *Ledger) error {
	var b strings.Builder
	family := ""
	for _, e := range l.Entries() {
		if e.Family != family {
			family = e.Family
			fmt.Fprintf(&b, "%s\n", p.paint(36, family))
		}
		fmt.Fprintf(&b, "  %-16s %-36s [%s]\n", e.Name, e.Statement, e.Trust)
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}
