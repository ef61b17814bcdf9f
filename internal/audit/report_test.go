package audit

import (
	"go/token"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterReport(t *testing.T) {
	rep := sampleReport(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	rep.RunID = uuid.MustParse("6f1c2a8e-2b1d-4a43-9d2c-3b1f4c8e9a10")

	var b strings.Builder
	require.NoError(t, (&Printer{Out: &b}).Report(rep))

	want := `run 6f1c2a8e-2b1d-4a43-9d2c-3b1f4c8e9a10  bound 100  2026-03-01T12:00:00Z
  PASS     peano.AddComm    a + b = b + a  (1.5ms)
  FAIL     peano.AddLe      a <= b, c <= d => a + c <= b + d  (0s)
      a=1 b=0: boom
  SKIPPED  logic.TwoValued  a != c, b != c => a = b
1 passed, 1 failed, 1 skipped
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinterColor(t *testing.T) {
	rep := sampleReport(time.Now())

	var plain, colored strings.Builder
	require.NoError(t, (&Printer{Out: &plain}).Report(rep))
	require.NoError(t, (&Printer{Out: &colored, Color: true}).Report(rep))

	assert.NotContains(t, plain.String(), "\033[")
	assert.Contains(t, colored.String(), "\033[31mFAIL\033[39m")
	assert.Contains(t, colored.String(), "\033[32mPASS\033[39m")
}

func TestPrinterSites(t *testing.T) {
	sites := []Site{
		{Package: "p", Func: "AddComm", Callee: "rel.AxiomEq", Pos: token.Position{Filename: "axioms.go", Line: 3, Column: 9}, Allowed: true},
		{Package: "q", Func: "Vec.Cheat", Callee: "rel.DefineEq", Pos: token.Position{Filename: "vec.go", Line: 7, Column: 2}},
	}
	var b strings.Builder
	require.NoError(t, (&Printer{Out: &b}).Sites(sites))
	assert.Equal(t, "  axioms.go:3:9: AddComm calls rel.AxiomEq\n! vec.go:7:2: Vec.Cheat calls rel.DefineEq\n", b.String())
}

func TestPrinterLedger(t *testing.T) {
	var b strings.Builder
	require.NoError(t, (&Printer{Out: &b}).Ledger(DefaultLedger))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "peano\n"))
	assert.Contains(t, out, "\nlogic\n")
	assert.Contains(t, out, "AddComm")
	assert.Contains(t, out, "[checked, wrapping]")
	assert.Equal(t, DefaultLedger.Len()+2, strings.Count(out, "\n"))
}
