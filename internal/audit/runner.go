package audit

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusSkipped Status = "skipped"
)

// Result is the outcome of one axiom check.
type Result struct {
	Family    string
	Axiom     string
	Statement string
	Status    Status
	Detail    string
	Duration  time.Duration
}

// Report is the outcome of one run.
type Report struct {
	RunID   uuid.UUID
	Started time.Time
	Bound   int
	Results []Result
}

// Failed returns the failing results.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == StatusFail {
			out = append(out, res)
		}
	}
	return out
}

// Counts returns the number of results per status.
func (r *Report) Counts() map[Status]int {
	counts := make(map[Status]int, 3)
	for _, res := range r.Results {
		counts[res.Status]++
	}
	return counts
}

// Runner checks the axioms of a ledger.
type Runner struct {
	ledger *Ledger
	logger *zap.Logger
	now    func() time.Time
}

// NewRunner creates a runner over ledger. A nil ledger means DefaultLedger
// and a nil logger discards output.
func NewRunner(ledger *Ledger, logger *zap.Logger) *Runner {
	if ledger == nil {
		ledger = DefaultLedger
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{ledger: ledger, logger: logger, now: time.Now}
}

// Run checks every axiom the profile selects. Results keep ledger order.
// A failing axiom does not stop the run; only cancellation of ctx does.
func (r *Runner) Run(ctx context.Context, p *Profile) (*Report, error) {
	if p == nil {
		p = DefaultProfile()
	}
	report := &Report{
		RunID:   uuid.New(),
		Started: r.now(),
		Bound:   p.Bound,
	}

	var selected []*Entry
	for _, e := range r.ledger.Entries() {
		if p.Selected(e) {
			selected = append(selected, e)
		}
	}
	report.Results = make([]Result, len(selected))

	log := r.logger.With(zap.String("run", report.RunID.String()), zap.Int("bound", p.Bound))
	log.Info("audit started", zap.Int("axioms", len(selected)), zap.Int("workers", p.Workers))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.Workers)

	for i, e := range selected {
		if p.Skipped(e) {
			report.Results[i] = Result{Family: e.Family, Axiom: e.Name, Statement: e.Statement, Status: StatusSkipped}
			continue
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res := r.check(e, p.Bound)
			report.Results[i] = res

			if res.Status == StatusFail {
				log.Warn("axiom failed", zap.String("axiom", e.Name), zap.String("detail", res.Detail))
			} else {
				log.Debug("axiom passed", zap.String("axiom", e.Name), zap.Duration("took", res.Duration))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("audit run %s: %w", report.RunID, err)
	}

	counts := report.Counts()
	log.Info("audit finished",
		zap.Int("passed", counts[StatusPass]),
		zap.Int("failed", counts[StatusFail]),
		zap.Int("skipped", counts[StatusSkipped]))
	return report, nil
}

// check runs one entry, turning a panic into a failure.
func (r *Runner) check(e *Entry, bound int) (res Result) {
	res = Result{Family: e.Family, Axiom: e.Name, Statement: e.Statement}
	start := r.now()
	defer func() {
		res.Duration = r.now().Sub(start)
		if rec := recover(); rec != nil {
			res.Status = StatusFail
			res.Detail = fmt.Sprintf("panic: %v", rec)
			r.logger.Debug("axiom check panicked", zap.String("axiom", e.Name), zap.ByteString("stack", debug.Stack()))
		}
	}()

	if err := e.Check(bound); err != nil {
		res.Status = StatusFail
		res.Detail = err.Error()
		return res
	}
	res.Status = StatusPass
	return res
}
