package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "nested", "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleReport(started time.Time) *Report {
	return &Report{
		RunID:   uuid.New(),
		Started: started,
		Bound:   100,
		Results: []Result{
			{Family: "peano", Axiom: "AddComm", Statement: "a + b = b + a", Status: StatusPass, Duration: 1500 * time.Microsecond},
			{Family: "peano", Axiom: "AddLe", Statement: "a <= b, c <= d => a + c <= b + d", Status: StatusFail,
				Detail: "a=1 b=0: boom", Duration: 42},
			{Family: "logic", Axiom: "TwoValued", Statement: "a != c, b != c => a = b", Status: StatusSkipped},
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rep := sampleReport(time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC))
	require.NoError(t, s.Save(ctx, rep))

	got, err := s.Results(ctx, rep.RunID)
	require.NoError(t, err)
	if diff := cmp.Diff(rep.Results, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	want := RunSummary{RunID: rep.RunID, Started: rep.Started, Bound: 100, Passed: 1, Failed: 1, Skipped: 1}
	if diff := cmp.Diff(want, runs[0]); diff != "" {
		t.Errorf("run mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := sampleReport(base)
	newer := sampleReport(base.Add(100 * time.Millisecond))
	newest := sampleReport(base.Add(time.Second))
	for _, r := range []*Report{newer, older, newest} {
		require.NoError(t, s.Save(ctx, r))
	}

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	var ids []uuid.UUID
	for _, r := range runs {
		ids = append(ids, r.RunID)
	}
	assert.Equal(t, []uuid.UUID{newest.RunID, newer.RunID, older.RunID}, ids)

	runs, err = s.Runs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, newest.RunID, runs[0].RunID)
}

func TestStoreRejectsDuplicateRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rep := sampleReport(time.Now())
	require.NoError(t, s.Save(ctx, rep))
	require.Error(t, s.Save(ctx, rep))

	// The failed save is rolled back.
	got, err := s.Results(ctx, rep.RunID)
	require.NoError(t, err)
	assert.Len(t, got, len(rep.Results))
}

func TestStoreUnknownRun(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Results(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, got)
}
