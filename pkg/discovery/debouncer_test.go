package discovery

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestDebouncer_BurstRunsOnceWithFinalCriteria(t *testing.T) {
	var calls atomic.Int64
	d := NewDebouncer(30*time.Millisecond, func(ctx context.Context, c Criteria) (Result, error) {
		calls.Add(1)
		return Result{}, nil
	})
	defer d.Stop()

	d.Set(Criteria{Industry: strptr("Fintech")})
	d.Set(Criteria{Industry: strptr("SaaS")})
	d.Set(Criteria{Industry: strptr("AI")})

	select {
	case outcome := <-d.Results():
		require.NoError(t, outcome.Err)
		require.Equal(t, "AI", *outcome.Criteria.Industry)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for debounced result")
	}

	// settle; no further runs should fire
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int64(1), calls.Load())
}

func TestDebouncer_SetAfterWindowRunsAgain(t *testing.T) {
	var calls atomic.Int64
	d := NewDebouncer(10*time.Millisecond, func(ctx context.Context, c Criteria) (Result, error) {
		calls.Add(1)
		return Result{}, nil
	})
	defer d.Stop()

	d.Set(Criteria{Sort: "credibility"})
	<-d.Results()

	d.Set(Criteria{Sort: "recent"})
	outcome := <-d.Results()

	require.Equal(t, "recent", outcome.Criteria.Sort)
	require.Equal(t, int64(2), calls.Load())
}

func TestDebouncer_StaleInFlightResultDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int64

	d := NewDebouncer(10*time.Millisecond, func(ctx context.Context, c Criteria) (Result, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return Result{}, nil
	})
	defer d.Stop()

	d.Set(Criteria{Industry: strptr("Fintech")})
	<-started

	// supersede while the first run is in flight, then let it finish
	d.Set(Criteria{Industry: strptr("AI")})
	close(release)

	select {
	case outcome := <-d.Results():
		require.Equal(t, "AI", *outcome.Criteria.Industry)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for superseding result")
	}

	select {
	case outcome := <-d.Results():
		t.Fatalf("unexpected extra outcome for criteria %+v", outcome.Criteria)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncer_StopCancelsPendingRun(t *testing.T) {
	var calls atomic.Int64
	d := NewDebouncer(20*time.Millisecond, func(ctx context.Context, c Criteria) (Result, error) {
		calls.Add(1)
		return Result{}, nil
	})

	d.Set(Criteria{})
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	require.Equal(t, int64(0), calls.Load())
}

func TestDebouncer_SetAfterStopIsIgnored(t *testing.T) {
	var calls atomic.Int64
	d := NewDebouncer(10*time.Millisecond, func(ctx context.Context, c Criteria) (Result, error) {
		calls.Add(1)
		return Result{}, nil
	})

	d.Stop()
	d.Set(Criteria{})

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, int64(0), calls.Load())
}

func TestDebouncer_SupersededRunNeverDeliversLast(t *testing.T) {
	// Two Sets in quick succession race a finished first run against the
	// second's outcome commit; whatever interleaving the scheduler picks,
	// the superseding criteria must be the last outcome observed.
	for i := 0; i < 300; i++ {
		d := NewDebouncer(time.Millisecond, func(ctx context.Context, c Criteria) (Result, error) {
			return Result{}, nil
		})

		d.Set(Criteria{Sort: "credibility"})
		time.Sleep(60 * time.Microsecond)
		d.Set(Criteria{Sort: "recent"})

		var last Outcome
		select {
		case last = <-d.Results():
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for debounced result")
		}
		for quiet := false; !quiet; {
			select {
			case last = <-d.Results():
			case <-time.After(5 * time.Millisecond):
				quiet = true
			}
		}
		d.Stop()

		require.Equal(t, "recent", last.Criteria.Sort, "iteration %d delivered superseded criteria last", i)
	}
}

func TestDebouncer_ZeroWindowUsesDefault(t *testing.T) {
	d := NewDebouncer(0, func(ctx context.Context, c Criteria) (Result, error) {
		return Result{}, nil
	})
	defer d.Stop()

	require.Equal(t, DefaultDebounceWindow, d.window)
}
