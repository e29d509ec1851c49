package discovery

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounceWindow is how long the debouncer waits after the last
// criteria change before running a discovery pass.
const DefaultDebounceWindow = 300 * time.Millisecond

// RunFunc executes one discovery pass for the given criteria.
type RunFunc func(ctx context.Context, criteria Criteria) (Result, error)

// Outcome pairs a delivered result with the criteria that produced it.
type Outcome struct {
	Criteria Criteria
	Result   Result
	Err      error
}

// Debouncer coalesces rapid criteria changes into a single discovery run.
// Each Set replaces the pending criteria and restarts the window; only the
// criteria standing when the window elapses are executed. A run whose
// criteria are superseded while it is in flight has its result discarded,
// so consumers never observe a stale result after a newer Set.
type Debouncer struct {
	mu         sync.Mutex
	window     time.Duration
	run        RunFunc
	timer      *time.Timer
	pending    Criteria
	generation uint64
	stopped    bool

	results chan Outcome
}

func NewDebouncer(window time.Duration, run RunFunc) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{
		window:  window,
		run:     run,
		results: make(chan Outcome, 1),
	}
}

// Set replaces the pending criteria and restarts the debounce window.
func (d *Debouncer) Set(criteria Criteria) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = criteria
	d.generation++
	gen := d.generation

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.fire(gen)
	})
}

// Results delivers the outcome of each completed, non-superseded run.
// The channel holds one outcome; an undelivered outcome is replaced when
// a newer one arrives.
func (d *Debouncer) Results() <-chan Outcome {
	return d.results
}

// Stop cancels any pending window. In-flight runs finish but their
// outcomes are discarded.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.generation {
		d.mu.Unlock()
		return
	}
	criteria := d.pending
	d.mu.Unlock()

	result, err := d.run(context.Background(), criteria)
	outcome := Outcome{Criteria: criteria, Result: result, Err: err}

	// Staleness check and channel commit happen under one lock
	// acquisition: a run superseded after finishing can never evict a
	// fresher outcome already queued by the run that replaced it.
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || gen != d.generation {
		return
	}
	for {
		select {
		case d.results <- outcome:
			return
		default:
		}
		// drop the undelivered older outcome and retry
		select {
		case <-d.results:
		default:
		}
	}
}
