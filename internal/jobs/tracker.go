package jobs

import "sync"

// Snapshot is a consistent view of both counters taken under one lock.
type Snapshot struct {
	Outstanding int
	TotalItems  int
}

// Done reports whether every registered job has completed.
func (s Snapshot) Done() bool {
	return s.Outstanding == 0
}

// Tracker counts outstanding jobs and items recorded across all of them. A
// single mutex guards both counters so Snapshot never observes one counter
// ahead of the other. The zero value is not usable; call New.
type Tracker struct {
	mu          sync.Mutex
	idle        *sync.Cond
	outstanding int
	totalItems  int
}

// New returns an idle tracker.
func New() *Tracker {
	t := &Tracker{}
	t.idle = sync.NewCond(&t.mu)
	return t
}

// RegisterJob must be called before the job's goroutine is started.
func (t *Tracker) RegisterJob() {
	t.mu.Lock()
	t.outstanding++
	t.mu.Unlock()
}

// CompleteJob must be called exactly once per registered job, on every exit
// path. Completing more jobs than were registered is a programming error.
func (t *Tracker) CompleteJob() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.outstanding == 0 {
		panic("jobs: CompleteJob called with no outstanding jobs")
	}
	t.outstanding--
	if t.outstanding == 0 {
		t.idle.Broadcast()
	}
}

// RecordItem counts one item or live item.
func (t *Tracker) RecordItem() {
	t.mu.Lock()
	t.totalItems++
	t.mu.Unlock()
}

// Snapshot returns both counters read together.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{Outstanding: t.outstanding, TotalItems: t.totalItems}
}

// Wait blocks until no jobs are outstanding and returns the final snapshot.
// Call it only after every job has been registered; otherwise it may return
// while registrations are still pending.
func (t *Tracker) Wait() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	for t.outstanding > 0 {
		t.idle.Wait()
	}
	return Snapshot{Outstanding: t.outstanding, TotalItems: t.totalItems}
}
