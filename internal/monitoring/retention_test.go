package monitoring

import (
	"sync/atomic"
	"testing"
	"time"
)

type fakePurger struct {
	calls   atomic.Int64
	deleted int64
}

func (p *fakePurger) DeleteClaimedBefore(cutoff time.Time) (int64, error) {
	p.calls.Add(1)
	return p.deleted, nil
}

func TestRetentionSweeper_RunsImmediately(t *testing.T) {
	lost := &fakePurger{deleted: 2}
	found := &fakePurger{}
	s := NewRetentionSweeper(lost, found, 30)

	go s.Run()

	deadline := time.After(2 * time.Second)
	for lost.calls.Load() == 0 || found.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("sweep never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
	s.Stop()
}

func TestRetentionSweeper_Disabled(t *testing.T) {
	lost := &fakePurger{}
	s := NewRetentionSweeper(lost, &fakePurger{}, 0)

	// Run returns immediately when disabled; Stop is a no-op.
	s.Run()
	s.Stop()

	if lost.calls.Load() != 0 {
		t.Fatalf("disabled sweeper must not sweep, got %d calls", lost.calls.Load())
	}
}
