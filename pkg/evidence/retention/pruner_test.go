package retention

import (
	"context"
	"sync"
	"testing"
	"time"

	"juscash/verifier/pkg/evidence"
)

// fakeStorage counts deletions for pruner tests.
type fakeStorage struct {
	mu         sync.Mutex
	lastCutoff time.Time
	deleted    int64
	calls      int
}

func (f *fakeStorage) Store(ctx context.Context, record *evidence.Record) error { return nil }
func (f *fakeStorage) Recent(ctx context.Context, limit int) ([]*evidence.Record, error) {
	return nil, nil
}
func (f *fakeStorage) Count(ctx context.Context) (int64, error) { return 0, nil }
func (f *fakeStorage) Close() error                             { return nil }

func (f *fakeStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastCutoff = cutoff
	return f.deleted, nil
}

func TestPruner_Prune(t *testing.T) {
	storage := &fakeStorage{deleted: 5}
	pruner := NewPruner(storage, &Config{RetentionDays: 90})

	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 5 {
		t.Errorf("expected 5 deletions, got %d", deleted)
	}

	// The cutoff is the retention window back from now.
	wantCutoff := time.Now().UTC().AddDate(0, 0, -90)
	diff := storage.lastCutoff.Sub(wantCutoff)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("unexpected cutoff: %v", storage.lastCutoff)
	}
}

func TestPruner_ZeroRetentionIsNoop(t *testing.T) {
	storage := &fakeStorage{}
	pruner := NewPruner(storage, &Config{RetentionDays: 0})

	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected no deletions, got %d", deleted)
	}
	if storage.calls != 0 {
		t.Errorf("storage must not be touched, got %d calls", storage.calls)
	}
}

func TestScheduler_EmptyScheduleIsNoop(t *testing.T) {
	pruner := NewPruner(&fakeStorage{}, &Config{RetentionDays: 90})
	scheduler := NewScheduler(pruner)

	if err := scheduler.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if scheduler.IsRunning() {
		t.Error("scheduler must not run without a schedule")
	}
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	pruner := NewPruner(&fakeStorage{}, &Config{RetentionDays: 90, PruneSchedule: "not a cron"})
	scheduler := NewScheduler(pruner)

	if err := scheduler.Start(context.Background()); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	pruner := NewPruner(&fakeStorage{}, &Config{RetentionDays: 90, PruneSchedule: "0 3 * * *"})
	scheduler := NewScheduler(pruner)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := scheduler.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !scheduler.IsRunning() {
		t.Fatal("scheduler should be running")
	}
	if scheduler.NextRun() == nil {
		t.Error("scheduler should report a next run")
	}

	scheduler.Stop()
	if scheduler.IsRunning() {
		t.Error("scheduler should be stopped")
	}
}
