package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"coindash/src/scheduler"
)

func TestScheduledTaskRuns(t *testing.T) {
	var runs int32
	task, err := scheduler.NewScheduledTask(context.Background(), "@every 1s", func(_ context.Context) {
		atomic.AddInt32(&runs, 1)
	})
	if err != nil {
		t.Fatal(err)
	}
	defer task.Cancel()

	time.Sleep(2500 * time.Millisecond)
	if got := atomic.LoadInt32(&runs); got < 2 {
		t.Errorf("expected at least 2 runs, got %d", got)
	}
}

func TestScheduledTaskSkipsOverlappingRuns(t *testing.T) {
	var runs int32
	task, err := scheduler.NewScheduledTask(context.Background(), "@every 1s", func(_ context.Context) {
		atomic.AddInt32(&runs, 1)
		time.Sleep(3 * time.Second)
	})
	if err != nil {
		t.Fatal(err)
	}
	defer task.Cancel()

	time.Sleep(2500 * time.Millisecond)
	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Errorf("expected exactly 1 run while the first is in flight, got %d", got)
	}
}

func TestScheduledTaskCancel(t *testing.T) {
	var runs int32
	task, err := scheduler.NewScheduledTask(context.Background(), "@every 1s", func(_ context.Context) {
		atomic.AddInt32(&runs, 1)
	})
	if err != nil {
		t.Fatal(err)
	}

	task.Cancel()
	time.Sleep(1500 * time.Millisecond)
	if got := atomic.LoadInt32(&runs); got != 0 {
		t.Errorf("expected no runs after cancel, got %d", got)
	}
}

func TestScheduledTaskBadSpec(t *testing.T) {
	_, err := scheduler.NewScheduledTask(context.Background(), "not a cron spec", func(_ context.Context) {})
	if err == nil {
		t.Error("expected an error for an invalid cron spec")
	}
}
