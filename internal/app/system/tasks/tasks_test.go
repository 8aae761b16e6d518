package tasks_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vereinlab/clubhub/internal/app/system/tasks"
	"go.uber.org/zap"
)

func TestRunner_RunsJobOnInterval(t *testing.T) {
	var runs atomic.Int32
	r := tasks.NewRunner(zap.NewNop())
	r.Add(tasks.Job{
		Name:     "counter",
		Interval: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	r.Start()
	time.Sleep(100 * time.Millisecond)
	r.Stop()

	if got := runs.Load(); got < 2 {
		t.Errorf("expected at least 2 runs, got %d", got)
	}
}

func TestRunner_StopHaltsJobs(t *testing.T) {
	var runs atomic.Int32
	r := tasks.NewRunner(zap.NewNop())
	r.Add(tasks.Job{
		Name:     "counter",
		Interval: 5 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	r.Start()
	time.Sleep(30 * time.Millisecond)
	r.Stop()

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	if got := runs.Load(); got != after {
		t.Errorf("job ran after Stop: %d -> %d", after, got)
	}
}

func TestRunner_JobTimeoutSetsDeadline(t *testing.T) {
	deadlineSeen := make(chan bool, 1)
	r := tasks.NewRunner(zap.NewNop())
	r.Add(tasks.Job{
		Name:     "deadline",
		Interval: 5 * time.Millisecond,
		Timeout:  time.Second,
		Run: func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			select {
			case deadlineSeen <- ok:
			default:
			}
			return nil
		},
	})

	r.Start()
	defer r.Stop()

	select {
	case ok := <-deadlineSeen:
		if !ok {
			t.Error("run context has no deadline")
		}
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
}

func TestRunner_FailingJobKeepsRunning(t *testing.T) {
	var runs atomic.Int32
	r := tasks.NewRunner(zap.NewNop())
	r.Add(tasks.Job{
		Name:     "flaky",
		Interval: 5 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return errors.New("boom")
		},
	})

	r.Start()
	time.Sleep(50 * time.Millisecond)
	r.Stop()

	if got := runs.Load(); got < 2 {
		t.Errorf("expected job to keep running after errors, got %d runs", got)
	}
}
