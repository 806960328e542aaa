package scheduler

import (
	"context"
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// ScheduledTask runs one function on a cron spec. A tick that fires while
// the previous run is still in flight is skipped, so a slow provider cannot
// stack sync runs on top of each other.
type ScheduledTask struct {
	cronID  cron.EntryID
	cron    *cron.Cron
	cancel  context.CancelFunc
	running int32
}

func NewScheduledTask(ctx context.Context, cronSpec string, taskFunc func(context.Context)) (*ScheduledTask, error) {
	c := cron.New()
	ctx, cancel := context.WithCancel(ctx)
	task := &ScheduledTask{
		cron:   c,
		cancel: cancel,
	}

	id, err := c.AddFunc(cronSpec, func() {
		if ctx.Err() != nil {
			return
		}
		if !atomic.CompareAndSwapInt32(&task.running, 0, 1) {
			return
		}
		defer atomic.StoreInt32(&task.running, 0)
		taskFunc(ctx)
	})
	if err != nil {
		cancel()
		return nil, err
	}

	task.cronID = id
	c.Start()
	return task, nil
}

// Cancel removes the cron entry and signals an in-flight run to stop.
func (s *ScheduledTask) Cancel() {
	s.cron.Remove(s.cronID)
	s.cancel()
}
