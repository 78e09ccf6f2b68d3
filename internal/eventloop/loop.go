// Package eventloop provides the single logical UI thread the assist
// controllers run on. Work done off the loop (network calls) re-enters it by
// posting a task; tasks run one at a time in posting order.
package eventloop

import (
	"context"
	"errors"
	"sync"
)

var ErrStopped = errors.New("event loop stopped")

// accepts tasks that must run on the UI thread
type Poster interface {
	Post(task func())
}

type Loop struct {
	tasks    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// creates a loop whose queue holds up to buffer pending tasks before Post blocks
func New(buffer int) *Loop {
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// queues a task; after Stop the task is dropped
func (l *Loop) Post(task func()) {
	select {
	case l.tasks <- task:
	case <-l.done:
	}
}

// runs tasks until ctx is done or Stop is called
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.RunOnce(ctx); err != nil {
			return err
		}
	}
}

// waits for the next task and runs it
func (l *Loop) RunOnce(ctx context.Context) error {
	select {
	case task := <-l.tasks:
		task()
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runs every task already queued without waiting for more; returns how many ran
func (l *Loop) Drain() int {
	ran := 0

	for {
		select {
		case task := <-l.tasks:
			task()
			ran++
		default:
			return ran
		}
	}
}

// safe to call more than once and from any goroutine
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}
