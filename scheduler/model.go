package scheduler

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/sabouaram/siclient/queue/command"
)

// batchSize bounds how many commands the executor drains per wake before
// yielding back to the scheduler, per spec.
const batchSize = 16

type scheduler struct {
	hooks Hooks
	cfg   Config
	queue command.Queue
	sem   *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc

	started atomic.Bool
	stopped atomic.Bool

	wake chan struct{}
	done chan struct{}
}

func newScheduler(parent context.Context, hooks Hooks, cfg Config) *scheduler {
	capacity := cfg.CapacityBytes
	if capacity <= 0 {
		capacity = 1
	}

	ctx, cancel := context.WithCancel(parent)

	return &scheduler{
		hooks:  hooks,
		cfg:    cfg,
		queue:  command.New(),
		sem:    semaphore.NewWeighted(capacity),
		ctx:    ctx,
		cancel: cancel,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (s *scheduler) Start() {
	if s.stopped.Load() {
		return
	}

	if !s.started.CompareAndSwap(false, true) {
		return
	}

	go s.run()
}

func (s *scheduler) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		s.drainBatch()
	}
}

func (s *scheduler) drainBatch() {
	for i := 0; i < batchSize; i++ {
		if s.stopped.Load() {
			return
		}

		cmd, ok := s.queue.Pop()
		if !ok {
			return
		}

		if cost := cmd.Cost(); cost > 0 && s.cfg.Throttle {
			s.sem.Release(cost)
		}

		s.dispatch(cmd)

		if s.stopped.Load() && s.hooks.Failed() {
			s.queue.Clear()
			return
		}
	}

	s.wakeExecutor()
}

func (s *scheduler) dispatch(cmd command.Command) {
	switch cmd.Kind {
	case command.Connect:
		s.hooks.Connect()
	case command.Write:
		s.hooks.Write(cmd.Record)
	case command.Disconnect:
		s.hooks.Disconnect()
	case command.Dispatch:
		s.hooks.Dispatch(cmd.DispatchState)
	}
}

func (s *scheduler) wakeExecutor() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *scheduler) Schedule(cmd command.Command) bool {
	if s.stopped.Load() {
		return false
	}

	cost := cmd.Cost()
	if cost > s.cfg.CapacityBytes {
		return false
	}

	if s.queue.SizeBytes()+cost > s.cfg.CapacityBytes {
		s.queue.Trim(cost)
	}

	s.queue.Push(cmd)
	s.wakeExecutor()

	return true
}

func (s *scheduler) ScheduleAsync(cmd command.Command) <-chan bool {
	result := make(chan bool, 1)

	if s.stopped.Load() {
		result <- false
		return result
	}

	if !s.cfg.Throttle || s.hooks.Failed() {
		result <- s.Schedule(cmd)
		return result
	}

	cost := cmd.Cost()
	if cost > s.cfg.CapacityBytes {
		result <- false
		return result
	}

	go func() {
		if err := s.sem.Acquire(s.ctx, cost); err != nil {
			result <- false
			return
		}

		s.queue.Push(cmd)
		s.wakeExecutor()
		result <- true
	}()

	return result
}

func (s *scheduler) Stop() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}

	// Reject every suspended ScheduleAsync waiter immediately.
	s.cancel()

	freed := s.queue.SizeBytes()
	discs := s.queue.DrainDisconnectsOnly()

	if freed > 0 && s.cfg.Throttle {
		s.sem.Release(freed)
	}

	for range discs {
		s.hooks.Disconnect()
	}

	if s.started.Load() {
		close(s.done)
	}
}

func (s *scheduler) Count() int64 {
	return s.queue.Count()
}

func (s *scheduler) SizeBytes() int64 {
	return s.queue.SizeBytes()
}

func (s *scheduler) Clear() {
	freed := s.queue.SizeBytes()
	s.queue.Clear()

	if freed > 0 && s.cfg.Throttle {
		s.sem.Release(freed)
	}
}
