/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package scheduler drains a command.Queue on a single background
// executor goroutine, handing each command to a Hooks implementation
// (normally protocol.Core). It is never a thread pool: exactly one
// executor runs per Scheduler instance, matching the cooperative
// single-writer model the transport core requires.
package scheduler

import (
	"context"

	"github.com/sabouaram/siclient/codec"
	"github.com/sabouaram/siclient/queue/command"
)

// Hooks is the callback surface the executor drives. Implementations
// (protocol.Core) own state transitions and error surfacing; the
// scheduler only sequences calls and never interprets their outcome.
type Hooks interface {
	// Connect is invoked for a Connect command.
	Connect()
	// Write is invoked for a Write command, with the record to send.
	Write(rec codec.Record)
	// Disconnect is invoked for a Disconnect command.
	Disconnect()
	// Dispatch is invoked for a Dispatch command, with its state value.
	Dispatch(state int32)
	// Failed reports whether the core is currently in the sticky
	// "failed" state, checked by the executor after every command.
	Failed() bool
}

// Config configures admission for a Scheduler's CommandQueue.
type Config struct {
	// CapacityBytes bounds the CommandQueue's Write-command byte total.
	CapacityBytes int64
	// Throttle enables the suspend-until-space-available contract for
	// ScheduleAsync. When false, ScheduleAsync behaves exactly like a
	// synchronous Schedule wrapped in an already-resolved channel.
	//
	// Throttle and the plain (non-blocking, trim-on-overflow) admission
	// path used by Schedule are mutually exclusive producer strategies:
	// a Scheduler configured with Throttle is expected to be driven
	// exclusively through ScheduleAsync, matching config.Options'
	// static, connect-time choice of async.throttle.
	Throttle bool
}

// Scheduler owns a command.Queue and a single background executor.
type Scheduler interface {
	// Start launches the executor goroutine. Idempotent.
	Start()
	// Stop releases all throttle-waiters with a rejection, then drains
	// only the remaining Disconnect commands (Writes and Connects queued
	// at the time of Stop are discarded). Idempotent.
	Stop()
	// Clear empties the queue and releases any throttle-waiters.
	Clear()

	// Schedule is a non-blocking enqueue. It returns false if the
	// scheduler is stopped, or if cmd alone exceeds the configured
	// capacity. Otherwise it trims queued Write commands (oldest first)
	// to make room if needed, pushes cmd, and always wakes the executor.
	Schedule(cmd command.Command) bool
	// ScheduleAsync is like Schedule, but when Config.Throttle is set
	// and the core is not Failed, the caller suspends (via the returned
	// channel) until queue space is available or the scheduler stops.
	ScheduleAsync(cmd command.Command) <-chan bool

	// Count returns the number of commands currently queued.
	Count() int64
	// SizeBytes returns the currently accounted Write-command byte total.
	SizeBytes() int64
}

// New returns a Scheduler bound to hooks and configured by cfg.
func New(ctx context.Context, hooks Hooks, cfg Config) Scheduler {
	return newScheduler(ctx, hooks, cfg)
}
