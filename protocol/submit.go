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

package protocol

import (
	"github.com/sabouaram/siclient/codec"
)

// Submit is spec.md §4.6: in async mode it only ever enqueues onto the
// CommandQueue and returns; in sync mode it applies the connected/
// disconnected write policy directly on the calling goroutine. A
// disconnected-state Submit only enqueues into the backlog; a sync-mode
// connected-state Submit writes the record on the calling goroutine and
// waits for that write, and for the close that follows it when keep_open
// is false.
func (c *Core) Submit(rec codec.Record) {
	if c.sched != nil {
		c.sched.Schedule(writeCommand(rec))
		return
	}

	c.dispatchWrite(rec)
}

// SubmitWithBackpressure is Submit's throttled variant (spec.md §8
// Property 8): when async throttling is configured, the caller suspends
// on the returned channel until queue space frees up or the scheduler
// stops. Outside that configuration it behaves exactly like Submit,
// reporting success synchronously through an already-resolved channel.
func (c *Core) SubmitWithBackpressure(rec codec.Record) <-chan bool {
	if c.sched != nil && c.opts.Async.Throttle {
		return c.sched.ScheduleAsync(writeCommand(rec))
	}

	ch := make(chan bool, 1)
	c.Submit(rec)
	ch <- true
	return ch
}

// disconnectedPolicy is spec.md §4.6.2's synchronous 4-step sequence,
// applied directly whether the caller is Submit (sync mode) or
// coreHooks.Write (async mode, already on the executor).
func (c *Core) disconnectedPolicy(rec codec.Record) {
	if !c.opts.Reconnect {
		c.onBacklogDrop(1)
		return
	}

	if !c.opts.Backlog.Enabled {
		c.onBacklogDrop(1)
		return
	}

	c.backlogQ.Push(rec)

	if c.metrics != nil {
		c.metrics.backlogLen.Set(float64(c.backlogQ.Count()))
	}

	if c.opts.KeepOpen() {
		go c.beginConnect(false)
		return
	}

	if c.shouldFlushOnLevel(rec) {
		go c.beginConnect(false)
	}
}

// shouldFlushOnLevel is the §6.2-ext extension (spec.md §9's Open
// Question resolution): when configured, a backlog push of a record at
// or above FlushOnLevel also starts a reconnect attempt even though
// keep_open is false. Defaults to off (FlushOnLevel nil).
func (c *Core) shouldFlushOnLevel(rec codec.Record) bool {
	if c.opts.FlushOnLevel == nil {
		return false
	}
	if rec.Kind != codec.KindLogEntry {
		return false
	}
	// Level is ordered most-severe-first (PanicLevel=0 ... DebugLevel=5),
	// so "at or above severity" means the numeric value is <=.
	return rec.Level <= *c.opts.FlushOnLevel
}
