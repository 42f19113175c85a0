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
	"time"

	"github.com/sabouaram/siclient/queue/command"
)

// disconnectGraceTimeout bounds how long Disconnect waits for the
// transport's Close to return before giving up and declaring the state
// machine disconnected anyway (SPEC_FULL §9's graceful-shutdown note). In
// async mode it also bounds the wait for the scheduler to drain.
const disconnectGraceTimeout = 5 * time.Second

// Disconnect is spec.md §4.6: in async mode it schedules a Disconnect
// command (optionally clearing the queue first) and waits for the
// scheduler to drain; in sync mode it closes the transport directly.
func (c *Core) Disconnect() {
	if c.sched != nil {
		if c.opts.Async.ClearOnDisconnect {
			c.sched.Clear()
		}
		c.sched.Schedule(command.Command{Kind: command.Disconnect})

		// Let the executor service the Writes queued ahead of the
		// Disconnect, and the Disconnect itself, before stopping it.
		// Bounded by disconnectGraceTimeout.
		deadline := time.Now().Add(disconnectGraceTimeout)
		for c.sched.Count() > 0 && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}

		c.sched.Stop()
		return
	}

	c.closeGracefully()
}

// closeGracefully closes the current transport (if any), bounded by
// disconnectGraceTimeout so a stuck Close can never hang the caller.
func (c *Core) closeGracefully() {
	tr := c.currentTransport()
	if tr == nil {
		c.setState(stateDisconnected)
		return
	}

	done := make(chan struct{})
	go func() {
		tr.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(disconnectGraceTimeout):
	}

	c.setTransport(nil)
	c.setState(stateDisconnected)

	if c.obs != nil {
		c.obs.OnDisconnect()
	}
}

// closeAfterWrite is spec.md §4.6.3's "close after write unless
// keep_open" rule for a single successfully-written record.
func (c *Core) closeAfterWrite() {
	c.closeGracefully()
}
