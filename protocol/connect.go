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
	"context"
	"time"

	"github.com/sabouaram/siclient/codec"
	"github.com/sabouaram/siclient/queue/command"
)

// Connect is fire-and-forget (spec.md §4.6): it returns immediately and
// the actual dial happens on a background goroutine (sync mode) or the
// scheduler's executor (async mode).
func (c *Core) Connect() {
	if c.sched != nil {
		c.sched.Schedule(command.Command{Kind: command.Connect})
		return
	}

	go c.beginConnect(true)
}

func (c *Core) beginConnect(initial bool) {
	c.doConnectSingleFlight(initial)
}

// doConnectSingleFlight is spec.md §4.6.1: at most one connect attempt is
// ever in flight. A concurrent caller joins the existing attempt instead
// of starting a second one. initial=false attempts are additionally
// gated by reconnect_interval (§4.6.4).
func (c *Core) doConnectSingleFlight(initial bool) {
	c.connectMu.Lock()

	if c.connectFuture != nil {
		fut := c.connectFuture
		c.connectMu.Unlock()
		<-fut
		return
	}

	if !initial {
		gate := time.Unix(0, c.reconnectGateAt.Load())
		if time.Since(gate) < c.opts.ReconnectInterval.Time() {
			c.connectMu.Unlock()
			return
		}
	}

	fut := make(chan struct{})
	c.connectFuture = fut
	c.connectMu.Unlock()

	c.runConnectAttempt()

	c.connectMu.Lock()
	c.connectFuture = nil
	close(fut)
	c.connectMu.Unlock()
}

func (c *Core) runConnectAttempt() {
	c.setState(stateConnecting)

	if c.metrics != nil {
		c.metrics.reconnects.Inc()
	}

	tr := c.newTransport()

	dctx, cancel := context.WithTimeout(c.ctx, c.opts.Timeout.Time())
	defer cancel()

	if err := tr.Dial(dctx); err != nil {
		c.failed.Store(true)
		c.setState(stateDisconnected)
		c.reconnectGateAt.Store(time.Now().UnixNano())
		c.notifyError(err)
		return
	}

	c.setTransport(tr)
	c.failed.Store(false)
	c.setState(stateConnected)

	if c.obs != nil {
		c.obs.OnConnect(tr.Banner(), c.connID)
	}

	hdr := codec.Header{HostName: c.opts.HostName, AppName: c.opts.AppName, Room: c.opts.Room}.Record()
	if err := c.writeRecord(hdr); err != nil {
		c.onConnectedWriteFailure(err)
		return
	}

	c.flushBacklog()
}

// flushBacklog drains the backlog queue FIFO after a (re)connect (spec.md
// §4.6.6). A write failure mid-drain transitions back to disconnected and
// stops the drain; remaining records stay queued for the next connect.
func (c *Core) flushBacklog() {
	for {
		if c.currentState() != stateConnected {
			return
		}

		rec, ok := c.backlogQ.Pop()
		if !ok {
			return
		}

		if err := c.writeRecord(rec); err != nil {
			c.onConnectedWriteFailure(err)
			return
		}
	}
}

func (c *Core) writeRecord(rec codec.Record) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	tr := c.currentTransport()
	if tr == nil {
		return ErrorNotConfigured.Error()
	}

	return tr.Write(codec.Encode(rec))
}

func (c *Core) onConnectedWriteFailure(err error) {
	c.notifyError(err)
	c.failed.Store(true)
	c.setState(stateDisconnected)
	c.reconnectGateAt.Store(time.Now().UnixNano())

	if tr := c.currentTransport(); tr != nil {
		tr.Close()
		c.setTransport(nil)
	}

	if c.obs != nil {
		c.obs.OnDisconnect()
	}
}
