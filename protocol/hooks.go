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
	"github.com/sabouaram/siclient/scheduler"
)

// coreHooks adapts Core to scheduler.Hooks. It exists as a separate type,
// rather than Core implementing scheduler.Hooks directly, because
// Submitter and scheduler.Hooks both declare Connect() and Disconnect()
// with the same signature but different meaning: Submitter's versions are
// the fire-and-forget producer entry points, while Hooks' versions are
// the executor's "actually do it now" callbacks.
//
// Every method here runs on the scheduler's single background goroutine,
// so it already executes within the one logical execution context
// spec.md §5 requires for socket I/O — no locking against other Hooks
// calls is needed, only against Submit's direct (sync-mode) callers, which
// writeMu/transportMu/connectMu already guard.
type coreHooks struct {
	c *Core
}

var _ scheduler.Hooks = (*coreHooks)(nil)

func (h *coreHooks) Connect() {
	h.c.doConnectSingleFlight(true)
}

func (h *coreHooks) Write(rec codec.Record) {
	h.c.dispatchWrite(rec)
}

func (h *coreHooks) Disconnect() {
	h.c.closeGracefully()
}

func (h *coreHooks) Dispatch(s int32) {
	h.c.setState(state(s))
}

func (h *coreHooks) Failed() bool {
	return h.c.failed.Load()
}

// dispatchWrite is shared between async mode (via coreHooks.Write) and
// direct connected-state writes from Submit in sync mode.
func (c *Core) dispatchWrite(rec codec.Record) {
	if c.currentState() == stateConnected {
		if err := c.writeRecord(rec); err != nil {
			c.onConnectedWriteFailure(err)
		} else if !c.opts.KeepOpen() {
			c.closeAfterWrite()
		}
		return
	}

	c.disconnectedPolicy(rec)
}
