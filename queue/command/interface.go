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

// Package command implements the FIFO of scheduler commands that drives
// protocol.Core's background executor. Unlike backlog.Queue, overflow is
// not handled by dropping the oldest entry of any kind: trim selectively
// removes only Write commands, since losing a Connect or Disconnect would
// leave the connection state machine stuck.
package command

import "github.com/sabouaram/siclient/codec"

// Kind identifies what a Command asks the executor to do.
type Kind int

const (
	Connect Kind = iota
	Write
	Disconnect
	Dispatch
)

// Command is one unit of scheduler work. Record and EstimatedCost are only
// meaningful when Kind is Write; DispatchState carries the state argument
// for Kind Dispatch.
type Command struct {
	Kind          Kind
	Record        codec.Record
	EstimatedCost int64
	DispatchState int32
}

func (c Command) cost() int64 {
	return c.Cost()
}

// Cost reports the bytes this command counts against queue capacity: its
// EstimatedCost for a Write command, zero for every other kind.
func (c Command) Cost() int64 {
	if c.Kind != Write {
		return 0
	}

	return c.EstimatedCost
}

// Queue is a bounded FIFO of Command. The zero value is not usable;
// construct with New.
type Queue interface {
	// Push appends cmd unconditionally; callers decide admission (via
	// Trim) before calling Push when capacity matters.
	Push(cmd Command)
	// Pop removes and returns the oldest command, or ok=false if empty.
	Pop() (cmd Command, ok bool)
	// Clear discards every command.
	Clear()

	// Trim walks from head to tail removing Write commands (preserving
	// the position of every other kind) until at least n bytes have been
	// freed or no Write commands remain. It reports whether n bytes were
	// actually freed.
	Trim(n int64) bool
	// DrainDisconnectsOnly removes and returns every Disconnect command
	// still queued, discarding everything else, preserving order.
	DrainDisconnectsOnly() []Command

	// Count returns the current number of queued commands.
	Count() int64
	// SizeBytes returns the current accounted size in bytes (Write cost only).
	SizeBytes() int64
}

// New returns an empty command Queue.
func New() Queue {
	return newQueue()
}
