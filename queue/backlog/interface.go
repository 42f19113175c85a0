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

// Package backlog implements the size-bounded FIFO of pending records held
// while a protocol.Core is not connected. Records are evicted from the head
// (oldest first) whenever a push leaves the queue over capacity; the number
// evicted by a push is reported once, synchronously, through a drop hook.
package backlog

import "github.com/sabouaram/siclient/codec"

// itemOverhead is added to every record's estimated cost when accounting
// size_bytes, approximating the list-node and struct overhead around the
// record's own byte estimate.
const itemOverhead = 24

// DropFunc is invoked once per Push that had to evict records to stay
// within capacity, with the total number evicted by that push. It runs on
// the pushing goroutine and MUST NOT block.
type DropFunc func(dropped int)

// Queue is a bounded FIFO of codec.Record. The zero value is not usable;
// construct with New.
type Queue interface {
	// Push appends rec, then evicts from the head until size_bytes fits
	// within capacity, invoking the drop hook once if anything was evicted.
	Push(rec codec.Record)
	// Pop removes and returns the oldest record, or ok=false if empty.
	Pop() (rec codec.Record, ok bool)
	// Clear discards every record without invoking the drop hook.
	Clear()
	// Configure changes the capacity and immediately re-applies it,
	// evicting from the head if the new capacity is now exceeded.
	Configure(capacityBytes int64)

	// Count returns the current number of queued records.
	Count() int64
	// SizeBytes returns the current accounted size in bytes.
	SizeBytes() int64
}

// New returns a Queue bounded at capacityBytes, reporting evictions to
// onDrop (which may be nil).
func New(capacityBytes int64, onDrop DropFunc) Queue {
	return newQueue(capacityBytes, onDrop)
}
