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

// Package protocol is ProtocolCore (C6): it orchestrates the codec,
// backlog and command queues, scheduler and transport packages into the
// single public entry point a producer submits records to.
package protocol

import (
	"github.com/sabouaram/siclient/codec"
)

// state is ProtocolCore's 3-state connection machine (spec.md §3).
type state int32

const (
	stateDisconnected state = iota
	stateConnecting
	stateConnected
)

// Observer is the out-of-band telemetry surface (spec.md §7). A nil
// Observer is legal; every call site nil-checks before invoking it.
type Observer interface {
	OnConnect(banner string, connectionID string)
	OnDisconnect()
	OnError(err error)
	OnPacketDropped(count int)
}

// Stats is the snapshot returned by Core.Stats().
type Stats struct {
	BacklogCount   int64
	BacklogBytes   int64
	SchedulerCount int64
	SchedulerBytes int64
}

// Submitter is the producer-facing contract a logging façade built on
// top of this module would depend on. Core implements it.
type Submitter interface {
	Submit(rec codec.Record)
	SubmitWithBackpressure(rec codec.Record) <-chan bool
	Connect()
	Disconnect()
	Stats() Stats
}
