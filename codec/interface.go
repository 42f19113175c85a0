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

// Package codec serializes console records into the length-prefixed wire
// frame consumed by the remote log-viewer, and estimates their in-memory
// size for queue accounting.
//
// A frame is kind(u16 LE) | body_len(u32 LE) | body. The body layout is
// kind-specific; each record kind has a dedicated builder type (Header,
// LogEntry, Watch, ProcessFlow, ControlCommand, Stream) whose Record()
// method returns a fully formed Record ready for Encode.
package codec

import (
	loglvl "github.com/sabouaram/siclient/logger/level"
)

// Kind identifies the wire layout of a Record's body.
type Kind uint16

const (
	KindControlCommand Kind = 1
	KindLogEntry        Kind = 4
	KindWatch           Kind = 5
	KindProcessFlow     Kind = 6
	KindHeader          Kind = 7
	KindStream          Kind = 8
)

// Record is a tagged variant of the data delivered to the viewer console.
// EstimatedCost is used only for queue accounting; it need not match the
// wire size. Level is only meaningful when Kind is KindLogEntry.
type Record struct {
	Kind          Kind
	Body          []byte
	EstimatedCost int
	Level         loglvl.Level
}

// baseEstimatedCost is the conservative per-record overhead counted by
// EstimateSize regardless of kind, meant to approximate struct/slice header
// overhead that isn't captured by summing string lengths.
const baseEstimatedCost = 64
