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

// Package transport defines the stream-endpoint contract protocol.Core
// drives: connect handshake, raw write, close. Concrete endpoints live in
// transport/tcp (TCP) and transport/pipe (Unix-domain socket).
package transport

import (
	"bufio"
	"context"
	"net"
	"time"
)

// DefaultConnectTimeout bounds the TCP/pipe connect plus handshake step
// when the caller supplies no deadline of its own.
const DefaultConnectTimeout = 30 * time.Second

// KeepAliveIdle is the idle-probe interval applied to every opened
// connection once the handshake completes.
const KeepAliveIdle = 30 * time.Second

// Transport is a single stream connection to the viewer console. A
// Transport is single-use: once Close returns, it is never reopened, only
// replaced by a fresh Dial.
type Transport interface {
	// Dial opens the connection and performs the handshake: read the
	// server banner up to and including its terminating LF, write the
	// client banner, and start draining the acknowledgement stream in the
	// background. It returns once the channel is considered up.
	Dial(ctx context.Context) error
	// Write sends a single already-framed buffer. Callers MUST serialize
	// their own calls to Write (Transport performs no internal queuing).
	Write(buf []byte) error
	// Close shuts the connection down. Idempotent.
	Close() error
	// Banner returns the server's banner line (without the trailing LF),
	// captured during Dial. Empty before a successful Dial.
	Banner() string
}

// ClientBanner is written by every transport implementation as the first
// line of every connection, identifying this module to the viewer.
const ClientBanner = "siclient/1\n"

// ReadBanner reads from r until the first LF (inclusive) and returns the
// line without its trailing LF/CR. Shared by the tcp and pipe
// implementations so both perform the identical handshake read.
func ReadBanner(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}

	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}

	return line, nil
}

// DrainAcks continuously reads and discards bytes from conn until it
// errors (peer closed, connection reset, or Close was called locally).
// This is the background responsibility every Transport MUST run so that
// the peer's 2-byte-per-frame acknowledgement stream never fills the
// kernel receive buffer and stalls writes. Callers run it in its own
// goroutine and rely on Close to unblock the read.
func DrainAcks(conn net.Conn) {
	buf := make([]byte, 256)

	for {
		if _, err := conn.Read(buf); err != nil {
			return
		}
	}
}
