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

// Package pipe is the transport.Transport implementation that dials a
// Unix-domain socket viewer console. Named after spec.md's "pipe" option
// family (host.pipe / host.pipe_path); on platforms without AF_UNIX
// support, New still returns a Client but Dial fails with
// transport.ErrorPipeUnsupported.
package pipe

import (
	"bufio"
	"context"
	"net"
	"sync"
	"time"

	"github.com/sabouaram/siclient/transport"
)

// Client dials a Unix-domain socket path, performs the banner handshake,
// and drains the acknowledgement stream in the background.
type Client struct {
	Path           string
	ConnectTimeout time.Duration

	mu     sync.Mutex
	conn   net.Conn
	banner string
}

var _ transport.Transport = (*Client)(nil)

// New returns a Client bound to the given socket path.
func New(path string) *Client {
	return &Client{Path: path}
}

func (c *Client) Dial(ctx context.Context) error {
	if c.Path == "" {
		return transport.ErrorAddressMissing.Error()
	}

	timeout := transport.DefaultConnectTimeout
	if c.ConnectTimeout > 0 {
		timeout = c.ConnectTimeout
	}

	dctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dctx, "unix", c.Path)
	if err != nil {
		return dialError(err)
	}

	reader := bufio.NewReader(conn)

	deadline, hasDeadline := dctx.Deadline()
	if hasDeadline {
		conn.SetReadDeadline(deadline)
	}

	banner, err := transport.ReadBanner(reader)
	if err != nil {
		conn.Close()
		return transport.ErrorHandshakeFailed.Error(err)
	}

	if hasDeadline {
		conn.SetReadDeadline(time.Time{})
	}

	if _, err := conn.Write([]byte(transport.ClientBanner)); err != nil {
		conn.Close()
		return transport.ErrorHandshakeFailed.Error(err)
	}

	c.mu.Lock()
	c.conn = conn
	c.banner = banner
	c.mu.Unlock()

	go transport.DrainAcks(conn)

	return nil
}

func (c *Client) Write(buf []byte) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return transport.ErrorNotConnected.Error()
	}

	_, err := conn.Write(buf)
	return err
}

func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	return conn.Close()
}

func (c *Client) Banner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}
