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

package transport

import "github.com/sabouaram/siclient/errors"

const (
	ErrorDialTimeout errors.CodeError = iota + errors.MinPkgTransport
	ErrorHandshakeFailed
	ErrorPipeUnsupported
	ErrorNotConnected
	ErrorAddressMissing
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorDialTimeout)
	errors.RegisterIdFctMessage(ErrorDialTimeout, getMessage)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UnknownError:
		return ""
	case ErrorDialTimeout:
		return "connect and handshake did not complete before the deadline"
	case ErrorHandshakeFailed:
		return "peer closed or reset the connection before sending a banner"
	case ErrorPipeUnsupported:
		return "unix-domain socket transport is not supported on this platform"
	case ErrorNotConnected:
		return "write attempted on a transport that is not connected"
	case ErrorAddressMissing:
		return "no address or path was configured for this transport"
	}

	return ""
}
