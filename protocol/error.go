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

import "github.com/sabouaram/siclient/errors"

// Kind-5 programming errors (spec.md §7): the only errors this package
// ever returns to a caller. Transient transport faults (kinds 1-2) never
// reach this path — they are absorbed and reported through Observer.
const (
	ErrorConfigInvalid errors.CodeError = iota + errors.MinPkgProtocol
	ErrorNotConfigured
	ErrorAlreadyConfigured
	ErrorConnectTimeout
	ErrorHandshakeInvalid
	ErrorQueueOverflow
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorConfigInvalid)
	errors.RegisterIdFctMessage(ErrorConfigInvalid, getMessage)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UnknownError:
		return ""
	case ErrorConfigInvalid:
		return "supplied options failed validation"
	case ErrorNotConfigured:
		return "write attempted with no open transport"
	case ErrorAlreadyConfigured:
		return "configure called more than once on the same core"
	case ErrorConnectTimeout:
		return "connect attempt did not complete before the configured deadline"
	case ErrorHandshakeInvalid:
		return "peer banner handshake failed"
	case ErrorQueueOverflow:
		return "a single command exceeds the configured queue capacity"
	}

	return ""
}
