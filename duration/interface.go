/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

// Package duration is the text/config-friendly time.Duration wrapper
// behind config.Options' Timeout and ReconnectInterval fields: it adds
// a days-aware String form and JSON/YAML/TOML/text (un)marshalling so
// those two settings round-trip through a config file as "30s" or "3s"
// rather than a raw nanosecond count.
package duration

import (
	"time"
)

type Duration time.Duration

// Parse parses a Go-style duration string ("30s", "1h30m", "3s"),
// optionally prefixed by a whole-day count ("2d12h"), into a Duration. It is what config.Load's decode hook and Duration's own
// Unmarshal* methods fall back to for text-encoded values.
func Parse(s string) (Duration, error) {
	return parseString(s)
}

// ParseByte is Parse over a []byte, used by the Unmarshal* methods that
// receive raw encoded bytes (JSON, CBOR payload strings, etc.).
func ParseByte(p []byte) (Duration, error) {
	return parseString(string(p))
}

// ParseDuration wraps a time.Duration as a Duration with no conversion;
// config.Default uses it to seed Timeout and ReconnectInterval from
// ordinary time.Duration constants.
func ParseDuration(d time.Duration) Duration {
	return Duration(d)
}
