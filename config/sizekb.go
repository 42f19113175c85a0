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

package config

import "strconv"

// SizeKB is a queue-capacity expressed in kilobytes in config sources
// (backlog.queue, async.queue), converted to bytes for the queue
// packages' byte-accounted capacity field.
//
// The teacher's own "size" package (human-readable byte-size parsing,
// the natural fit for this field) is test-only in the example pack: no
// non-test .go file exists anywhere under it. Rather than reconstruct an
// untested package from its test suite, this is a small stdlib-only
// type carrying just the one conversion this module needs.
type SizeKB int64

// Bytes returns the capacity in bytes.
func (s SizeKB) Bytes() int64 {
	if s < 0 {
		return 0
	}
	return int64(s) * 1024
}

func (s SizeKB) String() string {
	return strconv.FormatInt(int64(s), 10) + "KB"
}

func (s SizeKB) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(s), 10)), nil
}

func (s *SizeKB) UnmarshalText(b []byte) error {
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}

	*s = SizeKB(v)
	return nil
}
