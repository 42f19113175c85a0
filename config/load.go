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

import (
	"io"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Load reads options from r (YAML, JSON or TOML, detected by ext) into a
// fresh Options starting from Default(), using viper for source parsing
// and mapstructure for the struct decode (matching the teacher's own
// file/env loading idiom in logger/config and spf13.go). Connection
// strings of the form protocol(key=value,...) are explicitly out of
// scope (spec.md §1) and are never parsed here.
func Load(r io.Reader, ext string) (*Options, error) {
	v := viper.New()
	v.SetConfigType(ext)

	if err := v.ReadConfig(r); err != nil {
		return nil, ErrorLoadFile.Error(err)
	}

	opt := Default()

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           opt,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, ErrorLoadFile.Error(err)
	}

	if err := dec.Decode(v.AllSettings()); err != nil {
		return nil, ErrorLoadFile.Error(err)
	}

	return opt, nil
}
