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

// Package config is the options surface for protocol.Core: the §6.2
// option table (host/port/pipe/timeout/reconnect/backlog/async) plus the
// additive §6.2-ext fields (flush_on_level, metrics registerer,
// connection id).
package config

import (
	"fmt"
	"os"
	"time"

	libval "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sabouaram/siclient/duration"
	liberr "github.com/sabouaram/siclient/errors"
	loglvl "github.com/sabouaram/siclient/logger/level"
)

// Options is the full configuration surface a protocol.Core is built
// from. Default() returns an Options with every default applied; a caller
// starts from it and overrides only the fields it cares about.
type Options struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty" toml:"host,omitempty" mapstructure:"host,omitempty"`
	Port uint16 `json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty" mapstructure:"port,omitempty"`

	Pipe     string `json:"pipe,omitempty" yaml:"pipe,omitempty" toml:"pipe,omitempty" mapstructure:"pipe,omitempty"`
	PipePath string `json:"pipe_path,omitempty" yaml:"pipe_path,omitempty" toml:"pipe_path,omitempty" mapstructure:"pipe_path,omitempty"`

	Timeout duration.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty" toml:"timeout,omitempty" mapstructure:"timeout,omitempty"`

	AppName  string `json:"app_name,omitempty" yaml:"app_name,omitempty" toml:"app_name,omitempty" mapstructure:"app_name,omitempty"`
	HostName string `json:"host_name,omitempty" yaml:"host_name,omitempty" toml:"host_name,omitempty" mapstructure:"host_name,omitempty"`
	Room     string `json:"room,omitempty" yaml:"room,omitempty" toml:"room,omitempty" mapstructure:"room,omitempty"`

	Reconnect         bool              `json:"reconnect" yaml:"reconnect" toml:"reconnect" mapstructure:"reconnect"`
	ReconnectInterval duration.Duration `json:"reconnect_interval,omitempty" yaml:"reconnect_interval,omitempty" toml:"reconnect_interval,omitempty" mapstructure:"reconnect_interval,omitempty"`

	Backlog BacklogOptions `json:"backlog" yaml:"backlog" toml:"backlog" mapstructure:"backlog"`
	Async   AsyncOptions   `json:"async" yaml:"async" toml:"async" mapstructure:"async"`

	// FlushOnLevel is the §6.2-ext extension: when non-nil, a
	// disconnected-state submit of a record at or above this severity
	// also starts a reconnect attempt even if keep_open is false. MUST
	// default to nil (off) per spec.md §9's Open Question resolution.
	FlushOnLevel *loglvl.Level `json:"flush_on_level,omitempty" yaml:"flush_on_level,omitempty" toml:"flush_on_level,omitempty" mapstructure:"flush_on_level,omitempty"`

	// MetricsRegisterer, when set, makes protocol.Core register its
	// dropped-record and reconnect-attempt counters and its backlog-depth
	// gauge under it.
	MetricsRegisterer prometheus.Registerer `json:"-" yaml:"-" toml:"-" mapstructure:"-"`

	// ConnectionID overrides the random go-uuid generated per
	// protocol.Core; empty means "generate one."
	ConnectionID string `json:"connection_id,omitempty" yaml:"connection_id,omitempty" toml:"connection_id,omitempty" mapstructure:"connection_id,omitempty"`
}

// BacklogOptions is the `backlog.*` option group (§6.2).
type BacklogOptions struct {
	Enabled  bool   `json:"enabled" yaml:"enabled" toml:"enabled" mapstructure:"enabled"`
	Queue    SizeKB `json:"queue,omitempty" yaml:"queue,omitempty" toml:"queue,omitempty" mapstructure:"queue,omitempty"`
	KeepOpen bool   `json:"keep_open" yaml:"keep_open" toml:"keep_open" mapstructure:"keep_open"`
}

// AsyncOptions is the `async.*` option group (§6.2).
type AsyncOptions struct {
	Enabled           bool   `json:"enabled" yaml:"enabled" toml:"enabled" mapstructure:"enabled"`
	Queue             SizeKB `json:"queue,omitempty" yaml:"queue,omitempty" toml:"queue,omitempty" mapstructure:"queue,omitempty"`
	Throttle          bool   `json:"throttle" yaml:"throttle" toml:"throttle" mapstructure:"throttle"`
	ClearOnDisconnect bool   `json:"clear_on_disconnect" yaml:"clear_on_disconnect" toml:"clear_on_disconnect" mapstructure:"clear_on_disconnect"`
}

// Default returns an Options with every §6.2 default applied, as a
// starting point for a caller to override selectively.
func Default() *Options {
	host, _ := os.Hostname()
	if host == "" {
		host = "localhost"
	}

	return &Options{
		Host:              "127.0.0.1",
		Port:              4228,
		Timeout:           duration.ParseDuration(30 * time.Second),
		AppName:           "App",
		HostName:          host,
		Room:              "default",
		Reconnect:         true,
		ReconnectInterval: duration.ParseDuration(3 * time.Second),
		Backlog: BacklogOptions{
			Enabled:  true,
			Queue:    2048,
			KeepOpen: true,
		},
		Async: AsyncOptions{
			Enabled:           false,
			Queue:             2048,
			Throttle:          false,
			ClearOnDisconnect: false,
		},
	}
}

// KeepOpen is the derived flag from §6.2: `keep_open := !backlog.enabled
// || backlog.keep_open`.
func (o *Options) KeepOpen() bool {
	return !o.Backlog.Enabled || o.Backlog.KeepOpen
}

// UsesPipe reports whether this Options selects the Unix-domain-socket
// transport over TCP.
func (o *Options) UsesPipe() bool {
	return o.Pipe != "" || o.PipePath != ""
}

// Validate checks the struct against its validator tags and the
// cross-field "host or pipe" invariant the tags alone cannot express.
func (o *Options) Validate() liberr.Error {
	e := ErrorValidatorError.Error(nil)

	if err := libval.New().Struct(o); err != nil {
		if er, ok := err.(*libval.InvalidValidationError); ok {
			e.Add(er)
		} else if errs, ok := err.(libval.ValidationErrors); ok {
			for _, er := range errs {
				//nolint #goerr113
				e.Add(fmt.Errorf("config field '%s' is not validated by constraint '%s'", er.Namespace(), er.ActualTag()))
			}
		}
	}

	if o.Host == "" && !o.UsesPipe() {
		e.Add(ErrorNeitherHostNorPipe.Error())
	}

	if !e.HasParent() {
		return nil
	}

	return e
}
