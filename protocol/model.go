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

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	uuid "github.com/hashicorp/go-uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sabouaram/siclient/codec"
	"github.com/sabouaram/siclient/config"
	libctx "github.com/sabouaram/siclient/context"
	"github.com/sabouaram/siclient/logger"
	"github.com/sabouaram/siclient/queue/backlog"
	"github.com/sabouaram/siclient/queue/command"
	"github.com/sabouaram/siclient/scheduler"
	"github.com/sabouaram/siclient/transport"
	"github.com/sabouaram/siclient/transport/pipe"
	"github.com/sabouaram/siclient/transport/tcp"
)

// ctxStateKey is the single key Core mirrors its last-known state under in
// the per-instance libctx.Config slot. The slot is private to Core and
// nothing reads the state back from it: Core's own atomics remain the
// source of truth.
const ctxStateKey = "siclient.protocol.state"

// Core is ProtocolCore (spec.md §4.6): the single owner of a connection's
// lifecycle, serializing producer submissions onto one logical writer.
// The zero value is not usable; construct with New.
type Core struct {
	opts config.Options
	log  logger.FuncLog
	obs  Observer

	// slot is the per-instance typed context store SPEC_FULL §9 calls for
	// in place of a package-level mutable flag.
	slot libctx.Config[string]

	state           atomic.Int32
	failed          atomic.Bool
	reconnectGateAt atomic.Int64

	backlogQ backlog.Queue
	sched    scheduler.Scheduler

	transportMu sync.Mutex
	tr          transport.Transport

	// connectMu guards connectFuture: an explicit channel closed on
	// completion, not a boolean, per SPEC_FULL §9's single-flight note.
	connectMu     sync.Mutex
	connectFuture chan struct{}

	writeMu sync.Mutex

	connID string

	ctx    context.Context
	cancel context.CancelFunc

	metrics *metricsSet
}

// New validates opts and returns a fully wired, ready-to-use Core bound
// to ctx. log may be nil; an Observer is attached separately with
// SetObserver. Every call site nil-checks both before using them.
func New(ctx context.Context, opts config.Options, log logger.FuncLog) (*Core, error) {
	if err := opts.Validate(); err != nil {
		return nil, ErrorConfigInvalid.Error(err)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	cctx, cancel := context.WithCancel(ctx)

	connID := opts.ConnectionID
	if connID == "" {
		if id, err := uuid.GenerateUUID(); err == nil {
			connID = id
		}
	}

	c := &Core{
		opts:   opts,
		log:    log,
		slot:   libctx.New[string](cctx),
		ctx:    cctx,
		cancel: cancel,
		connID: connID,
	}

	c.state.Store(int32(stateDisconnected))
	c.slot.Store(ctxStateKey, stateDisconnected)

	c.backlogQ = backlog.New(opts.Backlog.Queue.Bytes(), c.onBacklogDrop)

	if opts.Async.Enabled {
		c.sched = scheduler.New(cctx, &coreHooks{c: c}, scheduler.Config{
			CapacityBytes: opts.Async.Queue.Bytes(),
			Throttle:      opts.Async.Throttle,
		})
		c.sched.Start()
	}

	if opts.MetricsRegisterer != nil {
		c.metrics = newMetricsSet(opts.MetricsRegisterer, connID)
	}

	return c, nil
}

// SetObserver attaches obs, replacing any previously set Observer. Safe to
// call before or after Connect.
func (c *Core) SetObserver(obs Observer) {
	c.obs = obs
}

func (c *Core) setState(s state) {
	c.state.Store(int32(s))
	c.slot.Store(ctxStateKey, s)
}

func (c *Core) currentState() state {
	return state(c.state.Load())
}

func (c *Core) onBacklogDrop(dropped int) {
	if c.metrics != nil {
		c.metrics.dropped.Add(float64(dropped))
	}
	if c.obs != nil {
		c.obs.OnPacketDropped(dropped)
	}
}

func (c *Core) logError(message string, err error) {
	if c.log == nil {
		return
	}
	l := c.log()
	if l == nil {
		return
	}
	l.Error(message, nil, err)
}

func (c *Core) notifyError(err error) {
	c.logError("protocol core error", err)
	if c.obs != nil {
		c.obs.OnError(err)
	}
}

// newTransport builds the Transport implementation selected by opts,
// grounded on spec.md §4.5/§6.2's host-vs-pipe selection.
func (c *Core) newTransport() transport.Transport {
	if c.opts.UsesPipe() {
		path := c.opts.PipePath
		if path == "" {
			path = c.opts.Pipe
		}
		p := pipe.New(path)
		p.ConnectTimeout = c.opts.Timeout.Time()
		return p
	}

	t := tcp.New(fmt.Sprintf("%s:%d", c.opts.Host, c.opts.Port))
	t.ConnectTimeout = c.opts.Timeout.Time()
	return t
}

func (c *Core) currentTransport() transport.Transport {
	c.transportMu.Lock()
	defer c.transportMu.Unlock()
	return c.tr
}

func (c *Core) setTransport(t transport.Transport) {
	c.transportMu.Lock()
	c.tr = t
	c.transportMu.Unlock()
}

var _ Submitter = (*Core)(nil)

// metricsSet is the optional Prometheus surface, registered only when
// config.Options.MetricsRegisterer is non-nil.
type metricsSet struct {
	dropped    prometheus.Counter
	reconnects prometheus.Counter
	backlogLen prometheus.Gauge
}

func newMetricsSet(reg prometheus.Registerer, connID string) *metricsSet {
	m := &metricsSet{
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "siclient",
			Subsystem:   "protocol",
			Name:        "dropped_records_total",
			Help:        "Records evicted from the backlog queue before delivery.",
			ConstLabels: prometheus.Labels{"connection_id": connID},
		}),
		reconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "siclient",
			Subsystem:   "protocol",
			Name:        "reconnect_attempts_total",
			Help:        "Reconnect attempts made, successful or not.",
			ConstLabels: prometheus.Labels{"connection_id": connID},
		}),
		backlogLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "siclient",
			Subsystem:   "protocol",
			Name:        "backlog_records",
			Help:        "Records currently held in the backlog queue.",
			ConstLabels: prometheus.Labels{"connection_id": connID},
		}),
	}

	reg.MustRegister(m.dropped, m.reconnects, m.backlogLen)

	return m
}

// estimatedCost converts a codec.Record's EstimatedCost into the int64
// queue/command accounting unit.
func estimatedCost(rec codec.Record) int64 {
	return int64(rec.EstimatedCost)
}

func writeCommand(rec codec.Record) command.Command {
	return command.Command{Kind: command.Write, Record: rec, EstimatedCost: estimatedCost(rec)}
}
