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
 *
 */

// Package ipcmetrics is internal instrumentation over the manager and
// worker packages: buffer depth gauges, tick/flush/poll counters, a
// parse-error counter and a flush-to-response latency histogram. None of
// it gates any operation's correctness; a caller that never wires a
// Registry in still gets a fully working Client/Server.
package ipcmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ipcfile"

// Registry owns every collector this package exposes, registered under a
// private *prometheus.Registry so a host process can mount it on its own
// /metrics handler without colliding with its own collector names.
type Registry struct {
	reg *prometheus.Registry

	bufferLen   *prometheus.GaugeVec
	ticks       *prometheus.CounterVec
	parseErrors *prometheus.CounterVec
	latency     prometheus.Histogram
}

// New constructs a Registry with every collector registered.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		bufferLen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "buffer_length",
			Help:      "Current number of queued requests per role and buffer variant.",
		}, []string{"role", "variant"}),
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loop_ticks_total",
			Help:      "Worker loop ticks processed, per role and loop name.",
		}, []string{"role", "loop"}),
		parseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_errors_total",
			Help:      "Malformed request/response files dropped, per file kind.",
		}, []string{"kind"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "get_response_latency_seconds",
			Help:      "Seconds between a GET flush and its matching GET_RESPONSE being consumed.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	r.reg.MustRegister(r.bufferLen, r.ticks, r.parseErrors, r.latency)
	return r
}

// SetBufferLen records the current depth of one buffer.
func (r *Registry) SetBufferLen(role, variant string, n int) {
	r.bufferLen.WithLabelValues(role, variant).Set(float64(n))
}

// IncTick records one completed worker loop tick.
func (r *Registry) IncTick(role, loop string) {
	r.ticks.WithLabelValues(role, loop).Inc()
}

// IncParseError records one dropped malformed file.
func (r *Registry) IncParseError(kind string) {
	r.parseErrors.WithLabelValues(kind).Inc()
}

// ObserveLatency records a flush-to-response latency sample in seconds.
func (r *Registry) ObserveLatency(seconds float64) {
	r.latency.Observe(seconds)
}

// Gatherer exposes the underlying *prometheus.Registry as a
// prometheus.Gatherer for mounting behind promhttp.HandlerFor.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
