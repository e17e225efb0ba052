// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package metrics exposes binary search tree statistics to Prometheus.
package metrics

import (
	"github.com/k33nice/bst"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "tree"

// Collector gauges a tree's size, height and key sum. Values are read from
// the tree at scrape time, so a tree shared with a scraping goroutine must
// be guarded by the caller.
type Collector struct {
	size   prometheus.GaugeFunc
	height prometheus.GaugeFunc
	sum    prometheus.GaugeFunc
}

// NewCollector returns a collector for t. Labels are attached as constant
// labels to every gauge.
func NewCollector(namespace string, t bst.Tree, labels prometheus.Labels) *Collector {
	gauge := func(name, help string, fn func() int) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		}, func() float64 { return float64(fn()) })
	}

	return &Collector{
		size:   gauge("size", "Number of keys stored in the tree.", t.Size),
		height: gauge("height", "Height of the tree, -1 when empty.", t.Height),
		sum:    gauge("key_sum", "Sum of the keys stored in the tree.", t.Sum),
	}
}

var _ prometheus.Collector = (*Collector)(nil)

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.size.Describe(ch)
	c.height.Describe(ch)
	c.sum.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.size.Collect(ch)
	c.height.Collect(ch)
	c.sum.Collect(ch)
}

// Ops counts tree mutations.
type Ops struct {
	Inserts prometheus.Counter
	Deletes *prometheus.CounterVec
}

// Delete results.
const (
	ResultRemoved = "removed"
	ResultMissing = "missing"
)

// NewOps creates mutation counters registered with reg. A nil reg leaves
// them unregistered.
func NewOps(namespace string, reg prometheus.Registerer) *Ops {
	ops := &Ops{
		Inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inserts_total",
			Help:      "Number of keys inserted.",
		}),
		Deletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "deletes_total",
			Help:      "Number of delete calls by result.",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(ops.Inserts, ops.Deletes)
	}
	return ops
}

type instrumented struct {
	bst.Tree
	ops *Ops
}

// Instrument wraps t so that every Insert and Delete is counted in ops.
func Instrument(t bst.Tree, ops *Ops) bst.Tree {
	return &instrumented{Tree: t, ops: ops}
}

func (t *instrumented) Insert(key bst.Key) {
	t.Tree.Insert(key)
	t.ops.Inserts.Inc()
}

func (t *instrumented) Delete(key bst.Key) bool {
	deleted := t.Tree.Delete(key)
	result := ResultMissing
	if deleted {
		result = ResultRemoved
	}
	t.ops.Deletes.WithLabelValues(result).Inc()
	return deleted
}
