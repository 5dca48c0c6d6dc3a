// metrics.go - Metrics collection for the note ledger driver.
package main

import (
	"sync"
	"time"
)

// MetricsCollector accumulates counters, gauges, and histograms for the
// transaction workload. Safe for concurrent use.
type MetricsCollector struct {
	mu         sync.RWMutex
	counters   map[string]int64
	gauges     map[string]float64
	histograms map[string][]float64
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		counters:   make(map[string]int64),
		gauges:     make(map[string]float64),
		histograms: make(map[string][]float64),
	}
}

// IncrementCounter increments a counter metric.
func (mc *MetricsCollector) IncrementCounter(name string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.counters[name]++
}

// SetGauge sets a gauge metric value.
func (mc *MetricsCollector) SetGauge(name string, value float64) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.gauges[name] = value
}

// RecordHistogram records a value in a histogram.
func (mc *MetricsCollector) RecordHistogram(name string, value float64) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	values := append(mc.histograms[name], value)
	// Keep only the last 1000 values for memory efficiency
	if len(values) > 1000 {
		values = values[len(values)-1000:]
	}
	mc.histograms[name] = values
}

// Summary returns a flattened view of all metrics: counters and gauges as-is,
// histograms reduced to count/min/max/avg.
func (mc *MetricsCollector) Summary() map[string]interface{} {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	summary := make(map[string]interface{})
	for name, v := range mc.counters {
		summary[name] = v
	}
	for name, v := range mc.gauges {
		summary[name] = v
	}
	for name, values := range mc.histograms {
		if len(values) == 0 {
			continue
		}
		min, max, sum := values[0], values[0], 0.0
		for _, v := range values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			sum += v
		}
		summary[name] = map[string]float64{
			"count": float64(len(values)),
			"min":   min,
			"max":   max,
			"avg":   sum / float64(len(values)),
		}
	}
	return summary
}

// Predefined metric names
const (
	MetricApplyAccepted = "apply_accepted_count"
	MetricApplyRejected = "apply_rejected_count"
	MetricMintCount     = "mint_count"
	MetricApplySeconds  = "apply_duration_seconds"
	MetricLiveNotes     = "live_note_count"
	MetricAssetSupply   = "asset_supply"
)

// Convenience methods for the transaction workload

func (mc *MetricsCollector) RecordAccepted(d time.Duration) {
	mc.IncrementCounter(MetricApplyAccepted)
	mc.RecordHistogram(MetricApplySeconds, d.Seconds())
}

func (mc *MetricsCollector) RecordRejected(reason string, d time.Duration) {
	mc.IncrementCounter(MetricApplyRejected)
	mc.IncrementCounter(MetricApplyRejected + "_" + reason)
	mc.RecordHistogram(MetricApplySeconds, d.Seconds())
}

func (mc *MetricsCollector) RecordMint() {
	mc.IncrementCounter(MetricMintCount)
}
