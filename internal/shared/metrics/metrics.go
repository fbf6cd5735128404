// Package metrics tracks pipeline counters and exposes them in
// Prometheus text format on the dev-only routes.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	analyzeStartedTotal   atomic.Uint64
	analyzeCompletedTotal atomic.Uint64
	analyzeFailedTotal    atomic.Uint64
	generateStartedTotal  atomic.Uint64
	generateFailedTotal   atomic.Uint64
	quotaErrorsTotal      atomic.Uint64

	analyzeDuration  = newHistogram([]float64{250, 500, 1000, 2000, 5000, 10000, 30000, 60000, 120000})
	generateDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncAnalyzeStarted increments the analysis started counter.
func IncAnalyzeStarted() { analyzeStartedTotal.Add(1) }

// IncAnalyzeCompleted increments the analysis completed counter.
func IncAnalyzeCompleted() { analyzeCompletedTotal.Add(1) }

// IncAnalyzeFailed increments the analysis failed counter.
func IncAnalyzeFailed() { analyzeFailedTotal.Add(1) }

// IncGenerateStarted increments the generation started counter.
func IncGenerateStarted() { generateStartedTotal.Add(1) }

// IncGenerateFailed increments the generation failed counter.
func IncGenerateFailed() { generateFailedTotal.Add(1) }

// IncQuotaError increments the provider quota error counter.
func IncQuotaError() { quotaErrorsTotal.Add(1) }

// ObserveAnalyzeDurationMs records an analysis duration in milliseconds.
func ObserveAnalyzeDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analyzeDuration.Observe(value)
}

// ObserveGenerateDurationMs records a generation duration in milliseconds.
func ObserveGenerateDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	generateDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "analyze_started_total", "Total resume analyses started", analyzeStartedTotal.Load())
	writeCounter(&buf, "analyze_completed_total", "Total resume analyses completed", analyzeCompletedTotal.Load())
	writeCounter(&buf, "analyze_failed_total", "Total resume analyses failed", analyzeFailedTotal.Load())
	writeCounter(&buf, "generate_started_total", "Total resume generations started", generateStartedTotal.Load())
	writeCounter(&buf, "generate_failed_total", "Total resume generations failed", generateFailedTotal.Load())
	writeCounter(&buf, "llm_quota_errors_total", "Total provider quota errors", quotaErrorsTotal.Load())
	writeHistogram(&buf, "analyze_duration_ms", "Resume analysis duration in milliseconds", analyzeDuration.Snapshot())
	writeHistogram(&buf, "generate_duration_ms", "Resume generation duration in milliseconds", generateDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
