package metrics

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Collector keeps process-local request counters. It is safe for
// concurrent use.
type Collector struct {
	totalRequests   atomic.Uint64
	clientErrors    atomic.Uint64
	serverErrors    atomic.Uint64
	rateLimited     atomic.Uint64
	unauthorized    atomic.Uint64
	totalDurationMs atomic.Uint64

	mu      sync.Mutex
	reports map[string]uint64
}

func New() *Collector {
	return &Collector{reports: map[string]uint64{}}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status >= http.StatusInternalServerError:
		c.serverErrors.Add(1)
	case status == http.StatusTooManyRequests:
		c.rateLimited.Add(1)
		c.clientErrors.Add(1)
	case status == http.StatusUnauthorized:
		c.unauthorized.Add(1)
		c.clientErrors.Add(1)
	case status >= http.StatusBadRequest:
		c.clientErrors.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
}

// RecordReport counts a generated report artifact, keyed "kind/format".
func (c *Collector) RecordReport(kind, format string) {
	c.mu.Lock()
	c.reports[kind+"/"+format]++
	c.mu.Unlock()
}

func (c *Collector) Snapshot() map[string]any {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.Lock()
	reports := make(map[string]uint64, len(c.reports))
	for key, count := range c.reports {
		reports[key] = count
	}
	c.mu.Unlock()

	return map[string]any{
		"requestsTotal":     total,
		"clientErrorsTotal": c.clientErrors.Load(),
		"serverErrorsTotal": c.serverErrors.Load(),
		"rateLimitedTotal":  c.rateLimited.Load(),
		"unauthorizedTotal": c.unauthorized.Load(),
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"reportsGenerated":  reports,
	}
}
