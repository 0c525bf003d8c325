package metrics

import (
	"sync/atomic"
	"time"
)

// Collector counts HTTP traffic and payslip calculations for /metrics.
type Collector struct {
	totalRequests   atomic.Uint64
	errorRequests   atomic.Uint64
	clientErrors    atomic.Uint64
	rateLimited     atomic.Uint64
	totalDurationMs atomic.Uint64
	calculations    atomic.Uint64
	advances        atomic.Uint64
	pdfsRendered    atomic.Uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status >= 500:
		c.errorRequests.Add(1)
	case status == 429:
		c.rateLimited.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
}

func (c *Collector) RecordCalculation(receiveAdvance bool) {
	c.calculations.Add(1)
	if receiveAdvance {
		c.advances.Add(1)
	}
}

func (c *Collector) RecordPDF() {
	c.pdfsRendered.Add(1)
}

func (c *Collector) Snapshot() map[string]any {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"errorsTotal":       c.errorRequests.Load(),
		"clientErrorsTotal": c.clientErrors.Load(),
		"rateLimitedTotal":  c.rateLimited.Load(),
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"calculationsTotal": c.calculations.Load(),
		"advancesTotal":     c.advances.Load(),
		"pdfsRenderedTotal": c.pdfsRendered.Load(),
	}
}
