package health

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultTripThreshold is how many consecutive AI failures trip the breaker.
const DefaultTripThreshold = 5

// ProviderHealth is a soft circuit breaker over the AI provider: a shared,
// lock-guarded counter of consecutive extraction failures. Tripping never
// blocks the next attempt; each job stands alone. It only escalates how
// the failure is reported.
type ProviderHealth struct {
	mu        sync.Mutex
	failures  int
	threshold int
	log       *zap.SugaredLogger
}

func NewProviderHealth(threshold int, log *zap.SugaredLogger) *ProviderHealth {
	if threshold <= 0 {
		threshold = DefaultTripThreshold
	}
	return &ProviderHealth{threshold: threshold, log: log}
}

// RecordSuccess resets the consecutive-failure counter.
func (h *ProviderHealth) RecordSuccess() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures = 0
}

// RecordFailure increments the counter. When the threshold is reached the
// counter resets and RecordFailure reports tripped, so the next run of
// failures starts counting from zero again.
func (h *ProviderHealth) RecordFailure() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.failures++
	if h.failures >= h.threshold {
		h.failures = 0
		if h.log != nil {
			h.log.Errorw("provider.breaker.tripped", "threshold", h.threshold)
		}
		return true
	}
	return false
}

// ConsecutiveFailures returns the current counter, for health reporting.
func (h *ProviderHealth) ConsecutiveFailures() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.failures
}
