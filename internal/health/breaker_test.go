package health

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBreakerTripsAtThresholdAndResets(t *testing.T) {
	h := NewProviderHealth(5, zap.NewNop().Sugar())

	for i := 0; i < 4; i++ {
		assert.False(t, h.RecordFailure(), "failure %d must not trip", i+1)
	}
	assert.True(t, h.RecordFailure(), "5th consecutive failure trips")
	assert.Zero(t, h.ConsecutiveFailures(), "trip resets the counter")

	// a fresh run of failures needs the full threshold again
	for i := 0; i < 4; i++ {
		assert.False(t, h.RecordFailure())
	}
	assert.True(t, h.RecordFailure())
}

func TestBreakerSuccessResets(t *testing.T) {
	h := NewProviderHealth(5, nil)
	h.RecordFailure()
	h.RecordFailure()
	h.RecordSuccess()
	assert.Zero(t, h.ConsecutiveFailures())

	for i := 0; i < 4; i++ {
		assert.False(t, h.RecordFailure())
	}
	assert.True(t, h.RecordFailure())
}

func TestBreakerConcurrentCounting(t *testing.T) {
	h := NewProviderHealth(1000, nil)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h.RecordFailure()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 500, h.ConsecutiveFailures())
}
