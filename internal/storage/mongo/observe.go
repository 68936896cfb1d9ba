package mongo

import (
	"time"

	"github.com/eventdeck/server/internal/metrics"
)

// observe times a store operation. The returned func records the duration
// and, when err is non-nil, increments the error counter.
func observe(collection, operation string) func(err error) {
	start := time.Now()
	return func(err error) {
		metrics.StoreOpDuration.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.StoreOpErrors.WithLabelValues(collection, operation).Inc()
		}
	}
}
