package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/restaurant-reservation/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	successfulService := func() error {
		return nil
	}
	errService := errors.New("service error")
	failingService := func() error {
		return errService
	}

	tests := []struct {
		name             string
		recordLength     int
		timeout          time.Duration
		percentile       float64
		recoveryRequests int
	}{
		{
			name:             "open, half-open, closed",
			recordLength:     10,
			timeout:          50 * time.Millisecond,
			percentile:       0.30,
			recoveryRequests: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cb := circuit_breaker.New(tt.recordLength, tt.timeout, tt.percentile, tt.recoveryRequests)

			for i := 0; i < 20; i++ {
				require.NoError(t, cb.Call(successfulService))
			}
			require.Equal(t, circuit_breaker.Closed, cb.State())

			// 3 of 10 fails reaches the percentile
			for i := 0; i < 3; i++ {
				require.ErrorIs(t, cb.Call(failingService), errService)
			}
			require.Equal(t, circuit_breaker.Open, cb.State())
			require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

			time.Sleep(2 * tt.timeout)
			require.NoError(t, cb.Call(successfulService))
			require.Equal(t, circuit_breaker.HalfOpen, cb.State())

			require.ErrorIs(t, cb.Call(failingService), errService)
			require.Equal(t, circuit_breaker.Open, cb.State())

			time.Sleep(2 * tt.timeout)
			for i := 0; i < tt.recoveryRequests; i++ {
				require.NoError(t, cb.Call(successfulService))
			}
			require.Equal(t, circuit_breaker.Closed, cb.State())
		})
	}
}
