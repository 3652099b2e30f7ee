package utils

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLSetNoDuplicates(t *testing.T) {
	s := NewURLSet()

	assert.True(t, s.Add("http://127.0.0.1:8050/?site=ALL"), "first Add should return true")
	assert.False(t, s.Add("http://127.0.0.1:8050/?site=ALL"), "second Add of same URL should return false")
	assert.Equal(t, 1, s.Size())
}

func TestURLSetConcurrency(t *testing.T) {
	s := NewURLSet()
	var added int64

	pool := NewWorkerPool(10, 0)
	for i := 0; i < 100; i++ {
		pool.Submit(func() error {
			if s.Add("http://127.0.0.1:8050/?site=same") {
				atomic.AddInt64(&added, 1)
			}
			return nil
		})
	}
	require.NoError(t, pool.Wait())

	assert.Equal(t, int64(1), added)
}

func TestWorkerPoolRateLimit(t *testing.T) {
	rateLimitMs := 50
	pool := NewWorkerPool(1, rateLimitMs)

	var mu sync.Mutex
	var timestamps []time.Time
	for i := 0; i < 3; i++ {
		pool.Submit(func() error {
			mu.Lock()
			timestamps = append(timestamps, time.Now())
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, pool.Wait())

	require.Len(t, timestamps, 3)
	// job timestamps trail the limiter's clock by a few microseconds
	min := time.Duration(rateLimitMs)*time.Millisecond - 5*time.Millisecond
	for i := 1; i < len(timestamps); i++ {
		gap := timestamps[i].Sub(timestamps[i-1])
		assert.GreaterOrEqual(t, gap, min, "gap between job %d and %d", i-1, i)
	}
}

func TestWorkerPoolCollectsErrors(t *testing.T) {
	pool := NewWorkerPool(2, 0)
	first := errors.New("first")
	second := errors.New("second")

	pool.Submit(func() error { return first })
	pool.Submit(func() error { return nil })
	pool.Submit(func() error { return second })

	err := pool.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)

	assert.NoError(t, pool.Wait(), "errors are reset after Wait")
}
