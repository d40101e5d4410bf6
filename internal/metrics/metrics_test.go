package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter

	c.Inc()
	c.Add(4)

	assert.EqualValues(t, 5, c.Load())
}

func TestCounter_Concurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 50, c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(time.Millisecond)

	assert.GreaterOrEqual(t, timer.Duration(), time.Millisecond)
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.StartedAt.IsZero())
	assert.EqualValues(t, 0, r.RequestsServed.Load())
}
