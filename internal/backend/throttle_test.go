package backend

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottleSpacesCalls(t *testing.T) {
	th := NewThrottle(30 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	assert.True(t, th.Wait(ctx))
	assert.True(t, th.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
}

func TestThrottleHonoursCancellation(t *testing.T) {
	th := NewThrottle(time.Hour)
	assert.True(t, th.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, th.Wait(ctx))
}

func TestDisabledThrottle(t *testing.T) {
	var th *Throttle
	assert.True(t, th.Wait(context.Background()))
	assert.True(t, NewThrottle(0).Wait(context.Background()))
}

func TestThrottleTicketsSupersede(t *testing.T) {
	th := NewThrottle(0)
	first := th.Ticket()
	assert.True(t, th.Latest(first))
	second := th.Ticket()
	assert.False(t, th.Latest(first))
	assert.True(t, th.Latest(second))
}
