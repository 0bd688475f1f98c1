package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFake_AdvanceFiresDueTimers(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewFake(start)

	var fired []string
	c.AfterFunc(5*time.Second, func() { fired = append(fired, "five") })
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "two") })

	c.Advance(3 * time.Second)
	assert.Equal(t, []string{"two"}, fired)
	assert.Equal(t, 1, c.PendingTimers())

	c.Advance(2 * time.Second)
	assert.Equal(t, []string{"two", "five"}, fired)
	assert.Equal(t, start.Add(5*time.Second), c.Now())
}

func TestFake_StopCancelsTimer(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	called := false
	timer := c.AfterFunc(time.Second, func() { called = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	c.Advance(time.Minute)
	assert.False(t, called)
}
