package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdleTimerStartAndTick(t *testing.T) {
	var timer IdleTimer

	gen := timer.Start(3)
	assert.Equal(t, 3, timer.Remaining())
	assert.True(t, timer.Live(gen))

	assert.Equal(t, 2, timer.Tick())
	assert.Equal(t, 1, timer.Tick())
	assert.Equal(t, 0, timer.Tick())
}

func TestIdleTimerStop(t *testing.T) {
	var timer IdleTimer

	gen := timer.Start(300)
	timer.Stop()

	assert.False(t, timer.Live(gen))
}

func TestIdleTimerRestartInvalidatesOldGeneration(t *testing.T) {
	var timer IdleTimer

	first := timer.Start(300)
	second := timer.Start(300)

	assert.False(t, timer.Live(first))
	assert.True(t, timer.Live(second))
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, timer.Generation())
}

func TestIdleTimerNeverLiveBeforeStart(t *testing.T) {
	var timer IdleTimer

	assert.False(t, timer.Live(0))
	assert.False(t, timer.Live(1))
}
