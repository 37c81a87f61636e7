package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWaves(t *testing.T) {
	waves := DefaultWaves()

	assert.Equal(t, ModeScatter, waves[0].Mode)
	for i := 1; i < len(waves); i++ {
		assert.NotEqual(t, waves[i-1].Mode, waves[i].Mode, "waves must alternate")
	}

	last := waves[len(waves)-1]
	assert.Equal(t, ModeChase, last.Mode)
	assert.LessOrEqual(t, last.Duration, time.Duration(0), "final wave is permanent")
	for _, w := range waves[:len(waves)-1] {
		assert.Greater(t, w.Duration, time.Duration(0))
	}
}

func TestSchedulerAdvance(t *testing.T) {
	s := NewScheduler(nil)

	assert.Equal(t, ModeScatter, s.Current())
	assert.Equal(t, 7*time.Second, s.Remaining())

	mode, changed := s.Advance(3 * time.Second)
	assert.Equal(t, ModeScatter, mode)
	assert.False(t, changed)
	assert.Equal(t, 4*time.Second, s.Remaining())

	mode, changed = s.Advance(4 * time.Second)
	assert.Equal(t, ModeChase, mode)
	assert.True(t, changed)
	assert.Equal(t, 20*time.Second, s.Remaining())
}

func TestSchedulerCarryOver(t *testing.T) {
	s := NewScheduler(nil)

	// 8s overshoots the 7s scatter wave by 1s; the overshoot counts against
	// the chase wave that follows.
	mode, changed := s.Advance(8 * time.Second)
	assert.Equal(t, ModeChase, mode)
	assert.True(t, changed)
	assert.Equal(t, 19*time.Second, s.Remaining())
}

func TestSchedulerTimelineUnderTicks(t *testing.T) {
	s := NewScheduler([]Wave{
		{Mode: ModeScatter, Duration: 2 * time.Second},
		{Mode: ModeChase, Duration: 3 * time.Second},
		{Mode: ModeScatter, Duration: 1 * time.Second},
		{Mode: ModeChase},
	})

	// Drive the scheduler in small steps and check the mode tracks the
	// cumulative timeline.
	const step = 50 * time.Millisecond
	expectedAt := func(elapsed time.Duration) Mode {
		switch {
		case elapsed < 2*time.Second:
			return ModeScatter
		case elapsed < 5*time.Second:
			return ModeChase
		case elapsed < 6*time.Second:
			return ModeScatter
		default:
			return ModeChase
		}
	}

	for elapsed := step; elapsed <= 8*time.Second; elapsed += step {
		mode, _ := s.Advance(step)
		assert.Equal(t, expectedAt(elapsed), mode, "at %v", elapsed)
	}
}

func TestSchedulerFinalWaveNeverExpires(t *testing.T) {
	s := NewScheduler(nil)

	_, _ = s.Advance(10 * time.Minute)
	assert.Equal(t, ModeChase, s.Current())
	assert.Equal(t, time.Duration(0), s.Remaining())

	mode, changed := s.Advance(time.Hour)
	assert.Equal(t, ModeChase, mode)
	assert.False(t, changed)
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler(nil)
	// 10s is inside the first chase wave (7s-27s).
	_, _ = s.Advance(10 * time.Second)
	assert.Equal(t, ModeChase, s.Current())

	s.Reset()
	assert.Equal(t, ModeScatter, s.Current())
	assert.Equal(t, 7*time.Second, s.Remaining())
}
