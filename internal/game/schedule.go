package game

import (
	"encoding/json"
	"time"
)

// Mode is a ghost's behavior mode. Frightened and eaten are overrides layered
// on top of the scatter/chase wave; the underlying base mode is remembered by
// the ghost and restored when the override ends.
type Mode int

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
	ModeEaten
)

func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Mode as a string.
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Wave is one scatter-or-chase interval in the global timeline. A Duration of
// zero or less means the wave never ends.
type Wave struct {
	Mode     Mode
	Duration time.Duration
}

// DefaultWaves returns the reference wave timeline: alternating scatter and
// chase, ending in permanent chase.
func DefaultWaves() []Wave {
	return []Wave{
		{Mode: ModeScatter, Duration: 7 * time.Second},
		{Mode: ModeChase, Duration: 20 * time.Second},
		{Mode: ModeScatter, Duration: 7 * time.Second},
		{Mode: ModeChase, Duration: 20 * time.Second},
		{Mode: ModeScatter, Duration: 5 * time.Second},
		{Mode: ModeChase, Duration: 20 * time.Second},
		{Mode: ModeScatter, Duration: 5 * time.Second},
		{Mode: ModeChase}, // permanent
	}
}

// Scheduler advances the global wave timeline. It is driven once per
// simulation tick; nothing here reads the wall clock, so pausing the tick
// loop freezes the schedule with its remaining duration intact.
type Scheduler struct {
	waves []Wave
	index int
	left  time.Duration
}

// NewScheduler creates a scheduler positioned at the first wave.
func NewScheduler(waves []Wave) *Scheduler {
	if len(waves) == 0 {
		waves = DefaultWaves()
	}
	s := &Scheduler{waves: waves}
	s.Reset()
	return s
}

// Reset rewinds the timeline to the first wave. Only an explicit level reset
// calls this; wave progression is otherwise monotonic.
func (s *Scheduler) Reset() {
	s.index = 0
	s.left = s.waves[0].Duration
}

// Current returns the active wave's mode.
func (s *Scheduler) Current() Mode {
	return s.waves[s.index].Mode
}

// Remaining returns how much of the current wave is left. The final wave
// reports zero and never expires.
func (s *Scheduler) Remaining() time.Duration {
	return s.left
}

// Advance accumulates dt against the current wave and steps to the next wave
// on expiry. It returns the active mode and whether the wave changed this
// tick. A forced frightened transition elsewhere never touches this timer;
// scatter/chase keeps advancing underneath the override.
func (s *Scheduler) Advance(dt time.Duration) (Mode, bool) {
	if s.waves[s.index].Duration <= 0 {
		return s.Current(), false
	}
	s.left -= dt
	changed := false
	for s.left <= 0 && s.index < len(s.waves)-1 {
		carry := s.left
		s.index++
		s.left = s.waves[s.index].Duration + carry
		changed = true
		if s.waves[s.index].Duration <= 0 {
			s.left = 0
			break
		}
	}
	return s.Current(), changed
}
