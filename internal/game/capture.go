package game

import (
	"math"
	"time"
)

// Combo tracks the escalating capture multiplier within one power window. The
// counter is stored unclamped; only the score lookup clamps at the table end.
// It decays to zero after ComboDecay without a capture, and a fresh power
// item resets it explicitly.
type Combo struct {
	count     int
	decayLeft time.Duration
}

// Count returns the raw combo counter.
func (c *Combo) Count() int {
	return c.count
}

// Tick advances the decay countdown; the counter resets when it expires.
func (c *Combo) Tick(dt time.Duration) {
	if c.decayLeft <= 0 {
		return
	}
	c.decayLeft -= dt
	if c.decayLeft <= 0 {
		c.decayLeft = 0
		c.count = 0
	}
}

// Reset zeroes the counter and its decay timer.
func (c *Combo) Reset() {
	c.count = 0
	c.decayLeft = 0
}

// Capture records one ghost capture, returning the points awarded and the
// score-table index used, and restarts the decay countdown.
func (c *Combo) Capture() (points, index int) {
	index = c.count
	if index > len(GhostPointsTable)-1 {
		index = len(GhostPointsTable) - 1
	}
	points = GhostPointsTable[index]
	c.count++
	c.decayLeft = ComboDecay
	return points, index
}

// inContact reports whether two actors overlap: same grid tile, or centers
// within CaptureRange tiles of each other.
func inContact(a, b Position) bool {
	if a.Cell == b.Cell {
		return true
	}
	dx := (float64(a.Col) + a.OffX) - (float64(b.Col) + b.OffX)
	dy := (float64(a.Row) + a.OffY) - (float64(b.Row) + b.OffY)
	return math.Sqrt(dx*dx+dy*dy) <= CaptureRange
}

// ResolveContacts runs after all actor movement for the tick. Frightened
// ghosts in contact with the player become eaten and score through the combo;
// a dangerous ghost kills the player, which ends resolution for the tick.
// Eaten ghosts are inert. The returned events carry positions and points;
// died reports whether the player was killed.
func ResolveContacts(p *Player, ghosts []*Ghost, combo *Combo) (events []Event, scored int, died bool) {
	for _, g := range ghosts {
		if !inContact(p.Pos, g.Pos) {
			continue
		}
		switch {
		case g.Frightened():
			points, index := combo.Capture()
			g.Eat()
			scored += points
			events = append(events, GhostEatenEvent{
				Personality: g.Personality,
				Cell:        g.Pos.Cell,
				Points:      points,
				Combo:       index,
			})
		case g.Dangerous():
			died = true
			return events, scored, died
		}
	}
	return events, scored, died
}
