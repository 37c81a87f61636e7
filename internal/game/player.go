package game

import "time"

// Player is the player-controlled actor. Its intended direction arrives from
// the input collaborator as a single buffered turn.
type Player struct {
	Mover
	powerLeft time.Duration
}

// NewPlayer creates a stopped player at the spawn cell.
func NewPlayer(spawn Cell) *Player {
	p := &Player{}
	p.Pos = Centered(spawn.Col, spawn.Row)
	return p
}

// SetIntent buffers the client's requested direction. The turn is consumed at
// the next tile center that permits it.
func (p *Player) SetIntent(d Direction) {
	p.Buffer(d)
}

// Powered reports whether a power item is active.
func (p *Player) Powered() bool {
	return p.powerLeft > 0
}

// PowerLeft returns the remaining power duration.
func (p *Player) PowerLeft() time.Duration {
	return p.powerLeft
}

// SetPower starts (or restarts) the power window.
func (p *Player) SetPower(d time.Duration) {
	p.powerLeft = d
}

// TickPower advances the power countdown and reports whether the window
// expired on this tick.
func (p *Player) TickPower(dt time.Duration) bool {
	if p.powerLeft <= 0 {
		return false
	}
	p.powerLeft -= dt
	if p.powerLeft <= 0 {
		p.powerLeft = 0
		return true
	}
	return false
}

func (p *Player) speed() float64 {
	if p.Powered() {
		return PlayerPoweredSpeed
	}
	return PlayerSpeed
}

// Update advances the player one tick along the corridor, honoring the
// buffered turn at tile centers.
func (p *Player) Update(mz *Maze, dt time.Duration) {
	p.Advance(mz, p.speed()*dt.Seconds(), CorridorSteer(mz))
}

// Reset returns the player to a spawn cell, stopped and unpowered.
func (p *Player) Reset(spawn Cell) {
	p.Pos = Centered(spawn.Col, spawn.Row)
	p.Dir = DirNone
	p.Pending = DirNone
	p.powerLeft = 0
}
