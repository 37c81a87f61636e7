package game

import (
	"encoding/json"
	"time"
)

// GhostState is a ghost's position in its lifecycle state machine. The
// scatter, chase, frightened, and eaten states correspond to the Mode of the
// same name; in-house and exiting cover the house release sequence, during
// which overrides never apply.
type GhostState int

const (
	GhostInHouse GhostState = iota
	GhostExiting
	GhostScatter
	GhostChase
	GhostFrightened
	GhostEaten
)

func (s GhostState) String() string {
	switch s {
	case GhostInHouse:
		return "in_house"
	case GhostExiting:
		return "exiting"
	case GhostScatter:
		return "scatter"
	case GhostChase:
		return "chase"
	case GhostFrightened:
		return "frightened"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes GhostState as a string.
func (s GhostState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Ghost is one adversary actor.
type Ghost struct {
	Mover
	Personality Personality
	State       GhostState

	Home    Cell // spawn cell inside the house; the eaten-mode target
	Scatter Cell // fixed corner patrol target

	// baseMode remembers the scheduler's scatter/chase wave while an
	// override (frightened/eaten) or the house sequence is active.
	baseMode    Mode
	releaseLeft time.Duration
}

// NewGhost creates a ghost at its home cell, waiting out its release delay.
func NewGhost(p Personality, home, scatter Cell, release time.Duration, base Mode) *Ghost {
	g := &Ghost{
		Personality: p,
		State:       GhostInHouse,
		Home:        home,
		Scatter:     scatter,
		baseMode:    base,
		releaseLeft: release,
	}
	g.Pos = Centered(home.Col, home.Row)
	if release <= 0 {
		g.State = GhostExiting
	}
	return g
}

// Mode returns the ghost's active behavior mode. House states report the
// remembered base mode; they are not targetable states.
func (g *Ghost) Mode() Mode {
	switch g.State {
	case GhostScatter:
		return ModeScatter
	case GhostChase:
		return ModeChase
	case GhostFrightened:
		return ModeFrightened
	case GhostEaten:
		return ModeEaten
	default:
		return g.baseMode
	}
}

// BaseMode returns the remembered scatter/chase wave mode.
func (g *Ghost) BaseMode() Mode {
	return g.baseMode
}

// SetBaseMode records a wave change. Ghosts in scatter or chase follow it
// immediately; overridden and housed ghosts update silently so the new wave
// takes effect when their override or house sequence ends. Wave changes never
// reverse a ghost; only override transitions do.
func (g *Ghost) SetBaseMode(m Mode) {
	g.baseMode = m
	switch g.State {
	case GhostScatter, GhostChase:
		g.State = stateForMode(m)
	}
}

func stateForMode(m Mode) GhostState {
	if m == ModeChase {
		return GhostChase
	}
	return GhostScatter
}

// Frighten applies the frightened override and reverses the ghost's travel
// direction in the same tick. Eaten ghosts and ghosts still in the house
// sequence are unaffected.
func (g *Ghost) Frighten() {
	switch g.State {
	case GhostScatter, GhostChase, GhostFrightened:
		g.State = GhostFrightened
		g.ForceReverse()
	}
}

// Unfrighten ends the frightened override, restoring the remembered base mode.
func (g *Ghost) Unfrighten() {
	if g.State == GhostFrightened {
		g.State = stateForMode(g.baseMode)
	}
}

// Eat marks a captured frightened ghost as eaten; it heads home at eaten
// speed and is inert to further contact until it arrives.
func (g *Ghost) Eat() {
	g.State = GhostEaten
}

// Frightened reports whether the frightened override is active.
func (g *Ghost) Frightened() bool {
	return g.State == GhostFrightened
}

// Dangerous reports whether touching this ghost kills the player.
func (g *Ghost) Dangerous() bool {
	return g.State == GhostScatter || g.State == GhostChase
}

// speed returns the ghost's travel speed in tiles per second for its current
// state and location.
func (g *Ghost) speed(mz *Maze) float64 {
	switch g.State {
	case GhostEaten:
		return GhostEatenSpeed
	case GhostInHouse, GhostExiting:
		return GhostHouseSpeed
	case GhostFrightened:
		if mz.IsTunnel(g.Pos.Col, g.Pos.Row) {
			return GhostTunnelSpeed
		}
		return GhostFrightSpeed
	default:
		if mz.IsTunnel(g.Pos.Col, g.Pos.Row) {
			return GhostTunnelSpeed
		}
		return GhostSpeed
	}
}

// Update advances the ghost one tick: release countdown, target computation,
// then movement.
func (g *Ghost) Update(mz *Maze, dt time.Duration, snap Snapshot, rng Rand) {
	dist := g.speed(mz) * dt.Seconds()

	switch g.State {
	case GhostInHouse:
		g.releaseLeft -= dt
		if g.releaseLeft <= 0 {
			g.State = GhostExiting
		}

	case GhostExiting:
		exit := mz.ExitCell()
		g.Advance(mz, dist, arriveSteer(mz, exit))
		if g.Pos.Cell == exit && g.Pos.AtCenter() {
			g.State = stateForMode(g.baseMode)
		}

	case GhostFrightened:
		g.Advance(mz, dist, RandomSteer(mz, rng))

	case GhostEaten:
		g.Advance(mz, dist, arriveSteer(mz, g.Home))
		if g.Pos.Cell == g.Home && g.Pos.AtCenter() {
			// Arrival at the house cell ends the eaten override. The ghost
			// re-runs the exit sequence to rejoin the maze, then resumes the
			// remembered base mode.
			g.State = GhostExiting
		}

	default: // scatter, chase
		target := Target(g.Personality, g.Mode(), g.Pos.Cell, g.Home, g.Scatter, snap)
		g.Advance(mz, dist, TargetSteer(mz, target))
	}
}

// arriveSteer steers toward target and stops the mover once it stands on the
// target cell, so a ghost cannot overshoot its destination within one tick.
// It steers with house access since both its callers cross the door.
func arriveSteer(mz *Maze, target Cell) Steer {
	inner := HouseTargetSteer(mz, target)
	return func(m *Mover) Direction {
		if m.Pos.Cell == target {
			return DirNone
		}
		return inner(m)
	}
}
