package game

import "math"

// Steer decides where a mover continues each time it reaches a tile center.
// Returning DirNone stops the mover at that center.
type Steer func(m *Mover) Direction

// Mover is the kinematic state shared by the player and the ghosts: a
// position on the grid, a travel direction, and at most one buffered turn.
type Mover struct {
	Pos     Position
	Dir     Direction
	Pending Direction
}

// Buffer records a requested turn. Reversals are rejected here; the only
// reversal path is ForceReverse.
func (m *Mover) Buffer(d Direction) {
	if d == DirNone || d == m.Dir.Opposite() {
		return
	}
	m.Pending = d
}

// ForceReverse flips the travel direction immediately and drops any buffered
// turn, which was requested against the old heading. Used by mode-override
// transitions only.
func (m *Mover) ForceReverse() {
	if m.Dir == DirNone {
		return
	}
	m.Dir = m.Dir.Opposite()
	m.Pending = DirNone
}

// Advance moves the mover dist tiles along grid-aligned corridors. The steer
// function is consulted at every tile center crossed, so a single call may
// carry the mover through several decisions when dist is large. Crossing the
// tunnel boundary wraps to the paired exit coordinate, preserving the sub-tile
// offset and direction.
func (m *Mover) Advance(mz *Maze, dist float64, steer Steer) {
	const minStep = 1e-9
	for dist > minStep {
		if m.Pos.AtCenter() {
			m.snapToCenter()
			d := steer(m)
			if d == DirNone {
				m.Dir = DirNone
				return
			}
			m.Dir = d
			next := m.Pos.Step(d)
			next.Col, next.Row = mz.Wrap(next.Col, next.Row)
			if !mz.IsWalkable(next.Col, next.Row) {
				return
			}
		}
		if m.Dir == DirNone {
			return
		}
		step := math.Min(dist, m.distToNextCenter())
		m.move(mz, step)
		dist -= step
	}
}

// snapToCenter zeroes residual float error in the sub-tile offset.
func (m *Mover) snapToCenter() {
	m.Pos.OffX = 0
	m.Pos.OffY = 0
}

// distToNextCenter returns how far the mover can travel along its current
// direction before reaching the next tile center.
func (m *Mover) distToNextCenter() float64 {
	var off, sign float64
	switch m.Dir {
	case DirLeft:
		off, sign = m.Pos.OffX, -1
	case DirRight:
		off, sign = m.Pos.OffX, 1
	case DirUp:
		off, sign = m.Pos.OffY, -1
	case DirDown:
		off, sign = m.Pos.OffY, 1
	default:
		return 0
	}
	progress := sign * off // signed progress past the current center
	if progress < 0 {
		// Approaching the current cell's center.
		return -progress
	}
	return 1 - progress
}

// move translates the mover by step tiles, rolling the offset into the grid
// coordinate when it passes the half-tile boundary.
func (m *Mover) move(mz *Maze, step float64) {
	dx, dy := m.Dir.Delta()
	m.Pos.OffX += float64(dx) * step
	m.Pos.OffY += float64(dy) * step

	if m.Pos.OffX > 0.5 {
		m.Pos.Col++
		m.Pos.OffX -= 1
	} else if m.Pos.OffX < -0.5 {
		m.Pos.Col--
		m.Pos.OffX += 1
	}
	if m.Pos.OffY > 0.5 {
		m.Pos.Row++
		m.Pos.OffY -= 1
	} else if m.Pos.OffY < -0.5 {
		m.Pos.Row--
		m.Pos.OffY += 1
	}

	m.Pos.Col, m.Pos.Row = mz.Wrap(m.Pos.Col, m.Pos.Row)
}

// CorridorSteer keeps a mover moving straight, consuming the buffered turn
// when the grid permits it and discarding it otherwise. This is the player's
// steering policy; the house door is closed to it.
func CorridorSteer(mz *Maze) Steer {
	return func(m *Mover) Direction {
		if m.Pending != DirNone && m.Pending != m.Dir.Opposite() {
			next := m.Pos.Step(m.Pending)
			if mz.IsOpen(next.Col, next.Row) {
				d := m.Pending
				m.Pending = DirNone
				return d
			}
		}
		m.Pending = DirNone
		straight := m.Pos.Step(m.Dir)
		if m.Dir != DirNone && mz.IsOpen(straight.Col, straight.Row) {
			return m.Dir
		}
		return DirNone
	}
}

// TargetSteer picks the open neighbor closest to target by straight-line
// distance, never reversing unless every other way is blocked. Ties resolve
// in a fixed direction order so steering is deterministic. House tiles are
// closed; HouseTargetSteer lifts that for actors crossing the door.
func TargetSteer(mz *Maze, target Cell) Steer {
	return steerToward(mz.IsOpen, mz, target)
}

// HouseTargetSteer steers like TargetSteer but may enter house tiles. Only
// the house exit and return sequences use it.
func HouseTargetSteer(mz *Maze, target Cell) Steer {
	return steerToward(mz.IsWalkable, mz, target)
}

func steerToward(pass func(col, row int) bool, mz *Maze, target Cell) Steer {
	return func(m *Mover) Direction {
		best := DirNone
		bestDist := math.MaxInt
		opp := m.Dir.Opposite()
		for _, d := range steerOrder {
			if d == opp {
				continue
			}
			next := m.Pos.Step(d)
			next.Col, next.Row = mz.Wrap(next.Col, next.Row)
			if !pass(next.Col, next.Row) {
				continue
			}
			if dist := next.distSq(target); dist < bestDist {
				bestDist = dist
				best = d
			}
		}
		if best == DirNone && m.Dir != DirNone {
			// Dead end: reversing is the only way out.
			next := m.Pos.Step(opp)
			next.Col, next.Row = mz.Wrap(next.Col, next.Row)
			if pass(next.Col, next.Row) {
				return opp
			}
		}
		return best
	}
}

// RandomSteer picks uniformly among open non-reverse neighbors, falling
// back to any open neighbor and finally to holding position. This is the
// frightened ghosts' steering policy.
func RandomSteer(mz *Maze, rng Rand) Steer {
	return func(m *Mover) Direction {
		opp := m.Dir.Opposite()
		var open []Direction
		for _, d := range steerOrder {
			if d == opp {
				continue
			}
			next := m.Pos.Step(d)
			next.Col, next.Row = mz.Wrap(next.Col, next.Row)
			if mz.IsOpen(next.Col, next.Row) {
				open = append(open, d)
			}
		}
		if len(open) == 0 {
			for _, d := range steerOrder {
				next := m.Pos.Step(d)
				next.Col, next.Row = mz.Wrap(next.Col, next.Row)
				if mz.IsOpen(next.Col, next.Row) {
					open = append(open, d)
				}
			}
		}
		if len(open) == 0 {
			return DirNone
		}
		return open[rng.Intn(len(open))]
	}
}

// Rand is the slice of math/rand the simulation uses; taking it as an
// interface keeps runs reproducible under a seeded source.
type Rand interface {
	Intn(n int) int
}
