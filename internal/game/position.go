package game

import (
	"encoding/json"
	"math"
)

// Direction is one of the four grid directions, or DirNone for a stopped actor.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// steerOrder is the fixed preference order used when several directions tie.
// Keeping it fixed makes ghost steering deterministic.
var steerOrder = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// MarshalJSON serializes Direction as a string.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON deserializes Direction from a string.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = ParseDirection(s)
	return nil
}

// ParseDirection returns the Direction named by s, or DirNone.
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return DirUp
	case "down":
		return DirDown
	case "left":
		return DirLeft
	case "right":
		return DirRight
	default:
		return DirNone
	}
}

// Delta returns the unit grid vector for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the 180-degree reversal of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Cell is a grid coordinate.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Step returns the neighboring cell one tile in the given direction.
// The result is not wrapped; callers pass it through Maze.Wrap when needed.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// StepN returns the cell n tiles in the given direction.
func (c Cell) StepN(d Direction, n int) Cell {
	dx, dy := d.Delta()
	return Cell{Col: c.Col + n*dx, Row: c.Row + n*dy}
}

// Distance returns the Euclidean distance between two cells in tiles.
func (c Cell) Distance(o Cell) float64 {
	dx := float64(c.Col - o.Col)
	dy := float64(c.Row - o.Row)
	return math.Sqrt(dx*dx + dy*dy)
}

// distSq returns the squared Euclidean distance, used for comparisons.
func (c Cell) distSq(o Cell) int {
	dx := c.Col - o.Col
	dy := c.Row - o.Row
	return dx*dx + dy*dy
}

// Position is a grid cell plus a continuous sub-tile offset from the cell
// center, bounded to half a tile on each axis. At most one of OffX/OffY is
// nonzero because actors travel along grid-aligned corridors.
type Position struct {
	Cell
	OffX float64 `json:"off_x"`
	OffY float64 `json:"off_y"`
}

// Centered returns a Position exactly at the center of the given cell.
func Centered(col, row int) Position {
	return Position{Cell: Cell{Col: col, Row: row}}
}

const centerEpsilon = 1e-9

// AtCenter reports whether the position is at its cell center.
func (p Position) AtCenter() bool {
	return math.Abs(p.OffX) <= centerEpsilon && math.Abs(p.OffY) <= centerEpsilon
}
