package game

import (
	"encoding/json"
	"fmt"
)

// Tile is the static content of one maze cell.
type Tile int

const (
	TileWall Tile = iota
	TileDot
	TilePower
	TileEmpty
	TileHouse
	TileTunnel
)

// Item is what a Collect call found on a tile.
type Item int

const (
	ItemNone Item = iota
	ItemDot
	ItemPower
)

func (i Item) String() string {
	switch i {
	case ItemDot:
		return "dot"
	case ItemPower:
		return "power"
	default:
		return "none"
	}
}

// MarshalJSON serializes Item as a string.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// Maze is the tile grid for one level. It is mutated only by Collect and is
// rebuilt between levels.
type Maze struct {
	Width  int
	Height int

	tiles     [][]Tile
	remaining int
	tunnelRow int // -1 when the layout has no tunnel

	// Landmarks recorded while parsing the layout.
	PlayerSpawn Cell
	GhostSpawns [GhostCount]Cell
	Door        Cell
}

// ParseLayout builds a Maze from a row-major grid of tile symbols.
// Symbols: '#' wall, '.' dot, 'o' power item, ' ' empty, 'H' ghost house,
// '-' house door, 'T' tunnel, 'P' player spawn, '0'-'3' ghost spawns.
func ParseLayout(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}
	width := len(rows[0])

	m := &Maze{
		Width:     width,
		Height:    len(rows),
		tiles:     make([][]Tile, len(rows)),
		tunnelRow: -1,
	}

	spawnSeen := [GhostCount]bool{}
	doorSeen := false

	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("layout row %d has width %d, want %d", row, len(line), width)
		}
		m.tiles[row] = make([]Tile, width)
		for col, sym := range []byte(line) {
			var t Tile
			switch sym {
			case '#':
				t = TileWall
			case '.':
				t = TileDot
				m.remaining++
			case 'o':
				t = TilePower
				m.remaining++
			case ' ':
				t = TileEmpty
			case 'H':
				t = TileHouse
			case '-':
				t = TileHouse
				if !doorSeen {
					m.Door = Cell{Col: col, Row: row}
					doorSeen = true
				}
			case 'T':
				t = TileTunnel
				m.tunnelRow = row
			case 'P':
				t = TileEmpty
				m.PlayerSpawn = Cell{Col: col, Row: row}
			case '0', '1', '2', '3':
				t = TileHouse
				i := int(sym - '0')
				m.GhostSpawns[i] = Cell{Col: col, Row: row}
				spawnSeen[i] = true
			default:
				return nil, fmt.Errorf("layout row %d col %d: unknown symbol %q", row, col, sym)
			}
			m.tiles[row][col] = t
		}
	}

	for i, ok := range spawnSeen {
		if !ok {
			return nil, fmt.Errorf("layout is missing ghost spawn %d", i)
		}
	}
	return m, nil
}

// NewMaze builds a Maze from the default layout.
func NewMaze() (*Maze, error) {
	return ParseLayout(DefaultLayout())
}

// TileAt returns the tile at the given coordinate. Out-of-bounds coordinates
// resolve through the tunnel wrap on the tunnel row and report wall elsewhere,
// so the query is total.
func (m *Maze) TileAt(col, row int) Tile {
	col, row = m.Wrap(col, row)
	if col < 0 || col >= m.Width || row < 0 || row >= m.Height {
		return TileWall
	}
	return m.tiles[row][col]
}

// IsWalkable reports whether an actor may occupy the coordinate.
func (m *Maze) IsWalkable(col, row int) bool {
	return m.TileAt(col, row) != TileWall
}

// IsOpen reports whether regular traffic may occupy the coordinate. The
// ghost house and its door are closed: only the house exit and return
// sequences cross them, which makes the door one-way in practice.
func (m *Maze) IsOpen(col, row int) bool {
	t := m.TileAt(col, row)
	return t != TileWall && t != TileHouse
}

// IsTunnel reports whether the coordinate is inside the tunnel slow zone.
func (m *Maze) IsTunnel(col, row int) bool {
	return m.TileAt(col, row) == TileTunnel
}

// Wrap maps a coordinate whose column ran off the grid on the tunnel row to
// the paired exit coordinate on the opposite side. All other coordinates are
// returned unchanged.
func (m *Maze) Wrap(col, row int) (int, int) {
	if row != m.tunnelRow || m.tunnelRow < 0 {
		return col, row
	}
	for col < 0 {
		col += m.Width
	}
	for col >= m.Width {
		col -= m.Width
	}
	return col, row
}

// Collect removes and returns the collectible at the coordinate, mutating the
// tile to empty. It returns ItemNone for anything that is not a collectible.
func (m *Maze) Collect(col, row int) Item {
	col, row = m.Wrap(col, row)
	if col < 0 || col >= m.Width || row < 0 || row >= m.Height {
		return ItemNone
	}
	switch m.tiles[row][col] {
	case TileDot:
		m.tiles[row][col] = TileEmpty
		m.remaining--
		return ItemDot
	case TilePower:
		m.tiles[row][col] = TileEmpty
		m.remaining--
		return ItemPower
	default:
		return ItemNone
	}
}

// RemainingCount returns the number of collectibles left on the grid.
func (m *Maze) RemainingCount() int {
	return m.remaining
}

// ExitCell returns the corridor tile just outside the house door, where
// exiting ghosts rejoin the maze.
func (m *Maze) ExitCell() Cell {
	return m.Door.Step(DirUp)
}
