package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaultLayout(t *testing.T) {
	m, err := NewMaze()
	require.NoError(t, err)

	assert.Equal(t, MazeWidth, m.Width)
	assert.Equal(t, MazeHeight, m.Height)
	assert.Greater(t, m.RemainingCount(), 0)

	assert.Equal(t, Cell{Col: 13, Row: 23}, m.PlayerSpawn)
	assert.Equal(t, Cell{Col: 13, Row: 12}, m.Door)
	assert.Equal(t, Cell{Col: 13, Row: 11}, m.ExitCell())
	assert.Equal(t, [GhostCount]Cell{
		{Col: 12, Row: 14},
		{Col: 13, Row: 14},
		{Col: 14, Row: 14},
		{Col: 15, Row: 14},
	}, m.GhostSpawns)
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged rows", []string{"###", "##"}},
		{"unknown symbol", []string{"#?#"}},
		{"missing ghost spawns", []string{"###", "#.#", "###"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.rows)
			assert.Error(t, err)
		})
	}
}

func TestIsWalkable(t *testing.T) {
	m, err := NewMaze()
	require.NoError(t, err)

	tests := []struct {
		name     string
		col, row int
		expected bool
	}{
		{"outer wall", 0, 0, false},
		{"dot corridor", 1, 1, true},
		{"power item", 1, 3, true},
		{"house interior", 12, 14, true},
		{"house door", 13, 12, true},
		{"tunnel mouth", 0, 14, true},
		{"below grid", 5, MazeHeight, false},
		{"above grid", 5, -1, false},
		{"off grid on normal row", -1, 1, false},
		{"off grid on tunnel row wraps", -1, 14, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.IsWalkable(tt.col, tt.row))
		})
	}
}

func TestIsOpen(t *testing.T) {
	m, err := NewMaze()
	require.NoError(t, err)

	tests := []struct {
		name     string
		col, row int
		expected bool
	}{
		{"dot corridor", 1, 1, true},
		{"tunnel mouth", 0, 14, true},
		{"outer wall", 0, 0, false},
		{"house door", 13, 12, false},
		{"house interior", 12, 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.IsOpen(tt.col, tt.row))
		})
	}
}

func TestWrap(t *testing.T) {
	m, err := NewMaze()
	require.NoError(t, err)

	t.Run("wraps left exit to right edge", func(t *testing.T) {
		col, row := m.Wrap(-1, 14)
		assert.Equal(t, MazeWidth-1, col)
		assert.Equal(t, 14, row)
	})

	t.Run("wraps right exit to left edge", func(t *testing.T) {
		col, row := m.Wrap(MazeWidth, 14)
		assert.Equal(t, 0, col)
		assert.Equal(t, 14, row)
	})

	t.Run("non-tunnel rows unchanged", func(t *testing.T) {
		col, row := m.Wrap(-1, 1)
		assert.Equal(t, -1, col)
		assert.Equal(t, 1, row)
	})
}

func TestIsTunnel(t *testing.T) {
	m, err := NewMaze()
	require.NoError(t, err)

	assert.True(t, m.IsTunnel(0, 14))
	assert.True(t, m.IsTunnel(27, 14))
	assert.False(t, m.IsTunnel(6, 14)) // corridor on the tunnel row
	assert.False(t, m.IsTunnel(1, 1))
}

func TestCollect(t *testing.T) {
	m, err := NewMaze()
	require.NoError(t, err)

	t.Run("dot collected once", func(t *testing.T) {
		before := m.RemainingCount()
		assert.Equal(t, ItemDot, m.Collect(1, 1))
		assert.Equal(t, before-1, m.RemainingCount())
		assert.Equal(t, ItemNone, m.Collect(1, 1))
		assert.Equal(t, before-1, m.RemainingCount())
	})

	t.Run("power item", func(t *testing.T) {
		assert.Equal(t, ItemPower, m.Collect(1, 3))
	})

	t.Run("wall yields nothing", func(t *testing.T) {
		assert.Equal(t, ItemNone, m.Collect(0, 0))
	})

	t.Run("out of bounds yields nothing", func(t *testing.T) {
		assert.Equal(t, ItemNone, m.Collect(-5, -5))
	})
}
