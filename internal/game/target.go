package game

// Personality is a ghost's fixed chase-targeting strategy.
type Personality int

const (
	// PersonalityPursuit targets the player's tile directly.
	PersonalityPursuit Personality = iota
	// PersonalityAmbush targets a few tiles ahead of the player.
	PersonalityAmbush
	// PersonalityFlank reflects a point ahead of the player through the
	// pursuit ghost's position.
	PersonalityFlank
	// PersonalityWary chases from afar but retreats to its corner when close.
	PersonalityWary
)

// GhostCount is the number of ghost actors in a session.
const GhostCount = 4

func (p Personality) String() string {
	switch p {
	case PersonalityPursuit:
		return "pursuit"
	case PersonalityAmbush:
		return "ambush"
	case PersonalityFlank:
		return "flank"
	case PersonalityWary:
		return "wary"
	default:
		return "unknown"
	}
}

// ScatterCorner returns the fixed corner tile a personality patrols toward
// during scatter waves. Corners may be wall tiles; they only serve as
// steering targets.
func (p Personality) ScatterCorner(mazeWidth, mazeHeight int) Cell {
	switch p {
	case PersonalityPursuit:
		return Cell{Col: mazeWidth - 3, Row: 0}
	case PersonalityAmbush:
		return Cell{Col: 2, Row: 0}
	case PersonalityFlank:
		return Cell{Col: mazeWidth - 1, Row: mazeHeight - 1}
	default:
		return Cell{Col: 0, Row: mazeHeight - 1}
	}
}

// Snapshot is the read-only view of actor positions taken at tick start.
// Targeting reads the snapshot rather than live actor state so the result
// does not depend on update order within the tick.
type Snapshot struct {
	Player    Cell
	PlayerDir Direction
	// Anchor is the pursuit ghost's cell, read even while that ghost is in
	// the house or eaten. Nil when no pursuit ghost exists.
	Anchor *Cell
}

// Target computes the tile a ghost steers toward this tick. It is a pure
// function of its inputs. Frightened ghosts do not use a target (their
// movement is a random one-step choice in the resolver), so for that mode
// the ghost's own cell is returned.
func Target(p Personality, mode Mode, self, home, scatter Cell, snap Snapshot) Cell {
	switch mode {
	case ModeEaten:
		return home
	case ModeScatter:
		return scatter
	case ModeFrightened:
		return self
	}

	switch p {
	case PersonalityPursuit:
		return snap.Player
	case PersonalityAmbush:
		return snap.Player.StepN(snap.PlayerDir, AmbushLead)
	case PersonalityFlank:
		if snap.Anchor == nil {
			// Degraded mode: without the anchor the flank collapses to
			// direct pursuit for this tick.
			return snap.Player
		}
		mid := snap.Player.StepN(snap.PlayerDir, FlankLead)
		return Cell{
			Col: mid.Col + (mid.Col - snap.Anchor.Col),
			Row: mid.Row + (mid.Row - snap.Anchor.Row),
		}
	case PersonalityWary:
		if self.Distance(snap.Player) > WaryDistance {
			return snap.Player
		}
		return scatter
	default:
		return scatter
	}
}
