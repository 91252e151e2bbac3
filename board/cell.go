package board

import "strconv"

// Display tokens used by Cell.Render.
const (
	CoveredToken = "-"
	HazardToken  = "*"
	EmptyToken   = " "
)

// Cell is a single grid position. Its hazard flag and adjacency count are
// fixed once the owning Board finishes construction.
type Cell struct {
	hazard   bool // whether revealing this cell loses the game
	revealed bool // set once, never reverts
	adjacent int  // hazards in the Moore neighborhood, 0..8
}

// Reveal marks the cell as uncovered. Calling it again has no effect.
func (c *Cell) Reveal() {
	c.revealed = true
}

// IsHazard reports whether the cell holds a hazard.
func (c Cell) IsHazard() bool { return c.hazard }

// IsRevealed reports whether the cell has been uncovered.
func (c Cell) IsRevealed() bool { return c.revealed }

// AdjacentHazards returns the number of hazards around the cell. Hazard cells
// track the count too even though it is never displayed for them.
func (c Cell) AdjacentHazards() int { return c.adjacent }

// Render returns the display token for the cell's current state.
func (c Cell) Render() string {
	switch {
	case !c.revealed:
		return CoveredToken
	case c.hazard:
		return HazardToken
	case c.adjacent == 0:
		return EmptyToken
	default:
		return strconv.Itoa(c.adjacent)
	}
}
