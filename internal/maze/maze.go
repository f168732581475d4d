// Package maze implements the fixed 7×7 grid world: its double-grid point
// arithmetic, wall predicate, and the radar extraction that derives a
// player's 3×3 neighbourhood view.
package maze

import (
	"math"

	"maze-runner-go/internal/message"
	"maze-runner-go/internal/radar"
)

// Size is the fixed width and height of the maze grid, in the double-grid
// convention: walls occupy odd rows/columns, cells occupy the even
// intersections.
const Size = 7

const (
	GlyphCorner = '•'
	GlyphHWall  = '-'
	GlyphVWall  = '|'
	GlyphOpen   = ' '
	GlyphGoal   = '*'
)

// Point is an integer maze coordinate in double-grid units: a move between
// adjacent cells changes one axis by ±2, crossing the wall tile at ±1.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Offset is the double-grid (dx, dy) step for a relative direction, and the
// wall-tile offset halfway along it.
func Offset(d message.Direction) (dx, dy int) {
	switch d {
	case message.Front:
		return 0, -2
	case message.Right:
		return 2, 0
	case message.Back:
		return 0, 2
	case message.Left:
		return -2, 0
	default:
		return 0, 0
	}
}

// Grid is the 7×7 glyph matrix of a maze, immutable for the lifetime of a
// game.
type Grid [Size][Size]byte

// DefaultMaze is the fixed grid this revision plays on, carried from the
// original implementation's canonical layout.
var DefaultMaze = Grid{
	{'•', '-', '•', '-', '•', '-', '•'},
	{'|', ' ', ' ', ' ', ' ', ' ', '|'},
	{'•', '-', '•', ' ', '•', ' ', '•'},
	{'|', ' ', '|', ' ', '|', ' ', '|'},
	{'•', ' ', '•', ' ', '•', '-', '•'},
	{'|', ' ', ' ', ' ', ' ', '*', '|'},
	{'•', '-', '•', '-', '•', '-', '•'},
}

// InBounds reports whether p addresses a tile inside the grid.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// IsOpenCell reports whether p addresses a room rather than a wall tile or
// a corner intersection: rooms sit at the odd row/column intersections of
// the double-grid, corners at the even ones.
func IsOpenCell(p Point) bool {
	return p.X%2 == 1 && p.Y%2 == 1
}

// Glyph returns the grid glyph at p. Callers must check InBounds first.
func (g Grid) Glyph(p Point) byte {
	return g[p.Y][p.X]
}

// IsWall reports whether the glyph at p is one of the wall glyphs.
func (g Grid) IsWall(p Point) bool {
	switch g.Glyph(p) {
	case GlyphCorner, GlyphHWall, GlyphVWall:
		return true
	default:
		return false
	}
}

// ChallengePosition is the fixed cell where the SecretSumModulo challenge
// sits, independent of the goal cell.
var ChallengePosition = Point{X: 3, Y: 5}

// GoalPosition is the fixed cell marked with GlyphGoal in DefaultMaze.
var GoalPosition = Point{X: 5, Y: 5}

// CanMove reports whether a player standing at from may step in direction d
// without crossing a wall or leaving the grid.
func (g Grid) CanMove(from Point, d message.Direction) bool {
	dx, dy := Offset(d)
	wall := from.Add(dx/2, dy/2)
	to := from.Add(dx, dy)
	if !InBounds(wall) || !InBounds(to) {
		return false
	}
	return !g.IsWall(wall)
}

// BearingTo returns the compass bearing from p to dest in degrees, where 0
// points toward Front, 90 toward Right, 180 toward Back, and 270 toward
// Left, matching the relative directions a player moves in.
func (p Point) BearingTo(dest Point) float32 {
	dx := float64(dest.X - p.X)
	dy := float64(dest.Y - p.Y)
	theta := math.Atan2(dx, -dy) * 180 / math.Pi
	if theta < 0 {
		theta += 360
	}
	return float32(theta)
}

// ToRadarGrid converts the maze's native glyph grid to the wire-level radar
// grid type. The two share byte-for-byte glyph conventions, so this is a
// direct type conversion: the fixed maze is exactly the size of one radar
// window, so no windowing is needed around a player position.
func (g Grid) ToRadarGrid() radar.Grid {
	return radar.Grid(g)
}
