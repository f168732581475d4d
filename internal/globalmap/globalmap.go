// Package globalmap accumulates a client's successive radar views into one
// persistent 20×20 glyph grid, so a navigator can reason about the maze
// beyond its current 3×3 neighbourhood.
package globalmap

import (
	"strings"

	"maze-runner-go/internal/radar"
)

// Width and Height are the fixed dimensions of the accumulated map,
// independent of the actual maze size pushed by the server's GridSize hint.
const (
	Width  = 20
	Height = 20
)

const (
	glyphUnknown = '#'
	glyphPlayer  = 'P'
)

func isWallGlyph(g byte) bool {
	switch g {
	case radar.GlyphCorner, radar.GlyphHWall, radar.GlyphVWall:
		return true
	default:
		return false
	}
}

// Map is the client-side accumulated view of the maze: every tile defaults
// to unknown until a radar view explores it.
type Map struct {
	grid     [Height][Width]byte
	explored [Height][Width]bool
}

// New returns an empty map with the player marked at (startX, startY).
func New(startX, startY int) *Map {
	m := &Map{}
	for y := range m.grid {
		for x := range m.grid[y] {
			m.grid[y][x] = glyphUnknown
		}
	}
	if startX >= 0 && startX < Width && startY >= 0 && startY < Height {
		m.grid[startY][startX] = glyphPlayer
	}
	return m
}

// IsVisited reports whether (x, y) has received an update from a radar
// view. Out-of-bounds coordinates are never visited.
func (m *Map) IsVisited(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.explored[y][x]
}

// IsWall reports whether (x, y) currently holds a wall glyph.
func (m *Map) IsWall(x, y int) bool {
	if !m.inBounds(x, y) {
		return true
	}
	return isWallGlyph(m.grid[y][x])
}

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// setGlyph applies glyph-precedence: once a tile is explored it is never
// written back to the unknown glyph, nor flipped between wall and open,
// no matter what a later radar view reports for it. The maze is static, so
// an explored tile's wall/open nature can never legitimately change.
func (m *Map) setGlyph(x, y int, glyph byte) {
	if !m.inBounds(x, y) {
		return
	}
	if glyph == glyphUnknown {
		return
	}
	if m.explored[y][x] && isWallGlyph(m.grid[y][x]) != isWallGlyph(glyph) {
		return
	}
	m.grid[y][x] = glyph
	m.explored[y][x] = true
}

// UpdateFromRadar folds one decoded radar window into the map, anchored so
// that the window's centre lands on (playerX, playerY).
func (m *Map) UpdateFromRadar(g radar.Grid, playerX, playerY int) {
	const half = 3 // radar.Grid is 7×7, centred on its own [3][3]
	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			x := playerX + (col - half)
			y := playerY + (row - half)
			glyph := g[row][col]
			if glyph == radar.GlyphOut {
				continue
			}
			m.setGlyph(x, y, glyph)
		}
	}
	m.setGlyph(playerX, playerY, glyphPlayer)
}

// Render returns the map as one newline-joined string, row-major, for
// logging and debugging.
func (m *Map) Render() string {
	var b strings.Builder
	for y := 0; y < Height; y++ {
		b.Write(m.grid[y][:])
		if y != Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
