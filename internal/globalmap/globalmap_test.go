package globalmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"maze-runner-go/internal/maze"
	"maze-runner-go/internal/radar"
)

func TestNewMapStartsAllUnknown(t *testing.T) {
	m := New(10, 10)
	assert.False(t, m.IsVisited(0, 0))
	assert.False(t, m.IsVisited(5, 5))
}

func TestUpdateFromRadarMarksExplored(t *testing.T) {
	m := New(10, 10)
	rg := maze.DefaultMaze.ToRadarGrid()

	m.UpdateFromRadar(rg, 10, 10)

	assert.True(t, m.IsVisited(10, 10))
	assert.True(t, m.IsVisited(9, 9))
}

func TestUpdateFromRadarSkipsOutOfBoundsGlyph(t *testing.T) {
	m := New(0, 0)
	var g radar.Grid
	for row := range g {
		for col := range g[row] {
			g[row][col] = radar.GlyphOut
		}
	}
	g[3][3] = radar.GlyphOpen

	m.UpdateFromRadar(g, 0, 0)

	assert.True(t, m.IsVisited(0, 0))
	assert.False(t, m.IsVisited(-3, -3))
}

func TestWallGlyphIsDetected(t *testing.T) {
	m := New(5, 5)
	rg := maze.DefaultMaze.ToRadarGrid()
	m.UpdateFromRadar(rg, 5, 5)

	assert.True(t, m.IsWall(5-3, 5))
}

func TestSetGlyphRejectsWallOpenFlip(t *testing.T) {
	m := New(5, 5)
	rg := maze.DefaultMaze.ToRadarGrid()
	m.UpdateFromRadar(rg, 5, 5)

	wallX, wallY := 5-3, 5
	assert.True(t, m.IsWall(wallX, wallY))
	m.setGlyph(wallX, wallY, radar.GlyphOpen)
	assert.True(t, m.IsWall(wallX, wallY), "explored wall tile must not flip to open")

	openX, openY := 5, 5
	assert.False(t, m.IsWall(openX, openY))
	m.setGlyph(openX, openY, radar.GlyphHWall)
	assert.False(t, m.IsWall(openX, openY), "explored open tile must not flip to wall")
}
