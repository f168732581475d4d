package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maze-runner-go/internal/message"
	"maze-runner-go/internal/radar"
)

func TestCanMoveBlockedByOuterWall(t *testing.T) {
	g := DefaultMaze
	assert.False(t, g.CanMove(Point{X: 1, Y: 1}, message.Front))
	assert.False(t, g.CanMove(Point{X: 1, Y: 1}, message.Left))
}

func TestCanMoveThroughOpenCorridor(t *testing.T) {
	g := DefaultMaze
	assert.True(t, g.CanMove(Point{X: 1, Y: 1}, message.Right))
}

func TestCanMoveRejectsOutOfBounds(t *testing.T) {
	g := DefaultMaze
	assert.False(t, g.CanMove(Point{X: 5, Y: 5}, message.Right))
	assert.False(t, g.CanMove(Point{X: 5, Y: 5}, message.Back))
}

func TestToRadarGridEncodesAndDecodesConsistently(t *testing.T) {
	g := DefaultMaze
	rg := g.ToRadarGrid()
	encoded := radar.Encode(rg)
	decoded, err := radar.Decode(encoded)
	require.NoError(t, err)

	// Decode renders the wire-facing glyph set: the goal cell comes back
	// as 'G' rather than the internal '*' glyph, everything else matches.
	want := rg
	want[5][5] = radar.GlyphGoal
	assert.Equal(t, want, decoded)
}

func TestChallengePositionIsOpenCell(t *testing.T) {
	assert.True(t, IsOpenCell(ChallengePosition))
	assert.False(t, DefaultMaze.IsWall(ChallengePosition))
}

func TestGoalPositionMatchesGlyph(t *testing.T) {
	assert.True(t, IsOpenCell(GoalPosition))
	assert.Equal(t, byte(GlyphGoal), DefaultMaze.Glyph(GoalPosition))
}

func TestBearingToCardinalDirections(t *testing.T) {
	origin := Point{X: 3, Y: 3}
	assert.Equal(t, float32(0), origin.BearingTo(Point{X: 3, Y: 1}))
	assert.Equal(t, float32(90), origin.BearingTo(Point{X: 5, Y: 3}))
	assert.Equal(t, float32(180), origin.BearingTo(Point{X: 3, Y: 5}))
	assert.Equal(t, float32(270), origin.BearingTo(Point{X: 1, Y: 3}))
}
