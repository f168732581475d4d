package gameserver

import (
	"math/rand"

	"maze-runner-go/internal/maze"
)

// Player is one connected navigator: its identity, its position in the
// maze, whether it is currently working a challenge, and how many
// consecutive wall bumps it has racked up since its last successful move.
type Player struct {
	ID              uint32
	Name            string
	Position        maze.Point
	ChallengeActive bool
	WallBumps       int
}

// spawnPosition picks a uniformly random open cell of g using rng. The
// fixed maze always has at least one open cell, so this terminates.
func spawnPosition(g maze.Grid, rng *rand.Rand) maze.Point {
	var candidates []maze.Point
	for y := 0; y < maze.Size; y++ {
		for x := 0; x < maze.Size; x++ {
			p := maze.Point{X: x, Y: y}
			if maze.IsOpenCell(p) && g.Glyph(p) == maze.GlyphOpen {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates[rng.Intn(len(candidates))]
}
