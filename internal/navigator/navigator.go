// Package navigator implements the client-side exploration policy: given a
// freshly decoded radar view and the accumulated global map, it picks the
// next move to make.
package navigator

import (
	"math"
	"math/rand"

	"maze-runner-go/internal/globalmap"
	"maze-runner-go/internal/message"
	"maze-runner-go/internal/radar"
)

// historySize bounds how many past moves the navigator remembers when
// steering away from its own recent trail.
const historySize = 5

// maxFails is how many times a direction may disappoint (turn out to be a
// wall or a dead end) before the navigator bans it outright.
const maxFails = 3

// Navigator tracks exploration state across a single player's lifetime: its
// recent move history, per-direction fail counts, and outright bans.
type Navigator struct {
	history []message.Direction
	fails   map[message.Direction]int
	banned  map[message.Direction]bool
	rng     *rand.Rand
	compass *float32
}

// New returns a Navigator seeded from rng, so tests can make its random
// fallback deterministic.
func New(rng *rand.Rand) *Navigator {
	return &Navigator{
		fails:  make(map[message.Direction]int),
		banned: make(map[message.Direction]bool),
		rng:    rng,
	}
}

// RecordFailure increments d's fail count and bans it once it crosses
// maxFails.
func (n *Navigator) RecordFailure(d message.Direction) {
	n.fails[d]++
	if n.fails[d] >= maxFails {
		n.banned[d] = true
	}
}

// SetCompassBearing records the goal's bearing in degrees (0=Front,
// 90=Right, 180=Back, 270=Left), used as a tiebreaker when no candidate
// direction carries a radar hint or leads somewhere new.
func (n *Navigator) SetCompassBearing(degrees float32) {
	n.compass = &degrees
}

// directionAngle is the bearing of d under the same convention as
// SetCompassBearing.
func directionAngle(d message.Direction) float32 {
	switch d {
	case message.Front:
		return 0
	case message.Right:
		return 90
	case message.Back:
		return 180
	case message.Left:
		return 270
	default:
		return 0
	}
}

// angleDistance is the smaller of the two arcs between a and b on a 360°
// circle.
func angleDistance(a, b float32) float32 {
	d := float32(math.Abs(float64(a - b)))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func isOpen(g radar.Grid, d message.Direction) bool {
	switch d {
	case message.Front:
		return g[2][3] != radar.GlyphHWall && g[2][3] != radar.GlyphOut
	case message.Right:
		return g[3][4] != radar.GlyphVWall && g[3][4] != radar.GlyphOut
	case message.Back:
		return g[4][3] != radar.GlyphHWall && g[4][3] != radar.GlyphOut
	case message.Left:
		return g[3][2] != radar.GlyphVWall && g[3][2] != radar.GlyphOut
	default:
		return false
	}
}

func hasHintOrGoal(g radar.Grid, d message.Direction) bool {
	row, col := 3, 3
	switch d {
	case message.Front:
		row, col = 1, 3
	case message.Right:
		row, col = 3, 5
	case message.Back:
		row, col = 5, 3
	case message.Left:
		row, col = 3, 1
	}
	return g[row][col] == radar.GlyphGoal
}

// offset returns the step of d on the global map's own glyph grid, which
// mirrors the maze's double-grid convention: adjacent rooms differ by 2,
// with the wall tile between them at the halfway point.
func offset(d message.Direction) (dx, dy int) {
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

// Choose picks the next move given the current radar view, the player's
// world position on the global map, and the last direction moved (empty if
// this is the first move). It never returns an error: when every candidate
// looks equally bad, it falls back to a random admissible direction, and
// finally to retrying the last move if truly nothing else is left.
func (n *Navigator) Choose(view radar.Grid, gm *globalmap.Map, x, y int, last message.Direction) message.Direction {
	return n.pushHistory(n.choose(view, gm, x, y, last))
}

func (n *Navigator) choose(view radar.Grid, gm *globalmap.Map, x, y int, last message.Direction) message.Direction {
	var candidates []message.Direction
	for _, d := range message.AllDirections {
		if n.banned[d] {
			continue
		}
		if n.fails[d] >= maxFails {
			continue
		}
		if !isOpen(view, d) {
			continue
		}
		candidates = append(candidates, d)
	}

	if len(candidates) == 0 {
		return n.fallback(view, last)
	}

	if last != "" {
		reverse := last.Opposite()
		if len(candidates) > 1 {
			candidates = dropDirection(candidates, reverse)
		}
	}
	if len(candidates) == 0 {
		return n.fallback(view, last)
	}

	for _, d := range candidates {
		if hasHintOrGoal(view, d) {
			return d
		}
	}

	for _, d := range candidates {
		dx, dy := offset(d)
		if !gm.IsVisited(x+dx, y+dy) {
			return d
		}
	}

	if n.compass != nil {
		best := candidates[0]
		for _, d := range candidates[1:] {
			if angleDistance(directionAngle(d), *n.compass) < angleDistance(directionAngle(best), *n.compass) {
				best = d
			}
		}
		return best
	}

	best := candidates[0]
	for _, d := range candidates[1:] {
		if n.fails[d] < n.fails[best] {
			best = d
		}
	}
	return best
}

// fallback is reached when every direction is either walled off or banned:
// it un-bans the least-failed direction and retries, or as a last resort
// picks uniformly at random among the four relative directions.
func (n *Navigator) fallback(view radar.Grid, last message.Direction) message.Direction {
	var open []message.Direction
	for _, d := range message.AllDirections {
		if isOpen(view, d) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		if last != "" {
			return last.Opposite()
		}
		return message.AllDirections[n.rng.Intn(len(message.AllDirections))]
	}

	best := open[0]
	for _, d := range open[1:] {
		if n.fails[d] < n.fails[best] {
			best = d
		}
	}
	delete(n.banned, best)
	return best
}

// pushHistory records d as the most recent move, evicting the oldest entry
// once history grows past historySize, and returns d unchanged.
func (n *Navigator) pushHistory(d message.Direction) message.Direction {
	n.history = append(n.history, d)
	if len(n.history) > historySize {
		n.history = n.history[1:]
	}
	return d
}

func dropDirection(ds []message.Direction, drop message.Direction) []message.Direction {
	out := ds[:0:0]
	for _, d := range ds {
		if d != drop {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return ds
	}
	return out
}
