package gameserver

import (
	"strconv"

	"maze-runner-go/internal/maze"
	"maze-runner-go/internal/message"
)

// sosWallBumpThreshold is how many consecutive wall bumps a player can rack
// up before the server treats them as stuck and raises an SOS on their
// behalf. Reset to zero on every successful move.
const sosWallBumpThreshold = 5

// Resolver applies a player's Action against the shared maze and the other
// players on the board. It holds no per-team state itself: callers pass in
// the team's own ChallengeManager explicitly, so one Resolver can safely
// serve every team without their challenges/secrets/SOS state colliding.
type Resolver struct {
	Grid maze.Grid
}

// NewResolver builds a Resolver over the given grid.
func NewResolver(grid maze.Grid) *Resolver {
	return &Resolver{Grid: grid}
}

// moveOutcome is everything a caller needs to turn a resolved move into
// wire messages: the new position, and an optional challenge the player
// just stepped onto (or was handed because they're stuck).
type moveOutcome struct {
	Position  maze.Point
	Challenge *message.Challenge
}

// ResolveMove applies a MoveTo action for player among occupied (the
// positions of every other player on the board, keyed by the player
// itself so ids that are only unique within a team never collide) against
// cm, the acting player's own team's challenge manager.
func (r *Resolver) ResolveMove(player *Player, d message.Direction, occupied map[*Player]maze.Point, cm *ChallengeManager) (*moveOutcome, *message.ActionError) {
	if id, awaiting := cm.SOSActive(); awaiting && id == player.ID {
		e := message.PlayerMustBeRescued
		return nil, &e
	}
	if player.ChallengeActive {
		e := message.SolveChallengeFirst
		return nil, &e
	}

	if !r.Grid.CanMove(player.Position, d) {
		player.WallBumps++
		if player.WallBumps >= sosWallBumpThreshold {
			player.WallBumps = 0
			if c, sosErr := cm.InitiateSOS(player.ID); sosErr == nil {
				return &moveOutcome{Position: player.Position, Challenge: &c}, nil
			}
		}
		e := message.CannotPassThroughWall
		return nil, &e
	}
	player.WallBumps = 0

	dx, dy := maze.Offset(d)
	to := player.Position.Add(dx, dy)
	for other, pos := range occupied {
		if other != player && pos == to {
			e := message.CannotPassThroughOpponent
			return nil, &e
		}
	}

	player.Position = to
	outcome := &moveOutcome{Position: to}
	if to == maze.ChallengePosition && !cm.Finished() {
		player.ChallengeActive = true
		c := message.NewSecretSumModuloChallenge(ChallengeModulo)
		outcome.Challenge = &c
	}
	return outcome, nil
}

// ResolveChallenge checks a SolveChallenge action's answer against cm, the
// solver's own team's challenge manager. teamPlayerIDs is every player on
// the solver's team, used to compute the true modular sum of known
// secrets. A player with no challenge of their own but whose team has an
// outstanding SOS is treated as attempting to rescue the distressed
// teammate instead — the wire protocol has no separate rescue action, so
// any SolveChallenge from someone not already working a challenge doubles
// as a rescue attempt.
func (r *Resolver) ResolveChallenge(player *Player, answer string, teamPlayerIDs []uint32, cm *ChallengeManager) *message.ActionError {
	if !player.ChallengeActive {
		if _, awaiting := cm.SOSActive(); awaiting {
			return cm.ResolveSOS(player.ID)
		}
		e := message.NoRunningChallenge
		return &e
	}

	want := cm.SolveSecretSumModulo(ChallengeModulo, teamPlayerIDs)
	got, err := strconv.ParseUint(answer, 10, 64)
	if err != nil || got != want {
		e := message.InvalidChallengeSolution
		return &e
	}

	player.ChallengeActive = false
	cm.MarkFinished()
	return nil
}
