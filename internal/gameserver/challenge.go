package gameserver

import (
	"sync"

	"maze-runner-go/internal/message"
)

// ChallengeModulo is the fixed modulus used to resolve a SecretSumModulo
// challenge: the sum of a team's known secrets, taken mod this value.
const ChallengeModulo = 10

// ChallengeManager tracks each player's secret value and the team's single
// outstanding SOS rescue, if any. One instance is owned per team, so its
// state never crosses team boundaries.
type ChallengeManager struct {
	mu        sync.Mutex
	secrets   map[uint32]uint64
	sosActive *uint32
	finished  bool
}

// NewChallengeManager returns an empty challenge manager.
func NewChallengeManager() *ChallengeManager {
	return &ChallengeManager{secrets: make(map[uint32]uint64)}
}

// SetSecret records or replaces a player's secret value.
func (c *ChallengeManager) SetSecret(playerID uint32, secret uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.secrets[playerID] = secret
}

// SolveSecretSumModulo sums the known secrets of playerIDs, treating a
// missing secret as zero, and reduces the result mod modulo.
func (c *ChallengeManager) SolveSecretSumModulo(modulo uint64, playerIDs []uint32) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum uint64
	for _, id := range playerIDs {
		sum += c.secrets[id]
	}
	return sum % modulo
}

// InitiateSOS marks playerID as awaiting rescue. It fails if a rescue is
// already in progress anywhere on the team.
func (c *ChallengeManager) InitiateSOS(playerID uint32) (message.Challenge, *message.ActionError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sosActive != nil {
		e := message.NoRunningChallenge
		return message.Challenge{}, &e
	}
	id := playerID
	c.sosActive = &id
	return message.NewSOSChallenge(), nil
}

// ResolveSOS lets rescuerID close out the team's outstanding SOS. A player
// may not rescue themselves.
func (c *ChallengeManager) ResolveSOS(rescuerID uint32) *message.ActionError {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sosActive == nil {
		e := message.NoRunningChallenge
		return &e
	}
	if rescuerID == *c.sosActive {
		e := message.InvalidChallengeSolution
		return &e
	}
	c.sosActive = nil
	return nil
}

// SOSActive reports the player currently awaiting rescue, if any.
func (c *ChallengeManager) SOSActive() (uint32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sosActive == nil {
		return 0, false
	}
	return *c.sosActive, true
}

// Finished reports whether the team's SecretSumModulo challenge cell has
// already been solved once. A finished challenge never re-triggers.
func (c *ChallengeManager) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finished
}

// MarkFinished records that the team's challenge cell has been solved.
func (c *ChallengeManager) MarkFinished() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finished = true
}
