package gameserver

import (
	"crypto/rand"
	"math/big"
	"sync"

	"maze-runner-go/internal/maze"
	"maze-runner-go/internal/message"
)

// MaxPlayers is the hard cap on how many players may subscribe to one team.
const MaxPlayers uint8 = 3

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
const tokenLength = 10

// team is a registered team and the players that have subscribed to it.
// Player ids (team.nextID) are only unique within a team, so every piece of
// per-team state that's keyed by id — here, the challenge manager — must be
// a separate instance per team rather than shared server-wide.
type team struct {
	name      string
	players   []*Player
	nextID    uint32
	challenge *ChallengeManager
}

// Registry is the arbiter's team and player book-keeping: team creation,
// token-gated subscription, and the MaxPlayers cap. A single mutex guards
// it, matching the one-lock-per-registry discipline the rest of the server
// relies on.
type Registry struct {
	mu    sync.Mutex
	teams map[string]*team // keyed by registration token
	names map[string]bool  // team names already taken
}

// NewRegistry returns an empty team registry.
func NewRegistry() *Registry {
	return &Registry{
		teams: make(map[string]*team),
		names: make(map[string]bool),
	}
}

// RegisterTeam creates a new team, returning its fresh registration token.
func (r *Registry) RegisterTeam(name string) (token string, err *message.RegistrationError) {
	if name == "" {
		e := message.InvalidName
		return "", &e
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.names[name] {
		e := message.AlreadyRegistered
		return "", &e
	}

	tok, genErr := generateToken()
	if genErr != nil {
		e := message.InvalidName
		return "", &e
	}

	r.names[name] = true
	r.teams[tok] = &team{name: name, challenge: NewChallengeManager()}
	return tok, nil
}

// ChallengeManager returns the challenge manager belonging to token's team,
// or nil if token does not name a registered team.
func (r *Registry) ChallengeManager(token string) *ChallengeManager {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.teams[token]
	if !ok {
		return nil
	}
	return t.challenge
}

// SubscribePlayer admits a new player into the team identified by token.
func (r *Registry) SubscribePlayer(token, name string) (*Player, *message.RegistrationError) {
	if name == "" {
		e := message.InvalidName
		return nil, &e
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.teams[token]
	if !ok {
		e := message.InvalidRegistrationToken
		return nil, &e
	}
	if uint8(len(t.players)) >= MaxPlayers {
		e := message.TooManyPlayers
		return nil, &e
	}

	t.nextID++
	p := &Player{ID: t.nextID, Name: name}
	t.players = append(t.players, p)
	return p, nil
}

// Teammates returns the other players sharing token's team, excluding self.
func (r *Registry) Teammates(token string, self uint32) []*Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.teams[token]
	if !ok {
		return nil
	}
	out := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if p.ID != self {
			out = append(out, p)
		}
	}
	return out
}

// TeamPlayerIDs returns every player id registered to token's team,
// including self, in subscription order.
func (r *Registry) TeamPlayerIDs(token string) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.teams[token]
	if !ok {
		return nil
	}
	ids := make([]uint32, 0, len(t.players))
	for _, p := range t.players {
		ids = append(ids, p.ID)
	}
	return ids
}

// AllPositions returns the board position of every subscribed player
// server-wide, across every team, keyed by the player itself. Opponent-
// collision checks span the whole maze, not just one team; keying by the
// *Player pointer rather than its id sidesteps the fact that ids are only
// unique within a team, so two teams' "player 1" would otherwise collide.
func (r *Registry) AllPositions() map[*Player]maze.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[*Player]maze.Point)
	for _, t := range r.teams {
		for _, p := range t.players {
			out[p] = p.Position
		}
	}
	return out
}

func generateToken() (string, error) {
	buf := make([]byte, tokenLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenAlphabet))))
		if err != nil {
			return "", err
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}
