package gameserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maze-runner-go/internal/maze"
)

func TestRegisterTeamRejectsDuplicateName(t *testing.T) {
	r := NewRegistry()
	_, err := r.RegisterTeam("rust_warriors")
	require.Nil(t, err)

	_, err2 := r.RegisterTeam("rust_warriors")
	require.NotNil(t, err2)
	assert.Equal(t, "AlreadyRegistered", string(*err2))
}

func TestSubscribePlayerRejectsUnknownToken(t *testing.T) {
	r := NewRegistry()
	_, err := r.SubscribePlayer("not-a-real-token", "scout")
	require.NotNil(t, err)
	assert.Equal(t, "InvalidRegistrationToken", string(*err))
}

func TestSubscribePlayerEnforcesMaxPlayers(t *testing.T) {
	r := NewRegistry()
	token, regErr := r.RegisterTeam("rust_warriors")
	require.Nil(t, regErr)

	for i := 0; i < int(MaxPlayers); i++ {
		_, err := r.SubscribePlayer(token, "scout")
		require.Nil(t, err)
	}

	_, err := r.SubscribePlayer(token, "one_too_many")
	require.NotNil(t, err)
	assert.Equal(t, "TooManyPlayers", string(*err))
}

func TestSubscribePlayerAssignsIncreasingIDs(t *testing.T) {
	r := NewRegistry()
	token, _ := r.RegisterTeam("rust_warriors")

	p1, err := r.SubscribePlayer(token, "scout")
	require.Nil(t, err)
	p2, err2 := r.SubscribePlayer(token, "ranger")
	require.Nil(t, err2)

	assert.NotEqual(t, p1.ID, p2.ID)
	assert.ElementsMatch(t, []uint32{p1.ID, p2.ID}, r.TeamPlayerIDs(token))
}

func TestTeammatesExcludesSelf(t *testing.T) {
	r := NewRegistry()
	token, _ := r.RegisterTeam("rust_warriors")
	p1, _ := r.SubscribePlayer(token, "scout")
	p2, _ := r.SubscribePlayer(token, "ranger")

	mates := r.Teammates(token, p1.ID)
	require.Len(t, mates, 1)
	assert.Equal(t, p2.ID, mates[0].ID)
}

func TestEachTeamGetsItsOwnChallengeManager(t *testing.T) {
	r := NewRegistry()
	tokenA, _ := r.RegisterTeam("rust_warriors")
	tokenB, _ := r.RegisterTeam("go_gophers")

	cmA := r.ChallengeManager(tokenA)
	cmB := r.ChallengeManager(tokenB)
	require.NotNil(t, cmA)
	require.NotNil(t, cmB)
	assert.NotSame(t, cmA, cmB)

	cmA.SetSecret(1, 42)
	assert.Equal(t, uint64(42), cmA.SolveSecretSumModulo(100, []uint32{1}))
	assert.Equal(t, uint64(0), cmB.SolveSecretSumModulo(100, []uint32{1}), "team B's player 1 must not see team A's secret")

	_, err := cmA.InitiateSOS(1)
	require.Nil(t, err)
	_, activeB := cmB.SOSActive()
	assert.False(t, activeB, "an SOS on team A must not block team B")
}

func TestAllPositionsDoesNotCollideAcrossTeams(t *testing.T) {
	r := NewRegistry()
	tokenA, _ := r.RegisterTeam("rust_warriors")
	tokenB, _ := r.RegisterTeam("go_gophers")

	pA1, _ := r.SubscribePlayer(tokenA, "scout") // id 1 on team A
	pB1, _ := r.SubscribePlayer(tokenB, "scout") // id 1 on team B, same numeric id
	pA1.Position = maze.Point{X: 1, Y: 1}
	pB1.Position = maze.Point{X: 3, Y: 3}

	positions := r.AllPositions()
	require.Len(t, positions, 2)
	assert.Equal(t, maze.Point{X: 1, Y: 1}, positions[pA1])
	assert.Equal(t, maze.Point{X: 3, Y: 3}, positions[pB1])
}
