package gameserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSecretSumModuloTreatsMissingSecretAsZero(t *testing.T) {
	c := NewChallengeManager()
	c.SetSecret(1, 10)
	c.SetSecret(2, 20)

	got := c.SolveSecretSumModulo(7, []uint32{1, 2, 3})
	assert.Equal(t, uint64(30%7), got)
}

func TestInitiateSOSRejectsSecondOutstandingRescue(t *testing.T) {
	c := NewChallengeManager()
	_, err := c.InitiateSOS(1)
	require.Nil(t, err)

	_, err2 := c.InitiateSOS(2)
	require.NotNil(t, err2)
	assert.Equal(t, "NoRunningChallenge", string(*err2))
}

func TestResolveSOSRejectsSelfRescue(t *testing.T) {
	c := NewChallengeManager()
	_, _ = c.InitiateSOS(1)

	err := c.ResolveSOS(1)
	require.NotNil(t, err)
	assert.Equal(t, "InvalidChallengeSolution", string(*err))

	id, active := c.SOSActive()
	assert.Equal(t, uint32(1), id)
	assert.True(t, active)
}

func TestResolveSOSAcceptsTeammateRescue(t *testing.T) {
	c := NewChallengeManager()
	_, _ = c.InitiateSOS(1)

	err := c.ResolveSOS(2)
	require.Nil(t, err)

	_, active := c.SOSActive()
	assert.False(t, active)
}

func TestResolveSOSWithoutOutstandingRescue(t *testing.T) {
	c := NewChallengeManager()
	err := c.ResolveSOS(2)
	require.NotNil(t, err)
	assert.Equal(t, "NoRunningChallenge", string(*err))
}
