package client

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"maze-runner-go/internal/gameserver"
	"maze-runner-go/internal/maze"
)

func startTestServer(t *testing.T) string {
	t.Helper()
	srv := gameserver.New(maze.DefaultMaze, logrus.New())
	ln, err := srv.Listen("127.0.0.1:0")
	require.NoError(t, err)
	go srv.Serve(ln)
	t.Cleanup(func() { ln.Close() })
	return ln.Addr().String()
}

func TestDriverRegistersAndSubscribes(t *testing.T) {
	addr := startTestServer(t)

	d, err := Dial(addr, logrus.NewEntry(logrus.New()))
	require.NoError(t, err)
	defer d.Close()

	token, err := d.RegisterTeam("rust_warriors")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, d.SubscribePlayer("scout", token))
}

func TestDriverStepsWithoutCrashing(t *testing.T) {
	addr := startTestServer(t)

	d, err := Dial(addr, logrus.NewEntry(logrus.New()))
	require.NoError(t, err)
	defer d.Close()

	token, err := d.RegisterTeam("rust_warriors")
	require.NoError(t, err)
	require.NoError(t, d.SubscribePlayer("scout", token))

	for i := 0; i < 10; i++ {
		d.conn.SetDeadline(time.Now().Add(2 * time.Second))
		ok, err := d.Step()
		require.NoError(t, err)
		require.True(t, ok)
	}
}
