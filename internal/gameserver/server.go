// Package gameserver implements the arbiter side of the maze game: team
// registration, player subscription, challenge resolution, and the
// per-connection session state machine that drives them over the wire.
package gameserver

import (
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"maze-runner-go/internal/maze"
	"maze-runner-go/internal/metrics"
)

// Server owns every piece of shared state a connection's session touches:
// the registry and the fixed maze they all play on. Each team owns its own
// ChallengeManager (see Registry.ChallengeManager), so the Resolver itself
// holds no per-team state.
type Server struct {
	Grid     maze.Grid
	Registry *Registry
	Resolver *Resolver
	Log      *logrus.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New builds a Server over grid, logging through log.
func New(grid maze.Grid, log *logrus.Logger) *Server {
	return &Server{
		Grid:     grid,
		Registry: NewRegistry(),
		Resolver: NewResolver(grid),
		Log:      log,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// spawn picks a fresh random open cell for a newly subscribed player.
func (s *Server) spawn() maze.Point {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return spawnPosition(s.Grid, s.rng)
}

// assignSecret draws a fresh secret value for a newly subscribed player
// and records it with cm, its team's challenge manager, so a later
// SecretSumModulo challenge can be checked against the team's true sum.
func (s *Server) assignSecret(cm *ChallengeManager, playerID uint32) uint64 {
	s.rngMu.Lock()
	secret := uint64(s.rng.Intn(100))
	s.rngMu.Unlock()

	cm.SetSecret(playerID, secret)
	return secret
}

// Listen accepts connections on addr until it is closed or ctx-equivalent
// shutdown is requested by the caller closing the returned listener.
func (s *Server) Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "gameserver: listen on %s", addr)
	}
	s.Log.WithField("addr", addr).Info("gameserver: listening")
	return ln, nil
}

// Serve accepts connections from ln forever, handling each on its own
// goroutine. It returns when ln is closed.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return errors.Wrap(err, "gameserver: accept")
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	traceID := uuid.NewString()
	log := s.Log.WithFields(logrus.Fields{"trace_id": traceID, "remote": conn.RemoteAddr().String()})

	metrics.ConnectionsActive.Inc()
	defer metrics.ConnectionsActive.Dec()
	defer conn.Close()

	defer func(start time.Time) {
		log.WithField("duration", time.Since(start)).Info("gameserver: connection closed")
	}(time.Now())

	sess := newSession(s, conn, log)
	sess.run()
}
