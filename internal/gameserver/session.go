package gameserver

import (
	"io"
	"net"

	"github.com/sirupsen/logrus"

	"maze-runner-go/internal/maze"
	"maze-runner-go/internal/message"
	"maze-runner-go/internal/metrics"
	"maze-runner-go/internal/radar"
	"maze-runner-go/internal/wire"
)

// sessionState names where a connection sits in the Greeting → Playing
// lifecycle. A connection moves forward only; it never goes back.
type sessionState int

const (
	stateGreeting sessionState = iota
	stateAwaitingSubscribe
	statePlaying
	stateClosed
)

// session drives one TCP connection through its state machine: it reads
// one framed ClientCommand at a time and replies with framed
// ServerMessages, dispatching on the current state.
type session struct {
	server *Server
	conn   net.Conn
	log    *logrus.Entry

	state     sessionState
	token     string
	player    *Player
	challenge *ChallengeManager
}

func newSession(s *Server, conn net.Conn, log *logrus.Entry) *session {
	return &session{server: s, conn: conn, log: log, state: stateGreeting}
}

func (sess *session) run() {
	for sess.state != stateClosed {
		body, err := wire.ReadFrame(sess.conn)
		if err != nil {
			if err != io.EOF {
				sess.log.WithError(err).Debug("gameserver: frame read ended")
			}
			return
		}

		cmd, err := message.DecodeClientCommand(body)
		if err != nil {
			sess.log.WithError(err).Warn("gameserver: malformed client command")
			return
		}

		if err := sess.dispatch(cmd); err != nil {
			sess.log.WithError(err).Debug("gameserver: dispatch ended session")
			return
		}
	}
}

func (sess *session) dispatch(cmd message.ClientCommand) error {
	switch sess.state {
	case stateGreeting:
		return sess.handleRegisterTeam(cmd)
	case stateAwaitingSubscribe:
		return sess.handleSubscribePlayer(cmd)
	case statePlaying:
		return sess.handleAction(cmd)
	default:
		return nil
	}
}

func (sess *session) send(msg message.ServerMessage) error {
	body, err := message.EncodeServerMessage(msg)
	if err != nil {
		return err
	}
	return wire.WriteFrame(sess.conn, body)
}

func (sess *session) handleRegisterTeam(cmd message.ClientCommand) error {
	if cmd.RegisterTeam == nil {
		e := message.InvalidName
		return sess.send(message.NewRegisterTeamResultMessage(message.NewRegisterTeamErr(e)))
	}

	token, regErr := sess.server.Registry.RegisterTeam(cmd.RegisterTeam.Name)
	if regErr != nil {
		sess.log.WithField("team", cmd.RegisterTeam.Name).WithField("reason", string(*regErr)).Info("gameserver: team registration rejected")
		return sess.send(message.NewRegisterTeamResultMessage(message.NewRegisterTeamErr(*regErr)))
	}

	sess.token = token
	sess.state = stateAwaitingSubscribe
	metrics.TeamsRegisteredTotal.Inc()
	sess.log.WithField("team", cmd.RegisterTeam.Name).Info("gameserver: team registered")
	return sess.send(message.NewRegisterTeamResultMessage(message.NewRegisterTeamOk(MaxPlayers, token)))
}

func (sess *session) handleSubscribePlayer(cmd message.ClientCommand) error {
	if cmd.SubscribePlayer == nil {
		e := message.InvalidRegistrationToken
		return sess.send(message.NewSubscribePlayerResultMessage(message.NewSubscribePlayerErr(e)))
	}

	p, subErr := sess.server.Registry.SubscribePlayer(cmd.SubscribePlayer.RegistrationToken, cmd.SubscribePlayer.Name)
	if subErr != nil {
		sess.log.WithField("reason", string(*subErr)).Info("gameserver: subscription rejected")
		return sess.send(message.NewSubscribePlayerResultMessage(message.NewSubscribePlayerErr(*subErr)))
	}

	p.Position = sess.server.spawn()
	sess.player = p
	sess.challenge = sess.server.Registry.ChallengeManager(cmd.SubscribePlayer.RegistrationToken)
	sess.state = statePlaying
	metrics.PlayersSubscribedTotal.Inc()
	sess.log.WithField("player", p.Name).WithField("id", p.ID).Info("gameserver: player subscribed")

	if err := sess.send(message.NewSubscribePlayerResultMessage(message.NewSubscribePlayerOk())); err != nil {
		return err
	}
	if err := sess.send(message.NewHintMessage(message.NewGridSizeHint(maze.Size, maze.Size))); err != nil {
		return err
	}

	secret := sess.server.assignSecret(sess.challenge, p.ID)
	if err := sess.send(message.NewHintMessage(message.NewSecretHint(secret))); err != nil {
		return err
	}

	bearing := p.Position.BearingTo(maze.GoalPosition)
	if err := sess.send(message.NewHintMessage(message.NewRelativeCompassHint(bearing))); err != nil {
		return err
	}

	return sess.pushRadarView()
}

func (sess *session) pushRadarView() error {
	encoded := wire.EncodeBase64(radar.Encode(sess.server.Grid.ToRadarGrid()))
	return sess.send(message.NewRadarViewMessage(encoded))
}

func (sess *session) handleAction(cmd message.ClientCommand) error {
	if cmd.Action == nil {
		return sess.send(message.NewActionErrorMessage(message.NoRunningChallenge))
	}

	switch {
	case cmd.Action.MoveTo != nil:
		return sess.handleMove(*cmd.Action.MoveTo)
	case cmd.Action.SolveChallenge != nil:
		return sess.handleSolveChallenge(cmd.Action.SolveChallenge.Answer)
	default:
		return sess.send(message.NewActionErrorMessage(message.NoRunningChallenge))
	}
}

// handleMove resolves a move and replies with exactly one message: the
// action error, the challenge just stepped onto, or else the fresh radar
// view. A challenge push takes priority over the routine radar push; the
// client receives its next radar view once the challenge is resolved.
func (sess *session) handleMove(d message.Direction) error {
	occupied := sess.server.Registry.AllPositions()
	outcome, actionErr := sess.server.Resolver.ResolveMove(sess.player, d, occupied, sess.challenge)
	if actionErr != nil {
		return sess.send(message.NewActionErrorMessage(*actionErr))
	}

	if outcome.Challenge != nil {
		return sess.send(message.NewChallengeMessage(*outcome.Challenge))
	}
	return sess.pushRadarView()
}

func (sess *session) handleSolveChallenge(answer string) error {
	teamIDs := sess.server.Registry.TeamPlayerIDs(sess.token)
	actionErr := sess.server.Resolver.ResolveChallenge(sess.player, answer, teamIDs, sess.challenge)
	if actionErr != nil {
		metrics.ChallengesResolvedTotal.WithLabelValues("rejected").Inc()
		return sess.send(message.NewActionErrorMessage(*actionErr))
	}
	metrics.ChallengesResolvedTotal.WithLabelValues("solved").Inc()
	return sess.pushRadarView()
}
