// Package client implements the navigator's side of a connection: it
// registers a team, subscribes a player, and then loops decoding radar
// pushes and sending the navigator's chosen moves until the maze is
// solved or the connection drops.
package client

import (
	"math/rand"
	"net"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"maze-runner-go/internal/globalmap"
	"maze-runner-go/internal/message"
	"maze-runner-go/internal/navigator"
	"maze-runner-go/internal/radar"
	"maze-runner-go/internal/wire"
)

// Driver runs one player's connection lifecycle against a single server.
type Driver struct {
	conn net.Conn
	log  *logrus.Entry
	nav      *navigator.Navigator
	gm       *globalmap.Map
	last     message.Direction
	lastView radar.Grid
	x, y     int
	secret   *uint64
}

// Dial connects to addr and returns a Driver ready to Play.
func Dial(addr string, log *logrus.Entry) (*Driver, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "client: dial %s", addr)
	}
	return &Driver{
		conn: conn,
		log:  log,
		nav:  navigator.New(rand.New(rand.NewSource(1))),
	}, nil
}

// Close releases the underlying connection.
func (d *Driver) Close() error {
	return d.conn.Close()
}

func (d *Driver) send(cmd message.ClientCommand) error {
	body, err := message.EncodeClientCommand(cmd)
	if err != nil {
		return err
	}
	return wire.WriteFrame(d.conn, body)
}

func (d *Driver) recv() (message.ServerMessage, error) {
	body, err := wire.ReadFrame(d.conn)
	if err != nil {
		return message.ServerMessage{}, err
	}
	return message.DecodeServerMessage(body)
}

// RegisterTeam sends RegisterTeam and returns the issued token.
func (d *Driver) RegisterTeam(name string) (string, error) {
	if err := d.send(message.NewRegisterTeamCommand(name)); err != nil {
		return "", err
	}
	msg, err := d.recv()
	if err != nil {
		return "", err
	}
	if msg.RegisterTeamResult == nil {
		return "", errors.New("client: expected RegisterTeamResult")
	}
	if msg.RegisterTeamResult.Err != nil {
		return "", errors.Errorf("client: team registration rejected: %s", *msg.RegisterTeamResult.Err)
	}
	return msg.RegisterTeamResult.Ok.RegistrationToken, nil
}

// SubscribePlayer sends SubscribePlayer and consumes the Ok, the map-size
// hint, and the first radar push that follow a successful subscription.
func (d *Driver) SubscribePlayer(name, token string) error {
	if err := d.send(message.NewSubscribePlayerCommand(name, token)); err != nil {
		return err
	}

	msg, err := d.recv()
	if err != nil {
		return err
	}
	if msg.SubscribePlayerResult == nil {
		return errors.New("client: expected SubscribePlayerResult")
	}
	if msg.SubscribePlayerResult.Err != nil {
		return errors.Errorf("client: subscription rejected: %s", *msg.SubscribePlayerResult.Err)
	}

	hint, err := d.recv()
	if err != nil {
		return err
	}
	d.x, d.y = globalmap.Width/2, globalmap.Height/2
	if hint.Hint != nil && hint.Hint.GridSize != nil {
		d.log.WithField("columns", hint.Hint.GridSize.Columns).WithField("rows", hint.Hint.GridSize.Rows).Debug("client: grid size hint")
	}
	d.gm = globalmap.New(d.x, d.y)

	secretHint, err := d.recv()
	if err != nil {
		return err
	}
	if secretHint.Hint != nil && secretHint.Hint.Secret != nil {
		d.secret = secretHint.Hint.Secret
	}

	compassHint, err := d.recv()
	if err != nil {
		return err
	}
	if compassHint.Hint != nil && compassHint.Hint.RelativeCompass != nil {
		d.nav.SetCompassBearing(compassHint.Hint.RelativeCompass.Angle)
	}

	radarMsg, err := d.recv()
	if err != nil {
		return err
	}
	return d.applyRadarView(radarMsg, d.x, d.y)
}

func (d *Driver) applyRadarView(msg message.ServerMessage, x, y int) error {
	if msg.RadarView == nil {
		return errors.New("client: expected RadarView")
	}
	raw, err := wire.DecodeBase64(*msg.RadarView)
	if err != nil {
		return err
	}
	grid, err := radar.Decode(raw)
	if err != nil {
		return err
	}
	d.gm.UpdateFromRadar(grid, x, y)
	d.lastView = grid
	return nil
}

// Step drives one iteration of the exploration loop: it asks the navigator
// for the next move, sends it, and applies whatever the server answers
// with. It returns false once the connection should be closed.
func (d *Driver) Step() (bool, error) {
	move := d.nav.Choose(d.lastView, d.gm, d.x, d.y, d.last)
	if err := d.send(message.NewActionCommand(message.NewMoveTo(move))); err != nil {
		return false, err
	}

	msg, err := d.recv()
	if err != nil {
		return false, err
	}

	switch {
	case msg.ActionError != nil:
		d.nav.RecordFailure(move)
		return true, nil
	case msg.RadarView != nil:
		dx, dy := directionOffset(move)
		d.x += dx
		d.y += dy
		d.last = move
		if err := d.applyRadarView(msg, d.x, d.y); err != nil {
			return false, err
		}
		return true, nil
	case msg.Challenge != nil:
		dx, dy := directionOffset(move)
		d.x += dx
		d.y += dy
		d.last = move
		return d.solveChallenge(*msg.Challenge)
	default:
		return true, nil
	}
}

// solveChallenge answers a pushed challenge and consumes its reply. For
// SecretSumModulo it can only offer its own known secret: a full team
// answer needs every teammate's secret pooled together, which this
// single-connection driver has no channel for.
func (d *Driver) solveChallenge(c message.Challenge) (bool, error) {
	var answer string
	switch {
	case c.SOS:
		answer = "rescue"
	case c.SecretSumModulo != nil && d.secret != nil:
		answer = strconv.FormatUint(*d.secret%*c.SecretSumModulo, 10)
	default:
		answer = "0"
	}

	if err := d.send(message.NewActionCommand(message.NewSolveChallenge(answer))); err != nil {
		return false, err
	}

	reply, err := d.recv()
	if err != nil {
		return false, err
	}
	if reply.RadarView != nil {
		if err := d.applyRadarView(reply, d.x, d.y); err != nil {
			return false, err
		}
	}
	return true, nil
}

// directionOffset is the step on the global map's glyph grid, matching
// navigator.offset and the maze's own double-grid convention: adjacent
// rooms differ by 2, not 1.
func directionOffset(dir message.Direction) (int, int) {
	switch dir {
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
