package message

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// RegisterTeam is the Client→Server request to create a new team.
type RegisterTeam struct {
	Name string `json:"name"`
}

// SubscribePlayer is the Client→Server request to join a registered team.
type SubscribePlayer struct {
	Name              string `json:"name"`
	RegistrationToken string `json:"registration_token"`
}

// ClientCommand is the top-level tagged union of every message a client may
// send. Exactly one field is set.
type ClientCommand struct {
	RegisterTeam    *RegisterTeam
	SubscribePlayer *SubscribePlayer
	Action          *Action
}

func NewRegisterTeamCommand(name string) ClientCommand {
	return ClientCommand{RegisterTeam: &RegisterTeam{Name: name}}
}

func NewSubscribePlayerCommand(name, token string) ClientCommand {
	return ClientCommand{SubscribePlayer: &SubscribePlayer{Name: name, RegistrationToken: token}}
}

func NewActionCommand(a Action) ClientCommand {
	return ClientCommand{Action: &a}
}

func (c ClientCommand) MarshalJSON() ([]byte, error) {
	switch {
	case c.RegisterTeam != nil:
		return json.Marshal(map[string]RegisterTeam{"RegisterTeam": *c.RegisterTeam})
	case c.SubscribePlayer != nil:
		return json.Marshal(map[string]SubscribePlayer{"SubscribePlayer": *c.SubscribePlayer})
	case c.Action != nil:
		return json.Marshal(map[string]Action{"Action": *c.Action})
	default:
		return nil, errors.New("message: empty ClientCommand has no variant set")
	}
}

func (c *ClientCommand) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "message: ClientCommand is not a tagged object")
	}
	if len(raw) != 1 {
		return errors.Errorf("message: ClientCommand must have exactly one variant key, got %d", len(raw))
	}

	if v, ok := raw["RegisterTeam"]; ok {
		var p RegisterTeam
		if err := json.Unmarshal(v, &p); err != nil {
			return errors.Wrap(err, "message: ClientCommand.RegisterTeam")
		}
		c.RegisterTeam = &p
		return nil
	}
	if v, ok := raw["SubscribePlayer"]; ok {
		var p SubscribePlayer
		if err := json.Unmarshal(v, &p); err != nil {
			return errors.Wrap(err, "message: ClientCommand.SubscribePlayer")
		}
		c.SubscribePlayer = &p
		return nil
	}
	if v, ok := raw["Action"]; ok {
		var a Action
		if err := json.Unmarshal(v, &a); err != nil {
			return errors.Wrap(err, "message: ClientCommand.Action")
		}
		c.Action = &a
		return nil
	}
	return errors.New("message: unknown ClientCommand variant")
}

// ServerMessage is the top-level tagged union of every message a server may
// send. Exactly one field is set.
type ServerMessage struct {
	RegisterTeamResult    *RegisterTeamResult
	SubscribePlayerResult *SubscribePlayerResult
	RadarView             *string
	Challenge             *Challenge
	Hint                  *Hint
	ActionError           *ActionError
}

func NewRegisterTeamResultMessage(r RegisterTeamResult) ServerMessage {
	return ServerMessage{RegisterTeamResult: &r}
}

func NewSubscribePlayerResultMessage(r SubscribePlayerResult) ServerMessage {
	return ServerMessage{SubscribePlayerResult: &r}
}

func NewRadarViewMessage(encoded string) ServerMessage {
	return ServerMessage{RadarView: &encoded}
}

func NewChallengeMessage(c Challenge) ServerMessage {
	return ServerMessage{Challenge: &c}
}

func NewHintMessage(h Hint) ServerMessage {
	return ServerMessage{Hint: &h}
}

func NewActionErrorMessage(e ActionError) ServerMessage {
	return ServerMessage{ActionError: &e}
}

func (m ServerMessage) MarshalJSON() ([]byte, error) {
	switch {
	case m.RegisterTeamResult != nil:
		return json.Marshal(map[string]RegisterTeamResult{"RegisterTeamResult": *m.RegisterTeamResult})
	case m.SubscribePlayerResult != nil:
		return json.Marshal(map[string]SubscribePlayerResult{"SubscribePlayerResult": *m.SubscribePlayerResult})
	case m.RadarView != nil:
		return json.Marshal(map[string]string{"RadarView": *m.RadarView})
	case m.Challenge != nil:
		return json.Marshal(map[string]Challenge{"Challenge": *m.Challenge})
	case m.Hint != nil:
		return json.Marshal(map[string]Hint{"Hint": *m.Hint})
	case m.ActionError != nil:
		return json.Marshal(map[string]ActionError{"ActionError": *m.ActionError})
	default:
		return nil, errors.New("message: empty ServerMessage has no variant set")
	}
}

func (m *ServerMessage) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "message: ServerMessage is not a tagged object")
	}
	if len(raw) != 1 {
		return errors.Errorf("message: ServerMessage must have exactly one variant key, got %d", len(raw))
	}

	if v, ok := raw["RegisterTeamResult"]; ok {
		var r RegisterTeamResult
		if err := json.Unmarshal(v, &r); err != nil {
			return errors.Wrap(err, "message: ServerMessage.RegisterTeamResult")
		}
		m.RegisterTeamResult = &r
		return nil
	}
	if v, ok := raw["SubscribePlayerResult"]; ok {
		var r SubscribePlayerResult
		if err := json.Unmarshal(v, &r); err != nil {
			return errors.Wrap(err, "message: ServerMessage.SubscribePlayerResult")
		}
		m.SubscribePlayerResult = &r
		return nil
	}
	if v, ok := raw["RadarView"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return errors.Wrap(err, "message: ServerMessage.RadarView")
		}
		m.RadarView = &s
		return nil
	}
	if v, ok := raw["Challenge"]; ok {
		var c Challenge
		if err := json.Unmarshal(v, &c); err != nil {
			return errors.Wrap(err, "message: ServerMessage.Challenge")
		}
		m.Challenge = &c
		return nil
	}
	if v, ok := raw["Hint"]; ok {
		var h Hint
		if err := json.Unmarshal(v, &h); err != nil {
			return errors.Wrap(err, "message: ServerMessage.Hint")
		}
		m.Hint = &h
		return nil
	}
	if v, ok := raw["ActionError"]; ok {
		var e ActionError
		if err := json.Unmarshal(v, &e); err != nil {
			return errors.Wrap(err, "message: ServerMessage.ActionError")
		}
		m.ActionError = &e
		return nil
	}
	return errors.New("message: unknown ServerMessage variant")
}

// EncodeClientCommand marshals a ClientCommand to its JSON wire form.
func EncodeClientCommand(c ClientCommand) ([]byte, error) {
	return json.Marshal(c)
}

// DecodeClientCommand unmarshals a ClientCommand from its JSON wire form.
func DecodeClientCommand(data []byte) (ClientCommand, error) {
	var c ClientCommand
	err := json.Unmarshal(data, &c)
	return c, err
}

// EncodeServerMessage marshals a ServerMessage to its JSON wire form.
func EncodeServerMessage(m ServerMessage) ([]byte, error) {
	return json.Marshal(m)
}

// DecodeServerMessage unmarshals a ServerMessage from its JSON wire form.
func DecodeServerMessage(data []byte) (ServerMessage, error) {
	var m ServerMessage
	err := json.Unmarshal(data, &m)
	return m, err
}
