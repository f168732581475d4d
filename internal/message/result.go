package message

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// RegisterTeamOk is the success payload of a RegisterTeamResult.
type RegisterTeamOk struct {
	ExpectedPlayers   uint8  `json:"expected_players"`
	RegistrationToken string `json:"registration_token"`
}

// RegisterTeamResult answers a RegisterTeam request. Exactly one field is
// set.
type RegisterTeamResult struct {
	Ok  *RegisterTeamOk
	Err *RegistrationError
}

func NewRegisterTeamOk(expectedPlayers uint8, token string) RegisterTeamResult {
	return RegisterTeamResult{Ok: &RegisterTeamOk{ExpectedPlayers: expectedPlayers, RegistrationToken: token}}
}

func NewRegisterTeamErr(err RegistrationError) RegisterTeamResult {
	return RegisterTeamResult{Err: &err}
}

func (r RegisterTeamResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Ok != nil:
		return json.Marshal(map[string]RegisterTeamOk{"Ok": *r.Ok})
	case r.Err != nil:
		return json.Marshal(map[string]RegistrationError{"Err": *r.Err})
	default:
		return nil, errors.New("message: empty RegisterTeamResult has no variant set")
	}
}

func (r *RegisterTeamResult) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "message: RegisterTeamResult is not a tagged object")
	}
	if v, ok := raw["Ok"]; ok {
		var ok RegisterTeamOk
		if err := json.Unmarshal(v, &ok); err != nil {
			return errors.Wrap(err, "message: RegisterTeamResult.Ok")
		}
		r.Ok = &ok
		return nil
	}
	if v, ok := raw["Err"]; ok {
		var e RegistrationError
		if err := json.Unmarshal(v, &e); err != nil {
			return errors.Wrap(err, "message: RegisterTeamResult.Err")
		}
		r.Err = &e
		return nil
	}
	return errors.New("message: unknown RegisterTeamResult variant")
}

// SubscribePlayerResult answers a SubscribePlayer request. Ok carries no
// data and round-trips as the bare string "Ok".
type SubscribePlayerResult struct {
	Ok  bool
	Err *RegistrationError
}

func NewSubscribePlayerOk() SubscribePlayerResult {
	return SubscribePlayerResult{Ok: true}
}

func NewSubscribePlayerErr(err RegistrationError) SubscribePlayerResult {
	return SubscribePlayerResult{Err: &err}
}

func (r SubscribePlayerResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Ok:
		return json.Marshal("Ok")
	case r.Err != nil:
		return json.Marshal(map[string]RegistrationError{"Err": *r.Err})
	default:
		return nil, errors.New("message: empty SubscribePlayerResult has no variant set")
	}
}

func (r *SubscribePlayerResult) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "Ok" {
			return errors.Errorf("message: unknown unit SubscribePlayerResult variant %q", tag)
		}
		r.Ok = true
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "message: SubscribePlayerResult is neither a string nor a tagged object")
	}
	if v, ok := raw["Err"]; ok {
		var e RegistrationError
		if err := json.Unmarshal(v, &e); err != nil {
			return errors.Wrap(err, "message: SubscribePlayerResult.Err")
		}
		r.Err = &e
		return nil
	}
	return errors.New("message: unknown SubscribePlayerResult variant")
}
