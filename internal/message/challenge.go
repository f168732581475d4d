package message

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Challenge is the server-imposed puzzle pushed to a player: either a
// modular-sum-of-secrets challenge or a team-wide SOS. Exactly one field is
// set; SOS carries no data and round-trips as the bare string "SOS".
type Challenge struct {
	SecretSumModulo *uint64
	SOS             bool
}

func NewSecretSumModuloChallenge(modulo uint64) Challenge {
	return Challenge{SecretSumModulo: &modulo}
}

func NewSOSChallenge() Challenge {
	return Challenge{SOS: true}
}

func (c Challenge) MarshalJSON() ([]byte, error) {
	switch {
	case c.SecretSumModulo != nil:
		return json.Marshal(map[string]uint64{"SecretSumModulo": *c.SecretSumModulo})
	case c.SOS:
		return json.Marshal("SOS")
	default:
		return nil, errors.New("message: empty Challenge has no variant set")
	}
}

func (c *Challenge) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "SOS" {
			return errors.Errorf("message: unknown unit Challenge variant %q", tag)
		}
		c.SOS = true
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "message: Challenge is neither a string nor a tagged object")
	}
	if v, ok := raw["SecretSumModulo"]; ok {
		var modulo uint64
		if err := json.Unmarshal(v, &modulo); err != nil {
			return errors.Wrap(err, "message: Challenge.SecretSumModulo")
		}
		c.SecretSumModulo = &modulo
		return nil
	}
	return errors.New("message: unknown Challenge variant")
}
