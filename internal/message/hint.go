package message

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// RelativeCompassPayload carries the bearing of the goal (or some other
// point of interest) relative to the player's facing.
type RelativeCompassPayload struct {
	Angle float32 `json:"angle"`
}

// GridSizePayload is the one-shot map-size hint: the maze's fixed
// dimensions, exposed so a client can size its own global map.
type GridSizePayload struct {
	Columns uint32 `json:"columns"`
	Rows    uint32 `json:"rows"`
}

// Hint is a server-pushed nudge that never blocks play: a compass bearing,
// the map dimensions, a challenge secret, or an SOS-rescue notice. Exactly
// one field is set.
type Hint struct {
	RelativeCompass *RelativeCompassPayload
	GridSize        *GridSizePayload
	Secret          *uint64
	SOSHelper       bool
}

func NewRelativeCompassHint(angle float32) Hint {
	return Hint{RelativeCompass: &RelativeCompassPayload{Angle: angle}}
}

func NewGridSizeHint(columns, rows uint32) Hint {
	return Hint{GridSize: &GridSizePayload{Columns: columns, Rows: rows}}
}

func NewSecretHint(value uint64) Hint {
	return Hint{Secret: &value}
}

func NewSOSHelperHint() Hint {
	return Hint{SOSHelper: true}
}

func (h Hint) MarshalJSON() ([]byte, error) {
	switch {
	case h.RelativeCompass != nil:
		return json.Marshal(map[string]RelativeCompassPayload{"RelativeCompass": *h.RelativeCompass})
	case h.GridSize != nil:
		return json.Marshal(map[string]GridSizePayload{"GridSize": *h.GridSize})
	case h.Secret != nil:
		return json.Marshal(map[string]uint64{"Secret": *h.Secret})
	case h.SOSHelper:
		return json.Marshal("SOSHelper")
	default:
		return nil, errors.New("message: empty Hint has no variant set")
	}
}

func (h *Hint) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "SOSHelper" {
			return errors.Errorf("message: unknown unit Hint variant %q", tag)
		}
		h.SOSHelper = true
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "message: Hint is neither a string nor a tagged object")
	}

	if v, ok := raw["RelativeCompass"]; ok {
		var p RelativeCompassPayload
		if err := json.Unmarshal(v, &p); err != nil {
			return errors.Wrap(err, "message: Hint.RelativeCompass")
		}
		h.RelativeCompass = &p
		return nil
	}
	if v, ok := raw["GridSize"]; ok {
		var p GridSizePayload
		if err := json.Unmarshal(v, &p); err != nil {
			return errors.Wrap(err, "message: Hint.GridSize")
		}
		h.GridSize = &p
		return nil
	}
	if v, ok := raw["Secret"]; ok {
		var s uint64
		if err := json.Unmarshal(v, &s); err != nil {
			return errors.Wrap(err, "message: Hint.Secret")
		}
		h.Secret = &s
		return nil
	}
	return errors.New("message: unknown Hint variant")
}
