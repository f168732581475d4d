package message

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// SolveChallengePayload is the object payload of the SolveChallenge variant.
type SolveChallengePayload struct {
	Answer string `json:"answer"`
}

// Action is the client's in-game command: either a move or an attempted
// challenge solution. Exactly one field is non-nil.
type Action struct {
	MoveTo         *Direction
	SolveChallenge *SolveChallengePayload
}

// NewMoveTo builds an Action for a move in direction d.
func NewMoveTo(d Direction) Action {
	return Action{MoveTo: &d}
}

// NewSolveChallenge builds an Action submitting answer as a challenge
// solution.
func NewSolveChallenge(answer string) Action {
	return Action{SolveChallenge: &SolveChallengePayload{Answer: answer}}
}

func (a Action) MarshalJSON() ([]byte, error) {
	switch {
	case a.MoveTo != nil:
		return json.Marshal(map[string]Direction{"MoveTo": *a.MoveTo})
	case a.SolveChallenge != nil:
		return json.Marshal(map[string]SolveChallengePayload{"SolveChallenge": *a.SolveChallenge})
	default:
		return nil, errors.New("message: empty Action has no variant set")
	}
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "message: Action is not a tagged object")
	}
	if len(raw) != 1 {
		return errors.Errorf("message: Action must have exactly one variant key, got %d", len(raw))
	}

	if v, ok := raw["MoveTo"]; ok {
		var d Direction
		if err := json.Unmarshal(v, &d); err != nil {
			return errors.Wrap(err, "message: Action.MoveTo")
		}
		a.MoveTo = &d
		return nil
	}
	if v, ok := raw["SolveChallenge"]; ok {
		var p SolveChallengePayload
		if err := json.Unmarshal(v, &p); err != nil {
			return errors.Wrap(err, "message: Action.SolveChallenge")
		}
		a.SolveChallenge = &p
		return nil
	}
	return errors.New("message: unknown Action variant")
}
