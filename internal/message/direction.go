// Package message implements the tagged-union wire messages exchanged
// between server and client: every JSON body is an externally tagged sum
// type, exactly one key naming the variant.
package message

// Direction is a move relative to the player's own facing, never an
// absolute compass direction. It serializes as its bare name.
type Direction string

const (
	Front Direction = "Front"
	Right Direction = "Right"
	Back  Direction = "Back"
	Left  Direction = "Left"
)

// AllDirections lists the four directions in the fixed tie-break order:
// Front, Right, Left, Back.
var AllDirections = [4]Direction{Front, Right, Left, Back}

// Opposite returns the reverse of d: Front/Back and Left/Right are paired.
func (d Direction) Opposite() Direction {
	switch d {
	case Front:
		return Back
	case Back:
		return Front
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}
