package radar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeEncodeRoundTrip exercises spec scenario S4: a fixed 11-byte
// payload decodes to a grid whose re-encoding reproduces the same bytes.
func TestDecodeEncodeRoundTrip(t *testing.T) {
	payload := []byte{0xF8, 0xF8, 0xF8, 0x0F, 0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0}

	grid, err := Decode(payload)
	require.NoError(t, err)

	reencoded := Encode(grid)
	assert.Equal(t, payload, reencoded)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Decode(make([]byte, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadLength)
}

func TestAllOpenInteriorRoundTrips(t *testing.T) {
	var g Grid
	for row := range g {
		for col := range g[row] {
			g[row][col] = GlyphOpen
		}
	}
	// Walls/cells are all open, but even/even corners are re-derived on
	// decode, so only compare the wire payload round trip, not the grid.
	payload := Encode(g)
	require.Len(t, payload, payloadLen)

	decoded, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, Encode(decoded))
}

func TestCornerIsWallWhenBothHorizontalNeighboursAreOutside(t *testing.T) {
	var g Grid
	for row := range g {
		for col := range g[row] {
			g[row][col] = GlyphOpen
		}
	}
	// Force the wall tiles flanking corner [0][2] to decode as "outside".
	g[0][1] = GlyphOut
	g[0][3] = GlyphOut
	payload := Encode(g)

	decoded, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, byte(GlyphOut), decoded[0][2])
}

func TestGoalGlyphRoundTrips(t *testing.T) {
	var g Grid
	for row := range g {
		for col := range g[row] {
			g[row][col] = GlyphOpen
		}
	}
	g[3][3] = '*' // maze goal glyph feeding the encoder

	payload := Encode(g)
	decoded, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, byte(GlyphGoal), decoded[3][3]) // wire/rendered goal glyph
}
