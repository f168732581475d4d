package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	body := []byte(`{"RegisterTeamResult":{"Ok":{"expected_players":3,"registration_token":"abc"}}}`)

	require.NoError(t, WriteFrame(&buf, body))

	got, err := ReadFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestReadFrameShortBody(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, []byte("hello")))

	truncated := bytes.NewReader(buf.Bytes()[:6]) // length prefix + 2 of 5 body bytes
	_, err := ReadFrame(truncated)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestReadFrameEOF(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShortRead)
}
