package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBase64Vectors(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte{0}, "aa"},
		{[]byte{25}, "gq"},
		{[]byte{26}, "gG"},
		{[]byte{51}, "mW"},
		{[]byte{52}, "na"},
		{[]byte{61}, "pq"},
		{[]byte{62}, "pG"},
		{[]byte{63}, "pW"},
		{[]byte("Hello, World!"), "sgvSBg8SifDVCMXKiq"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, EncodeBase64(c.in))
	}
}

func TestBase64RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xFF, 0x01},
		{0x01, 0x02, 0x03, 0x04, 0x05},
		[]byte("arbitrary payload of bytes \x00\x01\xff"),
	}

	for _, in := range inputs {
		encoded := EncodeBase64(in)
		decoded, err := DecodeBase64(encoded)
		require.NoError(t, err)
		assert.Equal(t, in, decoded)
	}
}

func TestDecodeBase64RejectsInvalidLength(t *testing.T) {
	_, err := DecodeBase64("abcde") // length 5 ≡ 1 (mod 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadBase64)
}

func TestDecodeBase64RejectsInvalidGlyph(t *testing.T) {
	_, err := DecodeBase64("a!cd")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadBase64)
}
