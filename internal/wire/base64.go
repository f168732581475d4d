package wire

import "github.com/pkg/errors"

// alphabet is the non-standard Base64 alphabet used to transport radar
// views: 'a'-'z' (0-25), 'A'-'Z' (26-51), '0'-'9' (52-61), '+' (62), '/' (63).
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+/"

var reverseTable [128]byte

func init() {
	for i := range reverseTable {
		reverseTable[i] = 0xFF
	}
	for i := 0; i < len(alphabet); i++ {
		reverseTable[alphabet[i]] = byte(i)
	}
}

// EncodeBase64 encodes data with the radar alphabet. Input is grouped into
// triples; a final partial group of 1 byte emits 2 glyphs, of 2 bytes emits
// 3 glyphs. There is no padding character.
func EncodeBase64(data []byte) string {
	out := make([]byte, 0, (len(data)*4+2)/3)

	i := 0
	for i < len(data) {
		remaining := len(data) - i
		switch {
		case remaining >= 3:
			b1, b2, b3 := data[i], data[i+1], data[i+2]
			out = append(out,
				alphabet[b1>>2],
				alphabet[((b1&0x03)<<4)|(b2>>4)],
				alphabet[((b2&0x0F)<<2)|(b3>>6)],
				alphabet[b3&0x3F],
			)
			i += 3
		case remaining == 2:
			b1, b2 := data[i], data[i+1]
			out = append(out,
				alphabet[b1>>2],
				alphabet[((b1&0x03)<<4)|(b2>>4)],
				alphabet[(b2&0x0F)<<2],
			)
			i += 2
		default:
			b1 := data[i]
			out = append(out,
				alphabet[b1>>2],
				alphabet[(b1&0x03)<<4],
			)
			i++
		}
	}
	return string(out)
}

// DecodeBase64 inverts EncodeBase64. A string whose length is ≡ 1 (mod 4)
// is invalid, as is any glyph outside the alphabet.
func DecodeBase64(s string) ([]byte, error) {
	if len(s)%4 == 1 {
		return nil, errors.Wrapf(ErrBadBase64, "invalid length %d", len(s))
	}

	out := make([]byte, 0, len(s)*3/4+1)

	for i := 0; i < len(s); {
		groupLen := len(s) - i
		if groupLen > 4 {
			groupLen = 4
		}

		var group [4]byte
		for j := 0; j < groupLen; j++ {
			c := s[i+j]
			if c >= 128 || reverseTable[c] == 0xFF {
				return nil, errors.Wrapf(ErrBadBase64, "invalid character %q", c)
			}
			group[j] = reverseTable[c]
		}

		switch groupLen {
		case 4:
			out = append(out,
				(group[0]<<2)|(group[1]>>4),
				((group[1]&0x0F)<<4)|(group[2]>>2),
				((group[2]&0x03)<<6)|group[3],
			)
		case 3:
			out = append(out,
				(group[0]<<2)|(group[1]>>4),
				((group[1]&0x0F)<<4)|(group[2]>>2),
			)
		case 2:
			out = append(out, (group[0]<<2)|(group[1]>>4))
		default:
			return nil, errors.Wrapf(ErrBadBase64, "invalid trailing group of length %d", groupLen)
		}
		i += groupLen
	}
	return out, nil
}
