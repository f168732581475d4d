package wire

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxFrameLen guards against a peer announcing an absurd body length and
// exhausting memory before the json package ever sees the bytes.
const maxFrameLen = 16 << 20 // 16 MiB

// ReadFrame reads one LEN(4, little-endian) ‖ BODY(LEN) frame from r and
// returns the body bytes. It wraps io.EOF and partial reads as ErrShortRead.
func ReadFrame(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, errors.Wrap(ErrShortRead, err.Error())
	}

	length := binary.LittleEndian.Uint32(lenBuf[:])
	if length > maxFrameLen {
		return nil, errors.Wrapf(ErrShortRead, "frame length %d exceeds maximum", length)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, errors.Wrap(ErrShortRead, err.Error())
	}
	return body, nil
}

// WriteFrame writes body prefixed with its little-endian uint32 length.
func WriteFrame(w io.Writer, body []byte) error {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(body)))

	if _, err := w.Write(lenBuf[:]); err != nil {
		return errors.Wrap(err, "wire: write length prefix")
	}
	if _, err := w.Write(body); err != nil {
		return errors.Wrap(err, "wire: write body")
	}
	return nil
}
