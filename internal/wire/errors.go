// Package wire implements the length-prefixed JSON framing layer and the
// custom Base64 codec used to transport radar views.
package wire

import "errors"

// Transport-level errors. These are fatal to the connection they occur on.
var (
	ErrShortRead = errors.New("wire: short read")
	ErrBadBase64 = errors.New("wire: malformed base64 string")
)
