package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/dispatch"
)

// Format selects the wire encoding
type Format int

const (
	// FormatJSON is newline delimited JSON
	FormatJSON Format = iota
	// FormatCBOR is a sequence of CBOR data items
	FormatCBOR
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return FormatJSON, fmt.Errorf("codec: unknown format %q", s)
	}
}

// Reply error codes
const (
	CodeNotImplemented = "notImplemented"
	CodeError          = "error"
)

// ErrMalformedCall is returned for a call that decodes but is not a valid
// call, for example one without a method. The stream stays usable.
var ErrMalformedCall = errors.New("codec: malformed call")

// Call is one decoded boundary call
type Call struct {
	Method string
	Args   core.Payload
}

// Reply is the outcome of one call. Err takes precedence over Result.
type Reply struct {
	Result any
	Err    error
}

// ErrorCode returns the boundary error code for err
func ErrorCode(err error) string {
	if errors.Is(err, dispatch.ErrNotImplemented) {
		return CodeNotImplemented
	}
	return CodeError
}

// Decoder reads calls from a stream. Decode returns io.EOF once the stream
// is exhausted.
type Decoder interface {
	Decode() (Call, error)
}

// Encoder writes replies to a stream
type Encoder interface {
	Encode(r Reply) error
}
