package codec

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/magillus/flutter-fimber/core"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Nested maps decode with string keys so they can be used as payloads
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		DefaultMapType:    reflect.TypeOf(map[string]any(nil)),
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// cborCall is the wire shape of a call. Method is a pointer so that a
// missing key can be told apart from an empty method name.
type cborCall struct {
	Method *string        `cbor:"method"`
	Args   map[string]any `cbor:"args"`
}

// DecodeCBOR decodes a single CBOR call
func DecodeCBOR(data []byte) (Call, error) {
	var c cborCall
	if err := decMode.Unmarshal(data, &c); err != nil {
		return Call{}, fmt.Errorf("%w: %v", ErrMalformedCall, err)
	}
	return c.call()
}

func (c cborCall) call() (Call, error) {
	if c.Method == nil {
		return Call{}, fmt.Errorf("%w: missing method", ErrMalformedCall)
	}
	return Call{Method: *c.Method, Args: core.Payload(c.Args)}, nil
}

// EncodeCBOR encodes a reply as a CBOR map
func EncodeCBOR(r Reply) ([]byte, error) {
	return encMode.Marshal(cborReply(r))
}

func cborReply(r Reply) map[string]any {
	if r.Err != nil {
		return map[string]any{
			"error": map[string]string{
				"code":    ErrorCode(r.Err),
				"message": r.Err.Error(),
			},
		}
	}
	return map[string]any{"result": r.Result}
}

type cborDecoder struct {
	dec *cbor.Decoder
}

// NewCBORDecoder reads a sequence of CBOR calls from r
func NewCBORDecoder(r io.Reader) Decoder {
	return &cborDecoder{dec: decMode.NewDecoder(r)}
}

func (d *cborDecoder) Decode() (Call, error) {
	var c cborCall
	if err := d.dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Call{}, io.EOF
		}
		var typeErr *cbor.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// The item was consumed, the stream can continue
			return Call{}, fmt.Errorf("%w: %v", ErrMalformedCall, err)
		}
		return Call{}, fmt.Errorf("codec: read cbor: %w", err)
	}
	return c.call()
}

type cborEncoder struct {
	enc *cbor.Encoder
}

// NewCBOREncoder writes CBOR replies to w
func NewCBOREncoder(w io.Writer) Encoder {
	return &cborEncoder{enc: encMode.NewEncoder(w)}
}

func (e *cborEncoder) Encode(r Reply) error {
	if err := e.enc.Encode(cborReply(r)); err != nil {
		return fmt.Errorf("codec: write cbor: %w", err)
	}
	return nil
}
