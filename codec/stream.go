package codec

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/magillus/flutter-fimber/core"
)

// zstdMagic is the frame header of a zstd stream
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// NewReader returns a reader over r that transparently decompresses zstd
// input. Other input is passed through unchanged. The caller must Close
// the returned reader.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("codec: peek input: %w", err)
	}
	if !bytes.Equal(head, zstdMagic) {
		return io.NopCloser(br), nil
	}

	dec, err := zstd.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("codec: open zstd stream: %w", err)
	}
	return dec.IOReadCloser(), nil
}

// Open opens path for reading calls. "-" reads standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return NewReader(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: open input: %w", err)
	}
	rc, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileReader{ReadCloser: rc, f: f}, nil
}

type fileReader struct {
	io.ReadCloser
	f *os.File
}

func (r *fileReader) Close() error {
	err := r.ReadCloser.Close()
	if ferr := r.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// NewDecoder returns a decoder for format f
func NewDecoder(r io.Reader, f Format) Decoder {
	if f == FormatCBOR {
		return NewCBORDecoder(r)
	}
	return NewJSONDecoder(r)
}

// NewEncoder returns an encoder for format f
func NewEncoder(w io.Writer, f Format) Encoder {
	if f == FormatCBOR {
		return NewCBOREncoder(w)
	}
	return NewJSONEncoder(w)
}

// Handler serves one call. dispatch.Dispatcher implements it.
type Handler interface {
	Handle(method string, args core.Payload) (any, error)
}

type decoded struct {
	call Call
	err  error
}

// decode runs dec.Decode until it returns or ctx is done. A read that is
// still blocked when ctx is done is abandoned; dec must not be used again.
func decode(ctx context.Context, dec Decoder) (Call, error) {
	ch := make(chan decoded, 1)
	go func() {
		call, err := dec.Decode()
		ch <- decoded{call: call, err: err}
	}()

	select {
	case <-ctx.Done():
		return Call{}, ctx.Err()
	case d := <-ch:
		return d.call, d.err
	}
}

// Serve decodes calls from dec, hands them to h and encodes one reply per
// call. Malformed calls get an error reply and the loop continues. Serve
// returns nil once dec is exhausted, or ctx.Err() as soon as ctx is done,
// even while a read is blocked.
func Serve(ctx context.Context, dec Decoder, enc Encoder, h Handler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		call, err := decode(ctx, dec)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if !errors.Is(err, ErrMalformedCall) {
				return err
			}
			if err := enc.Encode(Reply{Err: err}); err != nil {
				return err
			}
			continue
		}

		res, err := h.Handle(call.Method, call.Args)
		if err := enc.Encode(Reply{Result: res, Err: err}); err != nil {
			return err
		}
	}
}
