package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/valyala/fastjson"

	"github.com/magillus/flutter-fimber/core"
)

const maxLineSize = 1 << 20

var (
	parserPool fastjson.ParserPool
	arenaPool  fastjson.ArenaPool
)

// DecodeJSON decodes a single JSON call
func DecodeJSON(data []byte) (Call, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return Call{}, fmt.Errorf("%w: %v", ErrMalformedCall, err)
	}
	if v.Type() != fastjson.TypeObject {
		return Call{}, fmt.Errorf("%w: expected object, got %s", ErrMalformedCall, v.Type())
	}

	method := v.Get("method")
	if method == nil || method.Type() != fastjson.TypeString {
		return Call{}, fmt.Errorf("%w: missing method", ErrMalformedCall)
	}

	call := Call{Method: string(method.GetStringBytes())}
	if args := v.Get("args"); args != nil && args.Type() == fastjson.TypeObject {
		call.Args = toPayload(args)
	}
	return call, nil
}

// toPayload copies an object out of the parser. Values must not keep
// references into the parser since it is reused.
func toPayload(v *fastjson.Value) core.Payload {
	o, _ := v.Object()
	p := make(core.Payload, o.Len())
	o.Visit(func(key []byte, v *fastjson.Value) {
		p[string(key)] = toAny(v)
	})
	return p
}

func toAny(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeObject:
		return map[string]any(toPayload(v))
	case fastjson.TypeArray:
		arr, _ := v.Array()
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = toAny(e)
		}
		return out
	default:
		return nil
	}
}

// AppendJSON appends the JSON encoding of r to dst
func AppendJSON(dst []byte, r Reply) []byte {
	a := arenaPool.Get()
	defer arenaPool.Put(a)

	o := a.NewObject()
	if r.Err != nil {
		e := a.NewObject()
		e.Set("code", a.NewString(ErrorCode(r.Err)))
		e.Set("message", a.NewString(r.Err.Error()))
		o.Set("error", e)
	} else {
		o.Set("result", fromAny(a, r.Result))
	}
	dst = o.MarshalTo(dst)
	a.Reset()
	return dst
}

func fromAny(a *fastjson.Arena, v any) *fastjson.Value {
	switch x := v.(type) {
	case nil:
		return a.NewNull()
	case string:
		return a.NewString(x)
	case bool:
		if x {
			return a.NewTrue()
		}
		return a.NewFalse()
	case int:
		return a.NewNumberInt(x)
	case int64:
		return a.NewNumberString(strconv.FormatInt(x, 10))
	case uint64:
		return a.NewNumberString(strconv.FormatUint(x, 10))
	case float64:
		return a.NewNumberFloat64(x)
	case fmt.Stringer:
		return a.NewString(x.String())
	default:
		return a.NewString(fmt.Sprint(x))
	}
}

type jsonDecoder struct {
	sc *bufio.Scanner
}

// NewJSONDecoder reads one JSON call per line from r. Blank lines are
// skipped.
func NewJSONDecoder(r io.Reader) Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &jsonDecoder{sc: sc}
}

func (d *jsonDecoder) Decode() (Call, error) {
	for d.sc.Scan() {
		line := d.sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		return DecodeJSON(line)
	}
	if err := d.sc.Err(); err != nil {
		return Call{}, fmt.Errorf("codec: read json: %w", err)
	}
	return Call{}, io.EOF
}

type jsonEncoder struct {
	w   io.Writer
	buf []byte
}

// NewJSONEncoder writes one JSON reply per line to w
func NewJSONEncoder(w io.Writer) Encoder {
	return &jsonEncoder{w: w}
}

func (e *jsonEncoder) Encode(r Reply) error {
	e.buf = AppendJSON(e.buf[:0], r)
	e.buf = append(e.buf, '\n')
	if _, err := e.w.Write(e.buf); err != nil {
		return fmt.Errorf("codec: write json: %w", err)
	}
	return nil
}
