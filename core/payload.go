package core

import (
	"strings"
	"time"

	"github.com/trickstertwo/xclock"
)

// Payload is the untyped key/value structure delivered across the boundary
type Payload map[string]any

// Payload keys understood by Extract
const (
	KeyMessage   = "message"
	KeyTag       = "tag"
	KeyLevel     = "level"
	KeyException = "ex"
	KeyPrefix    = "preFix"
	KeyPostfix   = "postFix"
)

// DefaultTag is substituted when a payload carries no usable tag
const DefaultTag = "flutter"

// Extract builds a Record from a payload, stamping it with xclock.Now().
// See ExtractAt.
func Extract(p Payload) Record {
	return ExtractAt(p, xclock.Now())
}

// ExtractAt builds a Record from a payload. It never fails: every field
// has a total default and values of the wrong type are treated as absent.
//
//   - message: "" when absent
//   - tag: DefaultTag when absent, null or blank
//   - level: DefaultLevelCode when absent; unknown codes map to VerboseLevel
//   - ex: kept only when it is a string; blank strings count as present
//   - preFix, postFix: "" when absent
//
// A nil payload yields a record made entirely of defaults.
func ExtractAt(p Payload, at time.Time) Record {
	r := Record{time: at}

	r.message, _ = p.String(KeyMessage)

	if tag, ok := p.String(KeyTag); ok && strings.TrimSpace(tag) != "" {
		r.tag = tag
	} else {
		r.tag = DefaultTag
	}

	code, ok := p.String(KeyLevel)
	if !ok {
		code = DefaultLevelCode
	}
	r.level = ParseLevel(code)

	r.exception, r.hasEx = p.String(KeyException)
	r.prefix, _ = p.String(KeyPrefix)
	r.postfix, _ = p.String(KeyPostfix)

	return r
}

// String returns the string stored under key. ok is false when the key is
// missing, null, or holds a non-string value.
func (p Payload) String(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	switch v := p[key].(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}
