// Package codec reads boundary calls from a byte stream and writes the
// replies back.
//
// A call is a map with a "method" string and an optional "args" map:
//
//	{"method":"log","args":{"level":"E","tag":"net","message":"conn failed"}}
//
// A reply carries either a result or an error:
//
//	{"result":0}
//	{"error":{"code":"notImplemented","message":"..."}}
//
// Two encodings are supported. FormatJSON reads one call per line and is
// parsed with fastjson. FormatCBOR reads a sequence of CBOR data items.
// NewReader transparently decompresses zstd input.
package codec
