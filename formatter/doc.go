// Package formatter defines how a core.Record becomes the text handed to
// a native sink.
//
// Every formatter follows the same two policies. A record with an empty
// message is suppressed: Format returns "" and the dispatcher makes no
// sink call. An exception dump is rendered only when it is present and
// not blank after trimming.
//
// LineFormatter writes <prefix><message><postfix> for sinks that print
// tag and severity themselves, with the dump on a second line.
// ConsoleFormatter prepends a timestamp, the tag and the level code for
// plain consoles. JSONFormatter emits one JSON object per record.
//
// All built-in formatters implement BufferFormatter and use a pooled
// bytes.Buffer internally, relying on time.AppendFormat to avoid
// per-call allocations. Buffers larger than 64 KiB are not returned to
// the pool so that a single huge stack dump does not permanently inflate
// memory usage.
package formatter
