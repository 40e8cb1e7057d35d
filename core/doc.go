// Package core defines the shared types of the fimber dispatch pipeline.
//
// Level is the portable severity carried across the boundary as a short
// code ("V", "D", "I", "W", "E", "F" or "WTF"). ParseLevel and Translate
// are total: unknown codes fall back to VerboseLevel instead of failing.
// Priority is the native ordinal the host logging facility expects.
//
// Extract turns an untyped Payload into a Record. Missing fields and
// values of the wrong type are replaced by documented defaults, so a
// payload can never make extraction fail. A Record is immutable once
// built.
//
// Entry carries the arguments of one native sink call. Entries are
// pooled via sync.Pool; callers get one with GetEntry and return it with
// PutEntry once the handler has consumed it.
package core
