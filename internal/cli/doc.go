// Package cli implements the fimber command: it wires a configured sink,
// formatter and dispatcher together and feeds them calls from a stream,
// an interactive prompt or the command line.
package cli
