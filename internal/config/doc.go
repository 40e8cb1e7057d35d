// Package config holds the fimber command configuration. Values come from
// built-in defaults, an optional YAML or JSON file and FIMBER_* environment
// variables, in that order.
package config
