package dfa

import (
	"errors"
	"fmt"
)

// Kinds of configuration errors. A *ConfigError unwraps to one of these.
var (
	ErrEmpty         = errors.New("empty set")
	ErrDuplicate     = errors.New("duplicate entry")
	ErrUnknownState  = errors.New("unknown state")
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrAlphabet      = errors.New("alphabets differ")
)

// ConfigError reports a malformed automaton description.
type ConfigError struct {
	Field string // which part of the description is wrong, e.g. "transition"
	Value string
	Kind  error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("dfa: %s: %v", e.Field, e.Kind)
	}
	return fmt.Sprintf("dfa: %s %q: %v", e.Field, e.Value, e.Kind)
}

func (e *ConfigError) Unwrap() error { return e.Kind }

func configError(field, value string, kind error) *ConfigError {
	return &ConfigError{Field: field, Value: value, Kind: kind}
}
