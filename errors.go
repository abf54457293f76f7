package enum

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNotFound indicates text did not match any member's display text.
	ErrNotFound = errors.New("member not found")

	// ErrInvalidDefinition indicates a Definition is missing required data.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrDuplicateMember indicates two members were declared with the same name.
	ErrDuplicateMember = errors.New("duplicate member")

	// ErrSeparatorInDisplay indicates a flag member's display text contains
	// the separator and could not be parsed back.
	ErrSeparatorInDisplay = errors.New("display contains separator")

	// ErrUnbound indicates a Member with no Type was asked to parse text.
	ErrUnbound = errors.New("member not bound to a type")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ParseError reports text that could not be parsed into a member.
type ParseError struct {
	Err   error  // Underlying sentinel error (ErrNotFound, ErrUnbound)
	Type  string // Type name
	Input string // Full input text
	Token string // Flag token that failed to match, if any
}

func (e *ParseError) Error() string {
	if e.Token != "" && e.Token != e.Input {
		return fmt.Sprintf("%s: parse %q: token %q: %s", e.Type, e.Input, e.Token, e.Err.Error())
	}
	if e.Type != "" {
		return fmt.Sprintf("%s: parse %q: %s", e.Type, e.Input, e.Err.Error())
	}
	return fmt.Sprintf("parse %q: %s", e.Input, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid Definition.
// It wraps a sentinel error with the type and member that triggered it.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrInvalidDefinition, etc.)
	Type   string // Type name
	Member string // Member name, or #index when the name is missing
}

func (e *ConfigError) Error() string {
	if e.Type != "" && e.Member != "" {
		return fmt.Sprintf("%s for member %s (type %s)", e.Err.Error(), e.Member, e.Type)
	}
	if e.Member != "" {
		return fmt.Sprintf("%s for member %s", e.Err.Error(), e.Member)
	}
	if e.Type != "" {
		return fmt.Sprintf("%s (type %s)", e.Err.Error(), e.Type)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newParseError creates a ParseError for text that matched no member.
func newParseError(sentinel error, typeName, input, token string) error {
	return &ParseError{
		Err:   sentinel,
		Type:  typeName,
		Input: input,
		Token: token,
	}
}

// newConfigError creates a ConfigError for an invalid declaration.
func newConfigError(sentinel error, typeName, member string) error {
	return &ConfigError{
		Err:    sentinel,
		Type:   typeName,
		Member: member,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
