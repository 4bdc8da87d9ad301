package slasherrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidPattern indicates a flag pattern was rejected.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownFlag indicates a character outside the flag alphabet.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrDuplicateFlag indicates a flag repeated under strict validation.
	ErrDuplicateFlag = errors.New("duplicate flag")

	// ErrInvalidNegation indicates a negated flag that strict validation forbids.
	ErrInvalidNegation = errors.New("invalid negation")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// Reason identifies why a pattern was rejected.
type Reason string

const (
	// ReasonUnknownFlag is reported by both the lenient and strict parsers.
	ReasonUnknownFlag Reason = "unknown-flag"
	// ReasonDuplicateFlag is reported only by strict validation.
	ReasonDuplicateFlag Reason = "duplicate-flag"
	// ReasonInvalidNegation is reported only by strict validation.
	ReasonInvalidNegation Reason = "invalid-negation"
)

// PatternError represents a rejected flag pattern.
type PatternError struct {
	// Pattern is the full pattern that was being parsed
	Pattern string
	// Position is the zero-based rune offset of the offending token
	Position int
	// Char is the offending token, e.g. "x", "!x" or "t"
	Char string
	// Reason classifies the failure
	Reason Reason
}

// Error returns a human-readable error message.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q at position %d: %s", e.Pattern, e.Position, e.Detail())
}

// Detail returns the reason-specific part of the message without pattern context.
func (e *PatternError) Detail() string {
	switch e.Reason {
	case ReasonDuplicateFlag:
		return fmt.Sprintf("flag %q is used more than once or both negated and non-negated", e.Char)
	case ReasonInvalidNegation:
		return fmt.Sprintf("flag %q cannot be negated", e.Char)
	default:
		return fmt.Sprintf("character %q is not a valid flag (allowed: t l f c, optionally prefixed with \"!\")", e.Char)
	}
}

// Is reports whether target matches this error type.
// Matches ErrInvalidPattern, and also the sentinel for e.Reason.
func (e *PatternError) Is(target error) bool {
	switch target {
	case ErrInvalidPattern:
		return true
	case ErrUnknownFlag:
		return e.Reason == ReasonUnknownFlag || e.Reason == ""
	case ErrDuplicateFlag:
		return e.Reason == ReasonDuplicateFlag
	case ErrInvalidNegation:
		return e.Reason == ReasonInvalidNegation
	}
	return false
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
