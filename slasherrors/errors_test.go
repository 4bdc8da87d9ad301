package slasherrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPatternError(t *testing.T) {
	t.Run("Unknown flag message", func(t *testing.T) {
		err := &PatternError{Pattern: "tx", Position: 1, Char: "x", Reason: ReasonUnknownFlag}
		want := `invalid pattern "tx" at position 1: character "x" is not a valid flag (allowed: t l f c, optionally prefixed with "!")`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Duplicate flag message", func(t *testing.T) {
		err := &PatternError{Pattern: "t!t", Position: 1, Char: "t", Reason: ReasonDuplicateFlag}
		want := `invalid pattern "t!t" at position 1: flag "t" is used more than once or both negated and non-negated`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Invalid negation message", func(t *testing.T) {
		err := &PatternError{Pattern: "!c", Position: 0, Char: "c", Reason: ReasonInvalidNegation}
		if err.Detail() != `flag "c" cannot be negated` {
			t.Errorf("unexpected detail: %s", err.Detail())
		}
	})

	t.Run("errors.Is matches kind and reason", func(t *testing.T) {
		tests := []struct {
			reason Reason
			match  error
			other  []error
		}{
			{ReasonUnknownFlag, ErrUnknownFlag, []error{ErrDuplicateFlag, ErrInvalidNegation}},
			{ReasonDuplicateFlag, ErrDuplicateFlag, []error{ErrUnknownFlag, ErrInvalidNegation}},
			{ReasonInvalidNegation, ErrInvalidNegation, []error{ErrUnknownFlag, ErrDuplicateFlag}},
		}
		for _, tt := range tests {
			var err error = &PatternError{Reason: tt.reason}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("%s: errors.Is should match ErrInvalidPattern", tt.reason)
			}
			if !errors.Is(err, tt.match) {
				t.Errorf("%s: errors.Is should match %v", tt.reason, tt.match)
			}
			for _, o := range tt.other {
				if errors.Is(err, o) {
					t.Errorf("%s: errors.Is should not match %v", tt.reason, o)
				}
			}
			if errors.Is(err, ErrConfig) {
				t.Errorf("%s: errors.Is should not match ErrConfig", tt.reason)
			}
		}
	})

	t.Run("errors.As through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading formatter: %w", &PatternError{Pattern: "q", Char: "q"})
		var perr *PatternError
		if !errors.As(wrapped, &perr) {
			t.Fatal("errors.As should succeed")
		}
		if perr.Char != "q" {
			t.Errorf("expected Char q, got %s", perr.Char)
		}
		if !errors.Is(wrapped, ErrUnknownFlag) {
			t.Error("empty reason should count as unknown flag")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{Option: "output", Value: "xml", Message: "unsupported format", Cause: cause}
		if err.Error() != "configuration error for output (value: xml): unsupported format: underlying" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("errors.Is matches ErrConfig only", func(t *testing.T) {
		var err error = &ConfigError{Option: "pattern"}
		if !errors.Is(err, ErrConfig) {
			t.Error("errors.Is should match ErrConfig")
		}
		if errors.Is(err, ErrInvalidPattern) {
			t.Error("errors.Is should not match ErrInvalidPattern")
		}
	})
}
