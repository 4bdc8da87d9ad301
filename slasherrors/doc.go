// Package slasherrors provides structured error types for the slashfmt library.
//
// Import path: github.com/erraggy/slashfmt/slasherrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish a malformed flag pattern from a bad option value
// and to find out exactly why a pattern was rejected.
//
// # Error Types
//
//   - [PatternError]: a flag pattern could not be parsed or failed strict validation
//   - [ConfigError]: invalid configuration or input options (CLI, MCP server)
//
// # Sentinel Errors
//
//   - [ErrInvalidPattern]: Matches any [PatternError]
//   - [ErrUnknownFlag]: Matches [PatternError] with Reason == ReasonUnknownFlag
//   - [ErrDuplicateFlag]: Matches [PatternError] with Reason == ReasonDuplicateFlag
//   - [ErrInvalidNegation]: Matches [PatternError] with Reason == ReasonInvalidNegation
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	cfg, err := pattern.Parse("tx")
//	if errors.Is(err, slasherrors.ErrUnknownFlag) {
//	    // the pattern contains a character outside t l f c !
//	}
//
//	var perr *slasherrors.PatternError
//	if errors.As(err, &perr) {
//	    fmt.Printf("bad %q at position %d\n", perr.Char, perr.Position)
//	}
//
// Formatting itself never fails; only pattern parsing and option handling
// produce errors.
package slasherrors
