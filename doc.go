// Package slashfmt joins path-like fragments and normalizes their separators
// with a compact flag pattern, leaving URI protocol prefixes untouched.
//
// slashfmt is a pure string library. It never touches the filesystem, never
// resolves paths and never interprets "." or ".." segments.
//
// # Overview
//
// The library consists of three packages:
//
//   - pattern: Parse flag patterns such as "tl!f" into immutable configurations
//   - slash: Format fragments with a configuration and build reusable formatters
//   - slasherrors: Structured errors for rejected patterns and bad options
//
// # Installation
//
//	go get github.com/erraggy/slashfmt
//
// # Quick Start
//
// Format once:
//
//	import "github.com/erraggy/slashfmt/slash"
//
//	s, err := slash.Format("tfc", "api", `//v1\`, "users")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(s) // api/v1/users/
//
// Reuse a formatter and extend it:
//
//	base := slash.MustNew("fc")
//	dir, err := base.Extend("t")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(dir.Format("a", "b"))  // a/b/
//	fmt.Println(base.Format("a", "b")) // a/b
//
// # Flags
//
//   - t | !t: add | remove the trailing separator
//   - l | !l: add | remove the leading separator
//   - f | !f: force forward | backward separators
//   - c: collapse repeated separators
//
// Later flags override earlier ones. Unset t and l leave the ends of the
// joined string as they are; unset f leaves existing separators as supplied.
//
// # Protocols
//
// A leading "scheme:" or "scheme://" (http://, file://, mailto:, ...) is cut
// off before any normalization and restored verbatim afterwards:
//
//	slash.MustFormat("l", "file://path/to/file") // file:///path/to/file
//
// # Error Handling
//
// Only pattern parsing can fail. Errors are *slasherrors.PatternError values
// that match slasherrors.ErrInvalidPattern and a reason-specific sentinel via
// errors.Is.
//
// # Command Line
//
// The slashfmt command exposes the library:
//
//	slashfmt format -p tfc api '//v1\' users
//	slashfmt explain 't!tl'
//	slashfmt check -strict 'tt'
//	slashfmt mcp
package slashfmt
