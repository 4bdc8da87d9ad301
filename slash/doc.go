// Package slash joins path-like fragments and normalizes their separators
// according to a flag pattern.
//
// # Quick Start
//
//	s, err := slash.Format("tfc", "api", "//v1\\", "users")
//	// s == "api/v1/users/"
//
// Patterns are parsed by the [pattern] package; see its documentation for the
// flag letters. Formatting itself never fails: once a pattern is parsed, any
// list of fragments, including none, yields a deterministic string.
//
// # Pipeline
//
// [Apply] runs these steps in order:
//
//  1. Pick the separator: "\" when f is negated, "/" otherwise.
//  2. Join the fragments with it.
//  3. Cut off a leading protocol such as "http://" or "mailto:".
//  4. If f is set, rewrite every separator to the forced one.
//  5. If c is on, collapse runs of the active separator.
//  6. Add (t) or strip (!t) the trailing separator.
//  7. Add (l) or strip (!l) the leading separator.
//  8. Put the protocol back in front.
//
// Unset t and l leave the ends exactly as the fragments produced them. The
// protocol is never touched by steps 4 through 7.
//
// # Reusable Formatters
//
// A [Formatter] wraps an immutable configuration:
//
//	normalize := slash.MustNew("fc")
//	normalize.Format(`my\long\\path`)          // "my/long/path"
//	withSlash, _ := normalize.Extend("t")
//	withSlash.Format("a", "b")                 // "a/b/"
//	normalize.Format("a", "b")                 // "a/b", unaffected
//
// [Normalize] is a ready-made "fc" formatter.
//
// # Dispatch
//
// [Formatter.Call] accepts an [Input] that is either plain fragments or a
// pattern with optional fragments, and returns a [Result] holding either the
// formatted string or a derived Formatter.
package slash
