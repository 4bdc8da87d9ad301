// Package pattern parses slash flag patterns into immutable flag configurations.
//
// A pattern is a compact string of single-letter flags, each optionally
// prefixed with "!" to negate it:
//
//   - t | !t: ensure a trailing separator is added | removed
//   - l | !l: ensure a leading separator is added | removed
//   - f | !f: force forward | backward separators
//   - c | !c: collapse repeated separators | leave them alone
//
// Flags are evaluated left to right and later occurrences override earlier
// ones, so "c!c" disables collapsing. Flags that never appear stay [Unset],
// which the formatter treats as "preserve whatever is already there".
//
// # Parsing
//
//	cfg, err := pattern.Parse("tl!f")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(cfg.State(pattern.Trailing)) // on
//	fmt.Println(cfg.State(pattern.Force))    // off
//	fmt.Println(cfg.State(pattern.Collapse)) // unset
//
// # Strict Validation
//
// [Parse] accepts repeated flags and "!c". Callers that want early, stronger
// checking can use [ValidateStrict] or [ParseStrict], which additionally
// reject repeated flags and negated collapse. Strict mode is an input gate
// only; it never changes what [Parse] returns for a pattern it accepts.
//
// # Merging
//
// [Config] values are immutable. [Merge] builds a new Config where the
// explicit flags of the second argument win and unset flags fall back to the
// first. This is what reusable formatters use to derive extended formatters
// without affecting the base.
package pattern
