package pattern

import "github.com/erraggy/slashfmt/slasherrors"

// ValidateStrict checks pattern against the strict rules: every character
// must be a flag or a negation, no flag may appear more than once (negated
// or not), and collapse may not be negated.
//
// This is best-effort early validation for callers that want it. It does not
// alter the semantics of Parse.
func ValidateStrict(pattern string) error {
	var seen [numFlags]bool
	return scan(pattern, func(tok token) error {
		i := tok.flag.index()
		if seen[i] {
			return &slasherrors.PatternError{
				Pattern:  pattern,
				Position: tok.pos,
				Char:     tok.flag.String(),
				Reason:   slasherrors.ReasonDuplicateFlag,
			}
		}
		seen[i] = true
		if tok.negated && tok.flag == Collapse {
			return &slasherrors.PatternError{
				Pattern:  pattern,
				Position: tok.pos,
				Char:     tok.flag.String(),
				Reason:   slasherrors.ReasonInvalidNegation,
			}
		}
		return nil
	})
}

// ParseStrict validates pattern with ValidateStrict and then parses it.
func ParseStrict(pattern string) (Config, error) {
	if err := ValidateStrict(pattern); err != nil {
		return Config{}, err
	}
	return Parse(pattern)
}
