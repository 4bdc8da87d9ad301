package pattern

import "github.com/erraggy/slashfmt/slasherrors"

// token is one logical unit of a pattern: a flag, optionally negated.
type token struct {
	flag    Flag
	negated bool
	pos     int
}

func (t token) state() State {
	if t.negated {
		return Off
	}
	return On
}

// Parse resolves pattern into a Config.
//
// Every occurrence overwrites the previous state of its flag. Characters
// outside t l f c ! and a "!" not followed by a flag letter produce a
// *slasherrors.PatternError with reason ReasonUnknownFlag.
func Parse(pattern string) (Config, error) {
	var cfg Config
	err := scan(pattern, func(tok token) error {
		cfg.states[tok.flag.index()] = tok.state()
		return nil
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustParse is like Parse but panics on an invalid pattern.
// Intended for package-level variables with literal patterns.
func MustParse(pattern string) Config {
	cfg, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return cfg
}

// scan walks pattern left to right and calls yield once per token.
// Positions are rune offsets.
func scan(pattern string, yield func(token) error) error {
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		pos := i
		r := runes[i]
		negated := r == Negation
		if negated {
			if i+1 >= len(runes) {
				return unknownFlag(pattern, pos, string(Negation))
			}
			i++
			r = runes[i]
			if !IsValidFlag(r) {
				return unknownFlag(pattern, pos, string(Negation)+string(r))
			}
		} else if !IsValidFlag(r) {
			return unknownFlag(pattern, pos, string(r))
		}

		if err := yield(token{flag: Flag(r), negated: negated, pos: pos}); err != nil {
			return err
		}
	}
	return nil
}

func unknownFlag(pattern string, pos int, char string) error {
	return &slasherrors.PatternError{
		Pattern:  pattern,
		Position: pos,
		Char:     char,
		Reason:   slasherrors.ReasonUnknownFlag,
	}
}
