package pattern

import "strings"

// Config is a resolved, immutable flag configuration.
//
// The zero value has every flag Unset. Config is comparable with ==.
type Config struct {
	states [numFlags]State
}

// State returns the state of f. Unknown flags report Unset.
func (c Config) State(f Flag) State {
	i := f.index()
	if i < 0 {
		return Unset
	}
	return c.states[i]
}

// IsEmpty reports whether no flag is set.
func (c Config) IsEmpty() bool {
	return c == Config{}
}

// Flags returns the explicitly set flags. The map is a copy.
func (c Config) Flags() map[Flag]State {
	flags := make(map[Flag]State, numFlags)
	for _, f := range AllFlags() {
		if s := c.State(f); s.IsSet() {
			flags[f] = s
		}
	}
	return flags
}

// With returns a copy of c with f set to s. c is unchanged.
func (c Config) With(f Flag, s State) Config {
	if i := f.index(); i >= 0 {
		c.states[i] = s
	}
	return c
}

// Merge returns base overridden by the explicit flags of next.
func Merge(base, next Config) Config {
	merged := base
	for i, s := range next.states {
		if s.IsSet() {
			merged.states[i] = s
		}
	}
	return merged
}

// Merge is shorthand for Merge(c, next).
func (c Config) Merge(next Config) Config {
	return Merge(c, next)
}

// String renders the canonical pattern for c, in t l f c order.
// The result parses back to an equal Config.
func (c Config) String() string {
	var b strings.Builder
	for _, f := range AllFlags() {
		switch c.State(f) {
		case On:
			b.WriteByte(byte(f))
		case Off:
			b.WriteByte(Negation)
			b.WriteByte(byte(f))
		}
	}
	return b.String()
}
