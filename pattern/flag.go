package pattern

// Flag is a single-letter formatting directive.
type Flag byte

const (
	// Trailing controls the trailing separator.
	Trailing Flag = 't'
	// Leading controls the leading separator.
	Leading Flag = 'l'
	// Force selects and enforces the separator character.
	Force Flag = 'f'
	// Collapse merges runs of the active separator.
	Collapse Flag = 'c'
)

// Negation is the marker that disables the flag it precedes.
const Negation = '!'

// numFlags is the size of the Config state array.
const numFlags = 4

// AllFlags returns every flag in canonical order.
func AllFlags() []Flag {
	return []Flag{Trailing, Leading, Force, Collapse}
}

// IsValidFlag reports whether r is one of t, l, f, c.
func IsValidFlag(r rune) bool {
	switch r {
	case rune(Trailing), rune(Leading), rune(Force), rune(Collapse):
		return true
	default:
		return false
	}
}

// String returns the flag letter.
func (f Flag) String() string {
	return string(rune(f))
}

// Name returns a descriptive lowercase name for the flag.
func (f Flag) Name() string {
	switch f {
	case Trailing:
		return "trailing"
	case Leading:
		return "leading"
	case Force:
		return "force"
	case Collapse:
		return "collapse"
	default:
		return "unknown"
	}
}

func (f Flag) index() int {
	switch f {
	case Trailing:
		return 0
	case Leading:
		return 1
	case Force:
		return 2
	case Collapse:
		return 3
	default:
		return -1
	}
}

// State is the tri-state value of a flag in a Config.
type State int8

const (
	// Unset means the flag was never mentioned.
	Unset State = iota
	// On means the flag was set without negation.
	On
	// Off means the flag was negated.
	Off
)

// String returns "unset", "on" or "off".
func (s State) String() string {
	switch s {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "unset"
	}
}

// IsSet reports whether the state is On or Off.
func (s State) IsSet() bool {
	return s == On || s == Off
}

// Bool returns the explicit boolean value and whether it is set.
func (s State) Bool() (value, ok bool) {
	return s == On, s.IsSet()
}
