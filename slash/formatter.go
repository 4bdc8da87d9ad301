package slash

import (
	"fmt"

	"github.com/erraggy/slashfmt/pattern"
)

// Formatter applies a fixed flag configuration to fragments.
//
// Formatter is a small value type; copies share nothing mutable, so a single
// Formatter may be used from many goroutines. The zero Formatter joins with
// "/" and changes nothing else.
type Formatter struct {
	cfg pattern.Config
}

// New parses pattern and returns a Formatter for it.
func New(p string) (Formatter, error) {
	cfg, err := pattern.Parse(p)
	if err != nil {
		return Formatter{}, err
	}
	return Formatter{cfg: cfg}, nil
}

// NewStrict is like New but validates p with pattern.ValidateStrict first.
func NewStrict(p string) (Formatter, error) {
	cfg, err := pattern.ParseStrict(p)
	if err != nil {
		return Formatter{}, err
	}
	return Formatter{cfg: cfg}, nil
}

// MustNew is like New but panics on an invalid pattern.
func MustNew(p string) Formatter {
	f, err := New(p)
	if err != nil {
		panic(fmt.Sprintf("slash: MustNew(%q): %v", p, err))
	}
	return f
}

// FromConfig wraps an already resolved configuration.
func FromConfig(cfg pattern.Config) Formatter {
	return Formatter{cfg: cfg}
}

// Config returns the formatter's configuration.
func (f Formatter) Config() pattern.Config {
	return f.cfg
}

// Pattern returns the canonical pattern of the formatter's configuration.
func (f Formatter) Pattern() string {
	return f.cfg.String()
}

// Format applies the formatter to fragments.
func (f Formatter) Format(fragments ...string) string {
	return Apply(f.cfg, fragments...)
}

// Extend returns a new Formatter whose configuration is f's overridden by
// the flags in p. f itself is unchanged.
func (f Formatter) Extend(p string) (Formatter, error) {
	next, err := pattern.Parse(p)
	if err != nil {
		return Formatter{}, err
	}
	return Formatter{cfg: pattern.Merge(f.cfg, next)}, nil
}

// FormatWith extends f with p and formats fragments in one step.
func (f Formatter) FormatWith(p string, fragments ...string) (string, error) {
	ext, err := f.Extend(p)
	if err != nil {
		return "", err
	}
	return ext.Format(fragments...), nil
}
