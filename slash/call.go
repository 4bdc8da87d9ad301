package slash

// Input is the argument list of a formatter call: either plain fragments,
// or a pattern followed by optional fragments. Build one with Fragments or
// WithPattern.
type Input struct {
	pattern    string
	hasPattern bool
	fragments  []string
}

// Fragments builds a fragment-only Input.
func Fragments(fragments ...string) Input {
	return Input{fragments: fragments}
}

// WithPattern builds a pattern-led Input.
func WithPattern(p string, fragments ...string) Input {
	return Input{pattern: p, hasPattern: true, fragments: fragments}
}

// HasPattern reports whether the input starts with a pattern.
func (in Input) HasPattern() bool {
	return in.hasPattern
}

// ResultKind says which field of a Result is populated.
type ResultKind int

const (
	// ResultString means Result.Text holds the formatted string.
	ResultString ResultKind = iota
	// ResultFormatter means Result.Formatter holds a derived formatter.
	ResultFormatter
)

// Result is the outcome of Formatter.Call.
type Result struct {
	Kind      ResultKind
	Text      string
	Formatter Formatter
}

// String returns the formatted text, or the derived formatter's pattern.
func (r Result) String() string {
	if r.Kind == ResultFormatter {
		return r.Formatter.Pattern()
	}
	return r.Text
}

// Call dispatches in:
//   - fragments only: format with f
//   - pattern and fragments: format with f extended by the pattern
//   - pattern only: return f extended by the pattern
//
// Only a malformed pattern produces an error.
func (f Formatter) Call(in Input) (Result, error) {
	if !in.hasPattern {
		return Result{Kind: ResultString, Text: f.Format(in.fragments...)}, nil
	}
	ext, err := f.Extend(in.pattern)
	if err != nil {
		return Result{}, err
	}
	if len(in.fragments) == 0 {
		return Result{Kind: ResultFormatter, Formatter: ext}, nil
	}
	return Result{Kind: ResultString, Text: ext.Format(in.fragments...)}, nil
}
