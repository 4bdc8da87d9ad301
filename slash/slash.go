package slash

// Normalize forces forward separators and collapses repeats ("fc").
var Normalize = MustNew("fc")

// Format parses p and formats fragments with it.
func Format(p string, fragments ...string) (string, error) {
	f, err := New(p)
	if err != nil {
		return "", err
	}
	return f.Format(fragments...), nil
}

// MustFormat is like Format but panics on an invalid pattern.
func MustFormat(p string, fragments ...string) string {
	return MustNew(p).Format(fragments...)
}

// Join joins fragments with "/" and nothing else.
func Join(fragments ...string) string {
	return Formatter{}.Format(fragments...)
}
