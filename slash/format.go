package slash

import (
	"regexp"
	"strings"

	"github.com/erraggy/slashfmt/pattern"
)

const (
	// Forward is the default separator.
	Forward = '/'
	// Backward is the separator selected by a negated f flag.
	Backward = '\\'
)

// protocolRegex matches a leading "scheme:" or "scheme://".
var protocolRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:(?://)?`)

// Separator returns the separator selected by cfg.
func Separator(cfg pattern.Config) byte {
	if cfg.State(pattern.Force) == pattern.Off {
		return Backward
	}
	return Forward
}

// SplitProtocol splits s into its protocol prefix (possibly empty) and the rest.
func SplitProtocol(s string) (protocol, rest string) {
	loc := protocolRegex.FindStringIndex(s)
	if loc == nil {
		return "", s
	}
	return s[:loc[1]], s[loc[1]:]
}

// Apply formats fragments under cfg.
func Apply(cfg pattern.Config, fragments ...string) string {
	sep := Separator(cfg)
	protocol, body := SplitProtocol(strings.Join(fragments, string(sep)))

	switch cfg.State(pattern.Force) {
	case pattern.On:
		body = strings.ReplaceAll(body, string(Backward), string(Forward))
	case pattern.Off:
		body = strings.ReplaceAll(body, string(Forward), string(Backward))
	}

	if cfg.State(pattern.Collapse) == pattern.On {
		body = collapse(body, sep)
	}

	switch cfg.State(pattern.Trailing) {
	case pattern.On:
		if !strings.HasSuffix(body, string(sep)) {
			body += string(sep)
		}
	case pattern.Off:
		body = strings.TrimRight(body, separators)
	}

	switch cfg.State(pattern.Leading) {
	case pattern.On:
		if !strings.HasPrefix(body, string(sep)) {
			body = string(sep) + body
		}
	case pattern.Off:
		body = strings.TrimLeft(body, separators)
	}

	return protocol + body
}

// separators is the cutset stripped by !t and !l; it covers both characters
// regardless of f.
const separators = `/\`

// collapse replaces every run of sep with a single sep.
func collapse(s string, sep byte) string {
	if !strings.Contains(s, string([]byte{sep, sep})) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == sep && i > 0 && s[i-1] == sep {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
