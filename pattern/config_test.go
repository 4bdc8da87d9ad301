package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ZeroValue(t *testing.T) {
	var cfg Config
	assert.True(t, cfg.IsEmpty())
	for _, f := range AllFlags() {
		assert.Equal(t, Unset, cfg.State(f))
	}
	assert.Equal(t, "", cfg.String())
	assert.Empty(t, cfg.Flags())
}

func TestConfig_UnknownFlagState(t *testing.T) {
	cfg := MustParse("tlfc")
	assert.Equal(t, Unset, cfg.State(Flag('x')))
	assert.Equal(t, cfg, cfg.With(Flag('x'), On))
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		base string
		next string
		want string
	}{
		{name: "empty onto empty", base: "", next: "", want: ""},
		{name: "next adds flags", base: "f", next: "t", want: "tf"},
		{name: "next overrides", base: "tf", next: "!t", want: "!tf"},
		{name: "unset falls back", base: "!f!l", next: "c", want: "!l!fc"},
		{name: "empty next keeps base", base: "tlfc", next: "", want: "tlfc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(MustParse(tt.base), MustParse(tt.next))
			assert.Equal(t, MustParse(tt.want), got)
			assert.Equal(t, got, MustParse(tt.base).Merge(MustParse(tt.next)))
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := MustParse("f")
	next := MustParse("!f!t")
	_ = Merge(base, next)
	assert.Equal(t, MustParse("f"), base)
	assert.Equal(t, MustParse("!f!t"), next)
}

func TestConfig_With(t *testing.T) {
	base := MustParse("t")
	derived := base.With(Collapse, On)
	assert.Equal(t, MustParse("tc"), derived)
	assert.Equal(t, MustParse("t"), base)
}

func TestConfig_StringRoundTrip(t *testing.T) {
	for _, p := range []string{"", "t", "!t", "ctl", "c!c!ff", "!l!t!f!c", "lt"} {
		cfg := MustParse(p)
		again, err := Parse(cfg.String())
		assert.NoError(t, err)
		assert.Equal(t, cfg, again, "pattern %q rendered as %q", p, cfg.String())
	}
	assert.Equal(t, "tl!fc", MustParse("c!flt").String())
}

func TestConfig_FlagsIsCopy(t *testing.T) {
	cfg := MustParse("t")
	flags := cfg.Flags()
	flags[Leading] = On
	assert.Equal(t, Unset, cfg.State(Leading))
}

func TestStateAndFlagStrings(t *testing.T) {
	assert.Equal(t, "unset", Unset.String())
	assert.Equal(t, "on", On.String())
	assert.Equal(t, "off", Off.String())

	v, ok := Off.Bool()
	assert.False(t, v)
	assert.True(t, ok)
	_, ok = Unset.Bool()
	assert.False(t, ok)

	assert.Equal(t, "t", Trailing.String())
	assert.Equal(t, "collapse", Collapse.Name())
	assert.Equal(t, "unknown", Flag('z').Name())
	assert.True(t, IsValidFlag('l'))
	assert.False(t, IsValidFlag('!'))
	assert.False(t, IsValidFlag('ŧ'))
}
