package commands

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/slashfmt/internal/config"
	"github.com/erraggy/slashfmt/slasherrors"
)

func TestSetupFormatFlags(t *testing.T) {
	fs, flags := SetupFormatFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "", flags.Pattern)
		assert.False(t, flags.Strict)
		assert.Equal(t, "", flags.Format)
		assert.False(t, flags.Lines)
		assert.False(t, flags.None)
		assert.Equal(t, 0, flags.Jobs)
		assert.Equal(t, "", flags.Output)
	})

	t.Run("all flags registered", func(t *testing.T) {
		for _, name := range []string{"p", "pattern", "strict", "format", "lines", "none", "j", "o", "output"} {
			assert.NotNil(t, fs.Lookup(name), "flag %q should be registered", name)
		}
	})
}

func TestHandleFormat(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		cfg   *config.Config
		want  string
	}{
		{
			name: "fragments from args",
			args: []string{"-p", "tfc", "api", `//v1\`, "users"},
			want: "api/v1/users/\n",
		},
		{
			name: "long pattern flag",
			args: []string{"-pattern", "!f", "a", "b"},
			want: "a\\b\n",
		},
		{
			name: "protocol preserved",
			args: []string{"-p", "l", "file://path/to/file"},
			want: "file:///path/to/file\n",
		},
		{
			name:  "fragments from stdin",
			args:  []string{"-p", "fc", "-"},
			stdin: "a/\r\n/b\n",
			want:  "a/b\n",
		},
		{
			name:  "each stdin line formatted",
			args:  []string{"-p", "!t", "-lines", "-j", "2", "-"},
			stdin: "a/\nb//\nc\n",
			want:  "a\nb\nc\n",
		},
		{
			name: "no fragments",
			args: []string{"-p", "tl", "-none"},
			want: "/\n",
		},
		{
			name: "pattern from config",
			args: []string{"a"},
			cfg:  &config.Config{Pattern: "t", Output: config.OutputText},
			want: "a/\n",
		},
		{
			name: "explicit empty pattern overrides config",
			args: []string{"-p", "", "a"},
			cfg:  &config.Config{Pattern: "t", Output: config.OutputText},
			want: "a\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureIO(t, tt.stdin, tt.cfg)
			require.NoError(t, HandleFormat(tt.args))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestHandleFormat_Structured(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		buf := captureIO(t, "", nil)
		require.NoError(t, HandleFormat([]string{"-format", "json", "-p", "t", "a"}))
		assert.JSONEq(t, `{"pattern":"t","result":"a/"}`, buf.String())
	})

	t.Run("json keeps empty result", func(t *testing.T) {
		buf := captureIO(t, "", nil)
		require.NoError(t, HandleFormat([]string{"-format", "json", "-p", "!t!l", "-none"}))
		assert.JSONEq(t, `{"pattern":"!t!l","result":""}`, buf.String())
	})

	t.Run("yaml from config", func(t *testing.T) {
		buf := captureIO(t, "x\ny/\n", &config.Config{Output: config.OutputYAML})
		require.NoError(t, HandleFormat([]string{"-p", "t", "-lines", "-"}))

		var got formatLinesOutput
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "t", got.Pattern)
		assert.Equal(t, []string{"x/", "y/"}, got.Results)
	})

	t.Run("json lines", func(t *testing.T) {
		buf := captureIO(t, "a\n", nil)
		require.NoError(t, HandleFormat([]string{"-format", "json", "-p", "l", "-lines", "-"}))

		var got formatLinesOutput
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []string{"/a"}, got.Results)
	})
}

func TestHandleFormat_Errors(t *testing.T) {
	t.Run("unknown flag in pattern", func(t *testing.T) {
		captureIO(t, "", nil)
		err := HandleFormat([]string{"-p", "x", "a"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, slasherrors.ErrUnknownFlag))
	})

	t.Run("strict from flag", func(t *testing.T) {
		captureIO(t, "", nil)
		err := HandleFormat([]string{"-strict", "-p", "!c", "a"})
		assert.ErrorIs(t, err, slasherrors.ErrInvalidNegation)
	})

	t.Run("strict from config", func(t *testing.T) {
		captureIO(t, "", &config.Config{Strict: true, Output: config.OutputText})
		err := HandleFormat([]string{"-p", "tt", "a"})
		assert.ErrorIs(t, err, slasherrors.ErrDuplicateFlag)
	})

	t.Run("no input", func(t *testing.T) {
		captureIO(t, "", nil)
		err := HandleFormat([]string{"-p", "t"})
		assert.ErrorIs(t, err, slasherrors.ErrConfig)
	})

	t.Run("multiple inputs", func(t *testing.T) {
		captureIO(t, "", nil)
		err := HandleFormat([]string{"-none", "a"})
		assert.ErrorIs(t, err, slasherrors.ErrConfig)
	})

	t.Run("lines without stdin", func(t *testing.T) {
		captureIO(t, "", nil)
		assert.Error(t, HandleFormat([]string{"-lines", "a"}))
	})

	t.Run("invalid format", func(t *testing.T) {
		captureIO(t, "", nil)
		assert.Error(t, HandleFormat([]string{"-format", "xml", "a"}))
	})

	t.Run("config load failure", func(t *testing.T) {
		captureIO(t, "", nil)
		want := errors.New("boom")
		loadConfig = func() (*config.Config, error) { return nil, want }
		assert.ErrorIs(t, HandleFormat([]string{"a"}), want)
	})

	t.Run("help", func(t *testing.T) {
		buf := captureIO(t, "", nil)
		assert.NoError(t, HandleFormat([]string{"-h"}))
		assert.Empty(t, buf.String())
	})
}

func TestHandleFormat_OutputFile(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		buf := captureIO(t, "", nil)
		target := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, HandleFormat([]string{"-p", "fc", "-o", target, "a//", "b"}))
		assert.Empty(t, buf.String())

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "a/b\n", string(data))
	})

	t.Run("json lines", func(t *testing.T) {
		captureIO(t, "a\nb\n", nil)
		target := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, HandleFormat([]string{"-p", "t", "-format", "json", "-lines", "-output", target, "-"}))

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.JSONEq(t, `{"pattern":"t","results":["a/","b/"]}`, string(data))
	})

	t.Run("directory rejected", func(t *testing.T) {
		captureIO(t, "", nil)
		assert.Error(t, HandleFormat([]string{"-o", t.TempDir(), "a"}))
	})
}
