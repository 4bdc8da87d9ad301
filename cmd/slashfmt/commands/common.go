// Package commands provides CLI command handlers for slashfmt.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/slashfmt/internal/cliutil"
	"github.com/erraggy/slashfmt/internal/config"
	"github.com/erraggy/slashfmt/internal/pathutil"
	"github.com/erraggy/slashfmt/slash"
)

// Output format constants
const (
	FormatText = config.OutputText
	FormatJSON = config.OutputJSON
	FormatYAML = config.OutputYAML
)

// StdinFilePath is the special argument used to indicate reading from stdin.
const StdinFilePath = "-"

// Standard streams; tests replace them.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// loadConfig reads CLI defaults; tests replace it.
var loadConfig = config.Load

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	bytes, err := marshalStructured(data, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(bytes))
	return err
}

func marshalStructured(data any, format string) ([]byte, error) {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return bytes, nil
}

// writeResult renders data (structured formats) or text (text format) to
// stdout, or to outputPath when it is set.
func writeResult(outputPath, format string, data any, text string) error {
	if outputPath == "" {
		if format != FormatText {
			return OutputStructured(data, format)
		}
		cliutil.Writef(stdout, "%s", text)
		return nil
	}

	content := []byte(text)
	if format != FormatText {
		b, err := marshalStructured(data, format)
		if err != nil {
			return err
		}
		content = append(b, '\n')
	}
	if err := pathutil.WriteFile(outputPath, content); err != nil {
		return err
	}
	slog.Debug("wrote output", "path", outputPath, "bytes", len(content))
	return nil
}

// newFormatter builds a formatter for p, applying strict validation if requested.
func newFormatter(p string, strict bool) (slash.Formatter, error) {
	if strict {
		return slash.NewStrict(p)
	}
	return slash.New(p)
}
