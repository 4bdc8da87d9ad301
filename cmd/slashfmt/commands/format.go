package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/erraggy/slashfmt/internal/batch"
	"github.com/erraggy/slashfmt/internal/cliutil"
	"github.com/erraggy/slashfmt/internal/options"
)

// FormatFlags contains flags for the format command
type FormatFlags struct {
	Pattern string
	Strict  bool
	Format  string
	Lines   bool
	None    bool
	Jobs    int
	Output  string
}

// formatOutput is the structured output of the format command.
type formatOutput struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Result  string `json:"result"  yaml:"result"`
}

// formatLinesOutput is the structured output of format -lines.
type formatLinesOutput struct {
	Pattern string   `json:"pattern" yaml:"pattern"`
	Results []string `json:"results" yaml:"results"`
}

// SetupFormatFlags creates and configures a FlagSet for the format command.
// Returns the FlagSet and a FormatFlags struct with bound flag variables.
func SetupFormatFlags() (*flag.FlagSet, *FormatFlags) {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	flags := &FormatFlags{}

	fs.StringVar(&flags.Pattern, "p", "", "flag pattern (default from config file)")
	fs.StringVar(&flags.Pattern, "pattern", "", "flag pattern (default from config file)")
	fs.BoolVar(&flags.Strict, "strict", false, "reject repeated flags and negated collapse")
	fs.StringVar(&flags.Format, "format", "", "output format: text, json, or yaml (default from config file, else text)")
	fs.BoolVar(&flags.Lines, "lines", false, "with '-', format each stdin line separately instead of joining them")
	fs.BoolVar(&flags.None, "none", false, "format zero fragments")
	fs.IntVar(&flags.Jobs, "j", 0, "concurrent workers for -lines (default GOMAXPROCS)")
	fs.StringVar(&flags.Output, "o", "", "write result to file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write result to file instead of stdout")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: slashfmt format [flags] <fragment...|->\n\n")
		cliutil.Writef(output, "Join fragments and normalize separators according to a flag pattern.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nPattern flags (prefix with ! to negate, later flags win):\n")
		cliutil.Writef(output, "  t    add (!t: remove) trailing separator\n")
		cliutil.Writef(output, "  l    add (!l: remove) leading separator\n")
		cliutil.Writef(output, "  f    force forward (!f: backward) separators\n")
		cliutil.Writef(output, "  c    collapse repeated separators\n")
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  slashfmt format -p tfc api '//v1\\' users\n")
		cliutil.Writef(output, "  slashfmt format -p '!f' http://example.com path\n")
		cliutil.Writef(output, "  find . -type d | slashfmt format -p 'fc!l' -lines -\n")
		cliutil.Writef(output, "  slashfmt format -p tl -none\n")
		cliutil.Writef(output, "  slashfmt format -p fc -format json -o out.json a b\n")
		cliutil.Writef(output, "\nInput:\n")
		cliutil.Writef(output, "  Give fragments as arguments, '-' to read one fragment per stdin line,\n")
		cliutil.Writef(output, "  or -none for an empty fragment list. Exactly one input source is allowed.\n")
	}

	return fs, flags
}

// HandleFormat executes the format command
func HandleFormat(args []string) error {
	fs, flags := SetupFormatFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !isFlagSet(fs, "p") && !isFlagSet(fs, "pattern") {
		flags.Pattern = cfg.Pattern
	}
	if flags.Format == "" {
		flags.Format = cfg.Output
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	fromStdin := fs.NArg() == 1 && fs.Arg(0) == StdinFilePath
	fromArgs := fs.NArg() > 0 && !fromStdin
	if err := options.ValidateSingleInputSource(
		"format requires fragments, '-' for stdin, or -none",
		"use only one of: fragments, '-', -none",
		fromArgs, fromStdin, flags.None,
	); err != nil {
		fs.Usage()
		return err
	}
	if flags.Lines && !fromStdin {
		return fmt.Errorf("-lines requires reading from stdin ('-')")
	}

	f, err := newFormatter(flags.Pattern, flags.Strict || cfg.Strict)
	if err != nil {
		return err
	}
	slog.Debug("formatting", "pattern", f.Pattern(), "stdin", fromStdin, "lines", flags.Lines)

	var fragments []string
	switch {
	case fromArgs:
		fragments = fs.Args()
	case fromStdin:
		fragments, err = cliutil.ReadLines(stdin)
		if err != nil {
			return err
		}
	}

	if flags.Lines {
		results, err := batch.FormatAll(context.Background(), f, batch.Lines(fragments), flags.Jobs)
		if err != nil {
			return fmt.Errorf("formatting lines: %w", err)
		}
		if results == nil {
			results = []string{}
		}
		var text strings.Builder
		cliutil.WriteLines(&text, results)
		return writeResult(flags.Output, flags.Format, formatLinesOutput{Pattern: f.Pattern(), Results: results}, text.String())
	}

	result := f.Format(fragments...)
	return writeResult(flags.Output, flags.Format, formatOutput{Pattern: f.Pattern(), Result: result}, result+"\n")
}

// isFlagSet reports whether name was given explicitly on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
