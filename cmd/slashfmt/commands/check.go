package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/slashfmt/internal/cliutil"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	Strict bool
	Quiet  bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.BoolVar(&flags.Strict, "strict", false, "also reject repeated flags and negated collapse")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: report only through the exit code")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: report only through the exit code")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: slashfmt check [flags] <pattern>\n\n")
		cliutil.Writef(output, "Validate a flag pattern.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    Pattern is valid\n")
		cliutil.Writef(output, "  1    Pattern is invalid\n")
	}

	return fs, flags
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("check command requires exactly one pattern")
	}

	f, err := newFormatter(fs.Arg(0), flags.Strict)
	if err != nil {
		return err
	}
	if !flags.Quiet {
		cliutil.Writef(stdout, "valid: %q resolves to %q\n", fs.Arg(0), f.Pattern())
	}
	return nil
}
