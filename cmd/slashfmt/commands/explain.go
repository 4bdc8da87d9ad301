package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/slashfmt/internal/cliutil"
	"github.com/erraggy/slashfmt/pattern"
	"github.com/erraggy/slashfmt/slash"
)

// ExplainFlags contains flags for the explain command
type ExplainFlags struct {
	Strict bool
	Format string
}

type explainFlag struct {
	Flag  string `json:"flag"  yaml:"flag"`
	Name  string `json:"name"  yaml:"name"`
	State string `json:"state" yaml:"state"`
}

type explainOutput struct {
	Pattern   string        `json:"pattern"   yaml:"pattern"`
	Canonical string        `json:"canonical" yaml:"canonical"`
	Separator string        `json:"separator" yaml:"separator"`
	Flags     []explainFlag `json:"flags"     yaml:"flags"`
}

// SetupExplainFlags creates and configures a FlagSet for the explain command.
func SetupExplainFlags() (*flag.FlagSet, *ExplainFlags) {
	fs := flag.NewFlagSet("explain", flag.ContinueOnError)
	flags := &ExplainFlags{}

	fs.BoolVar(&flags.Strict, "strict", false, "reject repeated flags and negated collapse")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: slashfmt explain [flags] <pattern>\n\n")
		cliutil.Writef(output, "Show how a flag pattern resolves after overrides.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  slashfmt explain 't!tl'\n")
		cliutil.Writef(output, "  slashfmt explain -format json tlfc\n")
	}

	return fs, flags
}

// HandleExplain executes the explain command
func HandleExplain(args []string) error {
	fs, flags := SetupExplainFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("explain command requires exactly one pattern")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p := fs.Arg(0)
	f, err := newFormatter(p, flags.Strict)
	if err != nil {
		return err
	}

	out := buildExplainOutput(p, f.Config())
	if flags.Format != FormatText {
		return OutputStructured(out, flags.Format)
	}
	return writeExplainText(out)
}

func buildExplainOutput(p string, c pattern.Config) explainOutput {
	out := explainOutput{
		Pattern:   p,
		Canonical: c.String(),
		Separator: string(slash.Separator(c)),
	}
	for _, f := range pattern.AllFlags() {
		out.Flags = append(out.Flags, explainFlag{
			Flag:  f.String(),
			Name:  f.Name(),
			State: c.State(f).String(),
		})
	}
	return out
}

func writeExplainText(out explainOutput) error {
	title := cases.Title(language.English)

	cliutil.Writef(stdout, "Pattern:   %s\n", out.Pattern)
	cliutil.Writef(stdout, "Canonical: %s\n", out.Canonical)
	cliutil.Writef(stdout, "Separator: %s\n\n", out.Separator)

	rows := make([][]string, 0, len(out.Flags))
	for _, f := range out.Flags {
		rows = append(rows, []string{f.Flag, title.String(f.Name), title.String(f.State)})
	}
	renderTable(stdout, []string{"Flag", "Name", "State"}, rows)
	return nil
}

// renderTable writes a fixed-width table with headers. The last column is
// not padded.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			switch {
			case i == len(cells)-1:
				cliutil.Writef(w, "%s", cell)
			default:
				cliutil.Writef(w, "%-*s  ", widths[i], cell)
			}
		}
		cliutil.Writef(w, "\n")
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
}
