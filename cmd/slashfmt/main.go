package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/slashfmt"
	"github.com/erraggy/slashfmt/cmd/slashfmt/commands"
)

// commandNames lists every top-level command for typo suggestions.
var commandNames = []string{"format", "explain", "check", "mcp", "version", "help"}

func main() {
	setupLogging()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("slashfmt v%s\n", slashfmt.Version())
		fmt.Printf("commit: %s\n", slashfmt.Commit())
		fmt.Printf("built: %s\n", slashfmt.BuildTime())
		fmt.Printf("go: %s\n", slashfmt.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "format":
		err = commands.HandleFormat(os.Args[2:])
	case "explain":
		err = commands.HandleExplain(os.Args[2:])
	case "check":
		err = commands.HandleCheck(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs a stderr text handler at the level named by
// SLASHFMT_LOG_LEVEL (debug, info, warn, error). The default is warn.
func setupLogging() {
	level := slog.LevelWarn
	if v := os.Getenv("SLASHFMT_LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level = slog.LevelWarn
			defer slog.Warn("invalid SLASHFMT_LOG_LEVEL, using default", "value", v, "default", "warn")
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" if nothing is close enough.
func suggestCommand(input string) string {
	input = strings.ToLower(input)
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`slashfmt - Path segment formatter

Usage:
  slashfmt <command> [flags] [args]

Commands:
  format     Join fragments and normalize separators
  explain    Show how a flag pattern resolves
  check      Validate a flag pattern
  mcp        Serve slashfmt tools over the Model Context Protocol (stdio)
  version    Show version information
  help       Show this help message

Pattern flags:
  t          trailing separator (!t removes)
  l          leading separator (!l removes)
  f          force forward slashes (!f forces backslashes)
  c          collapse repeated separators

Examples:
  slashfmt format -p tfc api v1 users
  slashfmt format -p '!t' http://example.com/ path/
  slashfmt explain 't!tl'
  slashfmt check -strict tt

Configuration:
  ~/.config/slashfmt/config.toml and ./.slashfmt.toml (keys: pattern, strict, output)
  SLASHFMT_LOG_LEVEL=debug|info|warn|error controls diagnostics on stderr

Run 'slashfmt <command> --help' for more information on a command.`)
}
