package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/slashfmt/internal/cliutil"
	"github.com/erraggy/slashfmt/internal/mcpserver"
)

// runMCPServer starts the server; tests replace it.
var runMCPServer = mcpserver.Run

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: slashfmt mcp\n\n")
		cliutil.Writef(output, "Serve slashfmt tools over the Model Context Protocol on stdio.\n\n")
		cliutil.Writef(output, "Environment:\n")
		cliutil.Writef(output, "  SLASHFMT_STRICT          strict pattern validation by default (false)\n")
		cliutil.Writef(output, "  SLASHFMT_BATCH_LIMIT     concurrent workers for format_batch (8)\n")
		cliutil.Writef(output, "  SLASHFMT_MAX_FRAGMENTS   cap on fragments per call (1024)\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Debug("starting MCP server on stdio")
	if err := runMCPServer(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
