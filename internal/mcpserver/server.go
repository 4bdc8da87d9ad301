// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes slashfmt formatting as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/slashfmt"
	"github.com/erraggy/slashfmt/pattern"
	"github.com/erraggy/slashfmt/slash"
	"github.com/erraggy/slashfmt/slasherrors"
)

const serverInstructions = `slashfmt MCP server — joins path fragments and normalizes slashes with a flag pattern.

Pattern flags (optionally prefixed with "!" to negate; later flags win):
- t / !t — add / remove the trailing separator
- l / !l — add / remove the leading separator
- f / !f — force forward / backward separators
- c — collapse repeated separators

Protocol prefixes such as "https://" or "mailto:" are never modified.

Configuration via SLASHFMT_* environment variables:
- SLASHFMT_STRICT (default: false) — reject repeated flags and "!c" by default
- SLASHFMT_BATCH_LIMIT (default: 8) — concurrent workers for format_batch
- SLASHFMT_MAX_FRAGMENTS (default: 1024) — cap on fragments per call and inputs per batch`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "slashfmt", Version: slashfmt.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "format",
		Description: "Join path fragments with a flag pattern and return the formatted string. Example: pattern \"tfc\" with fragments [\"api\", \"//v1\\\\\", \"users\"] returns \"api/v1/users/\". An empty pattern only joins with \"/\".",
	}, handleFormat)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "explain",
		Description: "Resolve a flag pattern and report the state (on, off, unset) of each flag, the canonical pattern, and the separator it joins with. Useful to check what a pattern with overrides like \"t!t\" actually does.",
	}, handleExplain)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Validate a flag pattern without formatting anything. With strict=true, repeated flags and a negated c are rejected too. Returns the rejection reason and position when invalid.",
	}, handleCheck)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_batch",
		Description: "Format many fragment lists with the same pattern in one call. Results are returned in input order. The worker count is configurable via SLASHFMT_BATCH_LIMIT.",
	}, handleFormatBatch)
}

// newFormatter builds a formatter honoring the per-call and configured strictness.
func newFormatter(p string, strict bool) (slash.Formatter, error) {
	if strict || cfg.Strict {
		return slash.NewStrict(p)
	}
	return slash.New(p)
}

// checkCount rejects inputs above the configured fragment cap.
func checkCount(option string, n int) error {
	if n > cfg.MaxFragments {
		return &slasherrors.ConfigError{
			Option:  option,
			Value:   n,
			Message: fmt.Sprintf("at most %d allowed (SLASHFMT_MAX_FRAGMENTS)", cfg.MaxFragments),
		}
	}
	return nil
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// flagStates lists every flag with its state in canonical order.
func flagStates(c pattern.Config) []flagState {
	states := make([]flagState, 0, len(pattern.AllFlags()))
	for _, f := range pattern.AllFlags() {
		states = append(states, flagState{
			Flag:  f.String(),
			Name:  f.Name(),
			State: c.State(f).String(),
		})
	}
	return states
}
