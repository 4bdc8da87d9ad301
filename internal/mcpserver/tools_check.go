package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/slashfmt/slasherrors"
)

type checkInput struct {
	Pattern string `json:"pattern"          jsonschema:"Flag pattern to validate"`
	Strict  bool   `json:"strict,omitempty" jsonschema:"Also reject repeated flags and !c"`
}

type checkOutput struct {
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// handleCheck reports an invalid pattern as a successful result with
// valid=false.
func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	_, err := newFormatter(input.Pattern, input.Strict)
	if err == nil {
		return nil, checkOutput{Valid: true}, nil
	}
	out := checkOutput{Error: err.Error()}
	var perr *slasherrors.PatternError
	if errors.As(err, &perr) {
		out.Reason = string(perr.Reason)
		out.Position = &perr.Position
	}
	return nil, out, nil
}
