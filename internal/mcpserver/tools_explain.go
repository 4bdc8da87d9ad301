package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/slashfmt/slash"
)

type explainInput struct {
	Pattern string `json:"pattern"          jsonschema:"Flag pattern to resolve"`
	Strict  bool   `json:"strict,omitempty" jsonschema:"Reject repeated flags and !c"`
}

type flagState struct {
	Flag  string `json:"flag"`
	Name  string `json:"name"`
	State string `json:"state"`
}

type explainOutput struct {
	Canonical string      `json:"canonical"`
	Separator string      `json:"separator"`
	Flags     []flagState `json:"flags"`
}

func handleExplain(_ context.Context, _ *mcp.CallToolRequest, input explainInput) (*mcp.CallToolResult, explainOutput, error) {
	f, err := newFormatter(input.Pattern, input.Strict)
	if err != nil {
		return errResult(err), explainOutput{}, nil
	}
	c := f.Config()
	return nil, explainOutput{
		Canonical: c.String(),
		Separator: string(slash.Separator(c)),
		Flags:     flagStates(c),
	}, nil
}
