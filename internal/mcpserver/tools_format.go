package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type formatInput struct {
	Pattern   string   `json:"pattern"            jsonschema:"Flag pattern, e.g. tfc or !t!l. Empty pattern only joins with /"`
	Fragments []string `json:"fragments"          jsonschema:"Ordered fragments to join"`
	Strict    bool     `json:"strict,omitempty"   jsonschema:"Reject repeated flags and !c"`
}

type formatOutput struct {
	Result  string `json:"result"`
	Pattern string `json:"pattern"`
}

func handleFormat(_ context.Context, _ *mcp.CallToolRequest, input formatInput) (*mcp.CallToolResult, formatOutput, error) {
	if err := checkCount("fragments", len(input.Fragments)); err != nil {
		return errResult(err), formatOutput{}, nil
	}
	f, err := newFormatter(input.Pattern, input.Strict)
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}
	return nil, formatOutput{
		Result:  f.Format(input.Fragments...),
		Pattern: f.Pattern(),
	}, nil
}
