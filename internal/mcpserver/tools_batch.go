package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/slashfmt/internal/batch"
)

type formatBatchInput struct {
	Pattern string     `json:"pattern"          jsonschema:"Flag pattern applied to every input"`
	Inputs  [][]string `json:"inputs"           jsonschema:"List of fragment lists; each is formatted independently"`
	Strict  bool       `json:"strict,omitempty" jsonschema:"Reject repeated flags and !c"`
}

type formatBatchOutput struct {
	Pattern string   `json:"pattern"`
	Results []string `json:"results"`
}

func handleFormatBatch(ctx context.Context, _ *mcp.CallToolRequest, input formatBatchInput) (*mcp.CallToolResult, formatBatchOutput, error) {
	if err := checkCount("inputs", len(input.Inputs)); err != nil {
		return errResult(err), formatBatchOutput{}, nil
	}
	for _, fragments := range input.Inputs {
		if err := checkCount("fragments", len(fragments)); err != nil {
			return errResult(err), formatBatchOutput{}, nil
		}
	}

	f, err := newFormatter(input.Pattern, input.Strict)
	if err != nil {
		return errResult(err), formatBatchOutput{}, nil
	}

	results, err := batch.FormatAll(ctx, f, input.Inputs, cfg.BatchLimit)
	if err != nil {
		return errResult(err), formatBatchOutput{}, nil
	}
	if results == nil {
		results = []string{}
	}
	return nil, formatBatchOutput{Pattern: f.Pattern(), Results: results}, nil
}
