package mcpserver

import (
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/types"
)

// CreateToolCallResult creates a successful text tool call result
func CreateToolCallResult(content string) *types.MCPToolCallResult {
	return &types.MCPToolCallResult{
		Content: []types.MCPContent{
			{
				Type: "text",
				Text: content,
			},
		},
		IsError: false,
	}
}

// CreateToolCallErrorResult creates an error tool call result
func CreateToolCallErrorResult(errorMsg string) *types.MCPToolCallResult {
	return &types.MCPToolCallResult{
		Content: []types.MCPContent{
			{
				Type: "text",
				Text: errorMsg,
			},
		},
		IsError: true,
	}
}
