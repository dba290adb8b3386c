package types

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MCPToolDefinition is an alias to the SDK Tool type
type MCPToolDefinition = mcp.Tool

// MCPToolCallResult represents the result of a tool call
type MCPToolCallResult struct {
	Content []MCPContent `json:"content"`
	IsError bool         `json:"isError,omitempty"`
}

// MCPContent is a single content block inside a tool call result
type MCPContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// MCPToolRequest is an alias to the SDK CallToolRequest type
type MCPToolRequest = mcp.CallToolRequest
