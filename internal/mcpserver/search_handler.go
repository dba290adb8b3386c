package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/metrics"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/types"
)

var mcpTracer = otel.Tracer("oorlogsbronnen/mcpserver")

// SearchHandler wraps SearchToolAdapter for SDK compatibility
type SearchHandler struct {
	adapter *SearchToolAdapter
}

// NewSearchHandler creates a new SDK-compatible archive search handler
func NewSearchHandler(adapter *SearchToolAdapter) *SearchHandler {
	return &SearchHandler{
		adapter: adapter,
	}
}

// HandleSDKToolCall implements the SDK tool handler interface
func (sh *SearchHandler) HandleSDKToolCall(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Record MCP tool invocation for statistics
	metrics.RecordInvocation(metrics.ModeMCP)

	ctx, span := mcpTracer.Start(ctx, "mcpserver.archive_search")
	defer span.End()

	metricAttrs := make([]attribute.KeyValue, 0, 4)
	start := time.Now()
	errType := ""
	defer func() {
		recordMCPMetrics(ctx, metricAttrs, time.Since(start), errType)
	}()

	if req != nil && req.Params != nil && req.Params.Name != "" {
		span.SetAttributes(attribute.String("mcp.tool.name", req.Params.Name))
		metricAttrs = append(metricAttrs, attribute.String("mcp.tool.name", req.Params.Name))
	}

	// Convert SDK request parameters to the adapter's format
	params := make(map[string]interface{})
	if req != nil && req.Params != nil && req.Params.Arguments != nil {
		if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
			errType = "invalid_arguments"
			span.RecordError(err)
			span.SetStatus(codes.Error, "invalid_arguments")
			return nil, fmt.Errorf("failed to unmarshal tool arguments: %w", err)
		}
	}

	// Annotate span with request parameters
	if query, ok := params["query"].(string); ok && query != "" {
		span.SetAttributes(attribute.String("mcp.search.query", truncateForAttribute(query)))
	}
	if category, ok := params["type"].(string); ok && category != "" {
		span.SetAttributes(attribute.String("mcp.search.type", category))
		metricAttrs = append(metricAttrs, attribute.String("mcp.search.type", category))
	}

	result, err := sh.adapter.HandleToolCall(ctx, params)
	if err != nil {
		errType = "tool_call_failed"
		span.RecordError(err)
		span.SetStatus(codes.Error, "tool_call_failed")
		// The adapter's error result carries a sanitized message for the client.
		if result != nil {
			return convertResultToSDK(result), nil
		}
		return nil, err
	}

	if result != nil && result.IsError && errType == "" {
		errType = "tool_result_error"
	}
	span.SetStatus(codes.Ok, "archive_search_completed")

	return convertResultToSDK(result), nil
}

// GetSDKToolDefinition returns the SDK-compatible tool definition
func (sh *SearchHandler) GetSDKToolDefinition() *mcp.Tool {
	def := sh.adapter.GetToolDefinition()
	return &def
}

// GetAdapter returns the underlying SearchToolAdapter
func (sh *SearchHandler) GetAdapter() *SearchToolAdapter {
	return sh.adapter
}

// convertResultToSDK converts an internal tool result to SDK format
func convertResultToSDK(result *types.MCPToolCallResult) *mcp.CallToolResult {
	if result == nil {
		return &mcp.CallToolResult{}
	}

	var content []mcp.Content
	for _, c := range result.Content {
		content = append(content, &mcp.TextContent{
			Text: c.Text,
		})
	}

	return &mcp.CallToolResult{
		Content: content,
		IsError: result.IsError,
	}
}

// truncateForAttribute keeps span attribute values to a sane size
func truncateForAttribute(input string) string {
	const maxLen = 256
	if len(input) <= maxLen {
		return input
	}
	return input[:maxLen]
}
