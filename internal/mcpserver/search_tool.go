package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/archive"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/types"
)

// SearchToolAdapter adapts the archive search aggregator to the MCP tool
// interface
type SearchToolAdapter struct {
	aggregator    *archive.Aggregator
	defaultConfig *SearchToolConfig
	logger        *log.Logger
}

// SearchToolConfig contains configuration for the archive search tool
type SearchToolConfig struct {
	ToolName     string
	DefaultCount int
	MaxCount     int
}

// searchRequest holds validated tool call parameters
type searchRequest struct {
	Query    string
	Category string
	Count    int
}

// NewSearchToolAdapter creates a new archive search tool adapter
func NewSearchToolAdapter(aggregator *archive.Aggregator, config *SearchToolConfig) *SearchToolAdapter {
	if config == nil {
		config = &SearchToolConfig{}
	}
	if config.ToolName == "" {
		config.ToolName = "search_ww2_nl_archives"
	}
	if config.DefaultCount <= 0 {
		config.DefaultCount = 10
	}
	if config.MaxCount <= 0 {
		config.MaxCount = 100
	}

	return &SearchToolAdapter{
		aggregator:    aggregator,
		defaultConfig: config,
		logger:        log.New(log.Writer(), "[SearchTool] ", log.LstdFlags),
	}
}

// GetToolDefinition returns the MCP tool definition for the archive search
func (sta *SearchToolAdapter) GetToolDefinition() types.MCPToolDefinition {
	categoryNames := append(archive.CategoryNames(), "Book")

	// Define the input schema as a map first
	schemaMap := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type": "string",
				"description": "The main search term or phrase to look for in the archives. " +
					"Can include names (e.g., 'Anne Frank'), places (e.g., 'Rotterdam'), " +
					"dates (e.g., '1940-1945'), events (e.g., 'February Strike 1941'), " +
					"or any combination of these.",
			},
			"type": map[string]interface{}{
				"type": "string",
				"description": "Filter results by content type. When omitted, all content " +
					"types are searched and the result budget is distributed across them.",
				"enum": categoryNames,
			},
			"count": map[string]interface{}{
				"type":        "integer",
				"description": fmt.Sprintf("Number of results to return (1-%d, default: %d)", sta.defaultConfig.MaxCount, sta.defaultConfig.DefaultCount),
				"minimum":     1,
				"maximum":     sta.defaultConfig.MaxCount,
				"default":     sta.defaultConfig.DefaultCount,
			},
		},
		"required": []string{"query"},
	}

	// Convert map to *jsonschema.Schema
	var inputSchema *jsonschema.Schema
	schemaBytes, err := json.Marshal(schemaMap)
	if err == nil {
		inputSchema = &jsonschema.Schema{}
		_ = json.Unmarshal(schemaBytes, inputSchema)
	}

	return types.MCPToolDefinition{
		Name: sta.defaultConfig.ToolName,
		Description: "A powerful search tool for querying World War II archives in the " +
			"Netherlands. Use this tool to find historical documents, photographs, personal " +
			"accounts, and other materials from 1940-1945. Ideal for researching specific " +
			"events, people, places, or organizations during the war period.",
		InputSchema: inputSchema,
	}
}

// HandleToolCall executes the archive search tool
func (sta *SearchToolAdapter) HandleToolCall(ctx context.Context, params map[string]interface{}) (*types.MCPToolCallResult, error) {
	request, err := sta.parseParams(params)
	if err != nil {
		return CreateToolCallErrorResult(fmt.Sprintf("Invalid parameters: %v", err)), err
	}

	sta.logger.Printf("Executing archive search: query=%q type=%q count=%d",
		request.Query, request.Category, request.Count)

	start := time.Now()
	result, err := sta.aggregator.RunSearch(ctx, request.Query, request.Category, request.Count)
	if err != nil {
		errorMsg := fmt.Sprintf("Error performing search: %v", err)
		sta.logger.Printf("Search failed: %v", err)
		return CreateToolCallErrorResult(errorMsg), err
	}

	report := archive.FormatReport(request.Query, result, time.Since(start))
	responseJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to serialize response: %v", err)
		return CreateToolCallErrorResult(errorMsg), err
	}

	sta.logger.Printf("Search completed: query=%q total=%d returned=%d partial=%v",
		request.Query, result.TotalItems(), result.ReturnedItems(), result.PartialResults)

	return CreateToolCallResult(string(responseJSON)), nil
}

// parseParams extracts and validates parameters from an MCP tool call
func (sta *SearchToolAdapter) parseParams(params map[string]interface{}) (*searchRequest, error) {
	request := &searchRequest{
		Count: sta.defaultConfig.DefaultCount,
	}

	// Required query parameter
	if queryInterface, ok := params["query"]; ok {
		if query, ok := queryInterface.(string); ok {
			request.Query = query
		} else {
			return nil, fmt.Errorf("query must be a string")
		}
	} else {
		return nil, fmt.Errorf("query parameter is required")
	}

	// Optional parameters
	if typeInterface, ok := params["type"]; ok {
		if category, ok := typeInterface.(string); ok {
			request.Category = category
		} else {
			return nil, fmt.Errorf("type must be a string")
		}
	}

	if countInterface, ok := params["count"]; ok {
		if count, ok := countInterface.(float64); ok {
			request.Count = int(count)
		} else if countStr, ok := countInterface.(string); ok {
			if count, err := strconv.Atoi(countStr); err == nil {
				request.Count = count
			}
		}
	}

	// Validate parameters
	if request.Query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if request.Count < 1 || request.Count > sta.defaultConfig.MaxCount {
		return nil, fmt.Errorf("count must be between 1 and %d", sta.defaultConfig.MaxCount)
	}
	if request.Category != "" && !archive.IsValidCategory(request.Category) {
		return nil, fmt.Errorf("type must be one of the supported content types, got %q", request.Category)
	}

	return request, nil
}

// SetDefaultConfig updates the default configuration
func (sta *SearchToolAdapter) SetDefaultConfig(config *SearchToolConfig) {
	sta.defaultConfig = config
}

// GetDefaultConfig returns the current default configuration
func (sta *SearchToolAdapter) GetDefaultConfig() *SearchToolConfig {
	return sta.defaultConfig
}
