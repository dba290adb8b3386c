package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	env "github.com/netflix/go-env"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/types"
)

// Type alias for Config
type Config = types.Config

// Load loads configuration from a .env file (if present) and environment variables
func Load() (*Config, error) {
	// A missing .env file is not an error; environment variables take over.
	_ = godotenv.Load()

	var config Config

	_, err := env.UnmarshalFromEnviron(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values and adjusts them to safe ranges
func validateConfig(config *Config) error {
	if err := validateSpinqueConfig(config); err != nil {
		return fmt.Errorf("Spinque configuration validation failed: %w", err)
	}

	if err := validateSearchConfig(config); err != nil {
		return fmt.Errorf("search configuration validation failed: %w", err)
	}

	if err := validateMCPConfig(config); err != nil {
		return fmt.Errorf("MCP server configuration validation failed: %w", err)
	}

	return nil
}

// validateSpinqueConfig validates Spinque API client configuration
func validateSpinqueConfig(config *Config) error {
	if config.SpinqueBaseURL == "" {
		return fmt.Errorf("SPINQUE_BASE_URL cannot be empty")
	}

	parsedURL, err := url.Parse(config.SpinqueBaseURL)
	if err != nil {
		return fmt.Errorf("invalid SPINQUE_BASE_URL format: %w", err)
	}
	if !strings.HasPrefix(parsedURL.Scheme, "http") {
		return fmt.Errorf("SPINQUE_BASE_URL scheme must be http or https")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("SPINQUE_BASE_URL must include a valid host")
	}

	if config.SpinqueConfig == "" {
		return fmt.Errorf("SPINQUE_CONFIG cannot be empty")
	}

	if config.SpinqueRateLimit <= 0 {
		return fmt.Errorf("SPINQUE_RATE_LIMIT must be greater than 0")
	}
	if config.SpinqueRateLimit > 100 {
		return fmt.Errorf("SPINQUE_RATE_LIMIT cannot exceed 100 requests/second")
	}

	if config.SpinqueRateBurst <= 0 {
		return fmt.Errorf("SPINQUE_RATE_BURST must be greater than 0")
	}

	if config.SpinqueRequestTimeout <= 0 {
		return fmt.Errorf("SPINQUE_REQUEST_TIMEOUT must be greater than 0")
	}
	if config.SpinqueMaxIdleConns <= 0 {
		return fmt.Errorf("SPINQUE_MAX_IDLE_CONNS must be greater than 0")
	}
	if config.SpinqueIdleConnTimeout <= 0 {
		return fmt.Errorf("SPINQUE_IDLE_CONN_TIMEOUT must be greater than 0")
	}

	return nil
}

// validateSearchConfig validates search behavior configuration
func validateSearchConfig(config *Config) error {
	// Clamp counts to safe ranges rather than failing; these have sane defaults.
	if config.DefaultResultCount < 1 {
		config.DefaultResultCount = 1
	}
	if config.MaxResultCount < 1 {
		config.MaxResultCount = 1
	}
	if config.MaxResultCount > 100 {
		config.MaxResultCount = 100
	}
	if config.DefaultResultCount > config.MaxResultCount {
		config.DefaultResultCount = config.MaxResultCount
	}

	if config.PreviewSampleSize < 1 {
		config.PreviewSampleSize = 1
	}
	if config.PreviewSampleSize > 20 {
		config.PreviewSampleSize = 20
	}

	return nil
}

// validateMCPConfig validates MCP server-specific configuration
func validateMCPConfig(config *Config) error {
	switch config.MCPServerTransport {
	case "stdio", "http":
	default:
		return fmt.Errorf("MCP_SERVER_TRANSPORT must be 'stdio' or 'http', got: %s", config.MCPServerTransport)
	}

	if config.MCPServerPort < 1 || config.MCPServerPort > 65535 {
		return fmt.Errorf("MCP_SERVER_PORT must be between 1 and 65535")
	}

	if config.MCPServerHost == "" {
		return fmt.Errorf("MCP_SERVER_HOST cannot be empty")
	}

	if config.MCPServerReadTimeout <= 0 {
		return fmt.Errorf("MCP_SERVER_READ_TIMEOUT must be greater than 0")
	}
	if config.MCPServerWriteTimeout <= 0 {
		return fmt.Errorf("MCP_SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if config.MCPServerIdleTimeout <= 0 {
		return fmt.Errorf("MCP_SERVER_IDLE_TIMEOUT must be greater than 0")
	}
	if config.MCPServerShutdownTimeout <= 0 {
		return fmt.Errorf("MCP_SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}

	if config.MCPServerMaxHeaderBytes <= 0 {
		return fmt.Errorf("MCP_SERVER_MAX_HEADER_BYTES must be greater than 0")
	}
	if config.MCPServerMaxHeaderBytes > 10<<20 { // 10MB limit
		return fmt.Errorf("MCP_SERVER_MAX_HEADER_BYTES cannot exceed 10MB")
	}

	if config.MCPSearchToolName == "" {
		return fmt.Errorf("MCP_SEARCH_TOOL_NAME cannot be empty")
	}
	if !isValidToolName(config.MCPSearchToolName) {
		return fmt.Errorf("MCP_SEARCH_TOOL_NAME contains invalid characters: %s", config.MCPSearchToolName)
	}

	return nil
}

// isValidToolName checks if a tool name is valid for MCP clients
func isValidToolName(name string) bool {
	if len(name) == 0 || len(name) > 100 {
		return false
	}

	// Tool names should be alphanumeric with underscores
	for _, char := range name {
		if !((char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') || char == '_') {
			return false
		}
	}

	return true
}
