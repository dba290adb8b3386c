package types

import (
	"time"
)

// ErrorType represents the type of error that occurred
type ErrorType string

const (
	ErrorTypeTransport         ErrorType = "transport"
	ErrorTypeMalformedResponse ErrorType = "malformed_response"
	ErrorTypeNetworkTimeout    ErrorType = "network_timeout"
	ErrorTypeRateLimit         ErrorType = "rate_limit"
	ErrorTypeValidation        ErrorType = "validation"
	ErrorTypeUnknown           ErrorType = "unknown"
)

// Config represents the application configuration loaded from environment variables
type Config struct {
	// Spinque API configuration
	SpinqueBaseURL         string        `json:"spinque_base_url" env:"SPINQUE_BASE_URL,default=https://rest.spinque.com/4/oorlogsbronnen/api/in10"`
	SpinqueConfig          string        `json:"spinque_config" env:"SPINQUE_CONFIG,default=production"`
	SpinqueRateLimit       float64       `json:"spinque_rate_limit" env:"SPINQUE_RATE_LIMIT,default=10.0"`
	SpinqueRateBurst       int           `json:"spinque_rate_burst" env:"SPINQUE_RATE_BURST,default=20"`
	SpinqueRequestTimeout  time.Duration `json:"spinque_request_timeout" env:"SPINQUE_REQUEST_TIMEOUT,default=30s"`
	SpinqueMaxIdleConns    int           `json:"spinque_max_idle_conns" env:"SPINQUE_MAX_IDLE_CONNS,default=10"`
	SpinqueIdleConnTimeout time.Duration `json:"spinque_idle_conn_timeout" env:"SPINQUE_IDLE_CONN_TIMEOUT,default=90s"`

	// Search behavior
	DefaultResultCount int `json:"default_result_count" env:"DEFAULT_RESULT_COUNT,default=10"`
	MaxResultCount     int `json:"max_result_count" env:"MAX_RESULT_COUNT,default=100"`
	PreviewSampleSize  int `json:"preview_sample_size" env:"PREVIEW_SAMPLE_SIZE,default=20"`

	// MCP server configuration
	MCPServerTransport           string        `json:"mcp_server_transport" env:"MCP_SERVER_TRANSPORT,default=stdio"`
	MCPServerHost                string        `json:"mcp_server_host" env:"MCP_SERVER_HOST,default=localhost"`
	MCPServerPort                int           `json:"mcp_server_port" env:"MCP_SERVER_PORT,default=8080"`
	MCPServerReadTimeout         time.Duration `json:"mcp_server_read_timeout" env:"MCP_SERVER_READ_TIMEOUT,default=30s"`
	MCPServerWriteTimeout        time.Duration `json:"mcp_server_write_timeout" env:"MCP_SERVER_WRITE_TIMEOUT,default=60s"`
	MCPServerIdleTimeout         time.Duration `json:"mcp_server_idle_timeout" env:"MCP_SERVER_IDLE_TIMEOUT,default=120s"`
	MCPServerShutdownTimeout     time.Duration `json:"mcp_server_shutdown_timeout" env:"MCP_SERVER_SHUTDOWN_TIMEOUT,default=10s"`
	MCPServerMaxHeaderBytes      int           `json:"mcp_server_max_header_bytes" env:"MCP_SERVER_MAX_HEADER_BYTES,default=1048576"`
	MCPServerEnableAccessLogging bool          `json:"mcp_server_enable_access_logging" env:"MCP_SERVER_ENABLE_ACCESS_LOG,default=true"`
	MCPSearchToolName            string        `json:"mcp_search_tool_name" env:"MCP_SEARCH_TOOL_NAME,default=search_ww2_nl_archives"`

	// OpenTelemetry configuration
	OTelEnabled              bool    `json:"otel_enabled" env:"OTEL_ENABLED,default=false"`
	OTelServiceName          string  `json:"otel_service_name" env:"OTEL_SERVICE_NAME,default=oorlogsbronnen-mcp"`
	OTelExporterOTLPEndpoint string  `json:"otel_exporter_otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelExporterOTLPProtocol string  `json:"otel_exporter_otlp_protocol" env:"OTEL_EXPORTER_OTLP_PROTOCOL,default=http/protobuf"`
	OTelResourceAttributes   string  `json:"otel_resource_attributes" env:"OTEL_RESOURCE_ATTRIBUTES"`
	OTelTracesSampler        string  `json:"otel_traces_sampler" env:"OTEL_TRACES_SAMPLER,default=always_on"`
	OTelTracesSamplerArg     float64 `json:"otel_traces_sampler_arg" env:"OTEL_TRACES_SAMPLER_ARG,default=1.0"`
}
