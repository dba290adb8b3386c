package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	appconfig "github.com/r-huijts/oorlogsbronnen-mcp/internal/config"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/archive"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/mcpserver"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/metrics"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/observability"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/spinque"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/types"
)

var (
	mcpTransport       string
	mcpServerHost      string
	mcpServerPort      int
	mcpEnableAccessLog bool
	mcpToolName        string
	mcpDefaultCount    int
)

var mcpServerCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Start MCP (Model Context Protocol) server for archive search",
	Long: `
Start an MCP server exposing the Oorlogsbronnen archive search as a tool
for MCP-compatible clients like Claude Desktop and IDEs.

The server provides a single search tool that queries the Netwerk
Oorlogsbronnen collections, fans out across content categories and returns
a normalized, category-grouped report.

Configuration is loaded from environment variables; command line flags
override individual settings.

Examples:
  oorlogsbronnen mcp-server                          # stdio transport (default)
  oorlogsbronnen mcp-server --transport http         # HTTP transport on localhost:8080
  oorlogsbronnen mcp-server --transport http --port 9000
`,
	RunE: runMCPServer,
}

func init() {
	bindMCPServerFlags(mcpServerCmd.Flags())
}

func bindMCPServerFlags(flags *pflag.FlagSet) {
	flags.StringVar(&mcpTransport, "transport", "stdio", "Server transport: stdio or http")
	flags.StringVar(&mcpServerHost, "host", "localhost", "Server host address (http transport)")
	flags.IntVar(&mcpServerPort, "port", 8080, "Server port (http transport)")
	flags.BoolVar(&mcpEnableAccessLog, "enable-access-log", true, "Enable HTTP access logging")
	flags.StringVar(&mcpToolName, "tool-name", "", "Override the registered search tool name")
	flags.IntVar(&mcpDefaultCount, "default-count", 10, "Default number of search results")
}

func runMCPServer(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyMCPServerFlags(cmd, cfg)

	// Over stdio the protocol owns stdout; all logging goes to stderr.
	logger := log.New(os.Stderr, "[MCP Server] ", log.LstdFlags)

	shutdownObservability, err := observability.Init(cfg)
	if err != nil {
		logger.Printf("observability disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownObservability(shutdownCtx); err != nil {
			logger.Printf("observability shutdown: %v", err)
		}
	}()

	if err := metrics.Init(); err != nil {
		logger.Printf("metrics disabled: %v", err)
	}
	if err := metrics.InitOTelMetrics(); err != nil {
		logger.Printf("otel metrics disabled: %v", err)
	}

	spinqueCfg, err := spinque.NewConfigFromTypes(cfg)
	if err != nil {
		return fmt.Errorf("failed to create Spinque config: %w", err)
	}

	client, err := spinque.NewClient(spinqueCfg)
	if err != nil {
		return fmt.Errorf("failed to create Spinque client: %w", err)
	}

	aggregator := archive.NewAggregator(client,
		archive.WithPreviewSize(cfg.PreviewSampleSize),
		archive.WithMaxCount(cfg.MaxResultCount),
		archive.WithLogger(logger),
	)

	adapter := mcpserver.NewSearchToolAdapter(aggregator, &mcpserver.SearchToolConfig{
		ToolName:     cfg.MCPSearchToolName,
		DefaultCount: cfg.DefaultResultCount,
		MaxCount:     cfg.MaxResultCount,
	})
	handler := mcpserver.NewSearchHandler(adapter)

	server, err := mcpserver.NewServerWrapper(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server wrapper: %w", err)
	}
	server.SetLogger(logger)

	if err := server.RegisterSearchHandler(handler); err != nil {
		return fmt.Errorf("failed to register search tool: %w", err)
	}
	logger.Printf("registered tool %q", cfg.MCPSearchToolName)

	switch cfg.MCPServerTransport {
	case "stdio":
		return runStdioServer(server, logger)
	case "http":
		return runHTTPServer(server, cfg, logger)
	default:
		return fmt.Errorf("invalid transport: %s (allowed: stdio|http)", cfg.MCPServerTransport)
	}
}

func applyMCPServerFlags(cmd *cobra.Command, cfg *types.Config) {
	if cmd.Flags().Changed("transport") {
		cfg.MCPServerTransport = mcpTransport
	}
	if cmd.Flags().Changed("host") {
		cfg.MCPServerHost = mcpServerHost
	}
	if cmd.Flags().Changed("port") {
		cfg.MCPServerPort = mcpServerPort
	}
	if cmd.Flags().Changed("enable-access-log") {
		cfg.MCPServerEnableAccessLogging = mcpEnableAccessLog
	}
	if cmd.Flags().Changed("tool-name") {
		cfg.MCPSearchToolName = mcpToolName
	}
	if cmd.Flags().Changed("default-count") {
		cfg.DefaultResultCount = mcpDefaultCount
	}
}

func runStdioServer(server *mcpserver.ServerWrapper, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Printf("received shutdown signal, stopping server...")
		cancel()
	}()

	logger.Printf("starting MCP server on stdio")
	if err := server.RunStdio(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stdio server failed: %w", err)
	}

	logger.Printf("MCP server stopped")
	return nil
}

func runHTTPServer(server *mcpserver.ServerWrapper, cfg *types.Config, logger *log.Logger) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Printf("received shutdown signal, stopping server...")

		// Give in-flight requests a moment before forcing the listener down.
		time.Sleep(1 * time.Second)

		if err := server.Stop(); err != nil {
			logger.Printf("error during server shutdown: %v", err)
		}
	}()

	logger.Printf("starting MCP server on http://%s:%d", cfg.MCPServerHost, cfg.MCPServerPort)
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start MCP server: %w", err)
	}

	server.WaitForShutdown()
	logger.Printf("MCP server stopped")
	return nil
}
