package mcpserver

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/types"
)

const serverVersion = "1.0.0"

// ServerWrapper wraps the MCP SDK server with application-specific
// lifecycle management. It serves either over stdio (the default for MCP
// clients such as Claude Desktop) or over HTTP with streamable and SSE
// transports.
type ServerWrapper struct {
	sdkServer  *mcp.Server
	httpServer *http.Server

	config *types.Config

	logger       *log.Logger
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	mutex        sync.RWMutex
	isRunning    bool

	ctx        context.Context
	cancelFunc context.CancelFunc
}

// NewServerWrapper creates a new SDK-based server wrapper
func NewServerWrapper(config *types.Config) (*ServerWrapper, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Over stdio, stdout belongs to the protocol; log to stderr.
	logger := log.New(os.Stderr, "[MCP Server] ", log.LstdFlags)

	wrapper := &ServerWrapper{
		config:       config,
		logger:       logger,
		shutdownChan: make(chan struct{}),
	}

	wrapper.ctx, wrapper.cancelFunc = context.WithCancel(context.Background())

	impl := &mcp.Implementation{
		Name:    "oorlogsbronnen-server",
		Version: serverVersion,
	}
	wrapper.sdkServer = mcp.NewServer(impl, nil)

	logger.Printf("server wrapper initialized (implementation: %s %s)", impl.Name, impl.Version)
	return wrapper, nil
}

// SetLogger replaces the wrapper's logger
func (sw *ServerWrapper) SetLogger(logger *log.Logger) {
	if logger != nil {
		sw.logger = logger
	}
}

// RegisterSearchHandler registers the archive search tool with the SDK server
func (sw *ServerWrapper) RegisterSearchHandler(handler *SearchHandler) error {
	if sw.sdkServer == nil {
		return fmt.Errorf("SDK server not initialized")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	tool := handler.GetSDKToolDefinition()
	sw.sdkServer.AddTool(tool, handler.HandleSDKToolCall)

	sw.logger.Printf("tool %s registered successfully", tool.Name)
	return nil
}

// RunStdio serves the MCP protocol over stdin/stdout until the context is
// cancelled or the client disconnects.
func (sw *ServerWrapper) RunStdio(ctx context.Context) error {
	sw.mutex.Lock()
	if sw.isRunning {
		sw.mutex.Unlock()
		return fmt.Errorf("server is already running")
	}
	sw.isRunning = true
	sw.mutex.Unlock()

	defer func() {
		sw.mutex.Lock()
		sw.isRunning = false
		sw.mutex.Unlock()
	}()

	sw.logger.Printf("starting MCP server on stdio")
	return sw.sdkServer.Run(ctx, &mcp.StdioTransport{})
}

// Start starts the HTTP server with lifecycle management
func (sw *ServerWrapper) Start() error {
	sw.mutex.Lock()
	defer sw.mutex.Unlock()

	if sw.isRunning {
		return fmt.Errorf("server is already running")
	}

	serverAddr := fmt.Sprintf("%s:%d", sw.config.MCPServerHost, sw.config.MCPServerPort)
	sw.logger.Printf("starting MCP server on %s", serverAddr)

	mux := http.NewServeMux()

	baseGetServer := func(r *http.Request) *mcp.Server { return sw.sdkServer }

	// Root handler (streamable transport)
	mux.Handle("/", mcp.NewStreamableHTTPHandler(baseGetServer, nil))

	// Dual transport handler on /mcp supports both http and sse clients
	mux.Handle("/mcp", NewDualTransportHandler(baseGetServer))

	mux.HandleFunc("/health", sw.handleHealthCheck)

	var handler http.Handler = mux
	if sw.config.MCPServerEnableAccessLogging {
		handler = sw.loggingMiddleware(handler)
	}

	sw.httpServer = &http.Server{
		Addr:           serverAddr,
		Handler:        handler,
		ReadTimeout:    sw.config.MCPServerReadTimeout,
		WriteTimeout:   sw.config.MCPServerWriteTimeout,
		IdleTimeout:    sw.config.MCPServerIdleTimeout,
		MaxHeaderBytes: sw.config.MCPServerMaxHeaderBytes,
	}

	sw.wg.Add(1)
	go func() {
		defer sw.wg.Done()
		if err := sw.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sw.logger.Printf("HTTP server error: %v", err)
		}
	}()

	sw.isRunning = true
	sw.logger.Printf("MCP server started successfully")
	return nil
}

// Stop stops the HTTP server with graceful shutdown
func (sw *ServerWrapper) Stop() error {
	sw.mutex.Lock()
	defer sw.mutex.Unlock()

	if !sw.isRunning {
		return fmt.Errorf("server is not running")
	}

	sw.logger.Printf("stopping MCP server...")

	if sw.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), sw.config.MCPServerShutdownTimeout)
		defer cancel()

		if err := sw.httpServer.Shutdown(shutdownCtx); err != nil {
			sw.logger.Printf("graceful shutdown failed: %v, forcing immediate shutdown", err)
			if err := sw.httpServer.Close(); err != nil {
				sw.logger.Printf("failed to close HTTP server: %v", err)
			}
		}
	}

	sw.cancelFunc()

	close(sw.shutdownChan)
	sw.wg.Wait()

	sw.isRunning = false
	sw.logger.Printf("MCP server stopped successfully")
	return nil
}

// IsRunning returns whether the server is currently running
func (sw *ServerWrapper) IsRunning() bool {
	sw.mutex.RLock()
	defer sw.mutex.RUnlock()
	return sw.isRunning
}

// WaitForShutdown blocks until the server has been shut down
func (sw *ServerWrapper) WaitForShutdown() {
	<-sw.shutdownChan
}

// handleHealthCheck responds to health probes
func (sw *ServerWrapper) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","server":"oorlogsbronnen-server","version":%q}`, serverVersion)
}

// loggingMiddleware logs every HTTP request with its duration
func (sw *ServerWrapper) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		sw.logger.Printf("%s %s from %s (%v)", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
	})
}
