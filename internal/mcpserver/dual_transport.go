package mcpserver

import (
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DualTransportHandler serves both MCP HTTP transports on a single path:
// streamable HTTP for current clients, SSE for the older generation.
type DualTransportHandler struct {
	streamable *mcp.StreamableHTTPHandler
	sse        *mcp.SSEHandler
}

// NewDualTransportHandler creates a handler dispatching to both transports.
func NewDualTransportHandler(getServer func(*http.Request) *mcp.Server) *DualTransportHandler {
	return &DualTransportHandler{
		streamable: mcp.NewStreamableHTTPHandler(getServer, nil),
		sse:        mcp.NewSSEHandler(getServer, nil),
	}
}

func (h *DualTransportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Query().Has("sessionid"):
		// SSE message POSTs carry the session id in the query.
		h.sse.ServeHTTP(w, r)
	case r.Method == http.MethodGet && acceptsEventStream(r.Header):
		h.sse.ServeHTTP(w, r)
	default:
		// DELETE, and POST without a session id, belong to streamable.
		h.streamable.ServeHTTP(w, r)
	}
}

// acceptsEventStream reports whether any Accept clause admits an SSE stream.
func acceptsEventStream(header http.Header) bool {
	for _, value := range header.Values("Accept") {
		for _, clause := range strings.Split(value, ",") {
			clause = strings.TrimSpace(clause)
			if clause == "text/event-stream" || clause == "*/*" || strings.HasPrefix(clause, "text/") {
				return true
			}
		}
	}
	return false
}
