package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

// Name identifies the server during the MCP handshake.
const Name = "plotting-mcp"

// Server wires the plot generation tool into an MCP server and exposes the
// supported transports.
type Server struct {
	mcp *server.MCPServer
}

// New creates the MCP server and registers the tool set.
func New(version string) *Server {
	s := server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.AddTool(generatePlotTool(), handleGeneratePlot)

	return &Server{mcp: s}
}

// ServeStdio speaks the MCP protocol over stdin and stdout, blocking until
// the stream closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// ServeHTTP serves the streamable HTTP transport on addr. The MCP endpoint
// lives at /mcp; GET / answers health probes with {"status":"ok"}.
func (s *Server) ServeHTTP(addr string) error {
	streamable := server.NewStreamableHTTPServer(s.mcp,
		server.WithEndpointPath("/mcp"),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamable)
	mux.HandleFunc("/", handleHealth)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info().Str("addr", addr).Msg("Serving HTTP")
	return httpServer.ListenAndServe()
}

// handleHealth answers container liveness probes on the root path. The
// route is GET-only; other methods get 405.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
