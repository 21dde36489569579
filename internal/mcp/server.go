package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TextSource supplies the current workout text.
type TextSource interface {
	LoadText() (string, error)
}

// New creates an MCP server with all tools and resources registered.
func New(source TextSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("liftscript", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("liftscript workout notation engine. Parse workout text, group it by day, expand guided session steps, compute progress metrics and write logged sets back into the text."),
	)

	h := &handlers{source: source, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolParseWorkout, Handler: h.parseWorkout},
		server.ServerTool{Tool: toolGroupByDay, Handler: h.groupByDay},
		server.ServerTool{Tool: toolSessionSteps, Handler: h.sessionSteps},
		server.ServerTool{Tool: toolComputeMetric, Handler: h.computeMetric},
		server.ServerTool{Tool: toolInsertResults, Handler: h.insertResults},
	)

	s.AddResources(
		server.ServerResource{Resource: resCurrent, Handler: h.current},
	)

	return s
}

// Serve runs s on stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

type handlers struct {
	source TextSource
	log    *slog.Logger
}

const currentURI = "liftscript://current"

var resCurrent = mcp.NewResource(
	currentURI,
	"Current Workout",
	mcp.WithResourceDescription("The raw text of the workout currently being edited"),
	mcp.WithMIMEType("text/plain"),
)
