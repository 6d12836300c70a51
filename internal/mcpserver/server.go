// Package mcpserver registers the pricing tool surface on an MCP server and
// serves it over stdio. Each tool wraps one engine operation; handler errors
// are returned as MCP tool errors, never transport failures.
package mcpserver

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/cache"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/live"
)

const serverName = "oci-pricing-mcp"

// Server owns the MCP tool registry and the pricing engines behind it.
type Server struct {
	mcp    *server.MCPServer
	loader *catalog.Loader
	engine *estimate.Engine
	live   *live.Client
	cache  *cache.Cache
	logger zerolog.Logger
}

// New builds the server and registers every pricing tool.
func New(loader *catalog.Loader, engine *estimate.Engine, liveClient *live.Client, c *cache.Cache, logger zerolog.Logger, version string) *Server {
	s := &Server{
		loader: loader,
		engine: engine,
		live:   liveClient,
		cache:  c,
		logger: logger,
	}
	s.mcp = server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.registerComputeTools()
	s.registerStorageTools()
	s.registerDatabaseTools()
	s.registerNetworkTools()
	s.registerKubernetesTools()
	s.registerServiceTools()
	s.registerMulticloudTools()
	s.registerAggregateTools()
	s.registerSearchTools()
	s.registerLiveTools()
	s.registerCacheTools()

	return s
}

// ServeStdio blocks serving MCP over stdin/stdout until the stream closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// toolHandler is the engine-facing handler shape: return a value to serialize
// or an error to surface as a tool error.
type toolHandler func(ctx context.Context, req mcp.CallToolRequest) (any, error)

// handle wraps a toolHandler with trace-id generation, request logging, and
// JSON result encoding.
func (s *Server) handle(name string, fn toolHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		traceID := uuid.New().String()

		out, err := fn(ctx, req)
		if err != nil {
			s.logger.Error().
				Str("trace_id", traceID).
				Str("operation", name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Err(err).
				Msg("tool call failed")
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := json.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("encoding %s result: %w", name, err)
		}

		s.logger.Info().
			Str("trace_id", traceID).
			Str("operation", name).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("tool call")
		return mcp.NewToolResultText(string(data)), nil
	}
}
