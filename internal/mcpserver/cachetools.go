package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/cache"
)

func (s *Server) registerCacheTools() {
	s.mcp.AddTool(mcp.NewTool("refresh_pricing_cache",
		mcp.WithDescription("Drop all cached pricing data and reload the bundled catalog. The next live pricing call refetches from the Oracle API."),
	), s.handle("refresh_pricing_cache", s.refreshPricingCache))
}

type refreshResponse struct {
	Refreshed   bool        `json:"refreshed"`
	LastUpdated string      `json:"lastUpdated"`
	Cache       cache.Stats `json:"cache"`
}

func (s *Server) refreshPricingCache(_ context.Context, _ mcp.CallToolRequest) (any, error) {
	s.cache.Clear()
	doc, err := s.loader.Refresh()
	if err != nil {
		return nil, err
	}
	return &refreshResponse{
		Refreshed:   true,
		LastUpdated: doc.Metadata.LastUpdated,
		Cache:       s.cache.GetStats(),
	}, nil
}
