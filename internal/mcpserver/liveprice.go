package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/live"
)

func (s *Server) registerLiveTools() {
	s.mcp.AddTool(mcp.NewTool("get_live_pricing",
		mcp.WithDescription("Fetch current list prices from the public Oracle pricing API. Supports any published currency; results are cached for a few minutes."),
		mcp.WithString("currency", mcp.Description("ISO currency code, default USD")),
		mcp.WithString("query", mcp.Description("Filter by display name or part number substring")),
		mcp.WithString("category", mcp.Description("Filter by service category substring, e.g. Compute, Database")),
	), s.handle("get_live_pricing", s.getLivePricing))
}

type liveResponse struct {
	Currency string      `json:"currency"`
	Count    int         `json:"count"`
	Items    []live.Item `json:"items"`
}

func (s *Server) getLivePricing(ctx context.Context, req mcp.CallToolRequest) (any, error) {
	currency := req.GetString("currency", "USD")
	query := req.GetString("query", "")
	category := req.GetString("category", "")

	if query == "" && category == "" {
		snap, err := s.live.Snapshot(ctx, currency)
		if err != nil {
			return nil, err
		}
		return &liveResponse{Currency: snap.Currency, Count: len(snap.Items), Items: snap.Items}, nil
	}

	items, err := s.live.Search(ctx, currency, query, category)
	if err != nil {
		return nil, err
	}
	return &liveResponse{Currency: currency, Count: len(items), Items: items}, nil
}
