package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
)

func (s *Server) registerSearchTools() {
	s.mcp.AddTool(mcp.NewTool("search_pricing",
		mcp.WithDescription("Search the bundled pricing catalog by substring across names, types, part numbers, and descriptions in every category."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search term, e.g. GPU, autonomous, B97405")),
		mcp.WithString("category", mcp.Description("Restrict to one category, e.g. compute, storage, database, network, kubernetes")),
	), s.handle("search_pricing", s.searchPricing))
}

type searchResponse struct {
	Query   string                 `json:"query"`
	Count   int                    `json:"count"`
	Results []catalog.SearchResult `json:"results"`
}

func (s *Server) searchPricing(_ context.Context, req mcp.CallToolRequest) (any, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return nil, err
	}
	results, err := s.loader.Search(query, req.GetString("category", ""))
	if err != nil {
		return nil, err
	}
	return &searchResponse{Query: query, Count: len(results), Results: results}, nil
}
