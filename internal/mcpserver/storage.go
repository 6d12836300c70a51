package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
)

func (s *Server) registerStorageTools() {
	s.mcp.AddTool(mcp.NewTool("list_storage_pricing",
		mcp.WithDescription("List OCI storage pricing: block volumes, object storage tiers, file storage. Prices are per GB per month."),
		mcp.WithString("type", mcp.Description("Filter by storage type, e.g. block_volume, object_standard, object_archive, file_storage")),
		mcp.WithString("name", mcp.Description("Filter by display name substring")),
	), s.handle("list_storage_pricing", s.listStoragePricing))

	s.mcp.AddTool(mcp.NewTool("calculate_storage_cost",
		mcp.WithDescription("Estimate the monthly cost of a storage allocation. Block volume performance units (VPUs) are itemized separately."),
		mcp.WithString("type", mcp.Required(), mcp.Description("Storage type or name, exact or partial")),
		mcp.WithNumber("sizeGb", mcp.Required(), mcp.Description("Capacity in GB")),
		mcp.WithNumber("vpus", mcp.Description("Volume performance units per GB, block volumes only (10 = balanced)")),
	), s.handle("calculate_storage_cost", s.calculateStorageCost))
}

func (s *Server) listStoragePricing(_ context.Context, req mcp.CallToolRequest) (any, error) {
	return s.engine.ListStorage(req.GetString("type", ""), req.GetString("name", ""))
}

func (s *Server) calculateStorageCost(_ context.Context, req mcp.CallToolRequest) (any, error) {
	typ, err := req.RequireString("type")
	if err != nil {
		return nil, err
	}
	sizeGB, err := req.RequireFloat("sizeGb")
	if err != nil {
		return nil, err
	}
	return s.engine.CalculateStorage(estimate.StorageConfig{
		Type:   typ,
		SizeGB: sizeGB,
		VPUs:   req.GetFloat("vpus", 0),
	})
}
