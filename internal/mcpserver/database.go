package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
)

func (s *Server) registerDatabaseTools() {
	s.mcp.AddTool(mcp.NewTool("list_database_pricing",
		mcp.WithDescription("List OCI database pricing: Autonomous Database, Base Database, MySQL HeatWave, Exadata. ECPU rates are hourly; storage is per GB per month."),
		mcp.WithString("type", mcp.Description("Filter by database type substring, e.g. autonomous, base, mysql")),
		mcp.WithString("name", mcp.Description("Filter by display name substring")),
		mcp.WithString("license", mcp.Description("Set to byol to list only offerings with a BYOL variant"), mcp.Enum("byol")),
	), s.handle("list_database_pricing", s.listDatabasePricing))

	s.mcp.AddTool(mcp.NewTool("calculate_database_cost",
		mcp.WithDescription("Estimate the monthly cost of a database configuration. License-included estimates report potential BYOL savings when a BYOL rate exists."),
		mcp.WithString("type", mcp.Required(), mcp.Description("Database type or name, exact or partial, e.g. autonomous_transaction")),
		mcp.WithNumber("ecpus", mcp.Description("Number of ECPUs, default 2")),
		mcp.WithNumber("storageGb", mcp.Description("Database storage in GB")),
		mcp.WithString("licenseType", mcp.Description("included (default) or byol"), mcp.Enum("included", "byol")),
		mcp.WithNumber("hoursPerMonth", mcp.Description("Hours per month, default 730")),
	), s.handle("calculate_database_cost", s.calculateDatabaseCost))
}

func (s *Server) listDatabasePricing(_ context.Context, req mcp.CallToolRequest) (any, error) {
	return s.engine.ListDatabase(estimate.DatabaseFilter{
		Type:    req.GetString("type", ""),
		Name:    req.GetString("name", ""),
		License: req.GetString("license", ""),
	})
}

func (s *Server) calculateDatabaseCost(_ context.Context, req mcp.CallToolRequest) (any, error) {
	typ, err := req.RequireString("type")
	if err != nil {
		return nil, err
	}
	return s.engine.CalculateDatabase(estimate.DatabaseConfig{
		Type:          typ,
		ECPUs:         req.GetFloat("ecpus", 0),
		StorageGB:     req.GetFloat("storageGb", 0),
		LicenseType:   estimate.LicenseType(req.GetString("licenseType", "")),
		HoursPerMonth: req.GetFloat("hoursPerMonth", 0),
	})
}
