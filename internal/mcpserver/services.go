package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
)

func (s *Server) registerServiceTools() {
	s.mcp.AddTool(mcp.NewTool("list_platform_services",
		mcp.WithDescription("List pricing for a secondary OCI platform service category: AI/ML, analytics, security, observability, integration, developer tools, edge, governance, media, serverless."),
		mcp.WithString("category", mcp.Required(), mcp.Description("Service category"),
			mcp.Enum(catalog.ServiceCategories...)),
		mcp.WithString("type", mcp.Description("Filter by service type substring")),
		mcp.WithString("name", mcp.Description("Filter by display name substring")),
	), s.handle("list_platform_services", s.listPlatformServices))

	s.mcp.AddTool(mcp.NewTool("calculate_platform_service_cost",
		mcp.WithDescription("Estimate the monthly cost of one secondary platform service. Hourly units are multiplied by hours per month; per-unit prices are not."),
		mcp.WithString("category", mcp.Required(), mcp.Description("Service category"),
			mcp.Enum(catalog.ServiceCategories...)),
		mcp.WithString("type", mcp.Required(), mcp.Description("Service type or name, exact or partial, e.g. data_science or api_gateway")),
		mcp.WithNumber("quantity", mcp.Description("Quantity in the service's pricing unit, default 1")),
		mcp.WithNumber("hoursPerMonth", mcp.Description("Hours per month for hourly units, default 730")),
	), s.handle("calculate_platform_service_cost", s.calculatePlatformServiceCost))
}

func (s *Server) listPlatformServices(_ context.Context, req mcp.CallToolRequest) (any, error) {
	category, err := req.RequireString("category")
	if err != nil {
		return nil, err
	}
	return s.engine.ListServices(category, req.GetString("type", ""), req.GetString("name", ""))
}

func (s *Server) calculatePlatformServiceCost(_ context.Context, req mcp.CallToolRequest) (any, error) {
	category, err := req.RequireString("category")
	if err != nil {
		return nil, err
	}
	typ, err := req.RequireString("type")
	if err != nil {
		return nil, err
	}
	return s.engine.CalculateService(estimate.ServiceConfig{
		Category:      category,
		Type:          typ,
		Quantity:      req.GetFloat("quantity", 0),
		HoursPerMonth: req.GetFloat("hoursPerMonth", 0),
	})
}
