package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerMulticloudTools() {
	s.mcp.AddTool(mcp.NewTool("compare_multicloud_database",
		mcp.WithDescription("Compare Oracle Database pricing across OCI and the Database@Azure/Google Cloud/AWS multicloud offerings. Oracle keeps list-price parity across providers."),
		mcp.WithString("product", mcp.Required(), mcp.Description("Multicloud product, e.g. exadata, autonomous, base")),
		mcp.WithNumber("ecpus", mcp.Description("Number of ECPUs, default 2")),
		mcp.WithNumber("hoursPerMonth", mcp.Description("Hours per month, default 730")),
	), s.handle("compare_multicloud_database", s.compareMulticloudDatabase))
}

func (s *Server) compareMulticloudDatabase(_ context.Context, req mcp.CallToolRequest) (any, error) {
	product, err := req.RequireString("product")
	if err != nil {
		return nil, err
	}
	return s.engine.CompareMulticloud(product,
		req.GetFloat("ecpus", 0),
		req.GetFloat("hoursPerMonth", 0))
}
