package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
)

func (s *Server) registerNetworkTools() {
	s.mcp.AddTool(mcp.NewTool("list_network_pricing",
		mcp.WithDescription("List OCI networking pricing: outbound data transfer, load balancers, FastConnect, VPN, NAT. Includes free allowances."),
		mcp.WithString("type", mcp.Description("Filter by offering type substring, e.g. load_balancer, fastconnect")),
		mcp.WithString("name", mcp.Description("Filter by display name substring")),
	), s.handle("list_network_pricing", s.listNetworkPricing))

	s.mcp.AddTool(mcp.NewTool("calculate_network_cost",
		mcp.WithDescription("Estimate monthly networking cost. The first 10 TB of egress and the first 10 Mbps of load balancer bandwidth are free and subtracted before pricing."),
		mcp.WithNumber("outboundDataGb", mcp.Description("Outbound data transfer in GB per month")),
		mcp.WithNumber("loadBalancers", mcp.Description("Number of flexible load balancers")),
		mcp.WithNumber("bandwidthMbps", mcp.Description("Provisioned bandwidth per load balancer in Mbps")),
		mcp.WithString("fastConnectType", mcp.Description("FastConnect port speed"), mcp.Enum("fastconnect_1g", "fastconnect_10g")),
		mcp.WithNumber("fastConnectPorts", mcp.Description("Number of FastConnect ports")),
		mcp.WithNumber("hoursPerMonth", mcp.Description("Hours per month, default 730")),
	), s.handle("calculate_network_cost", s.calculateNetworkCost))
}

func (s *Server) listNetworkPricing(_ context.Context, req mcp.CallToolRequest) (any, error) {
	return s.engine.ListNetwork(req.GetString("type", ""), req.GetString("name", ""))
}

func (s *Server) calculateNetworkCost(_ context.Context, req mcp.CallToolRequest) (any, error) {
	return s.engine.CalculateNetwork(estimate.NetworkConfig{
		OutboundDataGB:   req.GetFloat("outboundDataGb", 0),
		LoadBalancers:    req.GetFloat("loadBalancers", 0),
		BandwidthMbps:    req.GetFloat("bandwidthMbps", 0),
		FastConnectType:  req.GetString("fastConnectType", ""),
		FastConnectPorts: req.GetFloat("fastConnectPorts", 0),
		HoursPerMonth:    req.GetFloat("hoursPerMonth", 0),
	})
}
