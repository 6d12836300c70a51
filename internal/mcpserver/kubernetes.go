package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
)

func (s *Server) registerKubernetesTools() {
	s.mcp.AddTool(mcp.NewTool("list_kubernetes_pricing",
		mcp.WithDescription("List OKE (Kubernetes Engine) pricing: basic clusters are free, enhanced clusters and virtual nodes are billed hourly. Worker nodes are billed as compute."),
		mcp.WithString("type", mcp.Description("Filter by offering type substring, e.g. basic, enhanced, virtual")),
	), s.handle("list_kubernetes_pricing", s.listKubernetesPricing))

	s.mcp.AddTool(mcp.NewTool("calculate_kubernetes_cost",
		mcp.WithDescription("Estimate monthly OKE control plane and virtual node cost. Worker node compute is priced separately via calculate_compute_cost."),
		mcp.WithString("clusterType", mcp.Description("basic (default, free) or enhanced"), mcp.Enum("basic", "enhanced")),
		mcp.WithNumber("clusters", mcp.Description("Number of clusters, default 1")),
		mcp.WithNumber("virtualNodes", mcp.Description("Number of virtual nodes")),
		mcp.WithNumber("hoursPerMonth", mcp.Description("Hours per month, default 730")),
	), s.handle("calculate_kubernetes_cost", s.calculateKubernetesCost))
}

func (s *Server) listKubernetesPricing(_ context.Context, req mcp.CallToolRequest) (any, error) {
	return s.engine.ListKubernetes(req.GetString("type", ""))
}

func (s *Server) calculateKubernetesCost(_ context.Context, req mcp.CallToolRequest) (any, error) {
	return s.engine.CalculateKubernetes(estimate.KubernetesConfig{
		ClusterType:   req.GetString("clusterType", ""),
		Clusters:      req.GetFloat("clusters", 0),
		VirtualNodes:  req.GetFloat("virtualNodes", 0),
		HoursPerMonth: req.GetFloat("hoursPerMonth", 0),
	})
}
