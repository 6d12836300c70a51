package mcpserver

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
)

func (s *Server) registerAggregateTools() {
	s.mcp.AddTool(mcp.NewTool("estimate_monthly_cost",
		mcp.WithDescription("Estimate the total monthly cost of a deployment across compute, storage, database, network, and Kubernetes. Every sub-configuration is optional; unknown resources are noted and skipped."),
		mcp.WithObject("compute", mcp.Description("Compute config: shape, ocpus, memoryGb, gpus, instances")),
		mcp.WithObject("storage", mcp.Description("Storage config: type, sizeGb, vpus")),
		mcp.WithObject("database", mcp.Description("Database config: type, ecpus, storageGb, licenseType")),
		mcp.WithObject("network", mcp.Description("Network config: outboundDataGb, loadBalancers, bandwidthMbps, fastConnectType, fastConnectPorts")),
		mcp.WithObject("kubernetes", mcp.Description("Kubernetes config: clusterType, clusters, virtualNodes")),
		mcp.WithString("region", mcp.Description("OCI region identifier, informational only; list prices match across commercial regions")),
		mcp.WithNumber("hoursPerMonth", mcp.Description("Hours per month applied to sub-configs that do not set their own, default 730")),
	), s.handle("estimate_monthly_cost", s.estimateMonthlyCost))

	s.mcp.AddTool(mcp.NewTool("estimate_preset",
		mcp.WithDescription("Estimate the monthly cost of a canned deployment sizing, from a small web app to ML training."),
		mcp.WithString("preset", mcp.Required(), mcp.Description("Deployment preset"),
			mcp.Enum(estimate.Presets()...)),
		mcp.WithString("region", mcp.Description("OCI region identifier, informational only")),
	), s.handle("estimate_preset", s.estimatePreset))
}

func (s *Server) estimateMonthlyCost(_ context.Context, req mcp.CallToolRequest) (any, error) {
	// The argument shape mirrors EstimateInput's JSON form; round-trip the
	// raw map instead of hand-walking five nested objects.
	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return nil, fmt.Errorf("reading arguments: %w", err)
	}
	var in estimate.EstimateInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("invalid estimate input: %w", err)
	}
	return s.engine.EstimateMonthlyCost(in)
}

func (s *Server) estimatePreset(_ context.Context, req mcp.CallToolRequest) (any, error) {
	preset, err := req.RequireString("preset")
	if err != nil {
		return nil, err
	}
	return s.engine.EstimatePreset(preset, req.GetString("region", ""))
}
