package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
)

func (s *Server) registerComputeTools() {
	s.mcp.AddTool(mcp.NewTool("list_compute_shapes",
		mcp.WithDescription("List OCI compute shapes with on-demand OCPU, memory, and GPU pricing, grouped by shape type. All filters are optional case-insensitive substrings."),
		mcp.WithString("shape", mcp.Description("Filter by shape name, e.g. E5 or A1")),
		mcp.WithString("shapeType", mcp.Description("Filter by shape type: standard, gpu, dense_io, optimized, hpc")),
		mcp.WithString("processor", mcp.Description("Filter by processor family, e.g. AMD, Intel, Ampere, NVIDIA")),
	), s.handle("list_compute_shapes", s.listComputeShapes))

	s.mcp.AddTool(mcp.NewTool("calculate_compute_cost",
		mcp.WithDescription("Estimate the monthly cost of a compute configuration. OCPU, memory, and GPU charges are itemized; a full month is 730 hours."),
		mcp.WithString("shape", mcp.Required(), mcp.Description("Shape name, exact or partial, e.g. VM.Standard.E5.Flex")),
		mcp.WithNumber("ocpus", mcp.Description("Number of OCPUs")),
		mcp.WithNumber("memoryGb", mcp.Description("Memory in GB")),
		mcp.WithNumber("gpus", mcp.Description("Number of GPUs, for GPU shapes")),
		mcp.WithNumber("instances", mcp.Description("Instance count multiplier, default 1")),
		mcp.WithNumber("hoursPerMonth", mcp.Description("Hours per month, default 730 (24/7)")),
	), s.handle("calculate_compute_cost", s.calculateComputeCost))

	s.mcp.AddTool(mcp.NewTool("compare_compute_shapes",
		mcp.WithDescription("Compare the monthly cost of several shapes at the same OCPU and memory sizing. Defaults to the common flexible shapes when no list is given."),
		mcp.WithArray("shapes", mcp.Description("Shape names to compare"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithNumber("ocpus", mcp.Description("Number of OCPUs, default 1")),
		mcp.WithNumber("memoryGb", mcp.Description("Memory in GB")),
		mcp.WithNumber("hoursPerMonth", mcp.Description("Hours per month, default 730")),
	), s.handle("compare_compute_shapes", s.compareComputeShapes))
}

func (s *Server) listComputeShapes(_ context.Context, req mcp.CallToolRequest) (any, error) {
	return s.engine.ListCompute(estimate.ComputeFilter{
		Shape:     req.GetString("shape", ""),
		ShapeType: req.GetString("shapeType", ""),
		Processor: req.GetString("processor", ""),
	})
}

func (s *Server) calculateComputeCost(_ context.Context, req mcp.CallToolRequest) (any, error) {
	shape, err := req.RequireString("shape")
	if err != nil {
		return nil, err
	}
	return s.engine.CalculateCompute(estimate.ComputeConfig{
		Shape:         shape,
		OCPUs:         req.GetFloat("ocpus", 0),
		MemoryGB:      req.GetFloat("memoryGb", 0),
		GPUs:          req.GetFloat("gpus", 0),
		Instances:     req.GetFloat("instances", 0),
		HoursPerMonth: req.GetFloat("hoursPerMonth", 0),
	})
}

func (s *Server) compareComputeShapes(_ context.Context, req mcp.CallToolRequest) (any, error) {
	var shapes []string
	if raw, ok := req.GetArguments()["shapes"].([]any); ok {
		for _, v := range raw {
			if name, ok := v.(string); ok {
				shapes = append(shapes, name)
			}
		}
	}
	return s.engine.CompareCompute(shapes,
		req.GetFloat("ocpus", 0),
		req.GetFloat("memoryGb", 0),
		req.GetFloat("hoursPerMonth", 0))
}
