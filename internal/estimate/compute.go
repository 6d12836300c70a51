package estimate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
)

// ComputeFilter narrows a compute shape listing. All fields are optional
// case-insensitive substring filters.
type ComputeFilter struct {
	Shape     string
	ShapeType string
	Processor string
}

// ComputeList is the filtered compute catalog grouped by shape type.
type ComputeList struct {
	Count  int                               `json:"count"`
	Groups map[string][]catalog.ComputeShape `json:"groups"`
	Tips   []string                          `json:"tips"`
}

var computeTips = []string{
	"Flexible shapes price OCPU and memory independently; size each to the workload",
	"VM.Standard.A1.Flex (Ampere Arm) is the lowest cost per OCPU; Always Free includes 4 OCPUs and 24 GB",
	"Preemptible instances run at 50% of on-demand OCPU pricing",
}

// ListCompute filters and groups the compute shape catalog.
func (e *Engine) ListCompute(f ComputeFilter) (*ComputeList, error) {
	shapes, err := e.loader.Compute()
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]catalog.ComputeShape)
	count := 0
	for _, s := range shapes {
		if !containsFold(s.Shape, f.Shape) ||
			!containsFold(s.ShapeType, f.ShapeType) ||
			!containsFold(s.Processor, f.Processor) {
			continue
		}
		groups[s.ShapeType] = append(groups[s.ShapeType], s)
		count++
	}
	return &ComputeList{Count: count, Groups: groups, Tips: computeTips}, nil
}

// ComputeConfig describes one compute resource to price.
type ComputeConfig struct {
	Shape         string  `json:"shape"`
	OCPUs         float64 `json:"ocpus"`
	MemoryGB      float64 `json:"memoryGb"`
	GPUs          float64 `json:"gpus,omitempty"`
	Instances     float64 `json:"instances,omitempty"`
	HoursPerMonth float64 `json:"hoursPerMonth,omitempty"`
}

// findShape looks up a shape by case-insensitive exact name, falling back to
// substring match.
func findShape(shapes []catalog.ComputeShape, name string) (catalog.ComputeShape, bool) {
	for _, s := range shapes {
		if strings.EqualFold(s.Shape, name) {
			return s, true
		}
	}
	for _, s := range shapes {
		if containsFold(s.Shape, name) {
			return s, true
		}
	}
	return catalog.ComputeShape{}, false
}

// CalculateCompute prices one compute configuration. OCPU and memory are
// independent line items; GPU shapes price per GPU instead.
func (e *Engine) CalculateCompute(cfg ComputeConfig) (*Result, error) {
	shapes, err := e.loader.Compute()
	if err != nil {
		return nil, err
	}

	shape, ok := findShape(shapes, cfg.Shape)
	if !ok {
		return e.miss("compute", cfg.Shape, fmt.Sprintf("Shape %q not found in pricing data", cfg.Shape)), nil
	}

	instances := cfg.Instances
	if instances <= 0 {
		instances = 1
	}

	r := &Result{Breakdown: []LineItem{}, Currency: shape.Currency}
	hours := hoursNote(cfg.HoursPerMonth, &r.Notes)

	if shape.OCPUPriceHourly > 0 && cfg.OCPUs > 0 {
		r.Breakdown = append(r.Breakdown, LineItem{
			Category:    "compute",
			Item:        shape.Shape + " - OCPU",
			Quantity:    cfg.OCPUs * instances,
			Unit:        "OCPU-hour",
			UnitPrice:   shape.OCPUPriceHourly,
			MonthlyCost: MonthlyCost(shape.OCPUPriceHourly, cfg.OCPUs*instances, hours),
		})
	}
	if shape.MemoryPriceHourly > 0 && cfg.MemoryGB > 0 {
		r.Breakdown = append(r.Breakdown, LineItem{
			Category:    "compute",
			Item:        shape.Shape + " - Memory",
			Quantity:    cfg.MemoryGB * instances,
			Unit:        "GB-hour",
			UnitPrice:   shape.MemoryPriceHourly,
			MonthlyCost: MonthlyCost(shape.MemoryPriceHourly, cfg.MemoryGB*instances, hours),
		})
	}
	if shape.GPUPriceHourly > 0 {
		gpus := cfg.GPUs
		if gpus <= 0 {
			gpus = 1
		}
		r.Breakdown = append(r.Breakdown, LineItem{
			Category:    "compute",
			Item:        shape.Shape + " - GPU",
			Quantity:    gpus * instances,
			Unit:        "GPU-hour",
			UnitPrice:   shape.GPUPriceHourly,
			MonthlyCost: MonthlyCost(shape.GPUPriceHourly, gpus*instances, hours),
		})
	}

	if shape.MaxOCPUs > 0 && cfg.OCPUs > shape.MaxOCPUs {
		r.Notes = append(r.Notes, fmt.Sprintf("Requested %s OCPUs exceeds the shape maximum of %s",
			trimFloat(cfg.OCPUs), trimFloat(shape.MaxOCPUs)))
	}
	if shape.Notes != "" {
		r.Notes = append(r.Notes, shape.Notes)
	}
	return finalize(r), nil
}

// ShapeComparison is one ranked row of a shape cost comparison.
type ShapeComparison struct {
	Shape        string  `json:"shape"`
	Found        bool    `json:"found"`
	MonthlyTotal float64 `json:"monthlyTotal"`
	Note         string  `json:"note,omitempty"`
}

// ComputeComparison ranks candidate shapes by monthly cost for one sizing.
type ComputeComparison struct {
	OCPUs      float64           `json:"ocpus"`
	MemoryGB   float64           `json:"memoryGb"`
	Currency   string            `json:"currency"`
	Cheapest   string            `json:"cheapest"`
	Comparison []ShapeComparison `json:"comparison"`
	Notes      []string          `json:"notes"`
}

// defaultComparisonShapes is the fixed candidate set used when the caller
// does not name shapes explicitly.
var defaultComparisonShapes = []string{
	"VM.Standard.E5.Flex",
	"VM.Standard.E4.Flex",
	"VM.Standard3.Flex",
	"VM.Standard.A1.Flex",
}

// CompareCompute prices the same OCPU/memory sizing across several shapes
// and ranks them cheapest first. Unknown shapes stay in the table with a
// note rather than failing the comparison.
func (e *Engine) CompareCompute(shapes []string, ocpus, memoryGB, hoursPerMonth float64) (*ComputeComparison, error) {
	if len(shapes) == 0 {
		shapes = defaultComparisonShapes
	}
	if ocpus <= 0 {
		ocpus = 1
	}

	cmp := &ComputeComparison{
		OCPUs:    ocpus,
		MemoryGB: memoryGB,
		Currency: "USD",
		Notes:    []string{},
	}
	hours := hoursNote(hoursPerMonth, &cmp.Notes)

	for _, name := range shapes {
		res, err := e.CalculateCompute(ComputeConfig{
			Shape: name, OCPUs: ocpus, MemoryGB: memoryGB, HoursPerMonth: hours,
		})
		if err != nil {
			return nil, err
		}
		row := ShapeComparison{Shape: name, Found: res.Match != MatchNotFound, MonthlyTotal: res.MonthlyTotal}
		if res.Match == MatchNotFound {
			row.Note = res.Notes[0]
		}
		cmp.Comparison = append(cmp.Comparison, row)
	}

	sort.SliceStable(cmp.Comparison, func(i, j int) bool {
		a, b := cmp.Comparison[i], cmp.Comparison[j]
		if a.Found != b.Found {
			return a.Found
		}
		return a.MonthlyTotal < b.MonthlyTotal
	})
	if len(cmp.Comparison) > 0 && cmp.Comparison[0].Found {
		cmp.Cheapest = cmp.Comparison[0].Shape
	}
	return cmp, nil
}
