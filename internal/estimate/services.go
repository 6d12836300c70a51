package estimate

import (
	"fmt"
	"strings"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
)

// ServiceList is a filtered secondary-category catalog listing.
type ServiceList struct {
	Category string                   `json:"category"`
	Count    int                      `json:"count"`
	Items    []catalog.ServicePricing `json:"items"`
	Tips     []string                 `json:"tips"`
}

var serviceTips = map[string][]string{
	"ai_ml":         {"Generative AI dedicated hosting bills per unit-hour; on-demand bills per transaction"},
	"observability": {"Logging and monitoring both carry monthly free allowances before billing starts"},
	"serverless":    {"Functions include 2M invocations and 400K GB-seconds free per month"},
	"security":      {"Cloud Guard and Security Zones carry no service charge"},
}

// ListServices filters one secondary platform category by optional type and
// name substrings. Categories absent from the bundle list as empty.
func (e *Engine) ListServices(category, typeFilter, nameFilter string) (*ServiceList, error) {
	items, err := e.loader.Services(category)
	if err != nil {
		return nil, err
	}

	filtered := []catalog.ServicePricing{}
	for _, s := range items {
		if !containsFold(s.Type, typeFilter) || !containsFold(s.Name, nameFilter) {
			continue
		}
		filtered = append(filtered, s)
	}

	tips := serviceTips[category]
	if tips == nil {
		tips = []string{}
	}
	return &ServiceList{Category: category, Count: len(filtered), Items: filtered, Tips: tips}, nil
}

// ServiceConfig describes a secondary platform service usage to price.
// Quantity is interpreted against the catalog unit (OCPUs for hourly units,
// unit counts otherwise).
type ServiceConfig struct {
	Category      string  `json:"category"`
	Type          string  `json:"type"`
	Quantity      float64 `json:"quantity"`
	HoursPerMonth float64 `json:"hoursPerMonth,omitempty"`
}

// hourlyUnit reports whether a catalog unit is an hourly rate that the
// hours-per-month factor applies to.
func hourlyUnit(unit string) bool {
	return strings.Contains(strings.ToLower(unit), "hour")
}

// CalculateService prices one secondary platform service. Hourly units apply
// the hours factor; per-unit prices do not.
func (e *Engine) CalculateService(cfg ServiceConfig) (*Result, error) {
	items, err := e.loader.Services(cfg.Category)
	if err != nil {
		return nil, err
	}

	var item catalog.ServicePricing
	found := false
	for _, s := range items {
		if strings.EqualFold(s.Type, cfg.Type) || strings.EqualFold(s.Name, cfg.Type) {
			item = s
			found = true
			break
		}
	}
	if !found {
		for _, s := range items {
			if containsFold(s.Type, cfg.Type) || containsFold(s.Name, cfg.Type) {
				item = s
				found = true
				break
			}
		}
	}
	if !found {
		return e.miss(cfg.Category, cfg.Type, fmt.Sprintf("Service %q not found in category %q", cfg.Type, cfg.Category)), nil
	}

	quantity := cfg.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	r := &Result{Breakdown: []LineItem{}, Currency: item.Currency}
	factor := 1.0
	if hourlyUnit(item.Unit) {
		factor = hoursNote(cfg.HoursPerMonth, &r.Notes)
	}

	r.Breakdown = append(r.Breakdown, LineItem{
		Category:    cfg.Category,
		Item:        item.Name,
		Quantity:    quantity,
		Unit:        item.Unit,
		UnitPrice:   item.Price,
		MonthlyCost: MonthlyCost(item.Price, quantity, factor),
	})

	if item.Notes != "" {
		r.Notes = append(r.Notes, item.Notes)
	}
	return finalize(r), nil
}
