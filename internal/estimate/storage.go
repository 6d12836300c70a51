package estimate

import (
	"fmt"
	"strings"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
)

// StorageList is the filtered storage catalog grouped by offering type.
type StorageList struct {
	Count  int                                 `json:"count"`
	Groups map[string][]catalog.StoragePricing `json:"groups"`
	Tips   []string                            `json:"tips"`
}

var storageTips = []string{
	"Block volume performance scales with VPUs; 10 VPUs/GB is the balanced default",
	"Archive storage is ~10x cheaper than standard object storage but has a 90-day minimum retention",
	"Always Free includes 20 GB of object storage and 200 GB of block volume",
}

// ListStorage filters the storage catalog by optional type and name
// substrings.
func (e *Engine) ListStorage(typeFilter, nameFilter string) (*StorageList, error) {
	items, err := e.loader.Storage()
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]catalog.StoragePricing)
	count := 0
	for _, s := range items {
		if !containsFold(s.Type, typeFilter) || !containsFold(s.Name, nameFilter) {
			continue
		}
		groups[s.Type] = append(groups[s.Type], s)
		count++
	}
	return &StorageList{Count: count, Groups: groups, Tips: storageTips}, nil
}

// StorageConfig describes one storage resource to price. VPUs applies only
// to block volumes (performance units per GB).
type StorageConfig struct {
	Type   string  `json:"type"`
	SizeGB float64 `json:"sizeGb"`
	VPUs   float64 `json:"vpus,omitempty"`
}

func findStorage(items []catalog.StoragePricing, query string) (catalog.StoragePricing, bool) {
	for _, s := range items {
		if strings.EqualFold(s.Type, query) || strings.EqualFold(s.Name, query) {
			return s, true
		}
	}
	for _, s := range items {
		if containsFold(s.Type, query) || containsFold(s.Name, query) {
			return s, true
		}
	}
	return catalog.StoragePricing{}, false
}

// CalculateStorage prices one storage configuration. Capacity prices are per
// GB-month, so no hours factor applies; block volume VPUs are an independent
// line item.
func (e *Engine) CalculateStorage(cfg StorageConfig) (*Result, error) {
	items, err := e.loader.Storage()
	if err != nil {
		return nil, err
	}

	item, ok := findStorage(items, cfg.Type)
	if !ok {
		return e.miss("storage", cfg.Type, fmt.Sprintf("Storage type %q not found in pricing data", cfg.Type)), nil
	}

	r := &Result{Breakdown: []LineItem{}, Currency: item.Currency}
	r.Breakdown = append(r.Breakdown, LineItem{
		Category:    "storage",
		Item:        item.Name,
		Quantity:    cfg.SizeGB,
		Unit:        item.Unit,
		UnitPrice:   item.Price,
		MonthlyCost: MonthlyCost(item.Price, cfg.SizeGB, 1),
	})

	if cfg.VPUs > 0 && item.Type == "block_volume" {
		if vpu, ok := findStorage(items, "block_volume_vpu"); ok {
			r.Breakdown = append(r.Breakdown, LineItem{
				Category:    "storage",
				Item:        vpu.Name,
				Quantity:    cfg.VPUs * cfg.SizeGB,
				Unit:        vpu.Unit,
				UnitPrice:   vpu.Price,
				MonthlyCost: MonthlyCost(vpu.Price, cfg.VPUs*cfg.SizeGB, 1),
			})
		}
	}

	if item.Notes != "" {
		r.Notes = append(r.Notes, item.Notes)
	}
	return finalize(r), nil
}
