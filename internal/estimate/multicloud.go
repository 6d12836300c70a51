package estimate

import (
	"fmt"
	"strings"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
)

// defaultMulticloudECPURate is the last-resort reference price when neither
// the multicloud record nor the bundled OCI catalog carries one.
const defaultMulticloudECPURate = 0.336

// ProviderComparison is one row of a multicloud database comparison.
type ProviderComparison struct {
	Provider        string  `json:"provider"`
	Available       bool    `json:"available"`
	ECPUPriceHourly float64 `json:"ecpuPriceHourly"`
	MonthlyEstimate float64 `json:"monthlyEstimate"`
	Regions         int     `json:"regions,omitempty"`
	PriceParity     bool    `json:"priceParity"`
	Note            string  `json:"note,omitempty"`
}

// MulticloudComparison compares an OCI database product across OCI and the
// three partnered external cloud providers.
type MulticloudComparison struct {
	Product    string               `json:"product"`
	Name       string               `json:"name"`
	ECPUs      float64              `json:"ecpus"`
	Currency   string               `json:"currency"`
	Cheapest   string               `json:"cheapest"`
	Comparison []ProviderComparison `json:"comparison"`
	Notes      []string             `json:"notes"`
}

// bundledDatabaseType maps a multicloud product tag to its OCI-native
// catalog entry, the second source for the parity reference price.
var bundledDatabaseType = map[string]string{
	"exadata":    "exadata_database",
	"autonomous": "autonomous_transaction",
	"base":       "base_enterprise",
}

// referenceRate resolves the OCI reference price for parity comparison:
// the multicloud record first, then the bundled OCI catalog, then the
// hardcoded default.
func (e *Engine) referenceRate(mc catalog.MulticloudDatabase) float64 {
	if mc.ECPUPriceHourly > 0 {
		return mc.ECPUPriceHourly
	}
	if typ, ok := bundledDatabaseType[mc.Product]; ok {
		if items, err := e.loader.Database(); err == nil {
			if db, ok := findDatabase(items, typ); ok && db.ECPUPriceHourly > 0 {
				return db.ECPUPriceHourly
			}
		}
	}
	return defaultMulticloudECPURate
}

// CompareMulticloud estimates monthly compute cost for a database product on
// OCI, Azure, Google Cloud, and AWS. Providers where the product is not
// offered stay in the table with available=false and a zero estimate.
func (e *Engine) CompareMulticloud(product string, ecpus, hoursPerMonth float64) (*MulticloudComparison, error) {
	records, err := e.loader.Multicloud()
	if err != nil {
		return nil, err
	}

	// Exact product tag wins before the name fallback: every record's name
	// contains "Database", so a substring pass alone would shadow short tags
	// like "base".
	var mc catalog.MulticloudDatabase
	found := false
	for _, rec := range records {
		if strings.EqualFold(rec.Product, product) {
			mc = rec
			found = true
			break
		}
	}
	if !found {
		for _, rec := range records {
			if containsFold(rec.Name, product) {
				mc = rec
				found = true
				break
			}
		}
	}
	if !found {
		// Soft miss, consistent with every other unmatched lookup.
		return &MulticloudComparison{
			Product:    product,
			Currency:   "USD",
			Comparison: []ProviderComparison{},
			Notes:      []string{fmt.Sprintf("Multicloud database product %q not found", product)},
		}, nil
	}

	if ecpus <= 0 {
		ecpus = 2
	}

	cmp := &MulticloudComparison{
		Product:  mc.Product,
		Name:     mc.Name,
		ECPUs:    ecpus,
		Currency: "USD",
		Notes:    []string{},
	}
	hours := hoursNote(hoursPerMonth, &cmp.Notes)
	ociRate := e.referenceRate(mc)

	cmp.Comparison = append(cmp.Comparison, ProviderComparison{
		Provider:        "oci",
		Available:       true,
		ECPUPriceHourly: ociRate,
		MonthlyEstimate: MonthlyCost(ociRate, ecpus, hours),
		PriceParity:     true,
	})

	providers := []struct {
		name string
		av   catalog.ProviderAvailability
	}{
		{"azure", mc.Azure},
		{"gcp", mc.GCP},
		{"aws", mc.AWS},
	}
	for _, p := range providers {
		row := ProviderComparison{Provider: p.name, Available: p.av.Available, Regions: p.av.Regions, Note: p.av.Notes}
		if p.av.Available {
			rate := p.av.ECPUPriceHourly
			if rate == 0 {
				rate = ociRate
			}
			row.ECPUPriceHourly = rate
			row.MonthlyEstimate = MonthlyCost(rate, ecpus, hours)
			row.PriceParity = rate == ociRate
		}
		cmp.Comparison = append(cmp.Comparison, row)
	}

	cheapest := cmp.Comparison[0]
	for _, row := range cmp.Comparison[1:] {
		if row.Available && row.MonthlyEstimate < cheapest.MonthlyEstimate {
			cheapest = row
		}
	}
	cmp.Cheapest = cheapest.Provider

	if mc.Notes != "" {
		cmp.Notes = append(cmp.Notes, mc.Notes)
	}
	return cmp, nil
}
