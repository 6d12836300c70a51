package estimate

import (
	"fmt"
	"strings"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
)

// LicenseType selects between license-included and bring-your-own-license
// database pricing.
type LicenseType string

const (
	LicenseIncluded LicenseType = "included"
	LicenseBYOL     LicenseType = "byol"
)

// DatabaseFilter narrows a database pricing listing.
type DatabaseFilter struct {
	Type    string
	Name    string
	License string // "byol" keeps only offerings with a BYOL variant
}

// DatabaseList is the filtered database catalog grouped by offering type.
type DatabaseList struct {
	Count  int                                  `json:"count"`
	Groups map[string][]catalog.DatabasePricing `json:"groups"`
	Tips   []string                             `json:"tips"`
}

var databaseTips = []string{
	"Autonomous Database bills per ECPU-hour; compute and storage are priced independently",
	"BYOL rates apply existing on-premises licenses and cut the compute rate by roughly 76%",
	"Autonomous Database auto-scaling can triple ECPUs under load; budget for peak",
}

// ListDatabase filters and groups the database pricing catalog.
func (e *Engine) ListDatabase(f DatabaseFilter) (*DatabaseList, error) {
	items, err := e.loader.Database()
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]catalog.DatabasePricing)
	count := 0
	for _, d := range items {
		if !containsFold(d.Type, f.Type) || !containsFold(d.Name, f.Name) {
			continue
		}
		if strings.EqualFold(f.License, string(LicenseBYOL)) && d.BYOLPriceHourly == 0 {
			continue
		}
		groups[d.Type] = append(groups[d.Type], d)
		count++
	}
	return &DatabaseList{Count: count, Groups: groups, Tips: databaseTips}, nil
}

// DatabaseConfig describes one database deployment to price.
type DatabaseConfig struct {
	Type          string      `json:"type"`
	ECPUs         float64     `json:"ecpus"`
	StorageGB     float64     `json:"storageGb,omitempty"`
	LicenseType   LicenseType `json:"licenseType,omitempty"`
	HoursPerMonth float64     `json:"hoursPerMonth,omitempty"`
}

func findDatabase(items []catalog.DatabasePricing, query string) (catalog.DatabasePricing, bool) {
	for _, d := range items {
		if strings.EqualFold(d.Type, query) || strings.EqualFold(d.Name, query) {
			return d, true
		}
	}
	for _, d := range items {
		if containsFold(d.Type, query) || containsFold(d.Name, query) {
			return d, true
		}
	}
	return catalog.DatabasePricing{}, false
}

// CalculateDatabase prices one database configuration. Compute and storage
// are independent line items. When BYOL pricing exists and the estimate uses
// license-included rates, the avoided cost is reported as a savings object
// and an advisory note; BYOL is never substituted silently.
func (e *Engine) CalculateDatabase(cfg DatabaseConfig) (*Result, error) {
	items, err := e.loader.Database()
	if err != nil {
		return nil, err
	}

	db, ok := findDatabase(items, cfg.Type)
	if !ok {
		return e.miss("database", cfg.Type, fmt.Sprintf("Database type %q not found in pricing data", cfg.Type)), nil
	}

	license := cfg.LicenseType
	if license == "" {
		license = LicenseIncluded
	}

	computeRate := db.ECPUPriceHourly
	if license == LicenseBYOL {
		if db.BYOLPriceHourly == 0 {
			return e.miss("database", cfg.Type, fmt.Sprintf("Database type %q has no BYOL pricing variant", db.Type)), nil
		}
		computeRate = db.BYOLPriceHourly
	}

	ecpus := cfg.ECPUs
	if ecpus <= 0 {
		ecpus = 2
	}

	r := &Result{Breakdown: []LineItem{}, Currency: db.Currency}
	hours := hoursNote(cfg.HoursPerMonth, &r.Notes)

	computeLabel := db.Name + " - Compute"
	if license == LicenseBYOL {
		computeLabel += " (BYOL)"
	}
	r.Breakdown = append(r.Breakdown, LineItem{
		Category:    "database",
		Item:        computeLabel,
		Quantity:    ecpus,
		Unit:        db.Unit,
		UnitPrice:   computeRate,
		MonthlyCost: MonthlyCost(computeRate, ecpus, hours),
	})

	if cfg.StorageGB > 0 && db.StoragePriceGBMonth > 0 {
		r.Breakdown = append(r.Breakdown, LineItem{
			Category:    "database",
			Item:        db.Name + " - Storage",
			Quantity:    cfg.StorageGB,
			Unit:        "GB per month",
			UnitPrice:   db.StoragePriceGBMonth,
			MonthlyCost: MonthlyCost(db.StoragePriceGBMonth, cfg.StorageGB, 1),
		})
	}

	// Savings is the avoided-cost comparison, so it only appears when the
	// estimate itself used license-included rates.
	if license == LicenseIncluded && db.BYOLPriceHourly > 0 {
		included := MonthlyCost(db.ECPUPriceHourly, ecpus, hours)
		byol := MonthlyCost(db.BYOLPriceHourly, ecpus, hours)
		saved := SumRounded([]float64{included, -byol})
		pct := 0.0
		if included > 0 {
			pct = Round2(saved / included * 100)
		}
		r.Savings = &Savings{
			LicenseIncludedMonthly: included,
			BYOLMonthly:            byol,
			MonthlySavings:         saved,
			Percent:                pct,
		}
		r.Notes = append(r.Notes, fmt.Sprintf(
			"BYOL would save $%.2f/month (%.2f%%) on compute if you hold eligible licenses", saved, pct))
	}

	if db.Notes != "" {
		r.Notes = append(r.Notes, db.Notes)
	}
	return finalize(r), nil
}
