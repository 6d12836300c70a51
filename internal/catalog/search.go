package catalog

import "strings"

// SearchResult is one catalog entry matched by Search, flattened to the
// fields shared by every category.
type SearchResult struct {
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	PartNumber  string  `json:"partNumber,omitempty"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Currency    string  `json:"currency"`
	Notes       string  `json:"notes,omitempty"`
}

// matches reports whether query appears, case-insensitively, in any of the
// candidate fields. Empty candidates are skipped.
func matches(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Search matches query case-insensitively against name, part number, and
// category across the whole bundle. A non-empty category restricts results
// to categories whose name contains it.
func (l *Loader) Search(query, category string) ([]SearchResult, error) {
	doc, err := l.Document()
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	add := func(cat string, r SearchResult) {
		if category != "" && !strings.Contains(strings.ToLower(cat), strings.ToLower(category)) {
			return
		}
		if query == "" || matches(query, r.Name, r.PartNumber, cat, r.Type) {
			r.Category = cat
			results = append(results, r)
		}
	}

	for _, c := range doc.Compute {
		add("compute", SearchResult{
			Type:        c.ShapeType,
			Name:        c.Shape,
			Description: c.Description,
			PartNumber:  c.PartNumber,
			Price:       c.OCPUPriceHourly,
			Unit:        c.Unit,
			Currency:    c.Currency,
			Notes:       c.Notes,
		})
	}
	for _, s := range doc.Storage {
		add("storage", SearchResult{
			Type: s.Type, Name: s.Name, Description: s.Description,
			PartNumber: s.PartNumber, Price: s.Price, Unit: s.Unit,
			Currency: s.Currency, Notes: s.Notes,
		})
	}
	for _, d := range doc.Database {
		add("database", SearchResult{
			Type: d.Type, Name: d.Name, Description: d.Description,
			PartNumber: d.PartNumber, Price: d.ECPUPriceHourly, Unit: d.Unit,
			Currency: d.Currency, Notes: d.Notes,
		})
	}
	for _, n := range doc.Network {
		add("network", SearchResult{
			Type: n.Type, Name: n.Name, Description: n.Description,
			PartNumber: n.PartNumber, Price: n.Price, Unit: n.Unit,
			Currency: n.Currency, Notes: n.Notes,
		})
	}
	for _, k := range doc.Kubernetes {
		add("kubernetes", SearchResult{
			Type: k.Type, Name: k.Name, Description: k.Description,
			PartNumber: k.PartNumber, Price: k.Price, Unit: k.Unit,
			Currency: k.Currency, Notes: k.Notes,
		})
	}
	for _, cat := range ServiceCategories {
		items, _ := doc.ServicesFor(cat)
		for _, s := range items {
			add(cat, SearchResult{
				Type: s.Type, Name: s.Name, Description: s.Description,
				PartNumber: s.PartNumber, Price: s.Price, Unit: s.Unit,
				Currency: s.Currency, Notes: s.Notes,
			})
		}
	}

	return results, nil
}
