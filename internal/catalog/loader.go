// Package catalog loads the bundled OCI pricing document and exposes typed
// per-category accessors. The parsed document is held in a TTL cache so the
// embedded JSON is decoded at most once per TTL window.
package catalog

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/cache"
)

const (
	// pricingDataKey is the cache key under which the parsed bundle lives.
	pricingDataKey = "oci_pricing_data"

	// bundleTTL governs how long a parsed bundle is served before re-read.
	bundleTTL = 24 * time.Hour
)

// Loader owns access to the bundled pricing document.
type Loader struct {
	cache  *cache.Cache
	logger zerolog.Logger
}

// NewLoader parses the embedded bundle once to validate it and returns a
// Loader backed by c. A malformed bundle is a fatal construction error; the
// process cannot serve any pricing request without it.
func NewLoader(c *cache.Cache, logger zerolog.Logger) (*Loader, error) {
	l := &Loader{cache: c, logger: logger}
	doc, err := l.parse()
	if err != nil {
		return nil, err
	}
	l.cache.SetWithTTL(pricingDataKey, doc, bundleTTL)
	logger.Info().
		Str("source", doc.Metadata.Source).
		Str("last_updated", doc.Metadata.LastUpdated).
		Int("compute_shapes", len(doc.Compute)).
		Int("database_offerings", len(doc.Database)).
		Msg("pricing catalog loaded")
	return l, nil
}

func (l *Loader) parse() (*Document, error) {
	var doc Document
	if err := json.Unmarshal(rawPricingJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bundled pricing data: %w", err)
	}
	return &doc, nil
}

// Document returns the parsed pricing bundle, re-reading the embedded JSON
// when the cached copy has expired.
func (l *Loader) Document() (*Document, error) {
	if v, ok := l.cache.Get(pricingDataKey); ok {
		if doc, ok := v.(*Document); ok {
			return doc, nil
		}
	}

	doc, err := l.parse()
	if err != nil {
		return nil, err
	}
	l.cache.SetWithTTL(pricingDataKey, doc, bundleTTL)
	l.logger.Debug().Msg("pricing catalog reloaded after cache miss")
	return doc, nil
}

// Refresh evicts the cached bundle and reloads it immediately. Used to pick
// up an updated bundle without restarting the process.
func (l *Loader) Refresh() (*Document, error) {
	l.cache.Delete(pricingDataKey)
	return l.Document()
}

// Compute returns the compute shape catalog.
func (l *Loader) Compute() ([]ComputeShape, error) {
	doc, err := l.Document()
	if err != nil {
		return nil, err
	}
	return doc.Compute, nil
}

// Storage returns the storage pricing catalog.
func (l *Loader) Storage() ([]StoragePricing, error) {
	doc, err := l.Document()
	if err != nil {
		return nil, err
	}
	return doc.Storage, nil
}

// Database returns the database pricing catalog.
func (l *Loader) Database() ([]DatabasePricing, error) {
	doc, err := l.Document()
	if err != nil {
		return nil, err
	}
	return doc.Database, nil
}

// Network returns the networking pricing catalog.
func (l *Loader) Network() ([]NetworkPricing, error) {
	doc, err := l.Document()
	if err != nil {
		return nil, err
	}
	return doc.Network, nil
}

// Kubernetes returns the OKE pricing catalog.
func (l *Loader) Kubernetes() ([]KubernetesPricing, error) {
	doc, err := l.Document()
	if err != nil {
		return nil, err
	}
	return doc.Kubernetes, nil
}

// Multicloud returns the multicloud database availability catalog.
func (l *Loader) Multicloud() ([]MulticloudDatabase, error) {
	doc, err := l.Document()
	if err != nil {
		return nil, err
	}
	return doc.Multicloud, nil
}

// Services returns the secondary category named by category. Absent optional
// arrays come back as an empty slice; an unknown category name is an error.
func (l *Loader) Services(category string) ([]ServicePricing, error) {
	doc, err := l.Document()
	if err != nil {
		return nil, err
	}
	items, ok := doc.ServicesFor(category)
	if !ok {
		return nil, fmt.Errorf("unknown service category %q", category)
	}
	if items == nil {
		return []ServicePricing{}, nil
	}
	return items, nil
}
