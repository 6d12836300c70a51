// Package live fetches the public OCI price list API and normalizes it into
// per-currency pricing snapshots. Results are cached for a short TTL; a
// failed fetch never disturbs the bundled catalog.
package live

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/cache"
)

const (
	// DefaultEndpoint is Oracle's public cost estimator products API.
	DefaultEndpoint = "https://apexapps.oracle.com/pls/apex/cetools/api/v1/products/"

	// snapshotTTL bounds how long a transformed feed is served per currency.
	snapshotTTL = 5 * time.Minute

	defaultTimeout = 30 * time.Second

	payAsYouGoModel = "PAY_AS_YOU_GO"
)

// FetchError reports a failed feed fetch. StatusCode is zero for transport
// errors.
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("live pricing fetch failed: status %d: %s", e.StatusCode, e.Message)
	}
	return "live pricing fetch failed: " + e.Message
}

// Client fetches and caches live pricing snapshots. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	cache      *cache.Cache
	logger     zerolog.Logger
}

// NewClient returns a Client against endpoint (DefaultEndpoint when empty),
// caching snapshots in c.
func NewClient(endpoint string, timeout time.Duration, c *cache.Cache, logger zerolog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		cache:      c,
		logger:     logger,
	}
}

func snapshotKey(currency string) string {
	return "realtime_pricing_" + currency
}

// Snapshot returns the live price list for currency, serving the cached
// transform when fresh. No retry is performed on failure; the error is
// surfaced to the caller immediately.
func (c *Client) Snapshot(ctx context.Context, currency string) (*Snapshot, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}

	if v, ok := c.cache.Get(snapshotKey(currency)); ok {
		if snap, ok := v.(*Snapshot); ok {
			return snap, nil
		}
	}

	start := time.Now()
	feed, err := c.fetch(ctx, currency)
	if err != nil {
		return nil, err
	}

	snap := transform(feed, currency)
	c.cache.SetWithTTL(snapshotKey(currency), snap, snapshotTTL)

	c.logger.Info().
		Str("currency", currency).
		Int("items", len(snap.Items)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("live pricing feed refreshed")
	return snap, nil
}

// Search filters the live snapshot by case-insensitive substring match across
// display name, part number, and category, optionally restricted further by
// an explicit category substring.
func (c *Client) Search(ctx context.Context, currency, query, category string) ([]Item, error) {
	snap, err := c.Snapshot(ctx, currency)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	cat := strings.ToLower(category)
	var out []Item
	for _, it := range snap.Items {
		if cat != "" && !strings.Contains(strings.ToLower(it.Category), cat) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(it.DisplayName), q) &&
			!strings.Contains(strings.ToLower(it.PartNumber), q) &&
			!strings.Contains(strings.ToLower(it.Category), q) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, currency string) (*feedResponse, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	q := u.Query()
	q.Set("currencyCode", currency)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &FetchError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, &FetchError{Message: "malformed feed response: " + err.Error()}
	}
	return &feed, nil
}

// transform extracts the pay-as-you-go price for the requested currency from
// each feed item. Items lacking one are dropped. BYOL variants are flagged by
// substring match on the display name.
func transform(feed *feedResponse, currency string) *Snapshot {
	snap := &Snapshot{
		LastUpdated: feed.LastUpdated,
		Currency:    currency,
	}
	for _, raw := range feed.Items {
		price, ok := payGoPrice(raw, currency)
		if !ok {
			continue
		}
		snap.Items = append(snap.Items, Item{
			PartNumber:  raw.PartNumber,
			DisplayName: raw.DisplayName,
			MetricName:  raw.MetricName,
			Category:    raw.ServiceCategory,
			Price:       price,
			Currency:    currency,
			BYOL:        strings.Contains(strings.ToUpper(raw.DisplayName), "BYOL"),
		})
	}
	return snap
}

func payGoPrice(raw feedItem, currency string) (float64, bool) {
	for _, loc := range raw.CurrencyCodeLocalizations {
		if !strings.EqualFold(loc.CurrencyCode, currency) {
			continue
		}
		for _, p := range loc.Prices {
			if p.Model == payAsYouGoModel {
				return p.Value, true
			}
		}
	}
	return 0, false
}
