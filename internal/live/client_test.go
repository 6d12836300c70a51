package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/cache"
)

const feedBody = `{
  "lastUpdated": "2026-08-20T05:00:00Z",
  "items": [
    {
      "partNumber": "B93113",
      "displayName": "Compute - Standard - E4 - OCPU",
      "metricName": "OCPU Per Hour",
      "serviceCategory": "Compute",
      "currencyCodeLocalizations": [
        {
          "currencyCode": "USD",
          "prices": [
            {"model": "MONTHLY_COMMIT", "value": 0.02},
            {"model": "PAY_AS_YOU_GO", "value": 0.025}
          ]
        },
        {
          "currencyCode": "EUR",
          "prices": [{"model": "PAY_AS_YOU_GO", "value": 0.023}]
        }
      ]
    },
    {
      "partNumber": "B90453",
      "displayName": "Autonomous Transaction Processing - BYOL - ECPU",
      "metricName": "ECPU Per Hour",
      "serviceCategory": "Database",
      "currencyCodeLocalizations": [
        {
          "currencyCode": "USD",
          "prices": [{"model": "PAY_AS_YOU_GO", "value": 0.0808}]
        }
      ]
    },
    {
      "partNumber": "B00000",
      "displayName": "Legacy metric with no usable price",
      "metricName": "Each",
      "serviceCategory": "Other",
      "currencyCodeLocalizations": [
        {
          "currencyCode": "USD",
          "prices": [{"model": "MONTHLY_COMMIT", "value": 1.0}]
        }
      ]
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, 5*time.Second, cache.New(time.Hour), zerolog.Nop())
	return c, srv
}

func TestSnapshotTransform(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "USD", r.URL.Query().Get("currencyCode"))
		w.Write([]byte(feedBody))
	})

	snap, err := c.Snapshot(context.Background(), "usd")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-20T05:00:00Z", snap.LastUpdated)
	assert.Equal(t, "USD", snap.Currency)
	// The item without a PAY_AS_YOU_GO entry is dropped.
	require.Len(t, snap.Items, 2)

	e4 := snap.Items[0]
	assert.Equal(t, "B93113", e4.PartNumber)
	assert.Equal(t, 0.025, e4.Price)
	assert.False(t, e4.BYOL)

	byol := snap.Items[1]
	assert.Equal(t, "Database", byol.Category)
	assert.True(t, byol.BYOL)
}

func TestSnapshotCachedPerCurrency(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(feedBody))
	})

	_, err := c.Snapshot(context.Background(), "USD")
	require.NoError(t, err)
	_, err = c.Snapshot(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// A different currency is a separate cache entry.
	_, err = c.Snapshot(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSnapshotNon2xx(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	})

	_, err := c.Snapshot(context.Background(), "USD")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusBadGateway, fetchErr.StatusCode)
	assert.Contains(t, fetchErr.Error(), "502")
}

func TestSnapshotTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := NewClient(srv.URL, time.Second, cache.New(time.Hour), zerolog.Nop())
	_, err := c.Snapshot(context.Background(), "USD")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
}

func TestSnapshotMalformedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	_, err := c.Snapshot(context.Background(), "USD")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "malformed")
}

func TestSearch(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedBody))
	})

	tests := []struct {
		name     string
		query    string
		category string
		want     int
	}{
		{name: "by display name", query: "autonomous", want: 1},
		{name: "by part number", query: "b93113", want: 1},
		{name: "by category substring", query: "compute", want: 1},
		{name: "category filter", query: "", category: "database", want: 1},
		{name: "no match", query: "kubernetes", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Search(context.Background(), "USD", tt.query, tt.category)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}
