package catalog

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/cache"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	l, err := NewLoader(cache.New(time.Hour), zerolog.Nop())
	require.NoError(t, err)
	return l
}

func TestBundleParses(t *testing.T) {
	l := newTestLoader(t)
	doc, err := l.Document()
	require.NoError(t, err)

	assert.NotEmpty(t, doc.Metadata.Source)
	assert.Equal(t, "USD", doc.Metadata.Currency)
	assert.NotEmpty(t, doc.Compute)
	assert.NotEmpty(t, doc.Storage)
	assert.NotEmpty(t, doc.Database)
	assert.NotEmpty(t, doc.Network)
	assert.NotEmpty(t, doc.Kubernetes)
	assert.NotEmpty(t, doc.Multicloud)
}

func TestDocumentIsCached(t *testing.T) {
	l := newTestLoader(t)
	a, err := l.Document()
	require.NoError(t, err)
	b, err := l.Document()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestRefreshReloads(t *testing.T) {
	l := newTestLoader(t)
	a, err := l.Document()
	require.NoError(t, err)
	b, err := l.Refresh()
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, a.Metadata, b.Metadata)
}

func TestCategoryAccessors(t *testing.T) {
	l := newTestLoader(t)
	doc, err := l.Document()
	require.NoError(t, err)

	compute, err := l.Compute()
	require.NoError(t, err)
	assert.Len(t, compute, len(doc.Compute))

	storage, err := l.Storage()
	require.NoError(t, err)
	assert.Len(t, storage, len(doc.Storage))

	network, err := l.Network()
	require.NoError(t, err)
	assert.Len(t, network, len(doc.Network))
}

func TestServicesAccessor(t *testing.T) {
	l := newTestLoader(t)

	for _, cat := range ServiceCategories {
		items, err := l.Services(cat)
		require.NoError(t, err, cat)
		// Optional categories may be empty but never nil.
		assert.NotNil(t, items, cat)
	}

	_, err := l.Services("quantum")
	assert.Error(t, err)
}

func TestSearchByName(t *testing.T) {
	l := newTestLoader(t)

	results, err := l.Search("e5.flex", "")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "VM.Standard.E5.Flex", results[0].Name)
}

func TestSearchByPartNumber(t *testing.T) {
	l := newTestLoader(t)

	results, err := l.Search("B93113", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "VM.Standard.E4.Flex", results[0].Name)
}

func TestSearchCategoryFilter(t *testing.T) {
	l := newTestLoader(t)

	all, err := l.Search("storage", "")
	require.NoError(t, err)
	storageOnly, err := l.Search("storage", "storage")
	require.NoError(t, err)

	assert.Greater(t, len(all), 0)
	assert.LessOrEqual(t, len(storageOnly), len(all))
	for _, r := range storageOnly {
		assert.Equal(t, "storage", r.Category)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	l := newTestLoader(t)

	lower, err := l.Search("autonomous", "")
	require.NoError(t, err)
	upper, err := l.Search("AUTONOMOUS", "")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
	assert.NotEmpty(t, lower)
}
