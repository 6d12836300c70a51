package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareMulticloudFullParity(t *testing.T) {
	e := newTestEngine(t)

	cmp, err := e.CompareMulticloud("exadata", 4, 0)
	require.NoError(t, err)

	require.Len(t, cmp.Comparison, 4)
	for _, row := range cmp.Comparison {
		assert.True(t, row.Available, row.Provider)
		assert.True(t, row.PriceParity, row.Provider)
		assert.Equal(t, 981.12, row.MonthlyEstimate, row.Provider) // 0.336 * 4 * 730
	}
}

func TestCompareMulticloudPartialAvailability(t *testing.T) {
	e := newTestEngine(t)

	// Base Database is offered on Azure and GCP but not AWS. The "base" tag
	// must resolve to its own record, not substring-match another product's
	// name ("base" appears inside every "... Database ..." display name).
	cmp, err := e.CompareMulticloud("base", 2, 0)
	require.NoError(t, err)

	assert.Equal(t, "base", cmp.Product)
	require.Len(t, cmp.Comparison, 4)

	byProvider := make(map[string]ProviderComparison, 4)
	for _, row := range cmp.Comparison {
		byProvider[row.Provider] = row
	}

	aws := byProvider["aws"]
	assert.False(t, aws.Available)
	assert.Zero(t, aws.MonthlyEstimate)

	azure := byProvider["azure"]
	assert.True(t, azure.Available)
	assert.Equal(t, 314.05, azure.MonthlyEstimate) // 0.2151 * 2 * 730
}

func TestCompareMulticloudByNameSubstring(t *testing.T) {
	e := newTestEngine(t)

	cmp, err := e.CompareMulticloud("Autonomous", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "autonomous", cmp.Product)
}

func TestCompareMulticloudUnknownProduct(t *testing.T) {
	e := newTestEngine(t)

	cmp, err := e.CompareMulticloud("timesten", 2, 0)
	require.NoError(t, err)
	assert.Empty(t, cmp.Comparison)
	require.Len(t, cmp.Notes, 1)
	assert.Contains(t, cmp.Notes[0], "timesten")
}

func TestCompareMulticloudHoursOverride(t *testing.T) {
	e := newTestEngine(t)

	cmp, err := e.CompareMulticloud("exadata", 4, 365)
	require.NoError(t, err)
	assert.Equal(t, 490.56, cmp.Comparison[0].MonthlyEstimate)
	require.NotEmpty(t, cmp.Notes)
	assert.Contains(t, cmp.Notes[0], "not 24/7")
}
