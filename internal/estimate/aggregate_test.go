package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateMonthlyCostUnion(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.EstimateMonthlyCost(EstimateInput{
		Compute: &ComputeConfig{Shape: "VM.Standard.E5.Flex", OCPUs: 4, MemoryGB: 32},
		Storage: &StorageConfig{Type: "block_volume", SizeGB: 100},
		Network: &NetworkConfig{LoadBalancers: 1, BandwidthMbps: 10},
		Region:  "us-ashburn-1",
	})
	require.NoError(t, err)

	// compute OCPU + memory, storage capacity, LB base + bandwidth
	assert.Len(t, res.Breakdown, 5)
	assert.Equal(t, 154.61, res.MonthlyTotal) // 87.60 + 46.72 + 2.55 + 17.74 + 0
	assert.Equal(t, "us-ashburn-1", res.Region)

	// Total is the rounded sum of rounded line items.
	costs := make([]float64, len(res.Breakdown))
	for i, li := range res.Breakdown {
		costs[i] = li.MonthlyCost
	}
	assert.Equal(t, SumRounded(costs), res.MonthlyTotal)
}

func TestEstimateMonthlyCostSkipsMissingSubResources(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.EstimateMonthlyCost(EstimateInput{
		Storage: &StorageConfig{Type: "block_volume", SizeGB: 50},
	})
	require.NoError(t, err)
	assert.Len(t, res.Breakdown, 1)
}

func TestEstimateMonthlyCostUnknownSubResourceIsSoft(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.EstimateMonthlyCost(EstimateInput{
		Compute: &ComputeConfig{Shape: "VM.Bogus", OCPUs: 2},
		Storage: &StorageConfig{Type: "block_volume", SizeGB: 50},
	})
	require.NoError(t, err)

	// The unknown shape contributes a note, not a failure.
	assert.Len(t, res.Breakdown, 1)
	found := false
	for _, n := range res.Notes {
		if containsFold(n, "VM.Bogus") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEstimateMonthlyCostTopLevelHours(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.EstimateMonthlyCost(EstimateInput{
		Compute:       &ComputeConfig{Shape: "VM.Standard.E5.Flex", OCPUs: 4, MemoryGB: 32},
		HoursPerMonth: 160,
	})
	require.NoError(t, err)
	assert.Equal(t, 29.44, res.MonthlyTotal)
}

func TestEstimateMonthlyCostEmptyInput(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.EstimateMonthlyCost(EstimateInput{})
	require.NoError(t, err)
	assert.Empty(t, res.Breakdown)
	assert.Zero(t, res.MonthlyTotal)
}

func TestEstimatePreset(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.EstimatePreset("small_web_app", "")
	require.NoError(t, err)

	assert.NotEmpty(t, res.Breakdown)
	assert.Greater(t, res.MonthlyTotal, 0.0)
	require.NotEmpty(t, res.Notes)
	assert.Equal(t, "Preset: small_web_app", res.Notes[0])
}

func TestEstimatePresetDevTestUsesPartTimeHours(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.EstimatePreset("dev_test", "")
	require.NoError(t, err)

	found := false
	for _, n := range res.Notes {
		if containsFold(n, "not 24/7") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEstimatePresetUnknown(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.EstimatePreset("quantum_lab", "")
	require.NoError(t, err)
	assert.Empty(t, res.Breakdown)
	assert.Zero(t, res.MonthlyTotal)
	require.Len(t, res.Notes, 1)
	assert.Contains(t, res.Notes[0], "quantum_lab")
}

func TestPresetsStableOrder(t *testing.T) {
	a := Presets()
	b := Presets()
	assert.Equal(t, a, b)
	assert.Contains(t, a, "small_web_app")
	assert.Contains(t, a, "ml_training")
}
