package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.01, Round2(0.005))
	assert.Equal(t, 0.33, Round2(0.334999))
	assert.Equal(t, 1.0, Round2(0.999999))
	assert.Equal(t, 0.0, Round2(0))
}

func TestMonthlyCost(t *testing.T) {
	// 0.03/OCPU-hr x 4 OCPUs x 730 hours.
	assert.Equal(t, 87.60, MonthlyCost(0.03, 4, 730))
	// Monthly units carry an hours factor of 1.
	assert.Equal(t, 2.55, MonthlyCost(0.0255, 100, 1))
	assert.Equal(t, 0.0, MonthlyCost(0.0255, 0, 1))
}

func TestMonthlyCostAvoidsFloatDrift(t *testing.T) {
	// 0.1 x 3 x 1 is 0.30000000000000004 in raw float64 arithmetic.
	assert.Equal(t, 0.3, MonthlyCost(0.1, 3, 1))
}

func TestSumRounded(t *testing.T) {
	assert.Equal(t, 0.3, SumRounded([]float64{0.1, 0.1, 0.1}))
	assert.Equal(t, 0.0, SumRounded(nil))
}

func TestTrimFloat(t *testing.T) {
	assert.Equal(t, "10240", trimFloat(10240))
	assert.Equal(t, "1.5", trimFloat(1.5))
}
