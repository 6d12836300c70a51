// Package integration holds cross-package tests for the pricing server.
//
// This file stresses the shared cache, loader, and estimation engine from
// many goroutines at once. The cache is the only mutable state in the
// process; every tool call funnels through it.
//
// Run with: go test ./test/integration/... -race -run Concurrent
package integration

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/cache"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
)

const (
	numGoroutines = 150
	numIterations = 10
)

func newEngine(t *testing.T) (*estimate.Engine, *catalog.Loader, *cache.Cache) {
	t.Helper()
	c := cache.New(time.Hour)
	loader, err := catalog.NewLoader(c, zerolog.Nop())
	require.NoError(t, err)
	return estimate.NewEngine(loader, zerolog.Nop()), loader, c
}

func TestConcurrentComputeEstimates(t *testing.T) {
	engine, _, _ := newEngine(t)

	var wg sync.WaitGroup
	totals := make(chan float64, numGoroutines*numIterations)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				res, err := engine.CalculateCompute(estimate.ComputeConfig{
					Shape: "VM.Standard.E5.Flex", OCPUs: 4, MemoryGB: 32,
				})
				if err != nil {
					t.Error(err)
					return
				}
				totals <- res.MonthlyTotal
			}
		}()
	}
	wg.Wait()
	close(totals)

	// Every call must see the same catalog and produce the same total.
	for total := range totals {
		assert.Equal(t, 134.32, total)
	}
}

func TestConcurrentRefreshDuringReads(t *testing.T) {
	engine, loader, c := newEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				switch n % 3 {
				case 0:
					if _, err := loader.Refresh(); err != nil {
						t.Error(err)
					}
				case 1:
					c.Clear()
				default:
					res, err := engine.CalculateStorage(estimate.StorageConfig{
						Type: "block_volume", SizeGB: 100,
					})
					if err != nil {
						t.Error(err)
						return
					}
					if res.MonthlyTotal != 2.55 {
						t.Errorf("unexpected total %v", res.MonthlyTotal)
					}
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestConcurrentMixedCategories(t *testing.T) {
	engine, loader, _ := newEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var err error
			switch n % 4 {
			case 0:
				_, err = engine.CalculateDatabase(estimate.DatabaseConfig{Type: "autonomous_transaction", ECPUs: 4})
			case 1:
				_, err = engine.CompareMulticloud("exadata", 4, 0)
			case 2:
				_, err = engine.EstimatePreset("small_web_app", "")
			default:
				_, err = loader.Search("gpu", "")
			}
			if err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
}
