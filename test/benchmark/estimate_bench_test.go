// Package benchmark provides performance benchmarks for the pricing engines.
//
// Run with: go test ./test/benchmark/... -bench=. -benchmem
package benchmark

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/cache"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
)

func newEngine(b *testing.B) (*estimate.Engine, *catalog.Loader) {
	b.Helper()
	loader, err := catalog.NewLoader(cache.New(time.Hour), zerolog.Nop())
	if err != nil {
		b.Fatal(err)
	}
	return estimate.NewEngine(loader, zerolog.Nop()), loader
}

// BenchmarkCalculateCompute measures a single shape cost estimation.
func BenchmarkCalculateCompute(b *testing.B) {
	engine, _ := newEngine(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.CalculateCompute(estimate.ComputeConfig{
			Shape: "VM.Standard.E5.Flex", OCPUs: 4, MemoryGB: 32,
		})
	}
}

// BenchmarkEstimateMonthlyCost measures a full multi-category aggregate.
func BenchmarkEstimateMonthlyCost(b *testing.B) {
	engine, _ := newEngine(b)
	in := estimate.EstimateInput{
		Compute:  &estimate.ComputeConfig{Shape: "VM.Standard.E5.Flex", OCPUs: 4, MemoryGB: 32, Instances: 3},
		Storage:  &estimate.StorageConfig{Type: "block_volume", SizeGB: 500},
		Database: &estimate.DatabaseConfig{Type: "autonomous_transaction", ECPUs: 4, StorageGB: 1024},
		Network:  &estimate.NetworkConfig{OutboundDataGB: 15000, LoadBalancers: 2, BandwidthMbps: 100},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.EstimateMonthlyCost(in)
	}
}

// BenchmarkSearch measures a whole-catalog substring search.
func BenchmarkSearch(b *testing.B) {
	_, loader := newEngine(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loader.Search("gpu", "")
	}
}

// BenchmarkCatalogReload measures a cold catalog parse and reload.
func BenchmarkCatalogReload(b *testing.B) {
	_, loader := newEngine(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := loader.Refresh(); err != nil {
			b.Fatal(err)
		}
	}
}
