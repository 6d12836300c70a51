// Command check-pricing compares the bundled pricing catalog against the
// public Oracle pricing API and reports drifted part numbers. Run it before
// cutting a release to decide whether the bundle needs a refresh.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/cache"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/live"
)

type bundledPrice struct {
	category string
	name     string
	price    float64
}

func main() {
	endpoint := flag.String("endpoint", "", "Pricing API endpoint (default: the public Oracle API)")
	timeout := flag.Duration("timeout", 60*time.Second, "Fetch timeout")
	tolerance := flag.Float64("tolerance", 0.0001, "Absolute price difference treated as equal")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	loader, err := catalog.NewLoader(cache.New(time.Hour), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading bundled catalog: %v\n", err)
		os.Exit(1)
	}
	doc, err := loader.Document()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading bundled catalog: %v\n", err)
		os.Exit(1)
	}

	client := live.NewClient(*endpoint, *timeout, cache.New(time.Minute), logger)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	snap, err := client.Snapshot(ctx, "USD")
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetching live pricing: %v\n", err)
		os.Exit(1)
	}

	liveByPart := make(map[string]float64, len(snap.Items))
	for _, item := range snap.Items {
		liveByPart[item.PartNumber] = item.Price
	}

	drifted, missing, checked := 0, 0, 0
	for part, b := range bundledParts(doc) {
		checked++
		livePrice, ok := liveByPart[part]
		if !ok {
			missing++
			fmt.Printf("MISSING  %-8s %s (%s): not in live feed\n", part, b.name, b.category)
			continue
		}
		if math.Abs(livePrice-b.price) > *tolerance {
			drifted++
			fmt.Printf("DRIFT    %-8s %s (%s): bundled %g, live %g\n", part, b.name, b.category, b.price, livePrice)
		}
	}

	fmt.Printf("checked %d part numbers: %d drifted, %d missing from feed\n", checked, drifted, missing)
	if drifted > 0 {
		os.Exit(1)
	}
}

// bundledParts collects every bundle entry that carries a part number, keyed
// by part number. The comparable price is the entry's primary hourly or
// per-unit rate.
func bundledParts(doc *catalog.Document) map[string]bundledPrice {
	out := make(map[string]bundledPrice)
	add := func(part, category, name string, price float64) {
		if part != "" {
			out[part] = bundledPrice{category: category, name: name, price: price}
		}
	}

	for _, s := range doc.Compute {
		add(s.PartNumber, "compute", s.Shape, s.OCPUPriceHourly)
	}
	for _, s := range doc.Storage {
		add(s.PartNumber, "storage", s.Name, s.Price)
	}
	for _, d := range doc.Database {
		add(d.PartNumber, "database", d.Name, d.ECPUPriceHourly)
	}
	for _, n := range doc.Network {
		add(n.PartNumber, "network", n.Name, n.Price)
	}
	for _, k := range doc.Kubernetes {
		add(k.PartNumber, "kubernetes", k.Name, k.Price)
	}
	for _, category := range catalog.ServiceCategories {
		items, _ := doc.ServicesFor(category)
		for _, s := range items {
			add(s.PartNumber, category, s.Name, s.Price)
		}
	}
	return out
}
