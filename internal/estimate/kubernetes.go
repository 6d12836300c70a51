package estimate

import (
	"fmt"
	"strings"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
)

// KubernetesList is the filtered OKE catalog.
type KubernetesList struct {
	Count int                         `json:"count"`
	Items []catalog.KubernetesPricing `json:"items"`
	Tips  []string                    `json:"tips"`
}

var kubernetesTips = []string{
	"OKE basic clusters have a free control plane; you pay only for worker node compute",
	"Enhanced clusters add a financially backed SLA, managed add-ons, and workload identity",
	"Virtual nodes remove worker node management; pod compute bills at container instance rates",
}

// ListKubernetes filters the OKE pricing catalog by an optional type
// substring.
func (e *Engine) ListKubernetes(typeFilter string) (*KubernetesList, error) {
	items, err := e.loader.Kubernetes()
	if err != nil {
		return nil, err
	}

	var filtered []catalog.KubernetesPricing
	for _, k := range items {
		if containsFold(k.Type, typeFilter) || containsFold(k.Name, typeFilter) {
			filtered = append(filtered, k)
		}
	}
	if filtered == nil {
		filtered = []catalog.KubernetesPricing{}
	}
	return &KubernetesList{Count: len(filtered), Items: filtered, Tips: kubernetesTips}, nil
}

// KubernetesConfig describes an OKE deployment to price. Worker node compute
// is estimated separately through the compute calculator.
type KubernetesConfig struct {
	ClusterType   string  `json:"clusterType"` // basic or enhanced
	Clusters      float64 `json:"clusters,omitempty"`
	VirtualNodes  float64 `json:"virtualNodes,omitempty"`
	HoursPerMonth float64 `json:"hoursPerMonth,omitempty"`
}

// CalculateKubernetes prices OKE control plane and virtual node usage.
func (e *Engine) CalculateKubernetes(cfg KubernetesConfig) (*Result, error) {
	items, err := e.loader.Kubernetes()
	if err != nil {
		return nil, err
	}

	clusterType := strings.ToLower(cfg.ClusterType)
	if clusterType == "" {
		clusterType = "basic"
	}

	var cluster catalog.KubernetesPricing
	found := false
	for _, k := range items {
		if strings.EqualFold(k.Type, "oke_"+clusterType) || strings.EqualFold(k.Type, clusterType) {
			cluster = k
			found = true
			break
		}
	}
	if !found {
		return e.miss("kubernetes", cfg.ClusterType, fmt.Sprintf("Kubernetes cluster type %q not found in pricing data", cfg.ClusterType)), nil
	}

	clusters := cfg.Clusters
	if clusters <= 0 {
		clusters = 1
	}

	r := &Result{Breakdown: []LineItem{}, Currency: cluster.Currency}
	hours := hoursNote(cfg.HoursPerMonth, &r.Notes)

	r.Breakdown = append(r.Breakdown, LineItem{
		Category:    "kubernetes",
		Item:        cluster.Name,
		Quantity:    clusters,
		Unit:        cluster.Unit,
		UnitPrice:   cluster.Price,
		MonthlyCost: MonthlyCost(cluster.Price, clusters, hours),
	})

	if cfg.VirtualNodes > 0 {
		for _, k := range items {
			if k.Type == "virtual_node" {
				r.Breakdown = append(r.Breakdown, LineItem{
					Category:    "kubernetes",
					Item:        k.Name,
					Quantity:    cfg.VirtualNodes,
					Unit:        k.Unit,
					UnitPrice:   k.Price,
					MonthlyCost: MonthlyCost(k.Price, cfg.VirtualNodes, hours),
				})
				break
			}
		}
	}

	if cluster.Notes != "" {
		r.Notes = append(r.Notes, cluster.Notes)
	}
	return finalize(r), nil
}
