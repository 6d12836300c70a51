package estimate

// EstimateInput is a whole-deployment cost request. Every sub-configuration
// is optional; absent ones are skipped, never an error.
type EstimateInput struct {
	Compute       *ComputeConfig    `json:"compute,omitempty"`
	Storage       *StorageConfig    `json:"storage,omitempty"`
	Database      *DatabaseConfig   `json:"database,omitempty"`
	Network       *NetworkConfig    `json:"network,omitempty"`
	Kubernetes    *KubernetesConfig `json:"kubernetes,omitempty"`
	Region        string            `json:"region,omitempty"`
	HoursPerMonth float64           `json:"hoursPerMonth,omitempty"`
}

// EstimateResult is the unioned monthly estimate across all supplied
// sub-configurations.
type EstimateResult struct {
	Breakdown    []LineItem `json:"breakdown"`
	MonthlyTotal float64    `json:"monthlyTotal"`
	Currency     string     `json:"currency"`
	Region       string     `json:"region,omitempty"`
	Notes        []string   `json:"notes"`
}

// EstimateMonthlyCost unions the per-category calculators over one input.
// Line items and notes accumulate in category order; unmatched sub-resources
// contribute their miss note and nothing else.
func (e *Engine) EstimateMonthlyCost(in EstimateInput) (*EstimateResult, error) {
	out := &EstimateResult{
		Breakdown: []LineItem{},
		Currency:  "USD",
		Region:    in.Region,
		Notes:     []string{},
	}

	merge := func(r *Result) {
		out.Breakdown = append(out.Breakdown, r.Breakdown...)
		out.Notes = append(out.Notes, r.Notes...)
	}

	// A top-level hours override applies to sub-configs that did not set
	// their own.
	hours := func(sub float64) float64 {
		if sub > 0 {
			return sub
		}
		return in.HoursPerMonth
	}

	if in.Compute != nil {
		cfg := *in.Compute
		cfg.HoursPerMonth = hours(cfg.HoursPerMonth)
		r, err := e.CalculateCompute(cfg)
		if err != nil {
			return nil, err
		}
		merge(r)
	}
	if in.Storage != nil {
		r, err := e.CalculateStorage(*in.Storage)
		if err != nil {
			return nil, err
		}
		merge(r)
	}
	if in.Database != nil {
		cfg := *in.Database
		cfg.HoursPerMonth = hours(cfg.HoursPerMonth)
		r, err := e.CalculateDatabase(cfg)
		if err != nil {
			return nil, err
		}
		merge(r)
	}
	if in.Network != nil {
		cfg := *in.Network
		cfg.HoursPerMonth = hours(cfg.HoursPerMonth)
		r, err := e.CalculateNetwork(cfg)
		if err != nil {
			return nil, err
		}
		merge(r)
	}
	if in.Kubernetes != nil {
		cfg := *in.Kubernetes
		cfg.HoursPerMonth = hours(cfg.HoursPerMonth)
		r, err := e.CalculateKubernetes(cfg)
		if err != nil {
			return nil, err
		}
		merge(r)
	}

	costs := make([]float64, len(out.Breakdown))
	for i, li := range out.Breakdown {
		costs[i] = li.MonthlyCost
	}
	out.MonthlyTotal = SumRounded(costs)
	out.Notes = dedupe(out.Notes)

	if in.Region != "" {
		out.Notes = append(out.Notes, "OCI list prices are identical across commercial regions")
	}
	return out, nil
}

// dedupe drops repeated notes (the hours override note can arrive from
// several sub-calculators) while preserving order.
func dedupe(notes []string) []string {
	seen := make(map[string]struct{}, len(notes))
	out := notes[:0]
	for _, n := range notes {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
