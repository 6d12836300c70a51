// Package estimate implements the lookup and monthly-cost estimation engines
// for each OCI resource category. Every calculation is unit price times
// quantity times an hours-per-month factor, rounded to 2 decimals at the
// point of computation. Unmatched resources produce a soft not-found result
// with an advisory note, never an error.
package estimate

// DefaultHoursPerMonth converts an hourly unit price to a monthly cost.
const DefaultHoursPerMonth = 730.0

// MatchState disambiguates a zero-total result: a resource can be priced,
// genuinely free, or simply not found in the catalog.
type MatchState string

const (
	MatchPriced   MatchState = "found_priced"
	MatchFree     MatchState = "found_free"
	MatchNotFound MatchState = "not_found"
)

// LineItem is one priced component of an estimate.
type LineItem struct {
	Category    string  `json:"category"`
	Item        string  `json:"item"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	MonthlyCost float64 `json:"monthlyCost"`
}

// Savings reports the avoided cost of a BYOL database variant relative to
// license-included pricing. Present only when the estimate itself was
// computed with license-included pricing.
type Savings struct {
	LicenseIncludedMonthly float64 `json:"licenseIncludedMonthly"`
	BYOLMonthly            float64 `json:"byolMonthly"`
	MonthlySavings         float64 `json:"monthlySavings"`
	Percent                float64 `json:"percent"`
}

// Result is the outcome of a single-category calculate operation.
type Result struct {
	Match        MatchState `json:"match"`
	Breakdown    []LineItem `json:"breakdown"`
	MonthlyTotal float64    `json:"monthlyTotal"`
	Currency     string     `json:"currency"`
	Notes        []string   `json:"notes"`
	Savings      *Savings   `json:"savings,omitempty"`
}

func notFound(note string) *Result {
	return &Result{
		Match:        MatchNotFound,
		Breakdown:    []LineItem{},
		MonthlyTotal: 0,
		Currency:     "USD",
		Notes:        []string{note},
	}
}

// finalize totals the breakdown and classifies the match state for a result
// whose items were all found.
func finalize(r *Result) *Result {
	costs := make([]float64, len(r.Breakdown))
	for i, li := range r.Breakdown {
		costs[i] = li.MonthlyCost
	}
	r.MonthlyTotal = SumRounded(costs)
	if r.Currency == "" {
		r.Currency = "USD"
	}
	if r.Notes == nil {
		r.Notes = []string{}
	}
	if r.Match == "" {
		if r.MonthlyTotal == 0 {
			r.Match = MatchFree
		} else {
			r.Match = MatchPriced
		}
	}
	return r
}

// hoursNote appends the non-24/7 advisory when an hours override is in play,
// and returns the effective hours factor.
func hoursNote(hours float64, notes *[]string) float64 {
	if hours <= 0 {
		return DefaultHoursPerMonth
	}
	if hours != DefaultHoursPerMonth {
		*notes = append(*notes, hoursOverrideNote(hours))
	}
	return hours
}

func hoursOverrideNote(hours float64) string {
	return "Estimate assumes " + trimFloat(hours) + " hours/month (not 24/7 usage)"
}
