package live

// feedResponse mirrors the public OCI price list API response. Only the
// fields the transform needs are mapped.
type feedResponse struct {
	LastUpdated string     `json:"lastUpdated"`
	Items       []feedItem `json:"items"`
}

type feedItem struct {
	PartNumber                string                 `json:"partNumber"`
	DisplayName               string                 `json:"displayName"`
	MetricName                string                 `json:"metricName"`
	ServiceCategory           string                 `json:"serviceCategory"`
	CurrencyCodeLocalizations []currencyLocalization `json:"currencyCodeLocalizations"`
}

type currencyLocalization struct {
	CurrencyCode string       `json:"currencyCode"`
	Prices       []priceEntry `json:"prices"`
}

// priceEntry is one billing-model price. The transform keeps only the
// PAY_AS_YOU_GO entry.
type priceEntry struct {
	Model string  `json:"model"`
	Value float64 `json:"value"`
}

// Item is a normalized live pricing record for one part number in one
// currency.
type Item struct {
	PartNumber  string  `json:"partNumber"`
	DisplayName string  `json:"displayName"`
	MetricName  string  `json:"metricName"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	BYOL        bool    `json:"byol"`
}

// Snapshot is the transformed feed for one currency.
type Snapshot struct {
	LastUpdated string `json:"lastUpdated"`
	Currency    string `json:"currency"`
	Items       []Item `json:"items"`
}
