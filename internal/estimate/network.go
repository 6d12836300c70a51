package estimate

import (
	"fmt"
	"strings"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
)

// NetworkList is the filtered networking catalog grouped by offering type.
type NetworkList struct {
	Count  int                                 `json:"count"`
	Groups map[string][]catalog.NetworkPricing `json:"groups"`
	Tips   []string                            `json:"tips"`
}

var networkTips = []string{
	"The first 10 TB of outbound data transfer each month is free",
	"Flexible load balancers include the first 10 Mbps of provisioned bandwidth",
	"VPN Connect and NAT gateways carry no service charge",
}

// ListNetwork filters the networking catalog by optional type and name
// substrings.
func (e *Engine) ListNetwork(typeFilter, nameFilter string) (*NetworkList, error) {
	items, err := e.loader.Network()
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]catalog.NetworkPricing)
	count := 0
	for _, n := range items {
		if !containsFold(n.Type, typeFilter) || !containsFold(n.Name, nameFilter) {
			continue
		}
		groups[n.Type] = append(groups[n.Type], n)
		count++
	}
	return &NetworkList{Count: count, Groups: groups, Tips: networkTips}, nil
}

// NetworkConfig describes the networking usage to price. Zero-valued fields
// are skipped.
type NetworkConfig struct {
	OutboundDataGB   float64 `json:"outboundDataGb,omitempty"`
	LoadBalancers    float64 `json:"loadBalancers,omitempty"`
	BandwidthMbps    float64 `json:"bandwidthMbps,omitempty"`
	FastConnectType  string  `json:"fastConnectType,omitempty"` // fastconnect_1g, fastconnect_10g
	FastConnectPorts float64 `json:"fastConnectPorts,omitempty"`
	HoursPerMonth    float64 `json:"hoursPerMonth,omitempty"`
}

func findNetwork(items []catalog.NetworkPricing, typ string) (catalog.NetworkPricing, bool) {
	for _, n := range items {
		if strings.EqualFold(n.Type, typ) {
			return n, true
		}
	}
	return catalog.NetworkPricing{}, false
}

// CalculateNetwork prices networking usage. Free allowances (10 TB of egress,
// 10 Mbps of load balancer bandwidth) are subtracted before pricing the
// remainder.
func (e *Engine) CalculateNetwork(cfg NetworkConfig) (*Result, error) {
	items, err := e.loader.Network()
	if err != nil {
		return nil, err
	}

	r := &Result{Breakdown: []LineItem{}, Currency: "USD"}
	hours := hoursNote(cfg.HoursPerMonth, &r.Notes)

	if cfg.OutboundDataGB > 0 {
		if egress, ok := findNetwork(items, "outbound_data_transfer"); ok {
			billable := cfg.OutboundDataGB - egress.FreeAllowance
			if billable < 0 {
				billable = 0
			}
			r.Breakdown = append(r.Breakdown, LineItem{
				Category:    "network",
				Item:        egress.Name,
				Quantity:    billable,
				Unit:        egress.Unit,
				UnitPrice:   egress.Price,
				MonthlyCost: MonthlyCost(egress.Price, billable, 1),
			})
			if egress.FreeAllowance > 0 {
				r.Notes = append(r.Notes, fmt.Sprintf("First %s GB of outbound transfer is free; %s GB billable",
					trimFloat(egress.FreeAllowance), trimFloat(billable)))
			}
		}
	}

	if cfg.LoadBalancers > 0 {
		if base, ok := findNetwork(items, "load_balancer_base"); ok {
			r.Breakdown = append(r.Breakdown, LineItem{
				Category:    "network",
				Item:        base.Name,
				Quantity:    cfg.LoadBalancers,
				Unit:        base.Unit,
				UnitPrice:   base.Price,
				MonthlyCost: MonthlyCost(base.Price, cfg.LoadBalancers, hours),
			})
		}
		if cfg.BandwidthMbps > 0 {
			if bw, ok := findNetwork(items, "load_balancer_bandwidth"); ok {
				billable := cfg.BandwidthMbps - bw.FreeAllowance
				if billable < 0 {
					billable = 0
				}
				// The allowance is per load balancer; quantity is the billable
				// Mbps summed across all of them.
				quantity := billable * cfg.LoadBalancers
				r.Breakdown = append(r.Breakdown, LineItem{
					Category:    "network",
					Item:        bw.Name,
					Quantity:    quantity,
					Unit:        bw.Unit,
					UnitPrice:   bw.Price,
					MonthlyCost: MonthlyCost(bw.Price, quantity, hours),
				})
				if bw.FreeAllowance > 0 {
					r.Notes = append(r.Notes, fmt.Sprintf("First %s Mbps per load balancer is included",
						trimFloat(bw.FreeAllowance)))
				}
			}
		}
	}

	if cfg.FastConnectPorts > 0 {
		fcType := cfg.FastConnectType
		if fcType == "" {
			fcType = "fastconnect_1g"
		}
		if fc, ok := findNetwork(items, fcType); ok {
			r.Breakdown = append(r.Breakdown, LineItem{
				Category:    "network",
				Item:        fc.Name,
				Quantity:    cfg.FastConnectPorts,
				Unit:        fc.Unit,
				UnitPrice:   fc.Price,
				MonthlyCost: MonthlyCost(fc.Price, cfg.FastConnectPorts, hours),
			})
		} else {
			// Other usage in the same call stays priced; the unknown port
			// speed becomes a note, like any other unmatched sub-resource.
			e.logger.Debug().
				Str("category", "network").
				Str("query", fcType).
				Msg("pricing lookup miss")
			r.Notes = append(r.Notes, fmt.Sprintf("FastConnect type %q not found in pricing data", fcType))
		}
	}

	if len(r.Breakdown) == 0 {
		if len(r.Notes) == 0 {
			r.Notes = append(r.Notes, "No networking usage supplied; nothing to price")
		}
		r.Match = MatchNotFound
		return finalize(r), nil
	}
	return finalize(r), nil
}
