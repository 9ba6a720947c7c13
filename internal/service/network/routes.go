package network

import (
	"sort"

	"github.com/pcloudair/airports/internal/domain"
)

const (
	optionDirect        = "direct"
	optionHubConnection = "hub_connection"
)

// RouteOptions returns every way of flying origin to destination on the
// network: the direct leg if one is scheduled, plus one-stop routings
// through each hub, shortest first.
func (n *Network) RouteOptions(origin, destination string) ([]RouteOption, error) {
	from, err := n.lookup(origin)
	if err != nil {
		return nil, err
	}
	to, err := n.lookup(destination)
	if err != nil {
		return nil, err
	}

	var options []RouteOption

	if leg, ok := n.legByOD[[2]string{from, to}]; ok {
		options = append(options, RouteOption{
			Type:          optionDirect,
			Route:         []string{from, to},
			DistanceMiles: leg.DistanceMiles,
			Stops:         0,
		})
	}

	for _, hub := range n.hubs {
		if hub == from || hub == to {
			continue
		}
		leg1, ok1 := n.legByOD[[2]string{from, hub}]
		leg2, ok2 := n.legByOD[[2]string{hub, to}]
		if !ok1 || !ok2 {
			continue
		}
		options = append(options, RouteOption{
			Type:          optionHubConnection,
			Route:         []string{from, hub, to},
			DistanceMiles: leg1.DistanceMiles + leg2.DistanceMiles,
			Stops:         1,
			Hub:           hub,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].DistanceMiles < options[j].DistanceMiles
	})
	return options, nil
}

// Stats summarizes the network.
func (n *Network) Stats() Stats {
	stats := Stats{
		TotalLegs:      len(n.legs),
		Hubs:           n.Hubs(),
		AirportsServed: len(n.byCode),
	}

	hubs := make(map[string]bool, len(n.hubs))
	for _, h := range n.hubs {
		hubs[h] = true
	}

	pairs := make(map[[2]string]bool)
	for _, leg := range n.legs {
		od := [2]string{leg.Origin, leg.Destination}
		if od[0] > od[1] {
			od[0], od[1] = od[1], od[0]
		}
		pairs[od] = true

		if hubs[leg.Origin] || hubs[leg.Destination] {
			stats.HubLegs++
		}
		stats.TotalDistanceMiles += leg.DistanceMiles
	}
	stats.UniqueRoutes = len(pairs)
	if len(n.legs) > 0 {
		stats.AverageLegMiles = stats.TotalDistanceMiles / float64(len(n.legs))
	}
	return stats
}

// Verify reports every leg that violates the minimum leg length. A network
// built by Build never has any; the check exists for audits over externally
// supplied schedules.
func (n *Network) Verify() []Leg {
	var violations []Leg
	for _, leg := range n.legs {
		if leg.DistanceMiles < minLegMiles {
			violations = append(violations, leg)
		}
	}
	return violations
}

// lookup normalizes a user-supplied code and confirms the airport is on the
// network.
func (n *Network) lookup(code string) (string, error) {
	normalized, err := domain.NormalizeCode(code)
	if err != nil {
		return "", err
	}
	if _, ok := n.byCode[normalized]; !ok {
		return "", domain.ErrNotFound
	}
	return normalized, nil
}
