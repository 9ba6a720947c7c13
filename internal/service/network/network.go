// Package network derives the Panther Cloud Air flight network from the
// airport reference table: every airport connects to every hub, hubs connect
// to each other, and direct legs between non-hub airports exist only where
// they beat routing through a hub. Legs shorter than the minimum are never
// flown.
package network

import (
	"github.com/pcloudair/airports/internal/domain"
	"github.com/pcloudair/airports/internal/geo"
)

const (
	// minLegMiles is the shortest leg the airline will operate.
	minLegMiles = 150.0
	// shortHaulMiles marks routes that always get a direct leg.
	shortHaulMiles = 1000.0
	// directRatio gates long-haul directs: the direct leg must be at
	// least 15% shorter than the best hub routing.
	directRatio = 0.85

	domesticCountry = "United States"
)

// Leg is a single scheduled connection between two airports.
type Leg struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DistanceMiles float64 `json:"distance_miles"`
}

// RouteOption is one way of flying from an origin to a destination.
type RouteOption struct {
	Type          string   `json:"type"` // "direct" or "hub_connection"
	Route         []string `json:"route"`
	DistanceMiles float64  `json:"distance_miles"`
	Stops         int      `json:"stops"`
	Hub           string   `json:"hub,omitempty"`
}

// Stats summarizes the generated network.
type Stats struct {
	TotalLegs          int      `json:"total_legs"`
	UniqueRoutes       int      `json:"unique_routes"`
	HubLegs            int      `json:"hub_legs"`
	TotalDistanceMiles float64  `json:"total_distance_miles"`
	AverageLegMiles    float64  `json:"average_leg_miles"`
	Hubs               []string `json:"hubs"`
	AirportsServed     int      `json:"airports_served"`
}

// Network is the generated set of legs. Like the registry it is immutable
// after Build, so it can be shared across goroutines without locking.
type Network struct {
	legs    []Leg
	hubs    []string
	byCode  map[string]domain.Airport
	legByOD map[[2]string]Leg
}

// Build generates the network from the reference records. Only domestic
// airports participate; foreign rows in the table (a data-quality issue in
// their own right) are left out of the schedule.
func Build(airports []domain.Airport) *Network {
	n := &Network{
		byCode:  make(map[string]domain.Airport),
		legByOD: make(map[[2]string]Leg),
	}

	domestic := make([]domain.Airport, 0, len(airports))
	for _, a := range airports {
		if a.Country != domesticCountry {
			continue
		}
		domestic = append(domestic, a)
		n.byCode[a.Code] = a
		if a.IsHub {
			n.hubs = append(n.hubs, a.Code)
		}
	}

	// Hub-to-hub legs.
	for i, hub1 := range n.hubs {
		for _, hub2 := range n.hubs[i+1:] {
			n.addLegPair(n.byCode[hub1], n.byCode[hub2])
		}
	}

	// Every airport connects to every hub.
	for _, a := range domestic {
		if a.IsHub {
			continue
		}
		for _, hub := range n.hubs {
			n.addLegPair(a, n.byCode[hub])
		}
	}

	// Direct legs between non-hub airports, where efficient.
	for i, origin := range domestic {
		if origin.IsHub {
			continue
		}
		for _, destination := range domestic[i+1:] {
			if destination.IsHub {
				continue
			}
			direct := geo.DistanceMiles(origin, destination)
			if direct < minLegMiles {
				continue
			}
			if n.flyDirect(origin, destination, direct) {
				n.addLegPair(origin, destination)
			}
		}
	}

	return n
}

// addLegPair records both directions of a connection, dropping pairs that
// fall under the minimum leg length.
func (n *Network) addLegPair(a, b domain.Airport) {
	if _, exists := n.legByOD[[2]string{a.Code, b.Code}]; exists {
		return
	}
	distance := geo.DistanceMiles(a, b)
	if distance < minLegMiles {
		return
	}
	for _, od := range [][2]string{{a.Code, b.Code}, {b.Code, a.Code}} {
		leg := Leg{Origin: od[0], Destination: od[1], DistanceMiles: distance}
		n.legs = append(n.legs, leg)
		n.legByOD[od] = leg
	}
}

// flyDirect decides whether a non-hub pair deserves its own leg. Short and
// medium routes always fly direct; long routes only when the direct leg is
// clearly shorter than the best hub routing.
func (n *Network) flyDirect(origin, destination domain.Airport, direct float64) bool {
	if direct < shortHaulMiles {
		return true
	}
	viaHub, ok := n.bestHubDistance(origin, destination)
	if !ok {
		return true
	}
	return direct/viaHub <= directRatio
}

// bestHubDistance returns the shortest origin-hub-destination distance over
// hubs that are not themselves an endpoint.
func (n *Network) bestHubDistance(origin, destination domain.Airport) (float64, bool) {
	best := 0.0
	found := false
	for _, hub := range n.hubs {
		if hub == origin.Code || hub == destination.Code {
			continue
		}
		h := n.byCode[hub]
		total := geo.DistanceMiles(origin, h) + geo.DistanceMiles(h, destination)
		if !found || total < best {
			best = total
			found = true
		}
	}
	return best, found
}

// Legs returns every leg of the network. The returned slice is a copy.
func (n *Network) Legs() []Leg {
	out := make([]Leg, len(n.legs))
	copy(out, n.legs)
	return out
}

// Hubs returns the hub codes in table order.
func (n *Network) Hubs() []string {
	out := make([]string, len(n.hubs))
	copy(out, n.hubs)
	return out
}
