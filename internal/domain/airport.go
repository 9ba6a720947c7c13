package domain

// Airport is a single row of the reference table. Records are created once
// at load time and never mutated afterwards.
type Airport struct {
	Code            string  `json:"code" csv:"code"`
	Name            string  `json:"name" csv:"name"`
	City            string  `json:"city" csv:"city"`
	State           string  `json:"state" csv:"state"`
	Country         string  `json:"country" csv:"country"`
	Latitude        float64 `json:"latitude" csv:"latitude"`
	Longitude       float64 `json:"longitude" csv:"longitude"`
	MetroPopulation int64   `json:"metro_population" csv:"metro_population"`
	GateCount       int     `json:"gate_count" csv:"gate_count"`
	IsHub           bool    `json:"is_hub" csv:"is_hub"`
}

// Route describes the great-circle leg between two airports.
type Route struct {
	Origin             Airport `json:"origin"`
	Destination        Airport `json:"destination"`
	DistanceMiles      float64 `json:"distance_miles"`
	DistanceKilometers float64 `json:"distance_kilometers"`
}

// DatasetStats is the summary reported by /stats/summary.
type DatasetStats struct {
	TotalAirports      int   `json:"total_airports"`
	TotalHubs          int   `json:"total_hubs"`
	TotalGates         int   `json:"total_gates"`
	MaxMetroPopulation int64 `json:"max_metro_population"`
}
