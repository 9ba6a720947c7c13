package geo

import (
	"testing"

	"github.com/pcloudair/airports/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHaversineMiles_SamePoint(t *testing.T) {
	assert.Zero(t, HaversineMiles(33.6407, -84.4277, 33.6407, -84.4277))
}

func TestHaversineMiles_KnownLeg(t *testing.T) {
	// ATL to JFK, roughly 750 miles.
	distance := HaversineMiles(33.6407, -84.4277, 40.6413, -73.7781)
	assert.InDelta(t, 750, distance, 15)
}

func TestHaversineMiles_Symmetric(t *testing.T) {
	ab := HaversineMiles(33.9425, -118.4081, 40.6413, -73.7781)
	ba := HaversineMiles(40.6413, -73.7781, 33.9425, -118.4081)
	assert.InDelta(t, ab, ba, 0.0001)

	// LAX to JFK is a transcontinental leg.
	assert.InDelta(t, 2470, ab, 30)
}

func TestDistanceMiles(t *testing.T) {
	atl := domain.Airport{Code: "ATL", Latitude: 33.6407, Longitude: -84.4277}
	jfk := domain.Airport{Code: "JFK", Latitude: 40.6413, Longitude: -73.7781}

	assert.InDelta(t, HaversineMiles(atl.Latitude, atl.Longitude, jfk.Latitude, jfk.Longitude), DistanceMiles(atl, jfk), 0.0001)
}

func TestMilesToKilometers(t *testing.T) {
	assert.InDelta(t, 160.934, MilesToKilometers(100), 0.001)
}
