package airports

import (
	"sort"

	"github.com/pcloudair/airports/internal/domain"
)

// sortByPopulation orders records by metro population in place, tie-breaking
// by ascending IATA code so equal populations come out deterministically.
func sortByPopulation(airports []domain.Airport, descending bool) {
	sort.Slice(airports, func(i, j int) bool {
		if airports[i].MetroPopulation != airports[j].MetroPopulation {
			if descending {
				return airports[i].MetroPopulation > airports[j].MetroPopulation
			}
			return airports[i].MetroPopulation < airports[j].MetroPopulation
		}
		return airports[i].Code < airports[j].Code
	})
}
