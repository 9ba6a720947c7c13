package repository

import (
	"context"

	"github.com/pcloudair/airports/internal/domain"
	"github.com/pcloudair/airports/internal/registry"
)

// StaticAirportRepository serves straight from the embedded registry. Used
// when no database is configured; the registry is read-only, so no locking
// is needed.
type StaticAirportRepository struct {
	reg *registry.Registry
}

func NewStaticRepository(reg *registry.Registry) *StaticAirportRepository {
	return &StaticAirportRepository{reg: reg}
}

func (r *StaticAirportRepository) List(_ context.Context) ([]domain.Airport, error) {
	return r.reg.All(), nil
}

func (r *StaticAirportRepository) GetByCode(_ context.Context, code string) (*domain.Airport, error) {
	return r.reg.GetByCode(code)
}

func (r *StaticAirportRepository) Stats(_ context.Context) (*domain.DatasetStats, error) {
	stats := domain.DatasetStats{TotalAirports: r.reg.Len()}
	for _, a := range r.reg.All() {
		if a.IsHub {
			stats.TotalHubs++
		}
		stats.TotalGates += a.GateCount
		if a.MetroPopulation > stats.MaxMetroPopulation {
			stats.MaxMetroPopulation = a.MetroPopulation
		}
	}
	return &stats, nil
}

var _ AirportRepository = (*StaticAirportRepository)(nil)
