package airports

import (
	"context"
	"time"

	"github.com/pcloudair/airports/internal/domain"
	"github.com/pcloudair/airports/internal/geo"
	"github.com/pcloudair/airports/internal/metrics"
	"github.com/pcloudair/airports/internal/repository"
)

type AirportUseCase interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByCode(ctx context.Context, code string) (*domain.Airport, error)
	ListHubs(ctx context.Context) ([]domain.Airport, error)
	FilterByMinGates(ctx context.Context, minGates int) ([]domain.Airport, error)
	SortByPopulation(ctx context.Context, descending bool) ([]domain.Airport, error)
	Route(ctx context.Context, from, to string) (*domain.Route, error)
	Stats(ctx context.Context) (*domain.DatasetStats, error)
}

type Cache interface {
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
}

type AirportService struct {
	repo     repository.AirportRepository
	cache    Cache
	cacheTTL time.Duration
	metrics  *metrics.Registry
}

type AirportServiceOption func(*AirportService)

func WithMetrics(m *metrics.Registry) AirportServiceOption {
	return func(s *AirportService) {
		s.metrics = m
	}
}

func NewAirportService(repo repository.AirportRepository, cache Cache, cacheTTL time.Duration, opts ...AirportServiceOption) *AirportService {
	service := &AirportService{repo: repo, cache: cache, cacheTTL: cacheTTL}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// List returns every record in table order, read-through cached.
func (s *AirportService) List(ctx context.Context) ([]domain.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			if s.metrics != nil {
				s.metrics.CacheHitsTotal.Inc()
			}
			return cached, nil
		}
		if s.metrics != nil {
			s.metrics.CacheMissesTotal.Inc()
		}
	}

	airports, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAirports(ctx, airports)
	}
	return airports, nil
}

// GetByCode accepts any case and surrounding whitespace. Returns
// domain.ErrNotFound for an unknown code and *domain.ValidationError for a
// malformed one.
func (s *AirportService) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	normalized, err := domain.NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.LookupsTotal.Inc()
	}
	return s.repo.GetByCode(ctx, normalized)
}

func (s *AirportService) ListHubs(ctx context.Context) ([]domain.Airport, error) {
	airports, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	hubs := make([]domain.Airport, 0, 4)
	for _, a := range airports {
		if a.IsHub {
			hubs = append(hubs, a)
		}
	}
	return hubs, nil
}

func (s *AirportService) FilterByMinGates(ctx context.Context, minGates int) ([]domain.Airport, error) {
	if minGates < 0 {
		return nil, &domain.ValidationError{Reason: "minimum gate count must not be negative"}
	}
	airports, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Airport, 0, len(airports))
	for _, a := range airports {
		if a.GateCount >= minGates {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *AirportService) SortByPopulation(ctx context.Context, descending bool) ([]domain.Airport, error) {
	airports, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByPopulation(airports, descending)
	return airports, nil
}

// Route computes the great-circle leg between two airports.
func (s *AirportService) Route(ctx context.Context, from, to string) (*domain.Route, error) {
	origin, err := s.GetByCode(ctx, from)
	if err != nil {
		return nil, err
	}
	destination, err := s.GetByCode(ctx, to)
	if err != nil {
		return nil, err
	}

	miles := geo.DistanceMiles(*origin, *destination)
	return &domain.Route{
		Origin:             *origin,
		Destination:        *destination,
		DistanceMiles:      miles,
		DistanceKilometers: geo.MilesToKilometers(miles),
	}, nil
}

func (s *AirportService) Stats(ctx context.Context) (*domain.DatasetStats, error) {
	return s.repo.Stats(ctx)
}

var _ AirportUseCase = (*AirportService)(nil)
