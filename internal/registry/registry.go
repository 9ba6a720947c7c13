package registry

import (
	"sort"

	"github.com/pcloudair/airports/internal/domain"
)

// Registry holds the full set of airport records. It is immutable after New
// returns, so it can be shared across goroutines without locking.
type Registry struct {
	airports []domain.Airport
	byCode   map[string]int
}

// New validates the records and builds a registry over them. The input order
// is the table order and is preserved by All, ListHubs and FilterByMinGates.
func New(airports []domain.Airport) (*Registry, error) {
	if len(airports) == 0 {
		return nil, &domain.ValidationError{Reason: "dataset is empty"}
	}

	byCode := make(map[string]int, len(airports))
	for i, a := range airports {
		if !domain.ValidCode(a.Code) {
			return nil, &domain.ValidationError{Code: a.Code, Reason: "IATA code must be exactly 3 uppercase letters"}
		}
		if a.Name == "" {
			return nil, &domain.ValidationError{Code: a.Code, Reason: "name is empty"}
		}
		if a.MetroPopulation < 1 {
			return nil, &domain.ValidationError{Code: a.Code, Reason: "metro population must be positive"}
		}
		if a.GateCount < 1 {
			return nil, &domain.ValidationError{Code: a.Code, Reason: "gate count must be positive"}
		}
		if _, dup := byCode[a.Code]; dup {
			return nil, &domain.ValidationError{Code: a.Code, Reason: "duplicate IATA code"}
		}
		byCode[a.Code] = i
	}

	records := make([]domain.Airport, len(airports))
	copy(records, airports)
	return &Registry{airports: records, byCode: byCode}, nil
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.airports)
}

// All returns every record in table order. The returned slice is a copy.
func (r *Registry) All() []domain.Airport {
	out := make([]domain.Airport, len(r.airports))
	copy(out, r.airports)
	return out
}

// GetByCode returns the record for an exact IATA code, or domain.ErrNotFound.
func (r *Registry) GetByCode(code string) (*domain.Airport, error) {
	i, ok := r.byCode[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a := r.airports[i]
	return &a, nil
}

// ListHubs returns the hub records in table order.
func (r *Registry) ListHubs() []domain.Airport {
	out := make([]domain.Airport, 0, 4)
	for _, a := range r.airports {
		if a.IsHub {
			out = append(out, a)
		}
	}
	return out
}

// FilterByMinGates returns records with at least n gates, in table order.
func (r *Registry) FilterByMinGates(n int) []domain.Airport {
	out := make([]domain.Airport, 0, len(r.airports))
	for _, a := range r.airports {
		if a.GateCount >= n {
			out = append(out, a)
		}
	}
	return out
}

// SortByPopulation returns all records ordered by metro population. Ties are
// broken by ascending IATA code so the order is deterministic.
func (r *Registry) SortByPopulation(descending bool) []domain.Airport {
	out := r.All()
	sort.Slice(out, func(i, j int) bool {
		if out[i].MetroPopulation != out[j].MetroPopulation {
			if descending {
				return out[i].MetroPopulation > out[j].MetroPopulation
			}
			return out[i].MetroPopulation < out[j].MetroPopulation
		}
		return out[i].Code < out[j].Code
	})
	return out
}
