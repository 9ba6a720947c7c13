// Package dataset holds the embedded airport reference table. The CSV is
// compiled into the binary, so load never touches the filesystem.
package dataset

import (
	_ "embed"
	"fmt"

	"github.com/jszwec/csvutil"
	"github.com/pcloudair/airports/internal/domain"
	"github.com/pcloudair/airports/internal/registry"
)

//go:embed airports.csv
var airportsCSV []byte

// Records decodes the embedded table into airport records in table order.
func Records() ([]domain.Airport, error) {
	var records []domain.Airport
	if err := csvutil.Unmarshal(airportsCSV, &records); err != nil {
		return nil, fmt.Errorf("decode embedded airport table: %w", err)
	}
	return records, nil
}

// Load decodes and validates the embedded table and returns the registry
// over it. Validation failures surface as *domain.ValidationError.
func Load() (*registry.Registry, error) {
	records, err := Records()
	if err != nil {
		return nil, err
	}
	return registry.New(records)
}
