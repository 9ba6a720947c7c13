package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pcloudair/airports/internal/domain"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByCode(ctx context.Context, code string) (*domain.Airport, error)
	Stats(ctx context.Context) (*domain.DatasetStats, error)
}

// PGAirportRepository serves the reference table out of Postgres. The table
// is a mirror of the embedded dataset, reseeded on startup; the position
// column preserves the original table order.
type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) *PGAirportRepository {
	return &PGAirportRepository{db: db}
}

const createAirportsTable = `
CREATE TABLE IF NOT EXISTS airports (
	position          int PRIMARY KEY,
	code              varchar(3) UNIQUE NOT NULL,
	name              varchar(255) NOT NULL,
	city              varchar(100) NOT NULL,
	state             varchar(50),
	country           varchar(50) NOT NULL,
	latitude          double precision NOT NULL,
	longitude         double precision NOT NULL,
	metro_population  bigint NOT NULL,
	gate_count        int NOT NULL,
	is_hub            boolean NOT NULL DEFAULT false
)`

// Seed replaces the table contents with the given records, keeping their
// order. It runs in a single transaction so readers never see a partial set.
func (r *PGAirportRepository) Seed(ctx context.Context, airports []domain.Airport) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, createAirportsTable); err != nil {
		return fmt.Errorf("create airports table: %w", err)
	}
	if _, err := tx.Exec(ctx, `TRUNCATE airports`); err != nil {
		return fmt.Errorf("truncate airports: %w", err)
	}

	batch := &pgx.Batch{}
	for i, a := range airports {
		batch.Queue(
			`INSERT INTO airports (position, code, name, city, state, country, latitude, longitude, metro_population, gate_count, is_hub)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			i, a.Code, a.Name, a.City, a.State, a.Country, a.Latitude, a.Longitude, a.MetroPopulation, a.GateCount, a.IsHub,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert airports: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name, city, state, country, latitude, longitude, metro_population, gate_count, is_hub FROM airports ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.State, &a.Country, &a.Latitude, &a.Longitude, &a.MetroPopulation, &a.GateCount, &a.IsHub); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT code, name, city, state, country, latitude, longitude, metro_population, gate_count, is_hub FROM airports WHERE code=$1`, code)
	var a domain.Airport
	if err := row.Scan(&a.Code, &a.Name, &a.City, &a.State, &a.Country, &a.Latitude, &a.Longitude, &a.MetroPopulation, &a.GateCount, &a.IsHub); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirportRepository) Stats(ctx context.Context) (*domain.DatasetStats, error) {
	row := r.db.QueryRow(ctx, `SELECT count(*), count(*) FILTER (WHERE is_hub), coalesce(sum(gate_count), 0), coalesce(max(metro_population), 0) FROM airports`)
	var s domain.DatasetStats
	if err := row.Scan(&s.TotalAirports, &s.TotalHubs, &s.TotalGates, &s.MaxMetroPopulation); err != nil {
		return nil, err
	}
	return &s, nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
