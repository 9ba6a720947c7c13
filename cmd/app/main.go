package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/pcloudair/airports/config"
	"github.com/pcloudair/airports/internal/bootstrap"
	"github.com/pcloudair/airports/internal/cache"
	"github.com/pcloudair/airports/internal/dataset"
	"github.com/pcloudair/airports/internal/kafka"
	"github.com/pcloudair/airports/internal/logging"
	"github.com/pcloudair/airports/internal/metrics"
	"github.com/pcloudair/airports/internal/quality"
	"github.com/pcloudair/airports/internal/repository"
	"github.com/pcloudair/airports/internal/service/airports"
	"github.com/pcloudair/airports/internal/service/network"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logging.L().Fatalw("load config", "error", err)
	}

	if err := logging.Init(cfg.App.Env); err != nil {
		logging.L().Fatalw("init logger", "error", err)
	}
	defer logging.Close()
	log := logging.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg, err := dataset.Load()
	if err != nil {
		log.Fatalw("load embedded dataset", "error", err)
	}
	log.Infow("dataset loaded", "airports", reg.Len())

	var repo repository.AirportRepository = repository.NewStaticRepository(reg)
	if cfg.Database.Enabled() {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalw("connect postgres", "error", err)
		}
		defer pool.Close()

		pgRepo := repository.NewAirportRepository(pool)
		if err := pgRepo.Seed(ctx, reg.All()); err != nil {
			log.Fatalw("seed airports table", "error", err)
		}
		repo = pgRepo
		log.Infow("postgres mirror seeded", "airports", reg.Len())
	}

	cacheTTL := time.Duration(cfg.Registry.CacheTTLSeconds) * time.Second
	var listCache airports.Cache
	if cfg.Redis.Addr != "" {
		listCache = cache.NewRedisCache(cfg.Redis, cacheTTL)
	}

	m := metrics.NewRegistry()
	airportService := airports.NewAirportService(repo, listCache, cacheTTL, airports.WithMetrics(m))

	net := network.Build(reg.All())
	networkService := network.NewNetworkService(net)
	log.Infow("flight network generated", "legs", len(net.Legs()), "hubs", net.Hubs())

	// One audit pass at startup so suspect rows are flagged even if the
	// worker is not running.
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()

		reporter := quality.NewReporter(producer, cfg.Kafka.QualityTopic)
		issues, err := reporter.Report(ctx, reg.All())
		if err != nil {
			log.Warnw("publish data-quality issues", "error", err)
		}
		for _, issue := range issues {
			log.Warnw("data-quality issue", "code", issue.Code, "field", issue.Field, "detail", issue.Detail)
		}
	}

	log.Infow("server starting", "address", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, airportService, networkService, m); err != nil {
		log.Fatalw("server error", "error", err)
	}
}
