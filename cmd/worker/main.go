package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pcloudair/airports/config"
	"github.com/pcloudair/airports/internal/dataset"
	"github.com/pcloudair/airports/internal/kafka"
	"github.com/pcloudair/airports/internal/logging"
	"github.com/pcloudair/airports/internal/notify"
	"github.com/pcloudair/airports/internal/quality"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg, err := dataset.Load()
	if err != nil {
		log.Fatalw("load embedded dataset", "error", err)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	reporter := quality.NewReporter(producer, cfg.Kafka.QualityTopic)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.QualityTopic)
	defer consumer.Close()

	sender := notify.NewSender()

	go func() {
		if err := consumer.Consume(ctx, sender.Send); err != nil {
			log.Warnw("consumer stopped", "error", err)
		}
	}()

	sweepEvery := time.Duration(cfg.Worker.AuditSweepMinutes) * time.Minute
	if sweepEvery <= 0 {
		sweepEvery = time.Hour
	}
	auditTicker := time.NewTicker(sweepEvery)
	defer auditTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-auditTicker.C:
			issues, err := reporter.Report(ctx, reg.All())
			if err != nil {
				log.Warnw("audit sweep error", "error", err)
				continue
			}
			if len(issues) > 0 {
				log.Infow("audit sweep found issues", "count", len(issues))
			}
		case s := <-sig:
			log.Infow("received signal, shutting down", "signal", s.String())
			return
		}
	}
}
