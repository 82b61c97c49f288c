package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olegkh/airport-api/api"
	"github.com/olegkh/airport-api/config"
	"github.com/olegkh/airport-api/internal/auth"
	"github.com/olegkh/airport-api/internal/bootstrap"
	"github.com/olegkh/airport-api/internal/cache"
	"github.com/olegkh/airport-api/internal/kafka"
	"github.com/olegkh/airport-api/internal/repository"
	"github.com/olegkh/airport-api/internal/service/booking"
	"github.com/olegkh/airport-api/internal/service/flights"
	"github.com/olegkh/airport-api/internal/service/reference"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Flights.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	referenceRepo := repository.NewReferenceRepository(pool)

	flightService := flights.NewFlightService(flightRepo, redisCache)
	orderService := booking.NewOrderService(orderRepo, flightRepo, producer, cfg.Kafka.OrdersTopic)
	referenceService := reference.NewService(referenceRepo)

	authManager := auth.NewManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	handlers := bootstrap.Handlers{
		Flights:   api.NewFlightHandler(flightService),
		Orders:    api.NewOrderHandler(orderService),
		Reference: api.NewReferenceHandler(referenceService),
	}

	if err := bootstrap.Run(ctx, cfg, authManager, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
