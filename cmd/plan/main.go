package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"tripcraft/cmd/fx/itinerary_fx"
	"tripcraft/internal/config"
	"tripcraft/internal/models/request_models"
	"tripcraft/internal/repositories"
	"tripcraft/internal/services"
	"tripcraft/pkg/logger"
	"tripcraft/pkg/metrics"
	"tripcraft/pkg/utils"
)

func main() {
	var (
		prefs request_models.TravelPreferences
		lat   float64
		lng   float64
	)
	flag.StringVar(&prefs.Destination, "destination", "", "trip destination")
	flag.IntVar(&prefs.Duration, "days", 3, "trip length in days")
	flag.StringVar(&prefs.Interests, "interests", "", "traveller interests")
	flag.Float64Var(&prefs.Budget, "budget", 0, "total budget")
	flag.StringVar(&prefs.Currency, "currency", "USD", "budget currency code")
	flag.Float64Var(&lat, "lat", 0, "current latitude; enables grounded mode together with --lng")
	flag.Float64Var(&lng, "lng", 0, "current longitude")
	flag.Parse()

	if flag.CommandLine.Changed("lat") {
		prefs.Latitude = &lat
	}
	if flag.CommandLine.Changed("lng") {
		prefs.Longitude = &lng
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr in console form; stdout carries only the result.
	log, err := logger.New(cfg.LogLevel, "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	factory, err := itinerary_fx.NewModelFactory(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize model client", zap.Error(err))
	}

	service := services.NewItineraryService(
		factory,
		cfg.PlannerOptions(),
		repositories.NoopGenerationLogRepository{},
		metrics.NewPlannerMetrics(prometheus.NewRegistry()),
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := service.GenerateItinerary(ctx, prefs)
	if err != nil {
		fmt.Fprintln(os.Stderr, utils.UserMessage(err, err.Error()))
		log.Debug("generation failed", zap.Error(err))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal("Failed to encode itinerary", zap.Error(err))
	}
}
