package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casavida/config"
	"casavida/handlers"
	"casavida/middleware"
	"casavida/routes"
	"casavida/services/calendar"
	"casavida/services/dateparse"
	"casavida/services/scheduling"
	"casavida/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	weekdays, err := cfg.BookableWeekdayInts()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid BOOKABLE_WEEKDAYS: %v", err)
	}
	policy, err := scheduling.NewTimePolicy(scheduling.PolicyOptions{
		Weekdays:      weekdays,
		StartHour:     cfg.StartHour,
		EndHour:       cfg.EndHour,
		DurationHours: cfg.SlotDurationHours,
		HorizonDays:   cfg.SearchHorizonDays,
		Timezone:      cfg.Timezone,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: invalid scheduling policy: %v", err)
	}

	ctx := context.Background()

	// External collaborators, constructed once and passed in explicitly.
	gateway, err := calendar.NewGoogleGateway(ctx, cfg.GoogleCredentialsFile, cfg.CalendarID, policy.Location)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar gateway: %v", err)
	}

	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetResolverCacheClient())

	geminiResolver, err := dateparse.NewGeminiResolver(ctx, cfg.GeminiAPIKey, policy.Location)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize date resolver: %v", err)
	}
	resolver := &dateparse.CachedResolver{
		Inner: geminiResolver,
		Store: dateparse.NewRedisStore(utils.GetResolverCacheClient()),
		TTL:   10 * time.Minute,
	}

	// Services.
	engine := &scheduling.DefaultAvailabilityEngine{Policy: policy, Gateway: gateway}
	bookingService := &scheduling.DefaultBookingService{Policy: policy, Gateway: gateway}

	scheduleHandler := handlers.NewScheduleHandler(engine, bookingService, logger)
	requestHandler := handlers.NewScheduleRequestHandler(resolver, engine, policy.Location, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, scheduleHandler, requestHandler)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
