package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"frontdesk-backend/config"
	"frontdesk-backend/controllers"
	"frontdesk-backend/routes"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		zlog.Warn().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("LOG_PRETTY") == "true" {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		zlog.Fatal().Msg("JWT_SECRET environment variable is not set. Cannot issue auth tokens.")
	}

	if err := config.ConnectDatabase(); err != nil {
		zlog.Fatal().Err(err).Msg("Database connect failed")
	}
	db := config.DB
	if db == nil {
		zlog.Fatal().Msg("config.DB is nil after ConnectDatabase()")
	}
	zlog.Info().Msg("Database connection established and migrations applied")

	bookingService := services.NewBookingService(db)
	availabilityService := services.NewAvailabilityService(db)

	bookingController := controllers.NewBookingController(bookingService)
	availabilityController := controllers.NewAvailabilityController(availabilityService)

	router := routes.SetupRouter(bookingController, availabilityController, jwtSecret)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zlog.Info().Str("addr", addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	zlog.Warn().Msg("Shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	zlog.Info().Msg("Server stopped gracefully")
}
