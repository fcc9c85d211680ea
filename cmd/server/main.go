package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "hostellink-backend/internal/api/http"
	"hostellink-backend/internal/config"
	"hostellink-backend/internal/logger"
	"hostellink-backend/internal/repository/postgres"
	"hostellink-backend/internal/security"
	"hostellink-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting HostelLink Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Email configuration", "provider", cfg.Email.Provider)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email)
	paymentSvc := service.NewMpesaMockService()

	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	hostelSvc := service.NewHostelService(store.HostelRepository, store.RoomRepository, store.PlotRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.ReceiptRepository,
		store.RoomRepository,
		store.HostelRepository,
		store.UserRepository,
		store.NotificationRepository,
		paymentSvc,
		emailSvc,
		cfg.Booking.PlatformFee,
	)
	walletSvc := service.NewWalletService(store.WalletRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(tokenManager, authSvc, hostelSvc, bookingSvc, walletSvc, noteSvc)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
