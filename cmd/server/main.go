package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "github.com/mhr996/school-dash-backend/internal/api/http"
	"github.com/mhr996/school-dash-backend/internal/config"
	"github.com/mhr996/school-dash-backend/internal/logger"
	"github.com/mhr996/school-dash-backend/internal/repository/postgres"
	"github.com/mhr996/school-dash-backend/internal/security"
	"github.com/mhr996/school-dash-backend/internal/service"
	"github.com/mhr996/school-dash-backend/internal/storage"
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
	logger.Info("Starting School Dash Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.Database.DSN())
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
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTLMinutes)*time.Minute,
	)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Storage
	logger.Info("Using local document storage", "dir", cfg.Storage.Dir)
	localStorage, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.Dir)
	if err != nil {
		logger.Error("Failed to initialize document storage", "error", err)
		log.Fatalf("Failed to initialize document storage: %v", err)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	ledgerSvc := service.NewLedgerService(store.CustomerRepository, store.LedgerRepository)
	dealSvc := service.NewDealService(store.DealRepository, ledgerSvc)
	billSvc := service.NewBillService(store.BillRepository, ledgerSvc)
	providerSvc := service.NewProviderService(store.ProviderRepository)
	balanceSvc := service.NewBalanceService(store.ProviderRepository, store.BookingRepository, store.PayoutRepository)
	payoutSvc := service.NewPayoutService(store.PayoutRepository, store.BookingRepository, store.ProviderRepository, emailSvc)
	bookingSvc := service.NewBookingService(store.BookingRepository, payoutSvc, emailSvc, cfg.Email.OpsEmail)
	catalogSvc := service.NewCatalogService(store.SchoolRepository, store.DestinationRepository)
	documentSvc := service.NewDocumentService(localStorage)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:     httpapi.NewAuthHandler(authSvc),
		Customer: httpapi.NewCustomerHandler(customerSvc, ledgerSvc),
		Deal:     httpapi.NewDealHandler(dealSvc),
		Bill:     httpapi.NewBillHandler(billSvc),
		Booking:  httpapi.NewBookingHandler(bookingSvc),
		Provider: httpapi.NewProviderHandler(providerSvc, balanceSvc, payoutSvc),
		Payout:   httpapi.NewPayoutHandler(payoutSvc),
		Catalog:  httpapi.NewCatalogHandler(catalogSvc),
		Document: httpapi.NewDocumentHandler(documentSvc, localStorage),
	}

	router := httpapi.NewRouter(handlers, authMiddleware)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown: drain in-flight requests so balance writes and
	// their audit appends are not cut off mid-operation.
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
