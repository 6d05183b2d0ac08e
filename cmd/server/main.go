package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "sunlight-vm-backend/internal/api/http"
	"sunlight-vm-backend/internal/config"
	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/logger"
	"sunlight-vm-backend/internal/repository"
	"sunlight-vm-backend/internal/repository/memory"
	"sunlight-vm-backend/internal/repository/postgres"
	"sunlight-vm-backend/internal/security"
	"sunlight-vm-backend/internal/service"
	"sunlight-vm-backend/internal/state"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Sunlight VM Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Persistence configuration", "backend", cfg.Persistence.Backend)

	// Initialize persistence backend
	var (
		unitRepo         repository.UnitRepository
		bookingRepo      repository.BookingRepository
		expenseRepo      repository.ExpenseRepository
		subscriptionRepo repository.SubscriptionRepository
		sessionLogRepo   repository.SessionLogRepository
		userRepo         repository.UserRepository
	)

	switch cfg.Persistence.Backend {
	case "postgres":
		logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")

		store := postgres.NewStore(db)
		unitRepo = store.UnitRepository
		bookingRepo = store.BookingRepository
		expenseRepo = store.ExpenseRepository
		subscriptionRepo = store.SubscriptionRepository
		sessionLogRepo = store.SessionLogRepository
		userRepo = store.UserRepository
	case "memory":
		logger.Info("Using in-memory persistence; data is lost on restart")
		store := memory.NewStore()
		unitRepo = store.UnitRepository
		bookingRepo = store.BookingRepository
		expenseRepo = store.ExpenseRepository
		subscriptionRepo = store.SubscriptionRepository
		sessionLogRepo = store.SessionLogRepository
		userRepo = store.UserRepository
	default:
		log.Fatalf("Unsupported persistence backend: %s", cfg.Persistence.Backend)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)
	sessions := state.NewManager()

	// Initialize Services
	authSvc := service.NewAuthService(
		userRepo,
		sessionLogRepo,
		unitRepo,
		bookingRepo,
		expenseRepo,
		subscriptionRepo,
		sessions,
		tokenManager,
	)
	unitSvc := service.NewUnitService(unitRepo, bookingRepo, expenseRepo)
	bookingSvc := service.NewBookingService(bookingRepo)
	expenseSvc := service.NewExpenseService(expenseRepo)
	subscriptionSvc := service.NewSubscriptionService(subscriptionRepo, userRepo)
	sessionLogSvc := service.NewSessionLogService(sessionLogRepo)
	reportSvc := service.NewReportService()

	// The in-memory backend starts empty; seed a bootstrap admin so the
	// API is usable out of the box.
	if cfg.Persistence.Backend == "memory" {
		seedAdmin(authSvc)
	}

	// Initialize HTTP layer
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager, sessions, authSvc)
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:    httpapi.NewAuthHandler(authSvc),
		Unit:    httpapi.NewUnitHandler(unitSvc),
		Booking: httpapi.NewBookingHandler(bookingSvc),
		Expense: httpapi.NewExpenseHandler(expenseSvc),
		Report:  httpapi.NewReportHandler(reportSvc),
		Admin:   httpapi.NewAdminHandler(subscriptionSvc, sessionLogSvc, authSvc),
	}, authMiddleware)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}

// seedAdmin creates the bootstrap administrator. Credentials come from the
// environment with development defaults.
func seedAdmin(authSvc service.AuthService) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@sunlight.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "sunlight-dev"
	}

	user, err := authSvc.CreateUser(context.Background(), "Administrator", email, password, domain.UserRoleAdmin)
	if err != nil {
		logger.Error("Failed to seed admin user", "error", err)
		return
	}
	logger.Info("Seeded bootstrap admin", "email", user.Email, "user_id", user.ID)
}
