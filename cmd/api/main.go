package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/kpalanivelraj/nekipay/docs"
	"github.com/kpalanivelraj/nekipay/internal/auth"
	"github.com/kpalanivelraj/nekipay/internal/config"
	"github.com/kpalanivelraj/nekipay/internal/database"
	"github.com/kpalanivelraj/nekipay/internal/expense"
	"github.com/kpalanivelraj/nekipay/internal/settlement"
	"github.com/kpalanivelraj/nekipay/internal/validate"
	"github.com/kpalanivelraj/nekipay/pkg/logging"
	mw "github.com/kpalanivelraj/nekipay/pkg/middleware"
)

// @title           NekiPay API
// @version         1.0
// @description     Two-person shared-expense tracker with mutually confirmed settlements.
// @BasePath        /api/v1
func main() {
	logging.Setup()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("connected to database")

	rules := validate.Rules{MinAmount: cfg.MinAmount, MaxAmount: cfg.MaxAmount}
	pins := auth.NewVerifier(cfg.AppPIN)

	// Expense feature
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, rules)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature (balance engine fed by both repositories)
	settlementRepo := settlement.NewRepository(db)
	settlementService := settlement.NewService(settlementRepo, expenseRepo, rules, cfg.BalanceThreshold)
	settlementHandler := settlement.NewHandler(settlementService, pins)

	// Auth feature
	authHandler := auth.NewHandler(pins)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/auth", authHandler.Routes())
		r.Get("/balance", settlementHandler.Balance)
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
