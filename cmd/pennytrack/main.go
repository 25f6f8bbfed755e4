package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	database "pennytrack/db"
	"pennytrack/internal/config"
	"pennytrack/internal/finance/application"
	"pennytrack/internal/finance/infrastructure"
	"pennytrack/internal/finance/interfaces"
	"pennytrack/internal/identity"
	applog "pennytrack/internal/log"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error": message,
	})
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Path not found")
}

func extractRequestID(r *http.Request) string {
	if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
		return requestID
	}
	return uuid.NewString()
}

type Server struct {
	router             chi.Router
	dbService          *database.DBService
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	historyHandler     *interfaces.HistoryHandler
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.dbService.Health()["status"] != "up" {
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) RegisterRoutes(cfg *config.Config, logger *applog.Logger) {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
	}))
	router.Use(applog.RequestMiddleware(logger.WithComponent("http"), extractRequestID))
	if cfg.SessionSecret != "" {
		router.Use(identity.Middleware(identity.NewTokenVerifier(cfg.SessionSecret)))
	}

	router.Route("/api", func(api chi.Router) {
		api.Get("/ready", s.handleReady)

		api.Get("/categories", s.categoryHandler.GetCategories)
		api.Post("/categories", s.categoryHandler.CreateCategory)
		api.Delete("/categories", s.categoryHandler.DeleteCategory)

		api.Get("/transactions", s.transactionHandler.GetTransactions)
		api.Post("/transactions", s.transactionHandler.CreateTransaction)
		api.Put("/transactions/{id}", s.transactionHandler.UpdateTransaction)
		api.Delete("/transactions/{id}", s.transactionHandler.DeleteTransaction)

		api.Get("/history", s.historyHandler.GetHistory)
		api.Get("/history/export", s.historyHandler.ExportHistory)
	})
	router.NotFound(notFoundHandler)

	s.router = router
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger := applog.New(applog.ParseLevel(cfg.LogLevel), "app")

	dbService, err := database.NewDBService(cfg.DatabaseURL)
	if err != nil {
		logger.Error("could not initialize database", "error", err)
		os.Exit(1)
	}
	defer dbService.Close()

	if err := infrastructure.RunMigrations(dbService.DB); err != nil {
		logger.Error("could not run migrations", "error", err)
		os.Exit(1)
	}

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo)
	transactionService := application.NewTransactionService(transactionRepo)
	historyService := application.NewHistoryService(transactionRepo)

	server := &Server{
		dbService:          dbService,
		categoryHandler:    interfaces.NewCategoryHandler(categoryService, respondJSON, respondError),
		transactionHandler: interfaces.NewTransactionHandler(transactionService, respondJSON, respondError),
		historyHandler:     interfaces.NewHistoryHandler(historyService, respondJSON, respondError),
	}
	server.RegisterRoutes(cfg, logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.router,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
