package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"text2sql/config"
	"text2sql/database"
	"text2sql/llm"
	"text2sql/query"
	"text2sql/ui"
)

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	pools := database.NewPools(cfg.MySQL, log)
	defer pools.Close()

	provider, err := llm.New(cfg.LLM)
	if err != nil {
		log.Error("initialising LLM provider", "error", err)
		os.Exit(1)
	}

	svc := &query.Service{
		Log:        log,
		Provider:   provider,
		DBs:        pools,
		ReadOnly:   cfg.ReadOnly,
		SampleRows: cfg.SampleRows,
		LLMTimeout: cfg.LLM.Timeout,
	}

	apiHandler := &query.Handler{Log: log, Service: svc}
	uiHandler := &ui.Handler{Log: log, Service: svc, MaxRows: cfg.MaxRows}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"POST", "GET", "OPTIONS", "PUT", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
	}).Handler)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/query", apiHandler.HandleGenerateQuery)
	ui.MountRoutes(r, uiHandler)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.LLM.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", cfg.ListenAddr, "provider", provider.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
