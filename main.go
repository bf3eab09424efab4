package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"econ-analyzer/config"
	httpLayer "econ-analyzer/http"
	"econ-analyzer/repository"
	"econ-analyzer/service"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	analysisRepo := repository.NewAnalysisRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		cache = repository.NewRedisCache(
			cfg.Redis.Addr,
			time.Duration(cfg.Redis.CacheTTLMinutes)*time.Minute,
		)
		log.Printf("Using Redis cache at %s", cfg.Redis.Addr)
	} else {
		cache = repository.NewMockCache()
		log.Println("Using in-memory cache")
	}

	analysisService := service.NewAnalysisService(
		analysisRepo,
		cache,
		cfg.Analysis.MaxStudyPeriodYears,
	)
	analysisHandler := httpLayer.NewAnalysisHandler(analysisService)

	reportService := service.NewReportService(analysisService)
	reportHandler := httpLayer.NewReportHandler(reportService)

	rateLimiter := httpLayer.NewRateLimiter(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/analysis/evaluate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(analysisHandler.EvaluateProjects),
		),
	)

	mux.Handle(
		"/analysis/report",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(reportHandler.GenerateReport),
		),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost%s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
