package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hive-corporation/cwp-forwarder/internal/adapter/handler"
	"github.com/hive-corporation/cwp-forwarder/internal/adapter/ingest"
	"github.com/hive-corporation/cwp-forwarder/internal/config"
	"github.com/hive-corporation/cwp-forwarder/internal/core/forwarder"
)

func main() {
	// Load .env file if it exists (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found (this is fine when variables come from the environment)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Initialize Prometheus metrics
	ingest.InitMetrics()
	handler.InitMetrics()
	log.Println("✅ Prometheus metrics initialized")

	// Processing pipeline
	client := ingest.NewClient(cfg.CustomerID, cfg.SharedKey)
	fwd := forwarder.New(cfg.Filter(), client, cfg.LogType)
	snsHandler := handler.NewSNSHandler(fwd)
	restHandler := handler.NewRestHandler(snsHandler)

	// HTTP router
	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/api/v1/health", restHandler.Health).Methods("GET")

	// Webhook endpoint receiving the SNS-shaped envelope
	router.HandleFunc("/api/v1/webhooks/cwp", restHandler.CWPWebhook).Methods("POST")

	// Metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Middleware
	router.Use(loggingMiddleware)

	// HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("🚀 CWP forwarder API listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("→ %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
		log.Printf("← %s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
