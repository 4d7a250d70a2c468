// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/unclebandit/bankrec-mock-backend/internal/config"
	"github.com/unclebandit/bankrec-mock-backend/internal/controller"
	"github.com/unclebandit/bankrec-mock-backend/internal/db"
	"github.com/unclebandit/bankrec-mock-backend/internal/handler"
	"github.com/unclebandit/bankrec-mock-backend/internal/queue"
	"github.com/unclebandit/bankrec-mock-backend/internal/repository"
	"github.com/unclebandit/bankrec-mock-backend/internal/service"
)

// statusRecorder captures the status code a handler wrote so the journal
// middleware can record it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// journalMiddleware records every served /api request except the journal's
// own endpoints.
func journalMiddleware(svc *service.RecommendationService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/api/") ||
				strings.HasPrefix(r.URL.Path, "/api/_journal") {
				next.ServeHTTP(w, r)
				return
			}
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sr, r)
			svc.Record(r.Method, r.URL.Path, r.URL.RawQuery, sr.status)
		})
	}
}

// delayMiddleware simulates backend latency when MOCK_DELAY_MS is set.
func delayMiddleware(delay time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if delay > 0 {
				time.Sleep(delay)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	// Pick the customer source: fixture data by default, Postgres when the
	// mock is switched off.
	var customerRepo repository.CustomerRepositoryInterface
	backend := "mock"
	if cfg.UseMock {
		customerRepo = repository.NewFixtureCustomerRepository()
	} else {
		db.Init()
		customerRepo = &repository.PostgresCustomerRepository{DB: db.DB}
		backend = "postgres"
	}

	q := queue.NewInMemoryQueue()
	journal := queue.NewJournal(cfg.JournalSize)

	var mirror *queue.AmqpMirror
	if cfg.QueueURL != "" {
		var err error
		mirror, err = queue.DialMirror(cfg.QueueURL)
		if err != nil {
			log.Println("⚠️ Failed to connect to RabbitMQ, journal mirroring disabled:", err)
			mirror = nil
		} else {
			defer mirror.Close()
		}
	}

	queue.StartJournalSubscriber(q, journal, mirror)

	recommendationService := &service.RecommendationService{
		CustomerRepo: customerRepo,
		Queue:        q,
	}

	recommendationController := &controller.RecommendationController{
		Service: recommendationService,
	}

	journalHandler := handler.NewJournalHandler(journal)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(delayMiddleware(time.Duration(cfg.MockDelayMS) * time.Millisecond))
	r.Use(journalMiddleware(recommendationService))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","backend":"` + backend + `"}`))
	})

	// Recommendation routes
	r.Get("/api/customers", recommendationController.ListCustomers)
	r.Get("/api/customers/{id}", recommendationController.GetCustomer)
	r.Get("/api/products", recommendationController.ListProducts)
	r.Get("/api/filters", recommendationController.GetFilterOptions)

	// Request journal
	r.Get("/api/_journal", journalHandler.ListJournalHandler)
	r.Delete("/api/_journal", journalHandler.ClearJournalHandler)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Mock backend (%s mode) running on :%s", backend, cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
