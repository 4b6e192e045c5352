package web

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/fitdash/internal/dataset"
)

// TableSource supplies the loaded dataset. Implemented by dataset.Loader;
// the load is memoized there, so handlers call it on every request.
type TableSource interface {
	Tables(ctx context.Context) (*dataset.Tables, error)
}

//go:embed static
var staticFS embed.FS

type Server struct {
	router          *http.ServeMux
	port            int
	shutdownTimeout time.Duration
	source          TableSource
	logger          *zap.Logger
}

func NewServer(source TableSource, port int, shutdownTimeout time.Duration, logger *zap.Logger) *Server {
	s := &Server{
		router:          http.NewServeMux(),
		port:            port,
		shutdownTimeout: shutdownTimeout,
		source:          source,
		logger:          logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("GET /metrics", promhttp.Handler())

	// Static assets
	s.router.Handle("GET /static/", http.FileServerFS(staticFS))

	// Pages
	s.router.HandleFunc("GET /{$}", s.handleDailyActivity)
	s.router.HandleFunc("GET /sleep", s.handleSleep)
	s.router.HandleFunc("GET /hourly", s.handleHourly)
	s.router.HandleFunc("GET /heart-rate", s.handleHeartRate)
	s.router.HandleFunc("GET /weight", s.handleWeight)

	// Chart data endpoints (consumed by the inline page scripts)
	s.router.HandleFunc("GET /api/charts/steps", s.handleChartSteps)
	s.router.HandleFunc("GET /api/charts/steps-calories", s.handleChartStepsCalories)
	s.router.HandleFunc("GET /api/charts/sleep-distribution", s.handleChartSleepDistribution)
	s.router.HandleFunc("GET /api/charts/sleep-steps", s.handleChartSleepSteps)
	s.router.HandleFunc("GET /api/charts/hourly-steps", s.handleChartHourlySteps)
	s.router.HandleFunc("GET /api/charts/heart-rate", s.handleChartHeartRate)
	s.router.HandleFunc("GET /api/charts/weight", s.handleChartWeight)
	s.router.HandleFunc("GET /api/charts/bmi", s.handleChartBMI)
}

// Handler returns the middleware-wrapped route table.
func (s *Server) Handler() http.Handler {
	return withRequestLog(s.logger, s.router)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", zap.String("url", fmt.Sprintf("http://localhost:%d", s.port)))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown", zap.Error(err))
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
