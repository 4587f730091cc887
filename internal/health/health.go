// Package health содержит health check сервер.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger проверяет доступность зависимости
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server представляет health check сервер
type Server struct {
	server    *http.Server
	db        Pinger
	logger    *zap.Logger
	startTime time.Time
}

// Status представляет статус здоровья системы
type Status struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Uptime     string            `json:"uptime"`
	Components map[string]string `json:"components,omitempty"`
}

// NewServer создает новый health check сервер
func NewServer(port int, db Pinger, logger *zap.Logger) *Server {
	mux := http.NewServeMux()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	healthServer := &Server{
		server:    server,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}

	// Регистрируем маршруты
	mux.HandleFunc("/health", healthServer.healthHandler)
	mux.HandleFunc("/ready", healthServer.readyHandler)

	return healthServer
}

// Start запускает health check сервер
func (hs *Server) Start() error {
	hs.logger.Info("Starting health check server", zap.String("addr", hs.server.Addr))
	return hs.server.ListenAndServe()
}

// Stop останавливает health check сервер
func (hs *Server) Stop(ctx context.Context) error {
	hs.logger.Info("Stopping health check server")
	return hs.server.Shutdown(ctx)
}

// healthHandler обрабатывает запросы /health
func (hs *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	hs.writeStatus(w, http.StatusOK, Status{
		Status:    "healthy",
		Timestamp: time.Now(),
		Uptime:    formatDuration(time.Since(hs.startTime)),
	})
}

// readyHandler обрабатывает запросы /ready
func (hs *Server) readyHandler(w http.ResponseWriter, r *http.Request) {
	components := hs.checkComponents(r.Context())

	overallStatus := "ready"
	code := http.StatusOK
	for _, status := range components {
		if status != "healthy" {
			overallStatus = "unhealthy"
			code = http.StatusServiceUnavailable
			break
		}
	}

	hs.writeStatus(w, code, Status{
		Status:     overallStatus,
		Timestamp:  time.Now(),
		Uptime:     formatDuration(time.Since(hs.startTime)),
		Components: components,
	})
}

// checkComponents проверяет состояние зависимостей
func (hs *Server) checkComponents(ctx context.Context) map[string]string {
	components := map[string]string{}

	if hs.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := hs.db.Ping(pingCtx); err != nil {
			hs.logger.Warn("Database ping failed", zap.Error(err))
			components["database"] = "unhealthy"
		} else {
			components["database"] = "healthy"
		}
	}

	return components
}

// writeStatus сериализует статус в ответ
func (hs *Server) writeStatus(w http.ResponseWriter, code int, status Status) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(status); err != nil {
		hs.logger.Error("Failed to encode health status", zap.Error(err))
	}
}

// formatDuration форматирует время в читаемый формат (например: 8s)
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
