package http

import (
	"net/http"

	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/handler"
	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/middleware"
	"github.com/dreschagin/scrum-health-dashboard/pkg/config"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// Router настраивает маршруты приложения
type Router struct {
	mux                 *http.ServeMux
	teamHandler         *handler.TeamHandler
	metricConfigHandler *handler.MetricConfigHandler
	healthMetricHandler *handler.HealthMetricHandler
	velocityHandler     *handler.VelocityHandler
	retroHandler        *handler.RetroHandler
	exportHandler       *handler.ExportHandler
	websocketHandler    *handler.WebSocketHandler
	authAPIHandler      *handler.AuthAPIHandler
	security            config.SecurityConfig
	logger              *logger.Logger
}

// NewRouter создает новый router
func NewRouter(
	teamHandler *handler.TeamHandler,
	metricConfigHandler *handler.MetricConfigHandler,
	healthMetricHandler *handler.HealthMetricHandler,
	velocityHandler *handler.VelocityHandler,
	retroHandler *handler.RetroHandler,
	exportHandler *handler.ExportHandler,
	websocketHandler *handler.WebSocketHandler,
	authAPIHandler *handler.AuthAPIHandler,
	security config.SecurityConfig,
	logger *logger.Logger,
) *Router {
	return &Router{
		mux:                 http.NewServeMux(),
		teamHandler:         teamHandler,
		metricConfigHandler: metricConfigHandler,
		healthMetricHandler: healthMetricHandler,
		velocityHandler:     velocityHandler,
		retroHandler:        retroHandler,
		exportHandler:       exportHandler,
		websocketHandler:    websocketHandler,
		authAPIHandler:      authAPIHandler,
		security:            security,
		logger:              logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	// Health endpoints are intentionally unauthenticated for probes.
	rt.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	rt.mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	authMiddleware := middleware.Auth(middleware.AuthConfig{
		Enabled:     rt.security.AuthEnabled,
		BearerToken: rt.security.AuthToken,
	}, rt.logger)

	// Write endpoints share an IP rate limiter so a single client
	// cannot flood sprint data entry.
	writeLimit := func(next http.Handler) http.Handler { return next }
	if rt.security.RateLimitWrites {
		limiter := middleware.NewIPRateLimiter(rt.security.WriteRPS, rt.security.WriteBurst)
		writeLimit = middleware.RateLimit(limiter)
	}

	api := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(h)
	}
	write := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(writeLimit(h))
	}

	// WebSocket
	rt.mux.Handle("GET /ws", authMiddleware(http.HandlerFunc(rt.websocketHandler.HandleConnection)))

	// Auth endpoints are open so clients can obtain a session.
	rt.mux.HandleFunc("POST /api/v1/auth/login", rt.authAPIHandler.Login)
	rt.mux.HandleFunc("POST /api/v1/auth/logout", rt.authAPIHandler.Logout)
	rt.mux.HandleFunc("GET /api/v1/auth/status", rt.authAPIHandler.Status)

	// Teams
	rt.mux.Handle("GET /api/v1/teams", api(rt.teamHandler.List))
	rt.mux.Handle("POST /api/v1/teams", write(rt.teamHandler.Create))
	rt.mux.Handle("GET /api/v1/teams/{id}", api(rt.teamHandler.Get))
	rt.mux.Handle("PATCH /api/v1/teams/{id}", write(rt.teamHandler.Update))

	// Metric thresholds
	rt.mux.Handle("GET /api/v1/teams/{id}/metric-configs", api(rt.metricConfigHandler.List))
	rt.mux.Handle("PUT /api/v1/teams/{id}/metric-configs", write(rt.metricConfigHandler.Upsert))

	// Health metrics
	rt.mux.Handle("POST /api/v1/teams/{id}/metrics", write(rt.healthMetricHandler.Record))
	rt.mux.Handle("POST /api/v1/metrics/{id}/approve", write(rt.healthMetricHandler.Approve))
	rt.mux.Handle("GET /api/v1/teams/{id}/health", api(rt.healthMetricHandler.TeamHealth))
	rt.mux.Handle("GET /api/v1/metrics/red", api(rt.healthMetricHandler.RedMetrics))

	// Velocity projection
	rt.mux.Handle("POST /api/v1/velocity/calculate", api(rt.velocityHandler.Calculate))
	rt.mux.Handle("POST /api/v1/velocity/export", api(rt.velocityHandler.Export))
	rt.mux.Handle("POST /api/v1/teams/{id}/velocity-calculations", write(rt.velocityHandler.CalculateAndSave))
	rt.mux.Handle("GET /api/v1/teams/{id}/velocity-calculations", api(rt.velocityHandler.History))

	// Retrospectives
	rt.mux.Handle("POST /api/v1/teams/{id}/retro-boards", write(rt.retroHandler.CreateBoard))
	rt.mux.Handle("GET /api/v1/teams/{id}/retro-boards", api(rt.retroHandler.ListBoards))
	rt.mux.Handle("POST /api/v1/retro-boards/{id}/items", write(rt.retroHandler.AddItem))
	rt.mux.Handle("GET /api/v1/retro-boards/{id}/items", api(rt.retroHandler.ListItems))
	rt.mux.Handle("DELETE /api/v1/retro-items/{id}", write(rt.retroHandler.DeleteItem))

	// Export
	rt.mux.Handle("GET /api/v1/export/health-metrics", api(rt.exportHandler.Export))

	// Применяем middleware
	var h http.Handler = rt.mux
	h = middleware.Compression(h)
	h = middleware.Logger(rt.logger)(h)
	h = middleware.Recovery(rt.logger)(h)

	return h
}
