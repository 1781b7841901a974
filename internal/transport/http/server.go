package http

import (
	"context"
	stdhttp "net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/lobbysync-server/internal/config"
	"github.com/vovakirdan/lobbysync-server/internal/core"
)

const serviceName = "Deceptive Game"

// StatsSource reports presence counts without mutating them.
type StatsSource interface {
	Stats(ctx context.Context) (core.Stats, error)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	Timestamp        string `json:"timestamp"`
	ActiveRooms      int    `json:"salas_activas"`
	ConnectedPlayers int    `json:"jugadores_conectados"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewServer builds the HTTP server: health, WebSocket gateway and static pages.
func NewServer(hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/health", healthHandler(hub, logger))

	if cfg.StaticDir != "" {
		router.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(cfg.StaticDir, "index.html"))
		})
		router.GET("/lobby", func(c *gin.Context) {
			c.File(filepath.Join(cfg.StaticDir, "lobby.html"))
		})
		router.NoRoute(gin.WrapH(stdhttp.FileServer(stdhttp.Dir(cfg.StaticDir))))
	}
	if cfg.ARDir != "" {
		router.Static("/AR", cfg.ARDir)
	}

	// The WebSocket upgrade needs an untouched ResponseWriter to hijack.
	mux := stdhttp.NewServeMux()
	mux.Handle("/ws", NewWSHandler(hub, cfg, logger))
	mux.Handle("/", router)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(stats StatsSource, logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		s, err := stats.Stats(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("health stats unavailable")
			c.JSON(stdhttp.StatusServiceUnavailable, ErrorResponse{Error: "presence hub unavailable"})
			return
		}

		c.JSON(stdhttp.StatusOK, HealthResponse{
			Status:           "OK",
			Service:          serviceName,
			Timestamp:        time.Now().UTC().Format(time.RFC3339Nano),
			ActiveRooms:      s.Rooms,
			ConnectedPlayers: s.Sessions,
		})
	}
}
