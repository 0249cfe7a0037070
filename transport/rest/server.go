package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/roomstore"
)

type Server struct {
	logger *slog.Logger

	handlers *handlers
}

// New builds the REST server. publicURL is the base address baked into QR
// codes, e.g. "https://game.example.com".
func New(logger *slog.Logger, store roomstore.Store, publicURL string) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		handlers: &handlers{
			logger:    logger.With("component", "rest"),
			store:     store,
			publicURL: publicURL,
		},
	}
}

// Start - starts the REST server.
func (that *Server) Start(ctx context.Context, port string) error {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/ping", that.handlers.Ping)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	router.GET("/rooms/:code", that.handlers.RoomStatus)
	router.GET("/rooms/:code/qr", that.handlers.RoomQR)

	router.HandlerFunc(http.MethodGet, "/themes", that.handlers.Themes)
	router.GET("/themes/:id", that.handlers.ThemeByID)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
