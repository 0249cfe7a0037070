package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/config"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/roomstore"
	"github.com/siddh-art-codes/tictactoeisfun-public/transport/rest"
	"github.com/siddh-art-codes/tictactoeisfun-public/transport/websocket"
)

// RunApp - runs the application. An unreachable redis does not stop startup:
// sessions degrade to single player and report multiplayer as unavailable.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var store roomstore.Store

	redisStore, err := roomstore.NewRedisStore(ctx, logger, conf.Redis.GetRedisAddr())
	if err != nil {
		log.Error("could not connect to redis, running without multiplayer", "error", err)
	} else {
		store = redisStore

		defer func() {
			if closeErr := redisStore.Close(); closeErr != nil {
				log.Error("could not close redis store", "error", closeErr)
			}
		}()
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, store, conf.PublicURL)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, store)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
