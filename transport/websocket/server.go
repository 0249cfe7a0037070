package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/roomstore"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/session"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
	sendBuffer     = 64
)

type Server struct {
	logger *slog.Logger
	store  roomstore.Store

	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, client *client, message *Message) error
}

// New builds the game socket server. store may be nil; sessions then run
// single player only and report multiplayer as unavailable.
func New(logger *slog.Logger, store roomstore.Store) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		store:  store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]func(context.Context, *client, *Message) error{
		actionModeSwitch: server.handleModeSwitch,
		actionRoomCreate: server.handleRoomCreate,
		actionRoomJoin:   server.handleRoomJoin,
		actionGameShoot:  server.handleGameShoot,
		actionGameLeave:  server.handleRoomLeave,
		actionRestart:    server.handleRestart,
	}

	return server
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveClient(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 90 * time.Second,
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

func (that *Server) serveClient(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveClient", "remote", req.RemoteAddr)

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	cl := &client{
		logger: log,
		conn:   conn,
		send:   make(chan Message, sendBuffer),
	}

	// the session calls back into the client as its presenter; callbacks only
	// enqueue, so they never block the session's mutex on a slow socket
	cl.session = session.New(that.logger, that.store, cl)

	log.Info("connection established")

	go cl.writePump()
	that.readLoop(ctx, cl)
}

func (that *Server) readLoop(ctx context.Context, cl *client) {
	log := that.logger.With("method", "readLoop")

	defer func() {
		cl.session.Close()
		cl.close()
		log.Info("connection closed")
	}()

	cl.conn.SetReadLimit(maxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("unexpected close", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(raw, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			cl.sendError("malformed message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			cl.sendError(fmt.Sprintf("unknown action %q", message.Action))
			continue
		}

		if err = handler(ctx, cl, &message); err != nil {
			log.Error("failed to process message", "action", message.Action, "error", err)
		}
	}
}
