package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/presenter"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/session"
)

// client - one connection and its session. It is the session's Presenter:
// every callback becomes an outbound message through the send channel, which
// writePump drains onto the wire.
type client struct {
	logger  *slog.Logger
	conn    *websocket.Conn
	session *session.Session

	send chan Message

	closeOnce sync.Once
}

func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case message, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteJSON(message); err != nil {
				that.logger.Error("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.send)
	})
}

// enqueue drops the message when the buffer is full; the next full snapshot
// brings a slow client back in sync anyway.
func (that *client) enqueue(action string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		that.logger.Error("failed to marshal payload", "action", action, "error", err)
		return
	}

	select {
	case that.send <- Message{Action: action, Payload: raw}:
	default:
		that.logger.Warn("send buffer full, dropping message", "action", action)
	}
}

func (that *client) sendError(message string) {
	that.enqueue(actionErrorResponse, ErrorPayload{Error: message})
}

func (that *client) GameChanged(snapshot presenter.GameSnapshot) {
	that.enqueue(actionGameState, snapshot)
}

func (that *client) SessionChanged(status presenter.SessionStatus) {
	that.enqueue(actionSessionState, status)
}

func (that *client) BoardCleared() {
	that.enqueue(actionBoardCleared, struct{}{})
}

func (that *client) MarkPlaced(cell int, mark string) {
	that.enqueue(actionMarkPlaced, MarkPayload{Cell: cell, Mark: mark})
}

func (that *client) WinHighlighted(line [3]int) {
	that.enqueue(actionWinHighlight, WinPayload{Line: line})
}
