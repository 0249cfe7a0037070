package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/entity"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/presenter"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	server := New(logger, nil)

	ctx, cancel := context.WithCancel(context.Background())

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.serveClient(ctx, w, r)
	}))

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		ts.Close()
	})

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: raw}))
}

// receive reads messages until one with the wanted action arrives and
// unmarshals its payload into out.
func receive(t *testing.T, conn *websocket.Conn, action string, out any) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	require.NoError(t, conn.SetReadDeadline(deadline))

	for {
		var message Message
		require.NoError(t, conn.ReadJSON(&message), "waiting for %s", action)

		if message.Action != action {
			continue
		}

		if out != nil {
			require.NoError(t, json.Unmarshal(message.Payload, out))
		}

		return
	}
}

func TestServer_SinglePlayerFlow(t *testing.T) {
	conn := dialTestServer(t)

	// Given: a fresh connection switched to single player
	send(t, conn, actionModeSwitch, ModePayload{Mode: presenter.ModeSingle})

	var status presenter.SessionStatus
	receive(t, conn, actionSessionState, &status)
	assert.Equal(t, presenter.ModeSingle, status.Mode)

	// When: the client shoots cell 4
	send(t, conn, actionGameShoot, ShootPayload{Cell: 4})

	// Then: the mark lands and the snapshot flips the turn
	var mark MarkPayload
	receive(t, conn, actionMarkPlaced, &mark)
	assert.Equal(t, 4, mark.Cell)
	assert.Equal(t, entity.PlayerX, mark.Mark)

	var snapshot presenter.GameSnapshot
	receive(t, conn, actionGameState, &snapshot)
	assert.Equal(t, entity.PlayerX, snapshot.Board[4])
	assert.Equal(t, entity.PlayerO, snapshot.Turn)
}

func TestServer_MultiplayerUnavailableWithoutStore(t *testing.T) {
	conn := dialTestServer(t)

	// When: switching to multi with no store behind the server
	send(t, conn, actionModeSwitch, ModePayload{Mode: presenter.ModeMulti})

	// Then: the session reports multiplayer as unavailable
	var status presenter.SessionStatus
	receive(t, conn, actionSessionState, &status)
	assert.Equal(t, presenter.ModeMulti, status.Mode)
	assert.Contains(t, status.Note, "unavailable")
}

func TestServer_RejectsMalformedTraffic(t *testing.T) {
	conn := dialTestServer(t)

	t.Run("Unknown action", func(t *testing.T) {
		send(t, conn, "game:teleport", struct{}{})

		var errPayload ErrorPayload
		receive(t, conn, actionErrorResponse, &errPayload)
		assert.Contains(t, errPayload.Error, "game:teleport")
	})

	t.Run("Unknown mode", func(t *testing.T) {
		send(t, conn, actionModeSwitch, ModePayload{Mode: "spectator"})

		var errPayload ErrorPayload
		receive(t, conn, actionErrorResponse, &errPayload)
		assert.Contains(t, errPayload.Error, "spectator")
	})

	t.Run("Malformed json", func(t *testing.T) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

		var errPayload ErrorPayload
		receive(t, conn, actionErrorResponse, &errPayload)
		assert.Contains(t, errPayload.Error, "malformed")
	})
}

func TestServer_Restart(t *testing.T) {
	conn := dialTestServer(t)

	send(t, conn, actionGameShoot, ShootPayload{Cell: 0})
	receive(t, conn, actionMarkPlaced, nil)

	// When: the client restarts
	send(t, conn, actionRestart, struct{}{})

	// Then: the board clears and the snapshot is fresh
	receive(t, conn, actionBoardCleared, nil)

	var snapshot presenter.GameSnapshot
	receive(t, conn, actionGameState, &snapshot)
	assert.True(t, snapshot.Board.IsEmpty())
	assert.Equal(t, entity.PlayerX, snapshot.Turn)
}
