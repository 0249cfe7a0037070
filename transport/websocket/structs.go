package websocket

import (
	"encoding/json"
)

// Message is the envelope for both directions: a routing action plus an
// action-specific payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client to server actions.
const (
	actionModeSwitch = "mode:switch"
	actionRoomCreate = "room:create"
	actionRoomJoin   = "room:join"
	actionGameShoot  = "game:shoot"
	actionGameLeave  = "room:leave"
	actionRestart    = "game:restart"
)

// Server to client actions.
const (
	actionGameState     = "game:state"
	actionSessionState  = "session:state"
	actionBoardCleared  = "board:cleared"
	actionMarkPlaced    = "mark:placed"
	actionWinHighlight  = "win:highlighted"
	actionErrorResponse = "error"
)

type ModePayload struct {
	Mode string `json:"mode"`
}

type JoinPayload struct {
	Code string `json:"code"`
}

// ShootPayload carries the target cell; -1 means the shot hit no tile.
type ShootPayload struct {
	Cell int `json:"cell"`
}

type MarkPayload struct {
	Cell int    `json:"cell"`
	Mark string `json:"mark"`
}

type WinPayload struct {
	Line [3]int `json:"line"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}
