package entity

// LastMove - audit record of the most recent committed shot.
// Missed means the shot consumed the turn without changing the board.
type LastMove struct {
	Cell   int    `json:"cell"`
	By     string `json:"by"`
	Missed bool   `json:"missed"`
	At     int64  `json:"at,omitempty"`
}

// Room - the authoritative multiplayer document, one per room code.
// Board, Turn and GameOver are the game state both sessions reconcile
// against; the rest is audit metadata stamped by the store.
type Room struct {
	Board    Board  `json:"board"`
	Turn     string `json:"turn"`
	GameOver bool   `json:"game_over"`

	HostID        string    `json:"host_id,omitempty"`
	CreatedAt     int64     `json:"created_at,omitempty"`
	UpdatedAt     int64     `json:"updated_at,omitempty"`
	GuestJoinedAt int64     `json:"guest_joined_at,omitempty"`
	ResetAt       int64     `json:"reset_at,omitempty"`
	Version       int64     `json:"version,omitempty"`
	LastMove      *LastMove `json:"last_move,omitempty"`
}

// NewRoom - the initial document a host creates: empty board, X to move.
func NewRoom(hostID string) *Room {
	return &Room{
		Board:  EmptyBoard(),
		Turn:   PlayerX,
		HostID: hostID,
	}
}

// Reset - returns the document to the initial game state, keeping room identity.
func (that *Room) Reset() {
	that.Board = EmptyBoard()
	that.Turn = PlayerX
	that.GameOver = false
	that.LastMove = nil
}

// State - the game-state view of the document.
func (that *Room) State() GameState {
	return GameState{
		Board:    that.Board,
		Turn:     that.Turn,
		GameOver: that.GameOver,
	}
}
