package presenter

import (
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/entity"
)

const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

// GameSnapshot - everything the rendering layer needs to draw the board and
// the endgame banner. WinLine is only meaningful when HasWin is true.
type GameSnapshot struct {
	Board    entity.Board `json:"board"`
	Turn     string       `json:"turn"`
	GameOver bool         `json:"game_over"`
	Winner   string       `json:"winner,omitempty"`
	WinLine  [3]int       `json:"win_line"`
	HasWin   bool         `json:"has_win"`
	Draw     bool         `json:"draw"`
}

// SessionStatus - the room/session side of the HUD: mode, own mark, room
// code and the short user-facing note ("Room not found." and friends).
type SessionStatus struct {
	Mode   string `json:"mode"`
	Player string `json:"player,omitempty"`
	Code   string `json:"code,omitempty"`
	Note   string `json:"note,omitempty"`
}

// Presenter - the contract the core reports through. Implementations render;
// the core never knows how. BoardCleared fires before an empty snapshot is
// applied over a non-empty local board, so stale marks and effects from the
// previous game never leak into the new one.
type Presenter interface {
	GameChanged(snapshot GameSnapshot)
	SessionChanged(status SessionStatus)

	BoardCleared()
	MarkPlaced(cell int, mark string)
	WinHighlighted(line [3]int)
}
