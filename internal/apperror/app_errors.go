package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")

	ErrInvalidRoomCode = errors.New("room code must be exactly 5 digits")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomExists      = errors.New("room code is already taken")
	ErrUnavailable     = errors.New("multiplayer is unavailable")
	ErrTxAborted       = errors.New("transaction aborted")
	ErrConnectionLost  = errors.New("connection lost")

	ErrThemeNotFound = errors.New("theme not found")
)
