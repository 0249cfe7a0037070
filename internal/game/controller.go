package game

import (
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/entity"
)

// NoTarget - a shot that hit no tile at all.
const NoTarget = -1

// Controller - the hotseat state machine: two players on one device taking
// turns. Shots at occupied cells, shots that miss the board and shots after
// the game is over are deliberately no-ops, not errors; firing at nothing is
// normal play.
type Controller struct {
	state  entity.GameState
	result entity.Result
}

func NewController() *Controller {
	return &Controller{
		state: entity.NewGameState(),
	}
}

// State - the current snapshot.
func (that *Controller) State() entity.GameState {
	return that.state
}

// Result - the evaluation of the current board.
func (that *Controller) Result() entity.Result {
	return that.result
}

// Shoot - applies a shot at the given cell. Returns true when the board
// changed: the mark was placed and either the game ended or the turn flipped.
func (that *Controller) Shoot(cell int) bool {
	if that.state.GameOver {
		return false
	}

	if cell < 0 || cell >= len(that.state.Board) {
		return false
	}

	if that.state.Board[cell] != entity.EmptyCell {
		return false
	}

	that.state.Board[cell] = that.state.Turn

	that.result = entity.Evaluate(that.state.Board)
	if that.result.HasWin || that.result.Draw {
		that.state.GameOver = true
		return true
	}

	that.state.Turn = entity.ToggleMark(that.state.Turn)

	return true
}

// Restart - back to an empty board with X to move. Always permitted.
func (that *Controller) Restart() {
	that.state = entity.NewGameState()
	that.result = entity.Result{}
}
