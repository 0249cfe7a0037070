package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/entity"
)

func TestController_Shoot(t *testing.T) {
	t.Run("Shot at an empty cell places the mark and flips the turn", func(t *testing.T) {
		// Given: a fresh game with X to move
		ctrl := NewController()

		// When: X shoots cell 4
		changed := ctrl.Shoot(4)

		// Then: the mark is placed and it is O's turn
		require.True(t, changed)
		assert.Equal(t, entity.PlayerX, ctrl.State().Board[4])
		assert.Equal(t, entity.PlayerO, ctrl.State().Turn)
		assert.False(t, ctrl.State().GameOver)
	})

	t.Run("Shot at an occupied cell changes nothing", func(t *testing.T) {
		// Given: a game where cell 4 is taken by X
		ctrl := NewController()
		require.True(t, ctrl.Shoot(4))

		// When: O shoots the same cell
		changed := ctrl.Shoot(4)

		// Then: the board and turn are untouched
		assert.False(t, changed)
		assert.Equal(t, entity.PlayerX, ctrl.State().Board[4])
		assert.Equal(t, entity.PlayerO, ctrl.State().Turn)
	})

	t.Run("Shot that misses the board changes nothing", func(t *testing.T) {
		ctrl := NewController()

		assert.False(t, ctrl.Shoot(NoTarget))
		assert.False(t, ctrl.Shoot(9))
		assert.True(t, ctrl.State().Board.IsEmpty())
		assert.Equal(t, entity.PlayerX, ctrl.State().Turn)
	})

	t.Run("Winning shot finishes the game without flipping the turn", func(t *testing.T) {
		// Given: X about to complete the top row
		ctrl := NewController()
		for _, cell := range []int{0, 3, 1, 4} {
			require.True(t, ctrl.Shoot(cell))
		}

		// When: X shoots cell 2
		changed := ctrl.Shoot(2)

		// Then: X wins and the turn does not flip
		require.True(t, changed)
		assert.True(t, ctrl.State().GameOver)
		assert.Equal(t, entity.PlayerX, ctrl.Result().Winner)
		assert.Equal(t, [3]int{0, 1, 2}, ctrl.Result().Line)
		assert.Equal(t, entity.PlayerX, ctrl.State().Turn)
	})

	t.Run("Filling the board without a line ends in a draw", func(t *testing.T) {
		// Given: a sequence that fills all nine cells with no winner
		ctrl := NewController()
		for _, cell := range []int{0, 4, 8, 1, 7, 6, 2, 5, 3} {
			require.True(t, ctrl.Shoot(cell))
		}

		// Then: the game is over as a draw
		assert.True(t, ctrl.State().GameOver)
		assert.True(t, ctrl.Result().Draw)
		assert.Equal(t, entity.EmptyCell, ctrl.Result().Winner)
	})

	t.Run("Shots after the game is over are ignored", func(t *testing.T) {
		// Given: a finished game
		ctrl := NewController()
		for _, cell := range []int{0, 3, 1, 4, 2} {
			require.True(t, ctrl.Shoot(cell))
		}
		require.True(t, ctrl.State().GameOver)

		// When: shooting an empty cell anyway
		changed := ctrl.Shoot(8)

		// Then: nothing happens
		assert.False(t, changed)
		assert.Equal(t, entity.EmptyCell, ctrl.State().Board[8])
	})
}

func TestController_Restart(t *testing.T) {
	t.Run("Restart returns to the initial state from any point", func(t *testing.T) {
		// Given: a finished game
		ctrl := NewController()
		for _, cell := range []int{0, 3, 1, 4, 2} {
			require.True(t, ctrl.Shoot(cell))
		}

		// When: restarting
		ctrl.Restart()

		// Then: empty board, X to move, not over
		assert.True(t, ctrl.State().Board.IsEmpty())
		assert.Equal(t, entity.PlayerX, ctrl.State().Turn)
		assert.False(t, ctrl.State().GameOver)
		assert.False(t, ctrl.Result().HasWin)
	})

	t.Run("Restart mid-game is permitted", func(t *testing.T) {
		ctrl := NewController()
		require.True(t, ctrl.Shoot(0))

		ctrl.Restart()

		assert.True(t, ctrl.State().Board.IsEmpty())
		assert.Equal(t, entity.PlayerX, ctrl.State().Turn)
	})
}
