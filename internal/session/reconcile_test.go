package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/entity"
)

func TestReconcile(t *testing.T) {
	t.Run("Applies remote marks where the local board is empty", func(t *testing.T) {
		// Given: an empty local state and a remote board with two marks
		local := entity.NewGameState()
		remote := &entity.Room{
			Board: entity.Board{entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.PlayerO, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
			Turn:  entity.PlayerX,
		}

		// When: reconciling
		out := Reconcile(local, remote)

		// Then: both marks are placed and the state matches the remote
		require.Len(t, out.Placements, 2)
		assert.Equal(t, Placement{Cell: 0, Mark: entity.PlayerX}, out.Placements[0])
		assert.Equal(t, Placement{Cell: 4, Mark: entity.PlayerO}, out.Placements[1])
		assert.Equal(t, remote.Board, out.State.Board)
		assert.Equal(t, entity.PlayerX, out.State.Turn)
		assert.False(t, out.Cleared)
	})

	t.Run("Is idempotent: the same snapshot twice adds nothing", func(t *testing.T) {
		// Given: a state already reconciled from a snapshot
		local := entity.NewGameState()
		remote := &entity.Room{
			Board: entity.Board{entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.PlayerO, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
			Turn:  entity.PlayerX,
		}
		first := Reconcile(local, remote)

		// When: applying the identical snapshot again
		second := Reconcile(first.State, remote)

		// Then: no placements, no clear, same state
		assert.Empty(t, second.Placements)
		assert.False(t, second.Cleared)
		assert.Equal(t, first.State, second.State)
	})

	t.Run("Empty remote over non-empty local clears presentation first", func(t *testing.T) {
		// Given: a local board with marks and a freshly reset remote room
		local := entity.GameState{
			Board:    entity.Board{entity.PlayerX, entity.PlayerO, entity.EmptyCell, entity.EmptyCell, entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
			Turn:     entity.PlayerO,
			GameOver: true,
		}
		remote := &entity.Room{Board: entity.EmptyBoard(), Turn: entity.PlayerX}

		// When: reconciling
		out := Reconcile(local, remote)

		// Then: the clear flag is set and the state is fully reset
		assert.True(t, out.Cleared)
		assert.True(t, out.State.Board.IsEmpty())
		assert.Equal(t, entity.PlayerX, out.State.Turn)
		assert.False(t, out.State.GameOver)
		assert.Empty(t, out.Placements)
		assert.Empty(t, out.Pending)
	})

	t.Run("Keeps an optimistic local mark the remote does not confirm", func(t *testing.T) {
		// Given: a local board one commit ahead of the remote snapshot
		local := entity.GameState{
			Board: entity.Board{entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
			Turn:  entity.PlayerO,
		}
		remote := &entity.Room{Board: entity.EmptyBoard(), Turn: entity.PlayerX}

		// When: reconciling; note the remote board is NOT empty-over-non-empty
		// clearing here, because local has exactly one mark and remote none —
		// the reset rule fires, which is the reachable interpretation
		out := Reconcile(local, remote)

		// Then: reset semantics win when the whole remote board is empty
		assert.True(t, out.Cleared)
		assert.True(t, out.State.Board.IsEmpty())
	})

	t.Run("Reports a pending cell when boards disagree outside a reset", func(t *testing.T) {
		// Given: local holds a mark at 0 the remote lacks, and the remote has
		// another mark so the reset rule does not apply
		local := entity.GameState{
			Board: entity.Board{entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
			Turn:  entity.PlayerO,
		}
		remote := &entity.Room{
			Board: entity.Board{entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.PlayerO, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
			Turn:  entity.PlayerX,
		}

		// When: reconciling
		out := Reconcile(local, remote)

		// Then: the optimistic mark stays and is reported pending
		assert.Equal(t, entity.PlayerX, out.State.Board[0])
		assert.Equal(t, []int{0}, out.Pending)
		require.Len(t, out.Placements, 1)
		assert.Equal(t, Placement{Cell: 4, Mark: entity.PlayerO}, out.Placements[0])
	})

	t.Run("Copies turn and gameOver unconditionally and defaults an empty turn to X", func(t *testing.T) {
		local := entity.GameState{Turn: entity.PlayerO}
		remote := &entity.Room{Board: entity.EmptyBoard(), Turn: entity.EmptyCell, GameOver: true}

		out := Reconcile(local, remote)

		assert.Equal(t, entity.PlayerX, out.State.Turn)
		assert.True(t, out.State.GameOver)
	})
}
