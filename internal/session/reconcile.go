package session

import (
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/entity"
)

// Placement - a cell the reconciler newly revealed from a remote snapshot.
type Placement struct {
	Cell int
	Mark string
}

// Reconciliation - the pure outcome of merging an authoritative snapshot
// into the local cached state. Cleared means the presentation layer must
// wipe marks and effects before applying anything (the remote board went
// back to empty, i.e. a reset). Pending lists cells where the local board
// holds a mark the remote does not confirm; those are kept, not erased.
type Reconciliation struct {
	State      entity.GameState
	Placements []Placement
	Cleared    bool
	Pending    []int
}

// Reconcile - merges a remote room snapshot into the local state. Pure and
// idempotent: applying the same snapshot twice yields the same state and no
// further placements, which is what lets the subscription stream be
// at-least-once.
//
// Board cells only ever flow remote -> local when the local cell is empty;
// a local mark the remote lacks is an optimistic prediction still in flight
// (or an unreachable race, which the caller logs) and stays put. Turn and
// GameOver are copied from the remote unconditionally - the room document is
// the single source of truth for control fields.
func Reconcile(local entity.GameState, remote *entity.Room) Reconciliation {
	out := Reconciliation{State: local}

	if !local.Board.IsEmpty() && remote.Board.IsEmpty() {
		out.Cleared = true
		out.State.Board = entity.EmptyBoard()
	}

	for i := range remote.Board {
		localVal, remoteVal := out.State.Board[i], remote.Board[i]
		if localVal == remoteVal {
			continue
		}

		if localVal == entity.EmptyCell {
			out.State.Board[i] = remoteVal
			out.Placements = append(out.Placements, Placement{Cell: i, Mark: remoteVal})
			continue
		}

		out.Pending = append(out.Pending, i)
	}

	out.State.Turn = remote.Turn
	if out.State.Turn == entity.EmptyCell {
		out.State.Turn = entity.PlayerX
	}

	out.State.GameOver = remote.GameOver

	return out
}
