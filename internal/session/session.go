package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/apperror"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/entity"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/game"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/metrics"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/pkg"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/presenter"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/roomstore"
)

// createAttempts - fresh random codes tried before giving up on room creation.
const createAttempts = 5

const (
	noteShareCode    = "Share the code with your friend. You are X."
	noteJoined       = "Joined. You are O."
	noteCreateOrJoin = "Create or join with a 5-digit code."
	noteInvalidCode  = "Enter a valid 5-digit code."
	noteNotFound     = "Room not found."
	noteUnreachable  = "Unable to reach server. Try again."
	noteUnavailable  = "Two Player unavailable: no store configured."
	noteCreateFailed = "Failed to create room, try again."
	noteShotFailed   = "Shot not applied."
	noteReset        = "Game reset."
	noteResetFailed  = "Failed to reset."
	noteLost         = "Connection lost."
)

// Session - one client's binding to a mode and, in multi, to a room and a
// mark. It owns the multiplayer state machine: create/join, the shot
// transaction, reconciliation of subscription snapshots, and teardown.
//
// All event handling (transport calls and subscription deliveries) is
// serialized on one mutex; presenter callbacks fire under it and must not
// call back into the session.
type Session struct {
	mu     sync.Mutex
	logger *slog.Logger

	store roomstore.Store // nil when multiplayer is unavailable
	pres  presenter.Presenter
	local *game.Controller

	mode     string
	player   string
	code     string
	clientID string
	note     string

	shotUsed bool
	cached   entity.GameState
	unsub    func()

	// gen counts bindings; it bumps on every bind and teardown. Async work
	// (shot transactions, subscription deliveries) carries the gen it was
	// started under and is dropped once the session has moved on.
	gen uint64
}

func New(logger *slog.Logger, store roomstore.Store, pres presenter.Presenter) *Session {
	return &Session{
		logger:   logger.With("component", "session"),
		store:    store,
		pres:     pres,
		local:    game.NewController(),
		mode:     presenter.ModeSingle,
		clientID: uuid.NewString(),
		cached:   entity.NewGameState(),
	}
}

// RequestModeSwitch - changes between single and multi. Leaving multi (or
// re-entering it) always cancels the active subscription first so no stale
// callback can mutate a session that moved on.
func (that *Session) RequestModeSwitch(mode string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.teardownLocked()

	switch mode {
	case presenter.ModeMulti:
		that.mode = presenter.ModeMulti
		if that.store == nil {
			that.note = noteUnavailable
		} else {
			that.note = noteCreateOrJoin
		}
	default:
		that.mode = presenter.ModeSingle
		that.note = ""
	}

	that.emitSessionLocked()
	that.emitLocalGameLocked()
}

// RequestCreateRoom - claims a fresh 5-digit code, binds the session as
// host/X and starts the snapshot subscription. Collisions retry with a new
// code up to createAttempts times.
func (that *Session) RequestCreateRoom(ctx context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.store == nil {
		that.note = noteUnavailable
		that.emitSessionLocked()
		return
	}

	that.teardownLocked()
	that.mode = presenter.ModeMulti

	for attempt := 0; attempt < createAttempts; attempt++ {
		code := pkg.GenerateRoomCode()

		created, err := that.store.CreateIfAbsent(ctx, code, entity.NewRoom(that.clientID))
		if err != nil {
			that.logger.Error("failed to create room", "error", err)
			that.note = noteUnreachable
			that.emitSessionLocked()
			return
		}

		if !created {
			continue
		}

		that.bindLocked(ctx, code, entity.PlayerX, noteShareCode)
		metrics.RoomsCreated.Inc()

		return
	}

	that.note = noteCreateFailed
	that.emitSessionLocked()
}

// RequestJoinRoom - validates the code, looks the room up and binds the
// session as guest/O. Joining never creates or resets the room; the only
// write is a best-effort audit stamp.
func (that *Session) RequestJoinRoom(ctx context.Context, code string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !pkg.ValidRoomCode(code) {
		that.note = noteInvalidCode
		that.emitSessionLocked()
		return
	}

	if that.store == nil {
		that.note = noteUnavailable
		that.emitSessionLocked()
		return
	}

	if _, err := that.store.Read(ctx, code); err != nil {
		if errors.Is(err, apperror.ErrRoomNotFound) {
			that.note = noteNotFound
		} else {
			that.logger.Error("failed to look up room", "error", err)
			that.note = noteUnreachable
		}
		that.emitSessionLocked()
		return
	}

	that.teardownLocked()
	that.mode = presenter.ModeMulti

	// audit only, matching the host-side createdAt stamp; failure is not a join failure
	_, err := that.store.Transact(ctx, code, func(current *entity.Room, now int64) (*entity.Room, error) {
		next := *current
		next.GuestJoinedAt = now
		return &next, nil
	})
	if err != nil {
		that.logger.Warn("failed to stamp guest join", "room", code, "error", err)
	}

	that.bindLocked(ctx, code, entity.PlayerO, noteJoined)
	metrics.RoomsJoined.Inc()
}

// RequestShootAt - a shoot-intent aimed at cell, or game.NoTarget when the
// shot hit no tile. In single mode it resolves immediately against the local
// controller. In multi it is the critical path: guarded locally by turn and
// shotUsed, then resolved inside a store transaction so two racing clients
// cannot both mutate the board.
func (that *Session) RequestShootAt(ctx context.Context, cell int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.mode != presenter.ModeMulti {
		that.shootLocalLocked(cell)
		return
	}

	if that.cached.GameOver {
		return
	}

	if that.player == entity.EmptyCell || that.cached.Turn != that.player {
		return
	}

	if that.shotUsed {
		return // one shot per turn; extra intents are dropped, never queued
	}

	that.shotUsed = true

	gen := that.gen
	player := that.player
	code := that.code

	// fire-and-forget relative to the caller; the result flows back through
	// the subscription (and an optimistic local apply on commit)
	go that.submitShot(ctx, gen, code, player, cell)
}

func (that *Session) submitShot(ctx context.Context, gen uint64, code, player string, cell int) {
	log := that.logger.With("method", "submitShot", "room", code)

	committed, err := that.store.Transact(ctx, code, func(current *entity.Room, now int64) (*entity.Room, error) {
		if current.GameOver {
			return nil, apperror.ErrTxAborted
		}

		if current.Turn != player {
			return nil, apperror.ErrTxAborted // opponent won the race, stale turn
		}

		next := *current

		placed := false
		if cell >= 0 && cell < len(next.Board) && next.Board[cell] == entity.EmptyCell {
			next.Board[cell] = player
			placed = true
		}

		// win/draw detection happens inside the transaction so the committed
		// document is always self-consistent
		result := entity.Evaluate(next.Board)
		over := result.HasWin || result.Draw

		next.GameOver = over
		if !over {
			next.Turn = entity.ToggleMark(current.Turn)
		}

		target := cell
		if !placed {
			target = game.NoTarget
		}
		next.LastMove = &entity.LastMove{Cell: target, By: player, Missed: !placed, At: now}

		return &next, nil
	})

	if errors.Is(err, apperror.ErrTxAborted) {
		// silent by design: the subscription will shortly deliver the
		// authoritative state that explains why
		metrics.ShotsAborted.Inc()
		return
	}

	if err != nil {
		log.Error("failed to submit shot", "error", err)
		that.mu.Lock()
		if gen == that.gen {
			that.note = noteShotFailed
			that.emitSessionLocked()
		}
		that.mu.Unlock()
		return
	}

	if committed.LastMove != nil && committed.LastMove.Missed {
		metrics.ShotsCommitted.WithLabelValues("missed").Inc()
	} else {
		metrics.ShotsCommitted.WithLabelValues("placed").Inc()
	}

	// optimistic apply; the subscription will redeliver the same snapshot
	// and reconcile to a no-op
	that.applyRemote(gen, committed)
}

// RequestRestart - in single mode resets the local controller immediately.
// In multi any bound session may reset: the room is written back to the
// initial state as a full overwrite (last writer wins, no transaction) and
// both sessions pick the reset up from the subscription.
func (that *Session) RequestRestart(ctx context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.mode != presenter.ModeMulti || that.code == entity.EmptyCell {
		that.local.Restart()
		that.pres.BoardCleared()
		that.emitLocalGameLocked()
		return
	}

	room, err := that.store.Read(ctx, that.code)
	if err != nil {
		room = entity.NewRoom(that.clientID)
	}
	room.Reset()

	if err = that.store.Write(ctx, that.code, room); err != nil {
		that.logger.Error("failed to reset room", "error", err)
		that.note = noteResetFailed
		that.emitSessionLocked()
		return
	}

	metrics.Resets.Inc()
	that.note = noteReset
	that.emitSessionLocked()
}

// ApplyRemoteState - reconciles an authoritative snapshot into the session's
// current binding. Tolerant of duplicates and of snapshots arriving after a
// reset.
func (that *Session) ApplyRemoteState(room *entity.Room) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.applyRemoteLocked(room)
}

// applyRemote - apply path for async work (subscription deliveries, the
// session's own commits). A delivery started under an older binding is
// dropped: its room is no longer this session's room.
func (that *Session) applyRemote(gen uint64, room *entity.Room) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if gen != that.gen {
		return // stale binding, the session tore down or rebound meanwhile
	}

	that.applyRemoteLocked(room)
}

func (that *Session) applyRemoteLocked(room *entity.Room) {
	if that.mode != presenter.ModeMulti || that.code == entity.EmptyCell {
		return // late delivery after a mode switch lost the race to teardown
	}

	out := Reconcile(that.cached, room)

	if out.Cleared {
		that.pres.BoardCleared()
	}

	for _, placement := range out.Placements {
		that.pres.MarkPlaced(placement.Cell, placement.Mark)
	}

	for _, cell := range out.Pending {
		// unreachable under single-move-per-turn enforcement; kept visible
		// rather than silently special-cased
		that.logger.Warn("local mark missing from remote snapshot", "cell", cell)
	}

	that.cached = out.State

	// recomputed locally so the banner is consistent even before the
	// authoritative evaluation propagates
	result := entity.Evaluate(out.State.Board)
	if out.State.GameOver && result.HasWin {
		that.pres.WinHighlighted(result.Line)
	}

	if that.player != entity.EmptyCell && out.State.Turn == that.player {
		that.shotUsed = false
	}

	that.pres.GameChanged(snapshot(out.State, result))
}

// Close - tears the session down; safe to call more than once.
func (that *Session) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.teardownLocked()
}

// bindLocked - common tail of create and join: bind to the room, reset the
// per-turn state and start the subscription.
func (that *Session) bindLocked(ctx context.Context, code, player, note string) {
	that.gen++
	gen := that.gen

	that.player = player
	that.code = code
	that.cached = entity.NewGameState()
	that.shotUsed = false
	that.note = note

	unsub, err := that.store.Subscribe(ctx, code,
		func(room *entity.Room) {
			that.applyRemote(gen, room)
		},
		func(subErr error) {
			that.mu.Lock()
			defer that.mu.Unlock()
			if gen != that.gen {
				return // the binding this stream belonged to is gone
			}
			that.logger.Error("subscription failed", "room", code, "error", subErr)
			that.note = noteLost // no automatic resubscribe; the user rejoins
			that.emitSessionLocked()
		},
	)
	if err != nil {
		that.logger.Error("failed to subscribe", "room", code, "error", err)
		that.note = noteLost
		that.emitSessionLocked()
		return
	}

	that.unsub = unsub
	that.emitSessionLocked()
}

// teardownLocked - cancels the subscription before any field is discarded,
// and invalidates every async callback still in flight for the old binding.
func (that *Session) teardownLocked() {
	that.gen++

	if that.unsub != nil {
		that.unsub()
		that.unsub = nil
	}

	that.player = entity.EmptyCell
	that.code = entity.EmptyCell
	that.shotUsed = false
	that.cached = entity.NewGameState()
}

func (that *Session) shootLocalLocked(cell int) {
	mark := that.local.State().Turn

	if !that.local.Shoot(cell) {
		return
	}

	that.pres.MarkPlaced(cell, mark)

	result := that.local.Result()
	if result.HasWin {
		that.pres.WinHighlighted(result.Line)
	}

	that.emitLocalGameLocked()
}

func (that *Session) emitLocalGameLocked() {
	that.pres.GameChanged(snapshot(that.local.State(), that.local.Result()))
}

func (that *Session) emitSessionLocked() {
	that.pres.SessionChanged(presenter.SessionStatus{
		Mode:   that.mode,
		Player: that.player,
		Code:   that.code,
		Note:   that.note,
	})
}

func snapshot(state entity.GameState, result entity.Result) presenter.GameSnapshot {
	return presenter.GameSnapshot{
		Board:    state.Board,
		Turn:     state.Turn,
		GameOver: state.GameOver,
		Winner:   result.Winner,
		WinLine:  result.Line,
		HasWin:   result.HasWin,
		Draw:     result.Draw,
	}
}
