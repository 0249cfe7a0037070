package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/presenter"
)

func (that *Server) handleModeSwitch(_ context.Context, cl *client, msg *Message) error {
	var payload ModePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	switch payload.Mode {
	case presenter.ModeSingle, presenter.ModeMulti:
		cl.session.RequestModeSwitch(payload.Mode)
	default:
		cl.sendError(fmt.Sprintf("unknown mode %q", payload.Mode))
	}

	return nil
}

func (that *Server) handleRoomCreate(ctx context.Context, cl *client, _ *Message) error {
	cl.session.RequestCreateRoom(ctx)
	return nil
}

func (that *Server) handleRoomJoin(ctx context.Context, cl *client, msg *Message) error {
	var payload JoinPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	cl.session.RequestJoinRoom(ctx, payload.Code)

	return nil
}

func (that *Server) handleGameShoot(ctx context.Context, cl *client, msg *Message) error {
	var payload ShootPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	cl.session.RequestShootAt(ctx, payload.Cell)

	return nil
}

// handleRoomLeave drops back to single player; the session cancels its
// subscription on the way out.
func (that *Server) handleRoomLeave(_ context.Context, cl *client, _ *Message) error {
	cl.session.RequestModeSwitch(presenter.ModeSingle)
	return nil
}

func (that *Server) handleRestart(ctx context.Context, cl *client, _ *Message) error {
	cl.session.RequestRestart(ctx)
	return nil
}
