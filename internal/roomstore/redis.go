package roomstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/apperror"
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/entity"
)

// txAttempts bounds optimistic retries when a WATCH detects a concurrent
// commit. The loser of a genuine turn race aborts on the stale-turn guard on
// its first re-read, so a couple of retries is plenty.
const txAttempts = 3

type RedisStore struct {
	logger *slog.Logger
	client *redis.Client
}

func NewRedisStore(ctx context.Context, logger *slog.Logger, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{logger: logger, client: client}, nil
}

func (that *RedisStore) Close() error {
	return that.client.Close() //nolint: wrapcheck // close error is terminal anyway
}

func roomKey(code string) string {
	return "room:" + code
}

func updatesChannel(code string) string {
	return "room:updates:" + code
}

func (that *RedisStore) CreateIfAbsent(ctx context.Context, code string, room *entity.Room) (bool, error) {
	now := that.serverTime(ctx)
	room.CreatedAt = now
	room.UpdatedAt = now
	room.Version = 1

	payload, err := json.Marshal(room)
	if err != nil {
		return false, fmt.Errorf("failed to marshal room: %w", err)
	}

	created, err := that.client.SetNX(ctx, roomKey(code), payload, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim room code: %w", err)
	}

	return created, nil
}

func (that *RedisStore) Exists(ctx context.Context, code string) (bool, error) {
	count, err := that.client.Exists(ctx, roomKey(code)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check room: %w", err)
	}

	return count > 0, nil
}

func (that *RedisStore) Read(ctx context.Context, code string) (*entity.Room, error) {
	response, err := that.client.Get(ctx, roomKey(code)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrRoomNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room entity.Room
	if err = json.Unmarshal([]byte(response), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// Transact - serializable read-modify-write on one room document via
// WATCH/MULTI. If another client commits between the read and the write the
// whole body re-runs against the fresh document, so a racing session observes
// the opponent's move before deciding to abort.
func (that *RedisStore) Transact(ctx context.Context, code string, fn TxFunc) (*entity.Room, error) {
	key := roomKey(code)

	var committed *entity.Room

	body := func(tx *redis.Tx) error {
		response, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return apperror.ErrRoomNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		var current entity.Room
		if err = json.Unmarshal([]byte(response), &current); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}

		now := that.serverTime(ctx)

		next, err := fn(&current, now)
		if err != nil {
			return err
		}

		next.Version = current.Version + 1
		next.UpdatedAt = now

		payload, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			pipe.Publish(ctx, updatesChannel(code), payload)
			return nil
		})
		if err != nil {
			return err //nolint: wrapcheck // TxFailedErr must stay unwrapped for the retry check
		}

		committed = next

		return nil
	}

	for attempt := 0; attempt < txAttempts; attempt++ {
		err := that.client.Watch(ctx, body, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue // lost the race to a concurrent commit, re-read and retry
		}

		if err != nil {
			return nil, err //nolint: wrapcheck // sentinel errors pass through to the session
		}

		return committed, nil
	}

	return nil, fmt.Errorf("room %s: transaction kept conflicting: %w", code, redis.TxFailedErr)
}

func (that *RedisStore) Write(ctx context.Context, code string, room *entity.Room) error {
	now := that.serverTime(ctx)
	room.UpdatedAt = now
	room.ResetAt = now
	room.Version++

	payload, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, roomKey(code), payload, 0)
		pipe.Publish(ctx, updatesChannel(code), payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write room: %w", err)
	}

	return nil
}

// Subscribe - relays committed snapshots for one room. The current document
// is delivered first so a reconnecting client catches up immediately;
// duplicates are possible and the reconciliation layer tolerates them.
func (that *RedisStore) Subscribe(ctx context.Context, code string, onUpdate func(*entity.Room), onError func(error)) (func(), error) {
	log := that.logger.With("method", "Subscribe", "room", code)

	pubsub := that.client.Subscribe(ctx, updatesChannel(code))

	// confirm the subscription before seeding, so no commit lands between
	// the seed read and the first relayed message
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to room updates: %w", err)
	}

	var cancelled atomic.Bool

	go func() {
		if room, err := that.Read(ctx, code); err == nil {
			if !cancelled.Load() {
				onUpdate(room)
			}
		}

		for msg := range pubsub.Channel() {
			if cancelled.Load() {
				return
			}

			var room entity.Room
			if err := json.Unmarshal([]byte(msg.Payload), &room); err != nil {
				log.Error("failed to unmarshal room update", "error", err)
				continue
			}

			onUpdate(&room)
		}

		if !cancelled.Load() {
			onError(apperror.ErrConnectionLost)
		}
	}()

	unsubscribe := func() {
		cancelled.Store(true)
		if err := pubsub.Close(); err != nil {
			log.Error("failed to close subscription", "error", err)
		}
	}

	return unsubscribe, nil
}

// serverTime - the store's clock in unix milliseconds, so both clients see
// the same audit timestamps. Falls back to local time if TIME fails.
func (that *RedisStore) serverTime(ctx context.Context) int64 {
	serverNow, err := that.client.Time(ctx).Result()
	if err != nil {
		return time.Now().UnixMilli()
	}

	return serverNow.UnixMilli()
}
