package roomstore

import (
	"context"

	"github.com/siddh-art-codes/tictactoeisfun-public/internal/entity"
)

// TxFunc - a transaction body. It receives the authoritative document and the
// store's server time in unix milliseconds, and returns the next document to
// commit. Returning apperror.ErrTxAborted leaves the document untouched; the
// caller treats that as a silent no-op, not a failure.
type TxFunc func(current *entity.Room, now int64) (*entity.Room, error)

// Store - the room document store the session controller runs against.
// Transact must serialize concurrent read-modify-writes on one room so that
// at most one of two racing commits wins; Subscribe delivers every committed
// state in commit order, at-least-once.
type Store interface {
	// CreateIfAbsent atomically claims a code. Returns false when the code is taken.
	CreateIfAbsent(ctx context.Context, code string, room *entity.Room) (bool, error)

	Exists(ctx context.Context, code string) (bool, error)
	Read(ctx context.Context, code string) (*entity.Room, error)

	Transact(ctx context.Context, code string, fn TxFunc) (*entity.Room, error)

	// Write overwrites the document unconditionally, last writer wins.
	// Only the reset path uses it; the store stamps UpdatedAt and ResetAt.
	Write(ctx context.Context, code string, room *entity.Room) error

	// Subscribe starts delivering room snapshots, seeded with the current
	// document. The returned func cancels delivery; after it returns no
	// callback fires again.
	Subscribe(ctx context.Context, code string, onUpdate func(*entity.Room), onError func(error)) (func(), error)
}
