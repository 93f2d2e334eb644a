package storage

import (
	"context"

	"github.com/pixelbeak/arcade/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations. Username lookups are case-insensitive; the stored
	// record keeps the casing the user registered with.
	SaveUser(ctx context.Context, user *model.User) error
	GetUserByDeviceID(ctx context.Context, deviceID model.DeviceID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Score operations. Scores are append-only; ListScores returns every
	// submission ever recorded, in no particular order.
	AppendScore(ctx context.Context, score *model.Score) error
	ListScores(ctx context.Context) ([]*model.Score, error)

	// Connection management
	Ping(ctx context.Context) error
	Close() error
}
