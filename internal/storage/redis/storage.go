package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pixelbeak/arcade/internal/model"
	"github.com/pixelbeak/arcade/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, storeErr(err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// storeErr tags transport failures so callers can tell an unreachable
// store apart from a domain not-found.
func storeErr(err error) error {
	return fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update. No TTLs: the record and
	// the name it owns never expire.
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.DeviceID), data, 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.DeviceID), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Storage) GetUserByDeviceID(ctx context.Context, deviceID model.DeviceID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(deviceID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, storeErr(err)
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	// Look up device ID from the username index
	deviceIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, storeErr(err)
	}

	return s.GetUserByDeviceID(ctx, model.DeviceID(deviceIDStr))
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, score *model.Score) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	// Use pipeline for atomic append + index update
	pipe := s.client.Pipeline()
	pipe.RPush(ctx, scoresKey(score.DeviceID), data)
	pipe.SAdd(ctx, scoreDevicesIndexKey(), string(score.DeviceID))
	if _, err := pipe.Exec(ctx); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Storage) ListScores(ctx context.Context) ([]*model.Score, error) {
	// Get all devices that have submitted scores
	deviceIDs, err := s.client.SMembers(ctx, scoreDevicesIndexKey()).Result()
	if err != nil {
		return nil, storeErr(err)
	}

	if len(deviceIDs) == 0 {
		return []*model.Score{}, nil
	}

	// Fetch every device's submission list in one round trip
	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringSliceCmd, len(deviceIDs))
	for i, deviceID := range deviceIDs {
		cmds[i] = pipe.LRange(ctx, scoresKey(model.DeviceID(deviceID)), 0, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, storeErr(err)
	}

	var scores []*model.Score
	for _, cmd := range cmds {
		for _, data := range cmd.Val() {
			var score model.Score
			if err := json.Unmarshal([]byte(data), &score); err != nil {
				continue // Skip invalid data
			}
			scores = append(scores, &score)
		}
	}
	return scores, nil
}

// Connection management

func (s *Storage) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}
