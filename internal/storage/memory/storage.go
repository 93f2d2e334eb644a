package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/pixelbeak/arcade/internal/model"
	"github.com/pixelbeak/arcade/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users map[model.DeviceID]*model.User
	// usernameIndex maps lowercased usernames to the owning device.
	usernameIndex map[string]model.DeviceID
	scores        []*model.Score
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.DeviceID]*model.User),
		usernameIndex: make(map[string]model.DeviceID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.DeviceID] = user
	s.usernameIndex[strings.ToLower(user.Username)] = user.DeviceID
	return nil
}

func (s *Storage) GetUserByDeviceID(ctx context.Context, deviceID model.DeviceID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[deviceID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	deviceID, ok := s.usernameIndex[strings.ToLower(username)]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[deviceID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, score)
	return nil
}

func (s *Storage) ListScores(ctx context.Context) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scores := make([]*model.Score, len(s.scores))
	copy(scores, s.scores)
	return scores, nil
}

// Connection management

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

func (s *Storage) Close() error {
	return nil
}
