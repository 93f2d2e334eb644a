package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/pixelbeak/arcade/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	client  *redis.Client
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(s.client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		DeviceID:  "device-1",
		Username:  "Alice",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUserByDeviceID(s.ctx, "device-1")
	s.Require().NoError(err)
	s.Equal(user.DeviceID, retrieved.DeviceID)
	s.Equal(user.Username, retrieved.Username)
	s.True(user.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetUserByDeviceIDNotFound() {
	_, err := s.storage.GetUserByDeviceID(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsernameIsCaseInsensitive() {
	user := &model.User{DeviceID: "device-1", Username: "Alice"}
	_ = s.storage.SaveUser(s.ctx, user)

	for _, name := range []string{"Alice", "alice", "ALICE"} {
		retrieved, err := s.storage.GetUserByUsername(s.ctx, name)
		s.Require().NoError(err, "lookup %q", name)
		s.Equal("device-1", string(retrieved.DeviceID))
		s.Equal("Alice", retrieved.Username)
	}
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUserKeysHaveNoTTL() {
	user := &model.User{DeviceID: "device-1", Username: "Alice"}
	_ = s.storage.SaveUser(s.ctx, user)

	s.Equal(time.Duration(0), s.mini.TTL(userKey("device-1")))
	s.Equal(time.Duration(0), s.mini.TTL(usernameIndexKey("Alice")))
}

// Score tests

func (s *StorageSuite) TestAppendAndListScores() {
	scores := []*model.Score{
		{DeviceID: "device-1", Username: "Alice", Score: 100},
		{DeviceID: "device-2", Username: "Bob", Score: 50},
		{DeviceID: "device-1", Username: "Alice", Score: 75},
	}

	for _, score := range scores {
		err := s.storage.AppendScore(s.ctx, score)
		s.Require().NoError(err)
	}

	listed, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Len(listed, 3)

	total := 0
	for _, score := range listed {
		total += score.Score
	}
	s.Equal(225, total)
}

func (s *StorageSuite) TestListScoresEmpty() {
	listed, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(listed)
}

func (s *StorageSuite) TestListScoresSkipsInvalidData() {
	_ = s.storage.AppendScore(s.ctx, &model.Score{DeviceID: "device-1", Username: "Alice", Score: 100})

	// Corrupt entries in the list are skipped rather than failing the read
	s.Require().NoError(s.client.RPush(s.ctx, scoresKey("device-1"), "not json").Err())

	listed, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Len(listed, 1)
	s.Equal(100, listed[0].Score)
}

// Connection tests

func (s *StorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}

func (s *StorageSuite) TestGetUserStoreUnavailable() {
	s.mini.Close()

	_, err := s.storage.GetUserByDeviceID(s.ctx, "device-1")
	s.ErrorIs(err, model.ErrStoreUnavailable)
}
