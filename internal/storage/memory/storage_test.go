package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pixelbeak/arcade/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		DeviceID:  "device-1",
		Username:  "Alice",
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUserByDeviceID(s.ctx, "device-1")
	s.Require().NoError(err)
	s.Equal(user.DeviceID, retrieved.DeviceID)
	s.Equal(user.Username, retrieved.Username)
}

func (s *StorageSuite) TestGetUserByDeviceIDNotFound() {
	_, err := s.storage.GetUserByDeviceID(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	user := &model.User{
		DeviceID: "device-1",
		Username: "Alice",
	}
	_ = s.storage.SaveUser(s.ctx, user)

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal("device-1", string(retrieved.DeviceID))
}

func (s *StorageSuite) TestGetUserByUsernameIsCaseInsensitive() {
	user := &model.User{
		DeviceID: "device-1",
		Username: "Alice",
	}
	_ = s.storage.SaveUser(s.ctx, user)

	for _, name := range []string{"alice", "ALICE", "aLiCe"} {
		retrieved, err := s.storage.GetUserByUsername(s.ctx, name)
		s.Require().NoError(err, "lookup %q", name)
		s.Equal("device-1", string(retrieved.DeviceID))
		// Stored casing is preserved regardless of the lookup casing.
		s.Equal("Alice", retrieved.Username)
	}
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Score tests

func (s *StorageSuite) TestAppendAndListScores() {
	scores := []*model.Score{
		{DeviceID: "device-1", Username: "Alice", Score: 100, Timestamp: time.Now()},
		{DeviceID: "device-2", Username: "Bob", Score: 50, Timestamp: time.Now()},
		{DeviceID: "device-1", Username: "Alice", Score: 75, Timestamp: time.Now()},
	}

	for _, score := range scores {
		err := s.storage.AppendScore(s.ctx, score)
		s.Require().NoError(err)
	}

	listed, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Len(listed, 3)
}

func (s *StorageSuite) TestListScoresEmpty() {
	listed, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(listed)
}

// Connection tests

func (s *StorageSuite) TestPingAndClose() {
	s.NoError(s.storage.Ping(s.ctx))
	s.NoError(s.storage.Close())
}
