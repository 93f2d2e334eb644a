package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pixelbeak/arcade/internal/dependencies/mocks"
	"github.com/pixelbeak/arcade/internal/model"
	"github.com/pixelbeak/arcade/internal/services/token"
	"github.com/pixelbeak/arcade/internal/storage/memory"
	"github.com/pixelbeak/arcade/internal/testutil"
)

type IdentityServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	tokens  *token.Service
	service *Service
	ctx     context.Context
}

func TestIdentityServiceSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceSuite))
}

func (s *IdentityServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.tokens = token.New("test-signing-key", s.clock, token.DefaultConfig())
	s.service = New(s.storage, s.tokens, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *IdentityServiceSuite) TestRegisterNewUser() {
	result, err := s.service.Initialize(s.ctx, "device-1", "Alice")
	s.Require().NoError(err)

	s.True(result.NewUser)
	s.Equal("Profile created", result.Message)
	s.Equal("Alice", result.Username)
	s.NotEmpty(result.Token)

	user, err := s.storage.GetUserByDeviceID(s.ctx, "device-1")
	s.Require().NoError(err)
	s.Equal("Alice", user.Username)
	s.True(user.CreatedAt.Equal(s.clock.Now()))
}

func (s *IdentityServiceSuite) TestTokenCarriesIdentity() {
	result, err := s.service.Initialize(s.ctx, "device-1", "Alice")
	s.Require().NoError(err)

	claims, err := s.tokens.Verify(result.Token)
	s.Require().NoError(err)
	s.Equal(model.DeviceID("device-1"), claims.DeviceID)
	s.Equal("Alice", claims.Username)
}

func (s *IdentityServiceSuite) TestWelcomeBack() {
	_, err := s.service.Initialize(s.ctx, "device-1", "Alice")
	s.Require().NoError(err)

	result, err := s.service.Initialize(s.ctx, "device-1", "Alice")
	s.Require().NoError(err)

	s.False(result.NewUser)
	s.Equal("Welcome back", result.Message)
	s.Equal("Alice", result.Username)
	s.NotEmpty(result.Token)
}

func (s *IdentityServiceSuite) TestWelcomeBackWithDifferentCasing() {
	_, err := s.service.Initialize(s.ctx, "device-1", "Alice")
	s.Require().NoError(err)

	// Same device re-initializing with a case variant of its own name
	result, err := s.service.Initialize(s.ctx, "device-1", "ALICE")
	s.Require().NoError(err)

	s.False(result.NewUser)
	s.Equal("Welcome back", result.Message)
	s.Equal("Alice", result.Username)
}

func (s *IdentityServiceSuite) TestUsernameTaken() {
	_, err := s.service.Initialize(s.ctx, "device-1", "Alice")
	s.Require().NoError(err)

	_, err = s.service.Initialize(s.ctx, "device-2", "Alice")
	s.ErrorIs(err, ErrUsernameTaken)

	// The rejected device must not gain an account
	_, err = s.storage.GetUserByDeviceID(s.ctx, "device-2")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *IdentityServiceSuite) TestUsernameTakenIsCaseInsensitive() {
	_, err := s.service.Initialize(s.ctx, "device-1", "Alice")
	s.Require().NoError(err)

	for _, name := range []string{"alice", "ALICE", "aLiCe"} {
		_, err = s.service.Initialize(s.ctx, "device-2", name)
		s.ErrorIs(err, ErrUsernameTaken, "requested %q", name)
	}
}

func (s *IdentityServiceSuite) TestDeviceKeepsOriginalName() {
	_, err := s.service.Initialize(s.ctx, "device-1", "Alice")
	s.Require().NoError(err)

	// A reinstalled app may ask for a fresh name; the account wins
	result, err := s.service.Initialize(s.ctx, "device-1", "TotallyNewName")
	s.Require().NoError(err)

	s.False(result.NewUser)
	s.Equal("Restored previous account", result.Message)
	s.Equal("Alice", result.Username)

	claims, err := s.tokens.Verify(result.Token)
	s.Require().NoError(err)
	s.Equal("Alice", claims.Username)

	// The requested name was never claimed, so another device may take it
	other, err := s.service.Initialize(s.ctx, "device-2", "TotallyNewName")
	s.Require().NoError(err)
	s.True(other.NewUser)
}

func (s *IdentityServiceSuite) TestRegisterPreservesCasing() {
	result, err := s.service.Initialize(s.ctx, "device-1", "CamelCaseName")
	s.Require().NoError(err)
	s.Equal("CamelCaseName", result.Username)

	user, err := s.storage.GetUserByUsername(s.ctx, "camelcasename")
	s.Require().NoError(err)
	s.Equal("CamelCaseName", user.Username)
}
