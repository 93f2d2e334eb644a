package identity

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pixelbeak/arcade/internal/dependencies/clock"
	"github.com/pixelbeak/arcade/internal/model"
	"github.com/pixelbeak/arcade/internal/services/token"
	"github.com/pixelbeak/arcade/internal/storage"
)

// Errors
var (
	ErrUsernameTaken = errors.New("username already taken")
)

// Result is the outcome of resolving a device to an account.
type Result struct {
	Token    string
	Username string
	NewUser  bool
	Message  string
}

// Service resolves (device, requested username) pairs to stable accounts.
//
// The policy is name-ownership first: a username belongs, case-insensitively,
// to the first device that claimed it, forever. A known device always gets
// its original name back no matter what name it asks for.
type Service struct {
	storage storage.Storage
	tokens  *token.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new identity Service
func New(storage storage.Storage, tokens *token.Service, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		tokens:  tokens,
		clock:   clock,
		logger:  logger,
	}
}

// Initialize resolves the caller to an account and issues a bearer token,
// creating the account when both the device and the name are unseen.
func (s *Service) Initialize(ctx context.Context, deviceID model.DeviceID, username string) (*Result, error) {
	// Check whether the requested name is already owned
	owner, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil {
		if owner.DeviceID != deviceID {
			return nil, ErrUsernameTaken
		}
		// Same device re-initializing with its own name
		return s.issue(owner, false, "Welcome back")
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	// The name is free. A device that already has an account keeps its
	// original name regardless of what it requested.
	existing, err := s.storage.GetUserByDeviceID(ctx, deviceID)
	if err == nil {
		return s.issue(existing, false, "Restored previous account")
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	// New device and free name: register, keeping the submitted casing
	user := &model.User{
		DeviceID:  deviceID,
		Username:  username,
		CreatedAt: s.clock.Now(),
	}
	if err := s.storage.SaveUser(ctx, user); err != nil {
		s.logger.Error("failed to save user",
			slog.String("device_id", string(deviceID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("device_id", string(deviceID)),
		slog.String("username", username),
	)

	return s.issue(user, true, "Profile created")
}

func (s *Service) issue(user *model.User, newUser bool, message string) (*Result, error) {
	signed, err := s.tokens.Issue(user.DeviceID, user.Username)
	if err != nil {
		return nil, err
	}
	return &Result{
		Token:    signed,
		Username: user.Username,
		NewUser:  newUser,
		Message:  message,
	}, nil
}
