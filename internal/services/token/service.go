package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pixelbeak/arcade/internal/dependencies/clock"
	"github.com/pixelbeak/arcade/internal/model"
)

// Errors
var (
	// ErrInvalidToken covers every verification failure: malformed input,
	// bad signature, wrong algorithm, expiry. Callers never learn which.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carries the identity embedded in a verified token.
type Claims struct {
	DeviceID model.DeviceID
	Username string
}

// tokenClaims is the wire shape of the JWT payload.
type tokenClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// Service issues and verifies stateless bearer tokens. Tokens are signed
// HS256 with a single symmetric key; there is no server-side session state
// and no revocation.
type Service struct {
	key   []byte
	ttl   time.Duration
	clock clock.Clock
}

// Config holds configuration for the token service
type Config struct {
	TTL time.Duration
}

// DefaultConfig returns default token configuration. The lifetime is ten
// years: devices authenticate once and are never asked again.
func DefaultConfig() Config {
	return Config{
		TTL: 3650 * 24 * time.Hour,
	}
}

// New creates a new token Service signing with the given symmetric key
func New(signingKey string, clock clock.Clock, cfg Config) *Service {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Service{
		key:   []byte(signingKey),
		ttl:   cfg.TTL,
		clock: clock,
	}
}

// Issue creates a signed token for the given device and username
func (s *Service) Issue(deviceID model.DeviceID, username string) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(deviceID),
			ExpiresAt: jwt.NewNumericDate(s.clock.Now().Add(s.ttl)),
		},
		Name: username,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify checks the signature and expiry of a token and returns its claims.
// All failure modes collapse to ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		DeviceID: model.DeviceID(claims.Subject),
		Username: claims.Name,
	}, nil
}
