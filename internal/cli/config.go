package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	Token      string
	TokenFile  string
	DeviceFile string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("ARCADE_SERVER", "http://localhost:8080"),
		Token:      os.Getenv("ARCADE_TOKEN"),
		TokenFile:  getEnvOrDefault("ARCADE_TOKEN_FILE", defaultTokenFile()),
		DeviceFile: getEnvOrDefault("ARCADE_DEVICE_FILE", defaultDeviceFile()),
		Output:     "text",
		Verbose:    false,
	}
}

// LoadToken loads the token from file if not already set
func (c *Config) LoadToken() error {
	if c.Token != "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No token file is fine
		}
		return err
	}

	c.Token = strings.TrimSpace(string(data))
	return nil
}

// SaveToken saves the token to the token file
func (c *Config) SaveToken(token string) error {
	c.Token = token

	dir := filepath.Dir(c.TokenFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.TokenFile, []byte(token), 0600)
}

// EnsureDeviceID returns the persisted device ID, generating and saving
// a new one on first use. The same file keeps every run of the CLI on
// this machine bound to the same account.
func (c *Config) EnsureDeviceID() (string, error) {
	data, err := os.ReadFile(c.DeviceFile)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	} else if !os.IsNotExist(err) {
		return "", err
	}

	id := uuid.NewString()

	dir := filepath.Dir(c.DeviceFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	if err := os.WriteFile(c.DeviceFile, []byte(id), 0600); err != nil {
		return "", err
	}

	return id, nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".arcade/token"
	}
	return filepath.Join(home, ".arcade", "token")
}

func defaultDeviceFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".arcade/device"
	}
	return filepath.Join(home, ".arcade", "device")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
