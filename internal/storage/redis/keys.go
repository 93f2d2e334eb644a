package redis

import (
	"fmt"
	"strings"

	"github.com/pixelbeak/arcade/internal/model"
)

// Key prefix for all arcade data
const keyPrefix = "arcade"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(deviceID model.DeviceID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, deviceID)
}

// usernameIndexKey returns the Redis key for the username -> device_id
// index. Names are owned case-insensitively, so the key is lowercased.
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, strings.ToLower(username))
}

// scoresKey returns the Redis key for a device's score submission list
func scoresKey(deviceID model.DeviceID) string {
	return fmt.Sprintf("%s:scores:%s", keyPrefix, deviceID)
}

// scoreDevicesIndexKey returns the Redis key for the SET of devices that
// have submitted at least one score
func scoreDevicesIndexKey() string {
	return fmt.Sprintf("%s:idx:score_devices", keyPrefix)
}
