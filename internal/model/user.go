package model

import "time"

// DeviceID identifies one device install. It is generated on the client and
// acts as the primary identity key; there are no passwords.
type DeviceID string

// User is the account bound to a device. A user record is written once at
// registration and never mutated: the username is permanent.
type User struct {
	DeviceID  DeviceID
	Username  string
	CreatedAt time.Time
}
