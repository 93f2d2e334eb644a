package model

import "time"

// Score is a single submitted game result. Submissions are append-only
// facts; Username is a snapshot of the submitter's name at write time.
type Score struct {
	DeviceID  DeviceID
	Username  string
	Score     int
	Timestamp time.Time
}

// LeaderboardEntry is one row of the derived personal-best ranking.
type LeaderboardEntry struct {
	Username string
	Score    int
	Rank     int
}
