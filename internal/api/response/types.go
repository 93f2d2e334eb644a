package response

import (
	"github.com/pixelbeak/arcade/internal/model"
	"github.com/pixelbeak/arcade/internal/services/identity"
)

// InitResponse is the response for identity initialization
type InitResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	NewUser     bool   `json:"new_user"`
}

// InitResponseFromResult converts an identity.Result to an InitResponse
func InitResponseFromResult(r *identity.Result) InitResponse {
	return InitResponse{
		Message:     r.Message,
		AccessToken: r.Token,
		Username:    r.Username,
		NewUser:     r.NewUser,
	}
}

// SubmitScoreResponse acknowledges a recorded score
type SubmitScoreResponse struct {
	Message string `json:"message"`
}

// LeaderboardEntry represents one leaderboard row in API responses
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}

// LeaderboardFromModel converts model entries. The result is never nil so
// an empty board serializes as [] rather than null.
func LeaderboardFromModel(entries []model.LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			Username: e.Username,
			Score:    e.Score,
			Rank:     e.Rank,
		}
	}
	return out
}
