package scoring

import (
	"context"
	"log/slog"
	"sort"

	"github.com/pixelbeak/arcade/internal/dependencies/clock"
	"github.com/pixelbeak/arcade/internal/model"
	"github.com/pixelbeak/arcade/internal/storage"
)

// leaderboardLimit caps the ranking at the top N devices.
const leaderboardLimit = 50

// Service records score submissions and derives the personal-best ranking
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new scoring Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Submit records one score for an existing user. The device must still have
// an account: a valid bearer token alone is not proof of one.
func (s *Service) Submit(ctx context.Context, deviceID model.DeviceID, value int) (*model.Score, error) {
	user, err := s.storage.GetUserByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	score := &model.Score{
		DeviceID:  deviceID,
		Username:  user.Username,
		Score:     value,
		Timestamp: s.clock.Now(),
	}

	if err := s.storage.AppendScore(ctx, score); err != nil {
		s.logger.Error("failed to append score",
			slog.String("device_id", string(deviceID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("score recorded",
		slog.String("device_id", string(deviceID)),
		slog.String("username", user.Username),
		slog.Int("score", value),
	)

	return score, nil
}

// WeeklyLeaderboard ranks each device's best submission, highest first,
// truncated to the top 50. The name is historical: nothing is filtered by
// week, the ranking is all-time.
func (s *Service) WeeklyLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	scores, err := s.storage.ListScores(ctx)
	if err != nil {
		return nil, err
	}

	// Reduce to each device's personal best
	best := make(map[model.DeviceID]*model.Score)
	for _, score := range scores {
		if current, ok := best[score.DeviceID]; !ok || score.Score > current.Score {
			best[score.DeviceID] = score
		}
	}

	ranked := make([]*model.Score, 0, len(best))
	for _, score := range best {
		ranked = append(ranked, score)
	}

	// Ties break on device ID so the order is stable for a given store state
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].DeviceID < ranked[j].DeviceID
	})

	if len(ranked) > leaderboardLimit {
		ranked = ranked[:leaderboardLimit]
	}

	entries := make([]model.LeaderboardEntry, len(ranked))
	for i, score := range ranked {
		entries[i] = model.LeaderboardEntry{
			Username: score.Username,
			Score:    score.Score,
			Rank:     i + 1,
		}
	}
	return entries, nil
}
