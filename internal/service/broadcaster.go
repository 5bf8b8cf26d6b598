package service

import "framequiz/internal/model"

// Broadcaster pushes leaderboard updates to connected viewers (avoids import
// cycle with the ws transport).
type Broadcaster interface {
	BroadcastLeaderboard(entries []model.LeaderboardEntry)
}
