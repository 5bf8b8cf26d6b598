package model

// LeaderboardEntry is one row of the global leaderboard. Each user appears at
// most once, represented by their best finalized session (highest score, ties
// broken by lowest total time).
type LeaderboardEntry struct {
	Rank         int      `json:"rank"`
	UserID       string   `json:"userId"`
	Username     string   `json:"username"`
	PfpURL       string   `json:"pfpUrl"`
	Score        int      `json:"score"`
	Time         int      `json:"time"` // total time of the best session, seconds
	Accuracy     float64  `json:"accuracy"`
	TotalQuizzes int      `json:"totalQuizzes"`
	Achievements []string `json:"achievements"`
}
