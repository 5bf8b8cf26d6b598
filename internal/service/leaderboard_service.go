package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"framequiz/internal/cache"
	"framequiz/internal/model"
	"framequiz/internal/repository"
)

const (
	// DefaultLeaderboardLimit is used when the client doesn't ask for one.
	DefaultLeaderboardLimit = 50
	// MaxLeaderboardLimit caps what a client may request; it is also how many
	// entries get cached.
	MaxLeaderboardLimit = 100
)

// LeaderboardService derives ranked standings from finalized sessions. Each
// user appears once, represented by their best session: highest score, ties
// broken by lowest total time, then earliest completion.
type LeaderboardService struct {
	sessionRepo repository.SessionRepo
	lbCache     cache.LeaderboardCache
	rules       []AchievementRule
}

// NewLeaderboardService creates a new leaderboard service. A nil rules table
// falls back to DefaultAchievementRules. The cache is optional.
func NewLeaderboardService(sessionRepo repository.SessionRepo, lbCache cache.LeaderboardCache, rules []AchievementRule) *LeaderboardService {
	if rules == nil {
		rules = DefaultAchievementRules()
	}
	return &LeaderboardService{
		sessionRepo: sessionRepo,
		lbCache:     lbCache,
		rules:       rules,
	}
}

// GetLeaderboard returns the top entries. Reads go through the Redis cache;
// leaderboard reads are eventually consistent with concurrent finalizes.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	if s.lbCache != nil {
		cached, err := s.lbCache.Get(ctx, limit)
		if err != nil {
			log.Printf("leaderboard cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	entries, err := s.computeLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	if s.lbCache != nil {
		toCache := entries
		if len(toCache) > MaxLeaderboardLimit {
			toCache = toCache[:MaxLeaderboardLimit]
		}
		if err := s.lbCache.Set(ctx, toCache); err != nil {
			log.Printf("leaderboard cache write failed: %v", err)
		}
	}

	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// GetUserStanding returns the user's leaderboard entry, or nil when the user
// has no finalized session. The rank is the position of the user's best
// session among all users' bests.
func (s *LeaderboardService) GetUserStanding(ctx context.Context, userID string) (*model.LeaderboardEntry, error) {
	entries, err := s.computeLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].UserID == userID {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// GetUserSessions returns a user's attempts, newest first.
func (s *LeaderboardService) GetUserSessions(ctx context.Context, userID string, limit int) ([]*model.QuizSession, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	return s.sessionRepo.GetByUser(ctx, userID, limit)
}

// Invalidate drops the cached leaderboard; called after every finalize.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.lbCache == nil {
		return
	}
	if err := s.lbCache.Invalidate(ctx); err != nil {
		log.Printf("leaderboard cache invalidate failed: %v", err)
	}
}

func (s *LeaderboardService) computeLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	sessions, err := s.sessionRepo.GetFinalized(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load finalized sessions: %w", err)
	}
	return rankSessions(sessions, s.rules), nil
}

// rankSessions collapses finalized sessions into one entry per user (their
// best run) and assigns dense ranks. An empty input yields an empty slice,
// not nil, so the API serializes it as [].
func rankSessions(sessions []*model.QuizSession, rules []AchievementRule) []model.LeaderboardEntry {
	sorted := make([]*model.QuizSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		if sorted[i].TotalTime != sorted[j].TotalTime {
			return sorted[i].TotalTime < sorted[j].TotalTime
		}
		// Deterministic final tiebreak: whoever got there first.
		ci, cj := sorted[i].CompletedAt, sorted[j].CompletedAt
		if ci != nil && cj != nil {
			return ci.Before(*cj)
		}
		return false
	})

	attempts := make(map[string]int)
	for _, session := range sorted {
		attempts[session.UserID]++
	}

	entries := []model.LeaderboardEntry{}
	best := make(map[string]*model.QuizSession)
	for _, session := range sorted {
		if _, seen := best[session.UserID]; seen {
			continue // best attempt already taken, sort order guarantees it
		}
		best[session.UserID] = session
		entries = append(entries, model.LeaderboardEntry{
			Rank:         len(entries) + 1,
			UserID:       session.UserID,
			Username:     session.Username,
			PfpURL:       session.PfpURL,
			Score:        session.Score,
			Time:         session.TotalTime,
			Accuracy:     session.Accuracy,
			TotalQuizzes: attempts[session.UserID],
		})
	}

	for i := range entries {
		entries[i].Achievements = applyRules(rules, entries[i], best[entries[i].UserID])
	}
	return entries
}
