package service

import "framequiz/internal/model"

// AchievementRule awards a named badge when a leaderboard entry qualifies.
// The rule set is configuration, not fixed logic; callers can pass their own
// table to NewLeaderboardService.
type AchievementRule struct {
	Name      string
	Qualifies func(entry model.LeaderboardEntry, best *model.QuizSession) bool
}

// DefaultAchievementRules is the badge table used when none is configured.
func DefaultAchievementRules() []AchievementRule {
	return []AchievementRule{
		{
			Name: "Perfect Score",
			Qualifies: func(entry model.LeaderboardEntry, best *model.QuizSession) bool {
				return best.Accuracy == 100
			},
		},
		{
			Name: "Podium Finish",
			Qualifies: func(entry model.LeaderboardEntry, best *model.QuizSession) bool {
				return entry.Rank >= 1 && entry.Rank <= 3
			},
		},
		{
			Name: "Speed Demon",
			Qualifies: func(entry model.LeaderboardEntry, best *model.QuizSession) bool {
				// Averaged at most 3 seconds per question on the best run.
				return len(best.Answers) > 0 && best.TotalTime <= 3*len(best.Answers)
			},
		},
		{
			Name: "Quiz Veteran",
			Qualifies: func(entry model.LeaderboardEntry, best *model.QuizSession) bool {
				return entry.TotalQuizzes >= 10
			},
		},
	}
}

func applyRules(rules []AchievementRule, entry model.LeaderboardEntry, best *model.QuizSession) []string {
	achievements := []string{}
	for _, rule := range rules {
		if rule.Qualifies(entry, best) {
			achievements = append(achievements, rule.Name)
		}
	}
	return achievements
}
