package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"framequiz/internal/model"
	"framequiz/internal/repository"
)

const (
	// DefaultQuestionCount is how many questions a generated quiz has.
	DefaultQuestionCount = 10
	// MaxQuestionCount caps client-requested quiz sizes.
	MaxQuestionCount = 20
)

// QuizService orchestrates the session lifecycle: question selection, session
// creation ("start") and one-time finalization ("submit").
type QuizService struct {
	sessionRepo  repository.SessionRepo
	questionRepo repository.QuestionRepo
	leaderboard  *LeaderboardService
	broadcaster  Broadcaster
}

// NewQuizService creates a new quiz service
func NewQuizService(sessionRepo repository.SessionRepo, questionRepo repository.QuestionRepo, leaderboard *LeaderboardService) *QuizService {
	return &QuizService{
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		leaderboard:  leaderboard,
	}
}

// SetBroadcaster sets the broadcaster for live leaderboard updates
func (s *QuizService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// GenerateQuestions selects a fresh random question set from the bank,
// sanitized for the client.
func (s *QuizService) GenerateQuestions(ctx context.Context, count int) ([]model.SanitizedQuestion, error) {
	if count <= 0 {
		count = DefaultQuestionCount
	}
	if count > MaxQuestionCount {
		count = MaxQuestionCount
	}

	questions, err := s.questionRepo.GetRandom(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("failed to select questions: %w", err)
	}

	sanitized := make([]model.SanitizedQuestion, 0, len(questions))
	for _, q := range questions {
		sanitized = append(sanitized, q.Sanitize())
	}
	return sanitized, nil
}

// StartQuiz creates a pending session for the given player and question order.
// It returns the new session id and the ordered, sanitized question payload.
func (s *QuizService) StartQuiz(ctx context.Context, userID, username, pfpURL string, questionIDs []string) (string, []model.SanitizedQuestion, error) {
	if strings.TrimSpace(userID) == "" {
		return "", nil, fmt.Errorf("%w: userId is required", model.ErrInvalidInput)
	}
	if strings.TrimSpace(username) == "" {
		return "", nil, fmt.Errorf("%w: username is required", model.ErrInvalidInput)
	}
	if len(questionIDs) == 0 {
		return "", nil, fmt.Errorf("%w: questionIds must not be empty", model.ErrInvalidInput)
	}

	questions, err := s.loadQuestions(ctx, questionIDs)
	if err != nil {
		return "", nil, err
	}

	session := &model.QuizSession{
		UserID:      userID,
		Username:    username,
		PfpURL:      pfpURL,
		QuestionIDs: questionIDs,
		Answers:     []model.QuizAnswer{},
		CreatedAt:   time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	sanitized := make([]model.SanitizedQuestion, 0, len(questionIDs))
	for _, qid := range questionIDs {
		sanitized = append(sanitized, questions[qid].Sanitize())
	}
	return session.ID, sanitized, nil
}

// SubmitQuiz finalizes a pending session. The scoring engine recomputes every
// result from the raw answers and the question bank; the write is conditional
// on the session still being pending, so a duplicate submit fails with
// model.ErrAlreadyFinalized and never overwrites the first result.
func (s *QuizService) SubmitQuiz(ctx context.Context, sessionID string, answers []model.SubmittedAnswer) (*model.QuizResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", model.ErrInvalidInput)
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, model.ErrSessionNotFound
	}
	if session.IsFinalized() {
		return nil, model.ErrAlreadyFinalized
	}

	questions, err := s.loadQuestions(ctx, session.QuestionIDs)
	if err != nil {
		return nil, err
	}

	scored, err := ScoreQuiz(questions, session.QuestionIDs, answers)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now()
	if err := s.sessionRepo.Finalize(ctx, sessionID, scored.Answers, scored.Score, scored.TotalTime, scored.Accuracy, completedAt); err != nil {
		return nil, err
	}

	s.leaderboard.Invalidate(ctx)

	result := &model.QuizResult{
		Score:        scored.Score,
		TotalTime:    scored.TotalTime,
		CorrectCount: scored.CorrectCount,
		Accuracy:     scored.Accuracy,
		Achievements: []string{},
	}

	standing, err := s.leaderboard.GetUserStanding(ctx, session.UserID)
	if err != nil {
		// The session is sealed either way; rank is best-effort on the
		// submit response and always available via the leaderboard.
		log.Printf("failed to compute standing for user %s: %v", session.UserID, err)
	} else if standing != nil {
		result.Rank = standing.Rank
		result.Achievements = standing.Achievements
	}

	if s.broadcaster != nil {
		entries, err := s.leaderboard.GetLeaderboard(ctx, 20)
		if err == nil {
			s.broadcaster.BroadcastLeaderboard(entries)
		}
	}

	return result, nil
}

// loadQuestions fetches the bank entries for the given ids and verifies every
// id is known.
func (s *QuizService) loadQuestions(ctx context.Context, questionIDs []string) (map[string]*model.QuizQuestion, error) {
	questions, err := s.questionRepo.GetByIDs(ctx, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	byID := make(map[string]*model.QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	for _, qid := range questionIDs {
		if _, ok := byID[qid]; !ok {
			return nil, fmt.Errorf("%w: %s", model.ErrQuestionNotFound, qid)
		}
	}
	return byID, nil
}
