package service

import (
	"fmt"

	"framequiz/internal/model"
)

// Scoring policy: 10 base points per correct answer plus a speed bonus
// bucketed by clamped response time. Times are clamped to [0,10] before
// bucketing so out-of-range client values can't game the bonus.
const (
	basePoints = 10

	fastBonus   = 5 // timeSpent <= 3s
	mediumBonus = 3 // 3s < timeSpent <= 6s
	slowBonus   = 1 // 6s < timeSpent < 10s; hitting the 10s cap earns no bonus

	fastThreshold   = 3
	mediumThreshold = 6
)

// ScoredQuiz is the output of scoring one full submission.
type ScoredQuiz struct {
	Answers      []model.QuizAnswer
	Score        int
	TotalTime    int
	CorrectCount int
	Accuracy     float64
}

func clampTime(timeSpent int) int {
	if timeSpent < 0 {
		return 0
	}
	if timeSpent > model.MaxTimePerQuestion {
		return model.MaxTimePerQuestion
	}
	return timeSpent
}

func speedBonus(timeSpent int) int {
	switch {
	case timeSpent <= fastThreshold:
		return fastBonus
	case timeSpent <= mediumThreshold:
		return mediumBonus
	case timeSpent < model.MaxTimePerQuestion:
		return slowBonus
	default:
		return 0
	}
}

// answerPoints computes the point value of a single answer from its
// correctness and clamped response time. Incorrect answers are always worth 0.
func answerPoints(correct bool, timeSpent int) int {
	if !correct {
		return 0
	}
	return basePoints + speedBonus(clampTime(timeSpent))
}

// ScoreQuiz validates a submitted answer sequence against the session's
// question order and the authoritative bank, then recomputes all results from
// scratch. Client-side provisional scores are never trusted.
//
// The submission is rejected with model.ErrInvalidInput when its length or
// question-id set doesn't match the session's questionIds, when an id appears
// twice, or when a selected answer is outside [-1,3].
func ScoreQuiz(questions map[string]*model.QuizQuestion, questionIDs []string, submitted []model.SubmittedAnswer) (*ScoredQuiz, error) {
	if len(submitted) != len(questionIDs) {
		return nil, fmt.Errorf("%w: expected %d answers, got %d", model.ErrInvalidInput, len(questionIDs), len(submitted))
	}

	byQuestion := make(map[string]model.SubmittedAnswer, len(submitted))
	for _, ans := range submitted {
		if _, dup := byQuestion[ans.QuestionID]; dup {
			return nil, fmt.Errorf("%w: duplicate answer for question %s", model.ErrInvalidInput, ans.QuestionID)
		}
		if ans.SelectedAnswer < model.NoAnswer || ans.SelectedAnswer > 3 {
			return nil, fmt.Errorf("%w: selected answer %d out of range", model.ErrInvalidInput, ans.SelectedAnswer)
		}
		byQuestion[ans.QuestionID] = ans
	}

	result := &ScoredQuiz{
		Answers: make([]model.QuizAnswer, 0, len(questionIDs)),
	}

	for _, qid := range questionIDs {
		ans, ok := byQuestion[qid]
		if !ok {
			return nil, fmt.Errorf("%w: missing answer for question %s", model.ErrInvalidInput, qid)
		}
		question, ok := questions[qid]
		if !ok {
			return nil, fmt.Errorf("%w: %s", model.ErrQuestionNotFound, qid)
		}

		timeSpent := clampTime(ans.TimeSpent)
		correct := ans.SelectedAnswer != model.NoAnswer && ans.SelectedAnswer == question.CorrectAnswerIndex

		result.Answers = append(result.Answers, model.QuizAnswer{
			QuestionID:     qid,
			SelectedAnswer: ans.SelectedAnswer,
			TimeSpent:      timeSpent,
			IsCorrect:      correct,
		})
		result.Score += answerPoints(correct, timeSpent)
		result.TotalTime += timeSpent
		if correct {
			result.CorrectCount++
		}
	}

	result.Accuracy = 100 * float64(result.CorrectCount) / float64(len(questionIDs))
	return result, nil
}
