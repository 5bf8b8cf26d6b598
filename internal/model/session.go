package model

import "time"

// NoAnswer is the sentinel selectedAnswer value recorded when the question
// timer ran out before the player picked an option.
const NoAnswer = -1

// MaxTimePerQuestion caps timeSpent per answer, in seconds.
const MaxTimePerQuestion = 10

// QuizAnswer is one answered question inside a finalized session.
type QuizAnswer struct {
	QuestionID     string `json:"questionId" bson:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer" bson:"selectedAnswer"` // -1..3
	TimeSpent      int    `json:"timeSpent" bson:"timeSpent"`           // clamped to [0,10] seconds
	IsCorrect      bool   `json:"isCorrect" bson:"isCorrect"`
}

// QuizSession is one attempt at the quiz by one user.
//
// A session is created pending (empty answers, zero score fields) and mutated
// exactly once at finalization, when answers/score/totalTime/accuracy and
// CompletedAt are written together. Finalized sessions are immutable.
type QuizSession struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	UserID      string       `json:"userId" bson:"userId"` // Farcaster FID, stringified
	Username    string       `json:"username" bson:"username"`
	PfpURL      string       `json:"pfpUrl" bson:"pfpUrl"`
	QuestionIDs []string     `json:"questionIds" bson:"questionIds"`
	Answers     []QuizAnswer `json:"answers" bson:"answers"`
	Score       int          `json:"score" bson:"score"`
	TotalTime   int          `json:"totalTime" bson:"totalTime"` // seconds
	Accuracy    float64      `json:"accuracy" bson:"accuracy"`   // 0-100
	CompletedAt *time.Time   `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CreatedAt   time.Time    `json:"createdAt" bson:"createdAt"`
}

// IsFinalized reports whether the session has been scored and sealed.
func (s *QuizSession) IsFinalized() bool {
	return s.CompletedAt != nil
}

// SubmittedAnswer is the client's raw answer for one question. Correctness and
// points are never trusted from the client; the scoring engine recomputes them.
type SubmittedAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer"`
	TimeSpent      int    `json:"timeSpent"`
}

// QuizResult is what the player sees after finalization.
type QuizResult struct {
	Score        int      `json:"score"`
	TotalTime    int      `json:"totalTime"`
	CorrectCount int      `json:"correctCount"`
	Accuracy     float64  `json:"accuracy"`
	Rank         int      `json:"rank"`
	Achievements []string `json:"achievements"`
}
