package model

// QuizQuestion is a multiple-choice question from the authoritative bank.
// Questions are immutable once published.
type QuizQuestion struct {
	ID                 string   `json:"id" bson:"_id,omitempty"`
	Question           string   `json:"question" bson:"question"`
	Options            []string `json:"options" bson:"options"` // exactly 4
	CorrectAnswerIndex int      `json:"correctAnswerIndex" bson:"correctAnswerIndex"`
	Category           string   `json:"category,omitempty" bson:"category,omitempty"`
	Active             bool     `json:"active" bson:"active"`
}

// SanitizedQuestion is the client-facing view of a question, stripped of the
// correct answer index.
type SanitizedQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Sanitize returns the question without its correct answer.
func (q *QuizQuestion) Sanitize() SanitizedQuestion {
	return SanitizedQuestion{
		ID:       q.ID,
		Question: q.Question,
		Options:  q.Options,
	}
}
