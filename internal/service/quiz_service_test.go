package service

import (
	"context"
	"errors"
	"testing"

	"framequiz/internal/model"
)

func testQuestion(id string, correctIndex int) *model.QuizQuestion {
	return &model.QuizQuestion{
		ID:                 id,
		Question:           "question " + id,
		Options:            []string{"a", "b", "c", "d"},
		CorrectAnswerIndex: correctIndex,
		Active:             true,
	}
}

func newTestQuizService(questions ...*model.QuizQuestion) (*QuizService, *memSessionRepo) {
	sessions := newMemSessionRepo()
	lbSvc := NewLeaderboardService(sessions, nil, nil)
	svc := NewQuizService(sessions, newMemQuestionRepo(questions...), lbSvc)
	return svc, sessions
}

func TestStartQuizCreatesPendingSession(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestQuizService(testQuestion("q1", 0), testQuestion("q2", 1))

	sessionID, questions, err := svc.StartQuiz(ctx, "fid:42", "alice", "https://pfp/a.png", []string{"q2", "q1"})
	if err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}
	if sessionID == "" {
		t.Fatal("empty session id")
	}

	// Question payload preserves the requested order and hides answers.
	if len(questions) != 2 || questions[0].ID != "q2" || questions[1].ID != "q1" {
		t.Fatalf("question order wrong: %+v", questions)
	}

	session, err := sessions.GetByID(ctx, sessionID)
	if err != nil || session == nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if session.IsFinalized() {
		t.Error("new session already finalized")
	}
	if len(session.Answers) != 0 || session.Score != 0 {
		t.Errorf("new session not zeroed: %+v", session)
	}
}

func TestStartQuizValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestQuizService(testQuestion("q1", 0))

	tests := []struct {
		name        string
		userID      string
		username    string
		questionIDs []string
	}{
		{"missing user", "", "alice", []string{"q1"}},
		{"missing username", "fid:42", "", []string{"q1"}},
		{"empty question ids", "fid:42", "alice", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.StartQuiz(ctx, tt.userID, tt.username, "", tt.questionIDs)
			if !errors.Is(err, model.ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}

	_, _, err := svc.StartQuiz(ctx, "fid:42", "alice", "", []string{"q1", "unknown"})
	if !errors.Is(err, model.ErrQuestionNotFound) {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestSubmitQuizFinalizesOnce(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestQuizService(testQuestion("q1", 0), testQuestion("q2", 1))

	sessionID, _, err := svc.StartQuiz(ctx, "fid:42", "alice", "", []string{"q1", "q2"})
	if err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}

	answers := []model.SubmittedAnswer{
		{QuestionID: "q1", SelectedAnswer: 0, TimeSpent: 2}, // correct, 15
		{QuestionID: "q2", SelectedAnswer: 0, TimeSpent: 8}, // wrong, 0
	}

	result, err := svc.SubmitQuiz(ctx, sessionID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}
	if result.Score != 15 || result.CorrectCount != 1 {
		t.Errorf("result = %+v, want score 15, correct 1", result)
	}
	if result.Accuracy != 50 {
		t.Errorf("accuracy = %v, want 50", result.Accuracy)
	}
	if result.Rank != 1 {
		t.Errorf("rank = %d, want 1 (only player)", result.Rank)
	}

	session, _ := sessions.GetByID(ctx, sessionID)
	if !session.IsFinalized() {
		t.Fatal("session not finalized")
	}
	if len(session.Answers) != 2 {
		t.Fatalf("persisted answers = %d, want 2", len(session.Answers))
	}

	// Second submission must fail and must not touch the stored score.
	_, err = svc.SubmitQuiz(ctx, sessionID, []model.SubmittedAnswer{
		{QuestionID: "q1", SelectedAnswer: 0, TimeSpent: 1},
		{QuestionID: "q2", SelectedAnswer: 1, TimeSpent: 1},
	})
	if !errors.Is(err, model.ErrAlreadyFinalized) {
		t.Fatalf("duplicate submit err = %v, want ErrAlreadyFinalized", err)
	}
	session, _ = sessions.GetByID(ctx, sessionID)
	if session.Score != 15 {
		t.Errorf("score overwritten to %d", session.Score)
	}
}

func TestSubmitQuizUnknownSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestQuizService(testQuestion("q1", 0))

	_, err := svc.SubmitQuiz(ctx, "nope", []model.SubmittedAnswer{{QuestionID: "q1", SelectedAnswer: 0, TimeSpent: 1}})
	if !errors.Is(err, model.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSubmitQuizInvalidAnswersPersistNothing(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestQuizService(testQuestion("q1", 0), testQuestion("q2", 1))

	sessionID, _, err := svc.StartQuiz(ctx, "fid:42", "alice", "", []string{"q1", "q2"})
	if err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}

	_, err = svc.SubmitQuiz(ctx, sessionID, []model.SubmittedAnswer{
		{QuestionID: "q1", SelectedAnswer: 0, TimeSpent: 1},
	})
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	session, _ := sessions.GetByID(ctx, sessionID)
	if session.IsFinalized() || len(session.Answers) != 0 {
		t.Errorf("invalid submit mutated session: %+v", session)
	}

	// The session can still be finalized normally afterwards.
	if _, err := svc.SubmitQuiz(ctx, sessionID, []model.SubmittedAnswer{
		{QuestionID: "q1", SelectedAnswer: 0, TimeSpent: 1},
		{QuestionID: "q2", SelectedAnswer: 1, TimeSpent: 1},
	}); err != nil {
		t.Fatalf("valid submit after invalid one failed: %v", err)
	}
}

func TestSubmitQuizRankReflectsOtherPlayers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestQuizService(testQuestion("q1", 0))

	bobSession, _, _ := svc.StartQuiz(ctx, "fid:1", "bob", "", []string{"q1"})
	if _, err := svc.SubmitQuiz(ctx, bobSession, []model.SubmittedAnswer{
		{QuestionID: "q1", SelectedAnswer: 0, TimeSpent: 1}, // 15 points
	}); err != nil {
		t.Fatalf("bob submit failed: %v", err)
	}

	aliceSession, _, _ := svc.StartQuiz(ctx, "fid:2", "alice", "", []string{"q1"})
	result, err := svc.SubmitQuiz(ctx, aliceSession, []model.SubmittedAnswer{
		{QuestionID: "q1", SelectedAnswer: 1, TimeSpent: 1}, // wrong, 0 points
	})
	if err != nil {
		t.Fatalf("alice submit failed: %v", err)
	}
	if result.Rank != 2 {
		t.Errorf("alice rank = %d, want 2", result.Rank)
	}
}

func TestGenerateQuestionsSanitized(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestQuizService(testQuestion("q1", 0), testQuestion("q2", 3))

	questions, err := svc.GenerateQuestions(ctx, 0)
	if err != nil {
		t.Fatalf("GenerateQuestions failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	for _, q := range questions {
		if len(q.Options) != 4 {
			t.Errorf("question %s has %d options", q.ID, len(q.Options))
		}
	}
}
