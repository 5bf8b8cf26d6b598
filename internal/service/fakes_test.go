package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"framequiz/internal/model"
)

// In-memory repository fakes mirroring the Mongo implementations, including
// the conditional finalize semantics.

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.QuizSession
	nextID   int
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*model.QuizSession)}
}

func (r *memSessionRepo) Create(_ context.Context, session *model.QuizSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.ID == "" {
		r.nextID++
		session.ID = fmt.Sprintf("s%d", r.nextID)
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	clone := *session
	r.sessions[session.ID] = &clone
	return nil
}

func (r *memSessionRepo) GetByID(_ context.Context, id string) (*model.QuizSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (r *memSessionRepo) Finalize(_ context.Context, id string, answers []model.QuizAnswer, score, totalTime int, accuracy float64, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return model.ErrSessionNotFound
	}
	if session.CompletedAt != nil {
		return model.ErrAlreadyFinalized
	}
	session.Answers = answers
	session.Score = score
	session.TotalTime = totalTime
	session.Accuracy = accuracy
	session.CompletedAt = &completedAt
	return nil
}

func (r *memSessionRepo) GetFinalized(_ context.Context) ([]*model.QuizSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.QuizSession
	for _, session := range r.sessions {
		if session.CompletedAt != nil {
			clone := *session
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].TotalTime < out[j].TotalTime
	})
	return out, nil
}

func (r *memSessionRepo) GetByUser(_ context.Context, userID string, limit int) ([]*model.QuizSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.QuizSession
	for _, session := range r.sessions {
		if session.UserID == userID {
			clone := *session
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memSessionRepo) EnsureIndexes(context.Context) error { return nil }

type memQuestionRepo struct {
	questions map[string]*model.QuizQuestion
}

func newMemQuestionRepo(questions ...*model.QuizQuestion) *memQuestionRepo {
	byID := make(map[string]*model.QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &memQuestionRepo{questions: byID}
}

func (r *memQuestionRepo) Create(_ context.Context, question *model.QuizQuestion) error {
	r.questions[question.ID] = question
	return nil
}

func (r *memQuestionRepo) GetByID(_ context.Context, id string) (*model.QuizQuestion, error) {
	return r.questions[id], nil
}

func (r *memQuestionRepo) GetByIDs(_ context.Context, ids []string) ([]*model.QuizQuestion, error) {
	var out []*model.QuizQuestion
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuestionRepo) GetRandom(_ context.Context, count int) ([]*model.QuizQuestion, error) {
	var out []*model.QuizQuestion
	for _, q := range r.questions {
		if !q.Active {
			continue
		}
		out = append(out, q)
		if len(out) == count {
			break
		}
	}
	return out, nil
}

func (r *memQuestionRepo) GetAll(_ context.Context) ([]*model.QuizQuestion, error) {
	var out []*model.QuizQuestion
	for _, q := range r.questions {
		out = append(out, q)
	}
	return out, nil
}
