package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"framequiz/internal/model"
)

type SessionRepo interface {
	Create(ctx context.Context, session *model.QuizSession) error
	GetByID(ctx context.Context, id string) (*model.QuizSession, error)
	// Finalize writes the scored fields and CompletedAt in a single conditional
	// update. The condition (completedAt unset) serializes concurrent submits:
	// exactly one wins, later ones get model.ErrAlreadyFinalized.
	Finalize(ctx context.Context, id string, answers []model.QuizAnswer, score, totalTime int, accuracy float64, completedAt time.Time) error
	// GetFinalized returns all completed sessions ordered by score descending,
	// total time ascending (the leaderboard order).
	GetFinalized(ctx context.Context) ([]*model.QuizSession, error)
	// GetByUser returns a user's sessions newest-first.
	GetByUser(ctx context.Context, userID string, limit int) ([]*model.QuizSession, error)
	EnsureIndexes(ctx context.Context) error
}

type sessionRepo struct {
	collection *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("quiz_sessions"),
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.QuizSession) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.QuizSession, error) {
	var session model.QuizSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) Finalize(ctx context.Context, id string, answers []model.QuizAnswer, score, totalTime int, accuracy float64, completedAt time.Time) error {
	filter := bson.M{
		"_id":         id,
		"completedAt": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"answers":     answers,
		"score":       score,
		"totalTime":   totalTime,
		"accuracy":    accuracy,
		"completedAt": completedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the session doesn't exist or someone finalized it first.
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return model.ErrSessionNotFound
		}
		return model.ErrAlreadyFinalized
	}
	return nil
}

func (r *sessionRepo) GetFinalized(ctx context.Context) ([]*model.QuizSession, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "score", Value: -1},
		{Key: "totalTime", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, bson.M{"completedAt": bson.M{"$exists": true}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.QuizSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) GetByUser(ctx context.Context, userID string, limit int) ([]*model.QuizSession, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.QuizSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "score", Value: -1}, {Key: "totalTime", Value: 1}}},
		{Keys: bson.D{{Key: "completedAt", Value: -1}}},
	})
	return err
}
