package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"framequiz/internal/model"
)

type QuestionRepo interface {
	Create(ctx context.Context, question *model.QuizQuestion) error
	GetByID(ctx context.Context, id string) (*model.QuizQuestion, error)
	GetByIDs(ctx context.Context, ids []string) ([]*model.QuizQuestion, error)
	GetRandom(ctx context.Context, count int) ([]*model.QuizQuestion, error)
	GetAll(ctx context.Context) ([]*model.QuizQuestion, error)
}

type questionRepo struct {
	collection *mongo.Collection
}

func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("quiz_questions"),
	}
}

func (r *questionRepo) Create(ctx context.Context, question *model.QuizQuestion) error {
	_, err := r.collection.InsertOne(ctx, question)
	return err
}

func (r *questionRepo) GetByID(ctx context.Context, id string) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepo) GetByIDs(ctx context.Context, ids []string) ([]*model.QuizQuestion, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.QuizQuestion
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// GetRandom samples count active questions from the bank.
func (r *questionRepo) GetRandom(ctx context.Context, count int) ([]*model.QuizQuestion, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"active": true}}},
		bson.D{{Key: "$sample", Value: bson.M{"size": count}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.QuizQuestion
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetAll(ctx context.Context) ([]*model.QuizQuestion, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.QuizQuestion
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
