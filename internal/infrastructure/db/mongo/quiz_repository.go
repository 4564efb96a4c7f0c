package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
)

type QuizRepository struct {
	coll       *mongo.Collection
	categories *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{
		coll:       db.Collection(collectionQuizzes),
		categories: db.Collection(collectionCategories),
	}
}

type quizDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Question      string             `bson:"question"`
	CorrectAnswer string             `bson:"correct_answer"`
	Answers       []string           `bson:"answers"`
	CategoryID    primitive.ObjectID `bson:"category_id"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d quizDoc) toDomain() *domain.Quiz {
	return &domain.Quiz{
		ID:            d.ID.Hex(),
		Question:      d.Question,
		CorrectAnswer: d.CorrectAnswer,
		Answers:       d.Answers,
		CategoryID:    d.CategoryID.Hex(),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// quizWithCategory is one row of the list aggregation.
type quizWithCategory struct {
	Quiz     quizDoc      `bson:",inline"`
	Category *categoryDoc `bson:"category"`
}

// listPipeline builds the aggregation behind List: filter, order by id,
// limit, then join the category title.
func listPipeline(categoryID primitive.ObjectID, hasCategory bool, limit int) mongo.Pipeline {
	var p mongo.Pipeline
	if hasCategory {
		p = append(p, bson.D{{Key: "$match", Value: bson.M{"category_id": categoryID}}})
	}
	p = append(p,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         collectionCategories,
			"localField":   "category_id",
			"foreignField": "_id",
			"as":           "category",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$category",
			"preserveNullAndEmptyArrays": true,
		}}},
	)
	return p
}

// List returns at most filter.Limit quizzes joined with their category title.
// A malformed filter.CategoryID wraps domain.ErrInvalidID.
func (r *QuizRepository) List(ctx context.Context, filter ports.QuizFilter) ([]ports.QuizSummary, error) {
	var categoryID primitive.ObjectID
	hasCategory := filter.CategoryID != ""
	if hasCategory {
		oid, err := parseID(filter.CategoryID)
		if err != nil {
			return nil, err
		}
		categoryID = oid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Aggregate(ctx, listPipeline(categoryID, hasCategory, filter.Limit))
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	var rows []quizWithCategory
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode quizzes: %w", err)
	}

	out := make([]ports.QuizSummary, 0, len(rows))
	for _, row := range rows {
		s := ports.QuizSummary{Quiz: *row.Quiz.toDomain()}
		if row.Category != nil {
			s.CategoryTitle = row.Category.Title
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*domain.Quiz, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc quizDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFound(err, "find quiz")
	}
	return doc.toDomain(), nil
}

func (r *QuizRepository) Create(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	categoryID, err := categoryRef(ctx, r.categories, q.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := quizDoc{
		Question:      q.Question,
		CorrectAnswer: q.CorrectAnswer,
		Answers:       q.Answers,
		CategoryID:    categoryID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert quiz: %w", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *QuizRepository) Update(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error) {
	oid, err := parseID(q.ID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	categoryID, err := categoryRef(ctx, r.categories, q.CategoryID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"question":       q.Question,
		"correct_answer": q.CorrectAnswer,
		"answers":        q.Answers,
		"category_id":    categoryID,
		"updated_at":     time.Now().UTC(),
	}}

	var doc quizDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, returnAfter()).Decode(&doc); err != nil {
		return nil, notFound(err, "update quiz")
	}
	return doc.toDomain(), nil
}

func (r *QuizRepository) Delete(ctx context.Context, id string) (*domain.Quiz, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc quizDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFound(err, "delete quiz")
	}
	return doc.toDomain(), nil
}
