package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zuperior/content-api/internal/core/domain"
)

type ArticleRepository struct {
	coll       *mongo.Collection
	categories *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{
		coll:       db.Collection(collectionArticles),
		categories: db.Collection(collectionCategories),
	}
}

type articleDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Thumbnail  string             `bson:"thumbnail"`
	Body       any                `bson:"body"`
	CategoryID primitive.ObjectID `bson:"category_id"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d articleDoc) toDomain() *domain.Article {
	return &domain.Article{
		ID:         d.ID.Hex(),
		Title:      d.Title,
		Thumbnail:  d.Thumbnail,
		Body:       d.Body,
		CategoryID: d.CategoryID.Hex(),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// List returns articles ordered by id. A non-empty categoryID that is not a
// valid hex id wraps domain.ErrInvalidID.
func (r *ArticleRepository) List(ctx context.Context, categoryID string) ([]*domain.Article, error) {
	filter := bson.M{}
	if categoryID != "" {
		oid, err := parseID(categoryID)
		if err != nil {
			return nil, err
		}
		filter["category_id"] = oid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Bodies can be large; the list view never shows them.
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"body": 0})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	var docs []articleDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	out := make([]*domain.Article, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc articleDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFound(err, "find article")
	}
	return doc.toDomain(), nil
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	categoryID, err := categoryRef(ctx, r.categories, a.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := articleDoc{
		Title:      a.Title,
		Thumbnail:  a.Thumbnail,
		Body:       a.Body,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ArticleRepository) Update(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	oid, err := parseID(a.ID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	categoryID, err := categoryRef(ctx, r.categories, a.CategoryID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"title":       a.Title,
		"thumbnail":   a.Thumbnail,
		"body":        a.Body,
		"category_id": categoryID,
		"updated_at":  time.Now().UTC(),
	}}

	var doc articleDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, returnAfter()).Decode(&doc); err != nil {
		return nil, notFound(err, "update article")
	}
	return doc.toDomain(), nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) (*domain.Article, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc articleDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFound(err, "delete article")
	}
	return doc.toDomain(), nil
}
