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

type AssetRepository struct {
	coll       *mongo.Collection
	categories *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{
		coll:       db.Collection(collectionAssets),
		categories: db.Collection(collectionCategories),
	}
}

type assetDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Icon       string             `bson:"icon"`
	AssetURL   string             `bson:"asset_url"`
	CategoryID primitive.ObjectID `bson:"category_id"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d assetDoc) toDomain() *domain.Asset {
	return &domain.Asset{
		ID:         d.ID.Hex(),
		Title:      d.Title,
		Icon:       d.Icon,
		AssetURL:   d.AssetURL,
		CategoryID: d.CategoryID.Hex(),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *AssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	var docs []assetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode assets: %w", err)
	}

	out := make([]*domain.Asset, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id string) (*domain.Asset, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc assetDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFound(err, "find asset")
	}
	return doc.toDomain(), nil
}

func (r *AssetRepository) Create(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	categoryID, err := categoryRef(ctx, r.categories, a.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := assetDoc{
		Title:      a.Title,
		Icon:       a.Icon,
		AssetURL:   a.AssetURL,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert asset: %w", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AssetRepository) Update(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
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
		"icon":        a.Icon,
		"asset_url":   a.AssetURL,
		"category_id": categoryID,
		"updated_at":  time.Now().UTC(),
	}}

	var doc assetDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, returnAfter()).Decode(&doc); err != nil {
		return nil, notFound(err, "update asset")
	}
	return doc.toDomain(), nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) (*domain.Asset, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc assetDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFound(err, "delete asset")
	}
	return doc.toDomain(), nil
}
