package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zuperior/content-api/internal/core/domain"
)

// parseID converts a hex id into an ObjectID. Malformed ids wrap domain.ErrInvalidID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

// categoryRef checks that the category exists and returns its ObjectID.
// Both a malformed and an unknown id report domain.ErrCategoryNotFound.
func categoryRef(ctx context.Context, categories *mongo.Collection, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrCategoryNotFound
	}

	err = categories.FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, domain.ErrCategoryNotFound
	}
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("check category: %w", err)
	}
	return oid, nil
}

// notFound maps a missing document to domain.ErrNotFound.
func notFound(err error, op string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func returnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
