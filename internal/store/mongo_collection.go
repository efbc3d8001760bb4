package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// findAll decodes every document matching filter in natural order.
// The result is never nil so an empty collection encodes as [].
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, mongoError(err))
	}

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, mongoError(err))
	}

	return results, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (T, error) {
	var result T
	if err := coll.FindOne(ctx, filter).Decode(&result); err != nil {
		return result, mongoError(err)
	}

	return result, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, document any) (models.InsertResult, error) {
	if _, err := coll.InsertOne(ctx, document); err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, mongoError(err))
	}

	return models.NewInsertResult(id), nil
}

func updateByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, set bson.M) (models.UpdateResult, error) {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, mongoError(err))
	}

	result := models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if upsertedID, ok := res.UpsertedID.(primitive.ObjectID); ok {
		result.UpsertedID = &upsertedID
	}

	return result, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, mongoError(err))
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// emailFilter matches documents owned by filter.UserEmail, or everything.
func emailFilter(filter models.ListFilter) bson.M {
	if filter.IsEmpty() {
		return bson.M{}
	}

	return bson.M{"userEmail": filter.UserEmail}
}
