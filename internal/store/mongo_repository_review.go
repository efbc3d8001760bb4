package store

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoReviewRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

func NewMongoReviewRepository(coll *mongo.Collection, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating mongo review repository")
	return &mongoReviewRepository{
		coll:   coll,
		logger: logger,
	}
}

func (r *mongoReviewRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Review, error) {
	reviews, err := findAll[models.Review](ctx, r.coll, emailFilter(filter))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoReviewRepository.List").Str("email", filter.UserEmail).Msg("error listing reviews")
		return nil, err
	}

	return reviews, nil
}

func (r *mongoReviewRepository) Create(ctx context.Context, review models.Review) (models.InsertResult, error) {
	review.ID = primitive.NewObjectID()

	result, err := insertOne(ctx, r.coll, review.ID, review)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoReviewRepository.Create").Str("email", review.UserEmail).Msg("error inserting review")
		return models.InsertResult{}, err
	}

	return result, nil
}

func (r *mongoReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := deleteByID(ctx, r.coll, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoReviewRepository.Delete").Str("id", id.Hex()).Msg("error deleting review")
		return models.DeleteResult{}, err
	}

	return result, nil
}
