package store

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const reviewsTable = "reviews"

type reviewRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reviewRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Review, error) {
	q := r.db.builder.Select(withID(reviewColumns)...).
		From(reviewsTable)
	q = byEmail(q, filter).OrderBy("id")

	reviews, err := selectAll(ctx, r.db, q, scanReview)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewRepository.List").Str("email", filter.UserEmail).Msg("error listing reviews")
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review models.Review) (models.InsertResult, error) {
	result, err := insertRow(ctx, r.db, reviewsTable, reviewColumns, reviewValues(review))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewRepository.Create").Str("email", review.UserEmail).Msg("error inserting review")
		return models.InsertResult{}, err
	}

	return result, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := deleteRow(ctx, r.db, reviewsTable, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewRepository.Delete").Str("id", id.Hex()).Msg("error deleting review")
		return models.DeleteResult{}, err
	}

	return result, nil
}
