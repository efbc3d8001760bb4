package store

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoApplicationRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

func NewMongoApplicationRepository(coll *mongo.Collection, logger *logger.Logger) ApplicationRepository {
	logger.Debug().Msg("creating mongo application repository")
	return &mongoApplicationRepository{
		coll:   coll,
		logger: logger,
	}
}

func (r *mongoApplicationRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Application, error) {
	applications, err := findAll[models.Application](ctx, r.coll, emailFilter(filter))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoApplicationRepository.List").Str("email", filter.UserEmail).Msg("error listing applications")
		return nil, err
	}

	return applications, nil
}

func (r *mongoApplicationRepository) Create(ctx context.Context, application models.Application) (models.InsertResult, error) {
	application.ID = primitive.NewObjectID()

	result, err := insertOne(ctx, r.coll, application.ID, application)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoApplicationRepository.Create").Str("email", application.UserEmail).Msg("error inserting application")
		return models.InsertResult{}, err
	}

	return result, nil
}

func (r *mongoApplicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	result, err := updateByID(ctx, r.coll, id, bson.M{"status": status})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoApplicationRepository.UpdateStatus").Str("id", id.Hex()).Msg("error updating application status")
		return models.UpdateResult{}, err
	}

	return result, nil
}

func (r *mongoApplicationRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := deleteByID(ctx, r.coll, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoApplicationRepository.Delete").Str("id", id.Hex()).Msg("error deleting application")
		return models.DeleteResult{}, err
	}

	return result, nil
}
