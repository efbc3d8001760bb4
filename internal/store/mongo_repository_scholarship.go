package store

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoScholarshipRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

func NewMongoScholarshipRepository(coll *mongo.Collection, logger *logger.Logger) ScholarshipRepository {
	logger.Debug().Msg("creating mongo scholarship repository")
	return &mongoScholarshipRepository{
		coll:   coll,
		logger: logger,
	}
}

func (r *mongoScholarshipRepository) List(ctx context.Context) ([]models.Scholarship, error) {
	scholarships, err := findAll[models.Scholarship](ctx, r.coll, bson.M{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoScholarshipRepository.List").Msg("error listing scholarships")
		return nil, err
	}

	return scholarships, nil
}

func (r *mongoScholarshipRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Scholarship, error) {
	scholarship, err := findOne[models.Scholarship](ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoScholarshipRepository.FindByID").Str("id", id.Hex()).Msg("error finding scholarship")
		return models.Scholarship{}, err
	}

	return scholarship, nil
}

func (r *mongoScholarshipRepository) Create(ctx context.Context, scholarship models.Scholarship) (models.InsertResult, error) {
	scholarship.ID = primitive.NewObjectID()

	result, err := insertOne(ctx, r.coll, scholarship.ID, scholarship)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoScholarshipRepository.Create").Msg("error inserting scholarship")
		return models.InsertResult{}, err
	}

	return result, nil
}

func (r *mongoScholarshipRepository) Update(ctx context.Context, id primitive.ObjectID, scholarship models.Scholarship) (models.UpdateResult, error) {
	result, err := updateByID(ctx, r.coll, id, bson.M(scholarship.UpdatableFields()))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoScholarshipRepository.Update").Str("id", id.Hex()).Msg("error updating scholarship")
		return models.UpdateResult{}, err
	}

	return result, nil
}

func (r *mongoScholarshipRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := deleteByID(ctx, r.coll, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoScholarshipRepository.Delete").Str("id", id.Hex()).Msg("error deleting scholarship")
		return models.DeleteResult{}, err
	}

	return result, nil
}
