package store

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
	sq "github.com/Masterminds/squirrel"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const scholarshipsTable = "scholarships"

type scholarshipRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewScholarshipRepository(db *DB, logger *logger.Logger) ScholarshipRepository {
	logger.Debug().Msg("creating scholarship repository")
	return &scholarshipRepository{
		db:     db,
		logger: logger,
	}
}

func (r *scholarshipRepository) List(ctx context.Context) ([]models.Scholarship, error) {
	q := r.db.builder.Select(withID(scholarshipColumns)...).
		From(scholarshipsTable).
		OrderBy("id")

	scholarships, err := selectAll(ctx, r.db, q, scanScholarship)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scholarshipRepository.List").Msg("error listing scholarships")
		return nil, err
	}

	return scholarships, nil
}

func (r *scholarshipRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Scholarship, error) {
	q := r.db.builder.Select(withID(scholarshipColumns)...).
		From(scholarshipsTable).
		Where(sq.Eq{"id": id.Hex()})

	scholarship, err := selectOne(ctx, r.db, q, scanScholarship)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scholarshipRepository.FindByID").Str("id", id.Hex()).Msg("error finding scholarship")
		return models.Scholarship{}, err
	}

	return scholarship, nil
}

func (r *scholarshipRepository) Create(ctx context.Context, scholarship models.Scholarship) (models.InsertResult, error) {
	result, err := insertRow(ctx, r.db, scholarshipsTable, scholarshipColumns, scholarshipValues(scholarship))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scholarshipRepository.Create").Msg("error inserting scholarship")
		return models.InsertResult{}, err
	}

	return result, nil
}

func (r *scholarshipRepository) Update(ctx context.Context, id primitive.ObjectID, scholarship models.Scholarship) (models.UpdateResult, error) {
	result, err := updateRow(ctx, r.db, scholarshipsTable, id, scholarship.UpdatableFields())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scholarshipRepository.Update").Str("id", id.Hex()).Msg("error updating scholarship")
		return models.UpdateResult{}, err
	}

	return result, nil
}

func (r *scholarshipRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := deleteRow(ctx, r.db, scholarshipsTable, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scholarshipRepository.Delete").Str("id", id.Hex()).Msg("error deleting scholarship")
		return models.DeleteResult{}, err
	}

	return result, nil
}
