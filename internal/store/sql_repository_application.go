package store

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const applicationsTable = "applyScholarships"

type applicationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewApplicationRepository(db *DB, logger *logger.Logger) ApplicationRepository {
	logger.Debug().Msg("creating application repository")
	return &applicationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *applicationRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Application, error) {
	q := r.db.builder.Select(withID(applicationColumns)...).
		From(applicationsTable)
	q = byEmail(q, filter).OrderBy("id")

	applications, err := selectAll(ctx, r.db, q, scanApplication)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*applicationRepository.List").Str("email", filter.UserEmail).Msg("error listing applications")
		return nil, err
	}

	return applications, nil
}

func (r *applicationRepository) Create(ctx context.Context, application models.Application) (models.InsertResult, error) {
	result, err := insertRow(ctx, r.db, applicationsTable, applicationColumns, applicationValues(application))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*applicationRepository.Create").Str("email", application.UserEmail).Msg("error inserting application")
		return models.InsertResult{}, err
	}

	return result, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	result, err := updateRow(ctx, r.db, applicationsTable, id, map[string]any{"status": status})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*applicationRepository.UpdateStatus").Str("id", id.Hex()).Msg("error updating application status")
		return models.UpdateResult{}, err
	}

	return result, nil
}

func (r *applicationRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := deleteRow(ctx, r.db, applicationsTable, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*applicationRepository.Delete").Str("id", id.Hex()).Msg("error deleting application")
		return models.DeleteResult{}, err
	}

	return result, nil
}
