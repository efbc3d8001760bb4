package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/mock"
	"github.com/MKhiriev/scholarship-portal/internal/store"
	"github.com/MKhiriev/scholarship-portal/internal/validators"
	"github.com/MKhiriev/scholarship-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestApplicationSvc(t *testing.T) (ApplicationService, *mock.MockApplicationRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockApplicationRepository(ctrl)

	return NewApplicationService(repo, validators.NewStructValidator(), logger.Nop()), repo
}

func TestApplicationService_Create_ForcesPending(t *testing.T) {
	svc, repo := newTestApplicationSvc(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Application) (models.InsertResult, error) {
			assert.Equal(t, models.ApplicationStatusPending, a.Status)
			return models.NewInsertResult(primitive.NewObjectID()), nil
		},
	)

	_, err := svc.Create(ctx, models.Application{UserEmail: "a@x.com", Status: models.ApplicationStatusSuccess})
	require.NoError(t, err)
}

func TestApplicationService_Create_Invalid(t *testing.T) {
	svc, _ := newTestApplicationSvc(t)

	_, err := svc.Create(context.Background(), models.Application{UserEmail: "nope"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestApplicationService_Approve(t *testing.T) {
	svc, repo := newTestApplicationSvc(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	repo.EXPECT().UpdateStatus(ctx, id, models.ApplicationStatusSuccess).
		Return(models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	result, err := svc.Approve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)
}

func TestApplicationService_List(t *testing.T) {
	svc, repo := newTestApplicationSvc(t)
	ctx := context.Background()
	filter := models.ListFilter{UserEmail: "a@x.com"}

	repo.EXPECT().List(ctx, filter).Return(nil, store.ErrStorageUnavailable)

	_, err := svc.List(ctx, filter)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestApplicationService_Delete(t *testing.T) {
	svc, repo := newTestApplicationSvc(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	repo.EXPECT().Delete(ctx, id).Return(models.DeleteResult{Acknowledged: true}, nil)

	result, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, result.DeletedCount)
}
