package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/mock"
	"github.com/MKhiriev/scholarship-portal/internal/validators"
	"github.com/MKhiriev/scholarship-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestReviewService(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		review  models.Review
		wantErr bool
	}{
		{name: "valid", review: models.Review{UserEmail: "a@x.com", Rating: 4.5}},
		{name: "rating above five", review: models.Review{UserEmail: "a@x.com", Rating: 6}, wantErr: true},
		{name: "negative rating", review: models.Review{UserEmail: "a@x.com", Rating: -1}, wantErr: true},
		{name: "missing email", review: models.Review{Rating: 3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockReviewRepository(ctrl)
			svc := NewReviewService(repo, validators.NewStructValidator(), logger.Nop())

			if !tt.wantErr {
				repo.EXPECT().Create(ctx, tt.review).Return(models.NewInsertResult(primitive.NewObjectID()), nil)
			}

			_, err := svc.Create(ctx, tt.review)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDataProvided)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestReviewService_ListByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockReviewRepository(ctrl)
	svc := NewReviewService(repo, validators.NewStructValidator(), logger.Nop())
	ctx := context.Background()

	filter := models.ListFilter{UserEmail: "a@x.com"}
	repo.EXPECT().List(ctx, filter).Return([]models.Review{{UserEmail: "a@x.com"}}, nil)

	reviews, err := svc.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
}
