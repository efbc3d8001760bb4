package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository stores portal accounts. Email is the lookup key and is not
// unique at the store level.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	// FindByEmail returns the first user with email or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.InsertResult, error)
	// UpdateRole overwrites the role of the user with id.
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

// ScholarshipRepository stores scholarship listings.
type ScholarshipRepository interface {
	List(ctx context.Context) ([]models.Scholarship, error)
	// FindByID returns the scholarship with id or ErrNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Scholarship, error)
	Create(ctx context.Context, scholarship models.Scholarship) (models.InsertResult, error)
	// Update overwrites the fields named by [models.Scholarship.UpdatableFields].
	Update(ctx context.Context, id primitive.ObjectID, scholarship models.Scholarship) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

// ApplicationRepository stores scholarship applications.
type ApplicationRepository interface {
	List(ctx context.Context, filter models.ListFilter) ([]models.Application, error)
	Create(ctx context.Context, application models.Application) (models.InsertResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

// ReviewRepository stores scholarship reviews.
type ReviewRepository interface {
	List(ctx context.Context, filter models.ListFilter) ([]models.Review, error)
	Create(ctx context.Context, review models.Review) (models.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}
