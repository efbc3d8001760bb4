package service

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	CreateToken(ctx context.Context, req models.TokenRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	// CheckRole reports whether the user stored under email holds role.
	// A missing user holds no role.
	CheckRole(ctx context.Context, email, role string) (bool, error)
	Create(ctx context.Context, user models.User) (models.InsertResult, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

type ScholarshipService interface {
	List(ctx context.Context) ([]models.Scholarship, error)
	// Get returns nil without an error when no scholarship has id.
	Get(ctx context.Context, id primitive.ObjectID) (*models.Scholarship, error)
	Create(ctx context.Context, scholarship models.Scholarship) (models.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, scholarship models.Scholarship) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

type ApplicationService interface {
	List(ctx context.Context, filter models.ListFilter) ([]models.Application, error)
	Create(ctx context.Context, application models.Application) (models.InsertResult, error)
	// Approve marks the application with id as successful.
	Approve(ctx context.Context, id primitive.ObjectID) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

type ReviewService interface {
	List(ctx context.Context, filter models.ListFilter) ([]models.Review, error)
	Create(ctx context.Context, review models.Review) (models.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (models.PaymentIntentResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
