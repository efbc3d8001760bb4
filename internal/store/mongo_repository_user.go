package store

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoUserRepository is the MongoDB-backed implementation of
// [UserRepository] over the "users" collection.
type mongoUserRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] over coll.
func NewMongoUserRepository(coll *mongo.Collection, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		coll:   coll,
		logger: logger,
	}
}

func (r *mongoUserRepository) List(ctx context.Context) ([]models.User, error) {
	users, err := findAll[models.User](ctx, r.coll, bson.M{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.List").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := findOne[models.User](ctx, r.coll, bson.M{"email": email})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.FindByEmail").Str("email", email).Msg("error finding user")
		return models.User{}, err
	}

	return user, nil
}

func (r *mongoUserRepository) Create(ctx context.Context, user models.User) (models.InsertResult, error) {
	user.ID = primitive.NewObjectID()

	result, err := insertOne(ctx, r.coll, user.ID, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.Create").Str("email", user.Email).Msg("error inserting user")
		return models.InsertResult{}, err
	}

	return result, nil
}

func (r *mongoUserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error) {
	result, err := updateByID(ctx, r.coll, id, bson.M{"role": role})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.UpdateRole").Str("id", id.Hex()).Msg("error updating user role")
		return models.UpdateResult{}, err
	}

	return result, nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := deleteByID(ctx, r.coll, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.Delete").Str("id", id.Hex()).Msg("error deleting user")
		return models.DeleteResult{}, err
	}

	return result, nil
}
