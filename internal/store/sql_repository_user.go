package store

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
	sq "github.com/Masterminds/squirrel"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const usersTable = "users"

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. Rows are returned in id order, which follows insertion
// order because ids are ObjectIDs.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	q := r.db.builder.Select(withID(userColumns)...).
		From(usersTable).
		OrderBy("id")

	users, err := selectAll(ctx, r.db, q, scanUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.List").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// FindByEmail returns the earliest inserted user with email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	q := r.db.builder.Select(withID(userColumns)...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		OrderBy("id")

	user, err := selectOne(ctx, r.db, q, scanUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindByEmail").Str("email", email).Msg("error finding user")
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) Create(ctx context.Context, user models.User) (models.InsertResult, error) {
	result, err := insertRow(ctx, r.db, usersTable, userColumns, userValues(user))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Create").Str("email", user.Email).Msg("error inserting user")
		return models.InsertResult{}, err
	}

	return result, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error) {
	result, err := updateRow(ctx, r.db, usersTable, id, map[string]any{"role": role})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateRole").Str("id", id.Hex()).Msg("error updating user role")
		return models.UpdateResult{}, err
	}

	return result, nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := deleteRow(ctx, r.db, usersTable, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Delete").Str("id", id.Hex()).Msg("error deleting user")
		return models.DeleteResult{}, err
	}

	return result, nil
}
