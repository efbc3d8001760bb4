package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func newTestSQLiteDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newSQLiteDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "name", "email", "photo", "role"}

// ── users ─────────────────────────────────────────────────────────────────────

func TestUserRepository_List(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewUserRepository(db, logger.Nop())

	first, second := primitive.NewObjectID(), primitive.NewObjectID()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow(first.Hex(), "Ann", "ann@x.com", "", "admin").
		AddRow(second.Hex(), "Bob", "bob@x.com", "p.png", "")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, photo, role FROM users ORDER BY id")).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first, users[0].ID)
	assert.Equal(t, "admin", users[0].Role)
	assert.Equal(t, "bob@x.com", users[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_EmptyIsNotNil(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, photo, role FROM users WHERE email = $1 ORDER BY id LIMIT 1")).
					WithArgs("ann@x.com").
					WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(id.Hex(), "Ann", "ann@x.com", "", "moderator"))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("ann@x.com").
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			wantErr: ErrNotFound,
		},
		{
			name: "connection lost",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("ann@x.com").
					WillReturnError(pgError(pgerrcode.ConnectionFailure))
			},
			wantErr: ErrStorageUnavailable,
		},
		{
			name: "corrupted id",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("ann@x.com").
					WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("not-hex", "Ann", "ann@x.com", "", ""))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestPostgresDB(t)
			repo := NewUserRepository(db, logger.Nop())
			tt.setup(mock)

			user, err := repo.FindByEmail(context.Background(), "ann@x.com")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, user.ID)
			assert.True(t, user.HasRole(models.RoleModerator))
		})
	}
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,name,email,photo,role) VALUES ($1,$2,$3,$4,$5)")).
		WithArgs(sqlmock.AnyArg(), "Ann", "ann@x.com", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.Create(context.Background(), models.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)
	assert.True(t, result.Acknowledged)
	require.NotNil(t, result.InsertedID)
	assert.False(t, result.InsertedID.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.User{Email: "ann@x.com"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUserRepository_UpdateRole(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewUserRepository(db, logger.Nop())
	id := primitive.NewObjectID()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = $1 WHERE id = $2")).
		WithArgs("superhero", id.Hex()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.UpdateRole(context.Background(), id, "superhero")
	require.NoError(t, err)
	assert.Equal(t, models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, result)
}

func TestUserRepository_Delete(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewUserRepository(db, logger.Nop())
	id := primitive.NewObjectID()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(id.Hex()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	result, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.DeleteResult{Acknowledged: true, DeletedCount: 0}, result)
}

// ── scholarships ──────────────────────────────────────────────────────────────

func TestScholarshipRepository_Update_SetsFixedFields(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewScholarshipRepository(db, logger.Nop())
	id := primitive.NewObjectID()

	// squirrel orders SetMap columns alphabetically
	mock.ExpectExec(regexp.QuoteMeta("UPDATE scholarships SET application_deadline = $1, application_fees = $2, " +
		"post_date = $3, scholarship_category = $4, scholarship_description = $5, service_charge = $6, " +
		"subject_name = $7, university_location = $8, university_logo = $9, university_name = $10 WHERE id = $11")).
		WithArgs("2026-12-01", 50.0, "2026-10-01", "Full fund", "desc", 10.0, "CS", "Boston", "logo.png", "MIT", id.Hex()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.Update(context.Background(), id, models.Scholarship{
		ScholarshipName:        "ignored",
		UniversityName:         "MIT",
		UniversityLogo:         "logo.png",
		UniversityLocation:     "Boston",
		ScholarshipCategory:    "Full fund",
		SubjectName:            "CS",
		ApplicationDeadline:    "2026-12-01",
		ScholarshipDescription: "desc",
		PostDate:               "2026-10-01",
		ServiceCharge:          10,
		ApplicationFees:        50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarshipRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	repo := NewScholarshipRepository(db, logger.Nop())
	id := primitive.NewObjectID()

	mock.ExpectQuery(regexp.QuoteMeta("FROM scholarships WHERE id = $1 LIMIT 1")).
		WithArgs(id.Hex()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── applications ──────────────────────────────────────────────────────────────

func TestApplicationRepository_List_FilterByEmail(t *testing.T) {
	db, mock := newTestSQLiteDB(t)
	repo := NewApplicationRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM applyScholarships WHERE user_email = ? ORDER BY id")).
		WithArgs("ann@x.com").
		WillReturnRows(sqlmock.NewRows(withID(applicationColumns)))

	applications, err := repo.List(context.Background(), models.ListFilter{UserEmail: "ann@x.com"})
	require.NoError(t, err)
	assert.Empty(t, applications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_List_NoFilter(t *testing.T) {
	db, mock := newTestSQLiteDB(t)
	repo := NewApplicationRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM applyScholarships ORDER BY id")).
		WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background(), models.ListFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db, mock := newTestSQLiteDB(t)
	repo := NewApplicationRepository(db, logger.Nop())
	id := primitive.NewObjectID()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE applyScholarships SET status = ? WHERE id = ?")).
		WithArgs(models.ApplicationStatusSuccess, id.Hex()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.UpdateStatus(context.Background(), id, models.ApplicationStatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)
}

// ── reviews ───────────────────────────────────────────────────────────────────

func TestReviewRepository_CreateAndDelete(t *testing.T) {
	db, mock := newTestSQLiteDB(t)
	repo := NewReviewRepository(db, logger.Nop())
	id := primitive.NewObjectID()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reviews (id,scholarship_id,")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reviews WHERE id = ?")).
		WithArgs(id.Hex()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.Create(context.Background(), models.Review{UserEmail: "ann@x.com", Rating: 4.5})
	require.NoError(t, err)
	assert.True(t, inserted.Acknowledged)

	deleted, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.DeletedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_List_ScanError(t *testing.T) {
	db, mock := newTestSQLiteDB(t)
	repo := NewReviewRepository(db, logger.Nop())

	mock.ExpectQuery("FROM reviews").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(primitive.NewObjectID().Hex()))

	_, err := repo.List(context.Background(), models.ListFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}
