package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"courseapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var userColumns = []string{"id", "first_name", "last_name", "email_address", "password_hash", "created_at", "updated_at"}

func TestCreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ada", "Lovelace", "ada@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	u := &model.User{FirstName: "Ada", LastName: "Lovelace", EmailAddress: "ada@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, now, u.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_address_key"})

	err := repo.CreateUser(context.Background(), &model.User{EmailAddress: "ada@example.com"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"email address must be unique"}, vErr.Messages)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email_address = $1")).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(1), "Ada", "Lovelace", "ada@example.com", "hash", now, now))

	u, err := repo.GetUserByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email_address = $1")).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	u, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestGetUserByEmailDBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email_address = $1")).
		WithArgs("ada@example.com").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetUserByEmail(context.Background(), "ada@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")

	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr))
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"check title", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "courses_title_not_empty"}, []string{"The course title cannot be empty"}},
		{"check description", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "courses_description_not_empty"}, []string{"The course description cannot be empty"}},
		{"not null", &pgconn.PgError{Code: pgNotNullViolation, ColumnName: "title"}, []string{"Please provide a value for title"}},
		{"foreign key", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "courses_user_id_fkey"}, []string{"course owner must reference an existing user"}},
		{"unknown constraint", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "other", Message: "duplicate key"}, []string{"duplicate key"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var vErr *ValidationError
			require.ErrorAs(t, translateError(tt.err), &vErr)
			assert.Equal(t, tt.want, vErr.Messages)
		})
	}
}
