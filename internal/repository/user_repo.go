package repository

import (
	"context"
	"database/sql"
	"errors"

	"courseapi/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) error
	// GetUserByEmail returns the user whose email matches exactly, or nil.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, u *model.User) error {
	query := `INSERT INTO users (first_name, last_name, email_address, password_hash)
              VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.EmailAddress, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
              FROM users WHERE email_address = $1`
	row := r.db.QueryRowContext(ctx, query, email)
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &u, nil
}
