package service

import (
	"context"
	"errors"
	"fmt"

	"courseapi/internal/model"
	"courseapi/internal/repository"
	"courseapi/internal/util"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type UserService interface {
	// Create hashes password and persists u.
	Create(ctx context.Context, u *model.User, password string) (*model.User, error)
	// Authenticate resolves the user with the exact email and verifies password.
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

func NewUserService(userRepo repository.UserRepository, bcryptCost int) UserService {
	return &userService{userRepo: userRepo, bcryptCost: bcryptCost}
}

func (s *userService) Create(ctx context.Context, u *model.User, password string) (*model.User, error) {
	hash, err := util.HashPassword(password, s.bcryptCost)
	if err != nil {
		if util.IsPasswordTooLong(err) {
			return nil, &repository.ValidationError{Messages: []string{"password must be at most 72 bytes"}}
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if !util.ComparePassword(password, u.PasswordHash) {
		return nil, ErrInvalidPassword
	}
	return u, nil
}
