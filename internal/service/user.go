package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/arohealth/healthbot/internal/auth"
	"github.com/arohealth/healthbot/internal/domain"
)

// UserStore is the slice of the repository the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, fullName, email, passwordHash string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type UserService struct {
	store  UserStore
	tokens *auth.TokenService
}

func NewUserService(store UserStore, tokens *auth.TokenService) *UserService {
	return &UserService{store: store, tokens: tokens}
}

// Signup registers a new account. Passwords longer than bcrypt's 72-byte
// input limit are silently truncated by the hasher, not rejected.
func (s *UserService) Signup(ctx context.Context, fullName, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	user, err := s.store.CreateUser(ctx, strings.TrimSpace(fullName), email, hash)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed access token. A missing
// account and a wrong password are deliberately indistinguishable.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", domain.ErrInvalidLogin
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidLogin
	}
	return s.tokens.Generate(user)
}
