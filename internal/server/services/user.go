// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dkrasnov/inkpress/internal/common"
	"github.com/dkrasnov/inkpress/internal/server/auth"
	"github.com/dkrasnov/inkpress/internal/server/config"
	"github.com/dkrasnov/inkpress/internal/server/models"
	"github.com/dkrasnov/inkpress/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint access tokens
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user with the given handle, password, and payment
// address. The password is hashed with Argon2id before storage.
func (s *UserService) Register(ctx context.Context, handle string, password []byte, paymentAddress string) (*models.User, error) {
	hash, salt := auth.HashPassword(password)
	user := &models.User{Handle: handle, PaymentAddress: paymentAddress, PasswordHash: hash, Salt: salt}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	return u, nil
}

// Login verifies the provided password against the stored hash and, on
// success, returns a signed access token carrying the user's handle and
// payment address.
func (s *UserService) Login(ctx context.Context, handle string, password []byte) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", common.ErrInternal
	}
	if !auth.VerifyPassword(password, user.PasswordHash, user.Salt) {
		return "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Handle, user.PaymentAddress, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}
