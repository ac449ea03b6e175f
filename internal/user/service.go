package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"artisan-market-be/internal/auth"
	"artisan-market-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, username, email, password string) (string, *User, error)
	Login(ctx context.Context, username, password string) (string, *User, error)
	GetByID(ctx context.Context, id int) (*User, error)
}

type service struct {
	repo   Repository
	issuer *auth.TokenIssuer
}

func NewService(repo Repository, issuer *auth.TokenIssuer) Service {
	return &service{repo: repo, issuer: issuer}
}

func (s *service) Register(ctx context.Context, username, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		log.Error("failed to check user existence", zap.String("username", username), zap.Error(err))
		return "", nil, err
	}
	if exists {
		return "", nil, ErrUserExists
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, username, email, hashed)
	if err != nil {
		// The unique indexes close the check-then-insert race; a constraint
		// violation still reads as a duplicate user to the caller.
		if strings.Contains(err.Error(), "users_username_key") || strings.Contains(err.Error(), "users_email_key") {
			return "", nil, ErrUserExists
		}
		return "", nil, err
	}

	token, err := s.issuer.Issue(u.ID)
	if err != nil {
		log.Error("failed to issue token", zap.Int("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("user registered",
		zap.Int("user_id", u.ID),
		zap.String("username", u.Username),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, *User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}

	if !auth.CheckPasswordHash(password, u.PasswordHash) {
		return "", nil, ErrInvalidPassword
	}

	token, err := s.issuer.Issue(u.ID)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
