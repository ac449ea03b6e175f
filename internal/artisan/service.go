package artisan

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"artisan-market-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, name string, bio *string) (*Artisan, error)
	GetByID(ctx context.Context, id int) (*Artisan, error)
	GetAll(ctx context.Context) ([]*Artisan, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string, bio *string) (*Artisan, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name cannot be empty")
	}

	a, err := s.repo.Create(ctx, name, bio)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("artisan created",
		zap.Int("artisan_id", a.ID),
		zap.String("name", a.Name),
	)

	return a, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Artisan, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtisanNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *service) GetAll(ctx context.Context) ([]*Artisan, error) {
	return s.repo.GetAll(ctx)
}
