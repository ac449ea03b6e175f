package product

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"artisan-market-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, params CreateParams) (*Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	GetAll(ctx context.Context) ([]*Product, error)
	GetAllByArtisan(ctx context.Context, artisanID int) ([]*Product, error)
	Like(ctx context.Context, id int) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, errors.New("name cannot be empty")
	}
	if params.ArtisanID <= 0 {
		return nil, errors.New("artisanId is required")
	}

	p, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Int("product_id", p.ID),
		zap.Int("artisan_id", p.ArtisanID),
	)

	return p, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) GetAll(ctx context.Context) ([]*Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetAllByArtisan(ctx context.Context, artisanID int) ([]*Product, error) {
	return s.repo.GetAllByArtisan(ctx, artisanID)
}

func (s *service) Like(ctx context.Context, id int) (*Product, error) {
	p, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	logger.FromCtx(ctx).Debug("product liked",
		zap.Int("product_id", p.ID),
		zap.Int("likes", p.Likes),
	)

	return p, nil
}
