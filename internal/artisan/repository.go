package artisan

import (
	"context"
	"database/sql"

	"artisan-market-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, name string, bio *string) (*Artisan, error)
	FindByID(ctx context.Context, id int) (*Artisan, error)
	GetAll(ctx context.Context) ([]*Artisan, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string, bio *string) (*Artisan, error) {
	var a Artisan
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO artisans (name, bio)
		 VALUES ($1, $2)
		 RETURNING id, name, bio, created_at, updated_at`,
		name, bio,
	).Scan(&a.ID, &a.Name, &a.Bio, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert artisan",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, err
	}

	return &a, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Artisan, error) {
	var a Artisan
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, bio, created_at, updated_at FROM artisans WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.Bio, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAll lists artisans newest first.
func (r *repository) GetAll(ctx context.Context) ([]*Artisan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, bio, created_at, updated_at FROM artisans ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artisans []*Artisan
	for rows.Next() {
		var a Artisan
		if err := rows.Scan(&a.ID, &a.Name, &a.Bio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		artisans = append(artisans, &a)
	}

	return artisans, rows.Err()
}
