package product

import (
	"context"
	"database/sql"

	"artisan-market-be/internal/logger"

	"go.uber.org/zap"
)

const productColumns = "id, name, description, price, likes, artisan_id, created_at, updated_at"

type Repository interface {
	Create(ctx context.Context, p CreateParams) (*Product, error)
	FindByID(ctx context.Context, id int) (*Product, error)
	GetAll(ctx context.Context) ([]*Product, error)
	GetAllByArtisan(ctx context.Context, artisanID int) ([]*Product, error)
	IncrementLikes(ctx context.Context, id int) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanProduct(row *sql.Row) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Likes, &p.ArtisanID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]*Product, error) {
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Likes, &p.ArtisanID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}

	return products, rows.Err()
}

func (r *repository) Create(ctx context.Context, params CreateParams) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx,
		`INSERT INTO products (name, description, price, likes, artisan_id)
		 VALUES ($1, $2, $3, 0, $4)
		 RETURNING `+productColumns,
		params.Name, params.Description, params.Price, params.ArtisanID,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert product",
			zap.String("name", params.Name),
			zap.Int("artisan_id", params.ArtisanID),
			zap.Error(err),
		)
		return nil, err
	}

	return p, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Product, error) {
	return scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id,
	))
}

// GetAll lists products newest first.
func (r *repository) GetAll(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}

	return scanProducts(rows)
}

func (r *repository) GetAllByArtisan(ctx context.Context, artisanID int) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE artisan_id = $1 ORDER BY created_at DESC`,
		artisanID,
	)
	if err != nil {
		return nil, err
	}

	return scanProducts(rows)
}

// IncrementLikes bumps the counter in a single statement so that concurrent
// likes cannot overwrite each other. sql.ErrNoRows means no such product.
func (r *repository) IncrementLikes(ctx context.Context, id int) (*Product, error) {
	return scanProduct(r.db.QueryRowContext(ctx,
		`UPDATE products SET likes = likes + 1, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+productColumns,
		id,
	))
}
