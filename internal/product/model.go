package product

import "time"

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Likes       int       `json:"likes"`
	ArtisanID   int       `json:"artisan_id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type CreateParams struct {
	Name        string
	Description *string
	Price       float64
	ArtisanID   int
}
