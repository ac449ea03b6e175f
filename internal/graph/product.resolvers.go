package graph

import (
	"errors"
	"time"

	"artisan-market-be/internal/artisan"
	"artisan-market-be/internal/logger"
	"artisan-market-be/internal/product"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

func (r *Resolver) resolveProduct(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, product.ErrProductNotFound
	}

	return r.ProductSvc.GetByID(p.Context, id)
}

func (r *Resolver) resolveProducts(p graphql.ResolveParams) (interface{}, error) {
	return r.ProductSvc.GetAll(p.Context)
}

func (r *Resolver) resolveAddProduct(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireWriteIdentity(p.Context); err != nil {
		return nil, err
	}

	artisanID, err := parseID(p.Args["artisanId"])
	if err != nil {
		return nil, artisan.ErrArtisanNotFound
	}

	// Products must reference an existing artisan; the FK constraint backs
	// this up, but checking here yields the friendlier error.
	if _, err := r.ArtisanSvc.GetByID(p.Context, artisanID); err != nil {
		return nil, err
	}

	var description *string
	if v, ok := p.Args["description"].(string); ok {
		description = &v
	}

	created, err := r.ProductSvc.Create(p.Context, product.CreateParams{
		Name:        p.Args["name"].(string),
		Description: description,
		Price:       p.Args["price"].(float64),
		ArtisanID:   artisanID,
	})
	if err != nil {
		logger.FromCtx(p.Context).Warn("addProduct failed",
			zap.Int("artisan_id", artisanID),
			zap.Error(err),
		)
		return nil, err
	}

	return created, nil
}

func (r *Resolver) resolveLikeProduct(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireWriteIdentity(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, product.ErrProductNotFound
	}

	return r.ProductSvc.Like(p.Context, id)
}

// resolveProductArtisan resolves Product.Artisan. A dangling reference yields
// null rather than an error, matching how the association reads.
func (r *Resolver) resolveProductArtisan(p graphql.ResolveParams) (interface{}, error) {
	parent, ok := p.Source.(*product.Product)
	if !ok {
		return nil, nil
	}

	a, err := r.ArtisanSvc.GetByID(p.Context, parent.ArtisanID)
	if err != nil {
		if errors.Is(err, artisan.ErrArtisanNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return a, nil
}

func resolveProductCreatedAt(p graphql.ResolveParams) (interface{}, error) {
	if prod, ok := p.Source.(*product.Product); ok {
		return prod.CreatedAt.UTC().Format(time.RFC3339), nil
	}
	return nil, nil
}

func resolveProductUpdatedAt(p graphql.ResolveParams) (interface{}, error) {
	if prod, ok := p.Source.(*product.Product); ok {
		return prod.UpdatedAt.UTC().Format(time.RFC3339), nil
	}
	return nil, nil
}
