package graph

import (
	"time"

	"artisan-market-be/internal/artisan"
	"artisan-market-be/internal/logger"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

func (r *Resolver) resolveArtisan(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, artisan.ErrArtisanNotFound
	}

	return r.ArtisanSvc.GetByID(p.Context, id)
}

func (r *Resolver) resolveArtisans(p graphql.ResolveParams) (interface{}, error) {
	return r.ArtisanSvc.GetAll(p.Context)
}

func (r *Resolver) resolveAddArtisan(p graphql.ResolveParams) (interface{}, error) {
	if err := r.requireWriteIdentity(p.Context); err != nil {
		return nil, err
	}

	name := p.Args["name"].(string)

	var bio *string
	if v, ok := p.Args["bio"].(string); ok {
		bio = &v
	}

	a, err := r.ArtisanSvc.Create(p.Context, name, bio)
	if err != nil {
		logger.FromCtx(p.Context).Warn("addArtisan failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	return a, nil
}

// resolveArtisanProducts resolves Artisan.Products, newest first.
func (r *Resolver) resolveArtisanProducts(p graphql.ResolveParams) (interface{}, error) {
	parent, ok := p.Source.(*artisan.Artisan)
	if !ok {
		return nil, nil
	}

	return r.ProductSvc.GetAllByArtisan(p.Context, parent.ID)
}

func resolveArtisanCreatedAt(p graphql.ResolveParams) (interface{}, error) {
	if a, ok := p.Source.(*artisan.Artisan); ok {
		return a.CreatedAt.UTC().Format(time.RFC3339), nil
	}
	return nil, nil
}

func resolveArtisanUpdatedAt(p graphql.ResolveParams) (interface{}, error) {
	if a, ok := p.Source.(*artisan.Artisan); ok {
		return a.UpdatedAt.UTC().Format(time.RFC3339), nil
	}
	return nil, nil
}
