package graph

import (
	"context"
	"errors"

	"artisan-market-be/internal/artisan"
	"artisan-market-be/internal/product"
	"artisan-market-be/internal/user"
)

var ErrNotAuthenticated = errors.New("Not authenticated")

type Resolver struct {
	UserSvc    user.Service
	ArtisanSvc artisan.Service
	ProductSvc product.Service

	// RequireAuthWrites gates the write mutations on an authenticated
	// identity. Off by default: the public write API is an explicit policy
	// choice, not an accident of the resolvers.
	RequireAuthWrites bool
}

// AuthPayload is returned by register and login.
type AuthPayload struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (r *Resolver) requireWriteIdentity(ctx context.Context) error {
	if !r.RequireAuthWrites {
		return nil
	}
	if _, ok := GetUserIDFromContext(ctx); !ok {
		return ErrNotAuthenticated
	}
	return nil
}
