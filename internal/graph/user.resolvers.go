package graph

import (
	"artisan-market-be/internal/logger"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	uid, ok := GetUserIDFromContext(p.Context)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	return r.UserSvc.GetByID(p.Context, uid)
}

func (r *Resolver) resolveRegister(p graphql.ResolveParams) (interface{}, error) {
	log := logger.FromCtx(p.Context)

	username := p.Args["username"].(string)
	email := p.Args["email"].(string)
	password := p.Args["password"].(string)

	token, u, err := r.UserSvc.Register(p.Context, username, email, password)
	if err != nil {
		log.Warn("register failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	return &AuthPayload{Token: token, User: u}, nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	username := p.Args["username"].(string)
	password := p.Args["password"].(string)

	token, u, err := r.UserSvc.Login(p.Context, username, password)
	if err != nil {
		return nil, err
	}

	return &AuthPayload{Token: token, User: u}, nil
}
