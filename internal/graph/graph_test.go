package graph

import (
	"context"
	"testing"

	"artisan-market-be/internal/artisan"
	"artisan-market-be/internal/product"
	"artisan-market-be/internal/transport"
	"artisan-market-be/internal/user"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, email, password string) (string, *user.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*user.User), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (string, *user.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*user.User), args.Error(2)
}

func (m *MockUserService) GetByID(ctx context.Context, id int) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockArtisanService struct {
	mock.Mock
}

func (m *MockArtisanService) Create(ctx context.Context, name string, bio *string) (*artisan.Artisan, error) {
	args := m.Called(ctx, name, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artisan.Artisan), args.Error(1)
}

func (m *MockArtisanService) GetByID(ctx context.Context, id int) (*artisan.Artisan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artisan.Artisan), args.Error(1)
}

func (m *MockArtisanService) GetAll(ctx context.Context) ([]*artisan.Artisan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*artisan.Artisan), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, params product.CreateParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) GetAllByArtisan(ctx context.Context, artisanID int) ([]*product.Product, error) {
	args := m.Called(ctx, artisanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) Like(ctx context.Context, id int) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

// --- Helpers ---

func newTestSchema(t *testing.T, r *Resolver) graphql.Schema {
	t.Helper()
	schema, err := NewSchema(r)
	require.NoError(t, err)
	return schema
}

func execute(schema graphql.Schema, ctx context.Context, query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       ctx,
	})
}

func authedContext(userID int) context.Context {
	return transport.WithRequestContext(context.Background(), &transport.RequestContext{UserID: &userID})
}

func anonContext() context.Context {
	return transport.WithRequestContext(context.Background(), &transport.RequestContext{})
}
