package artisan

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name string, bio *string) (*Artisan, error) {
	args := m.Called(ctx, name, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Artisan), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*Artisan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Artisan), args.Error(1)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*Artisan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Artisan), args.Error(1)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, "Clay Co", (*string)(nil)).
			Return(&Artisan{ID: 1, Name: "Clay Co"}, nil)

		a, err := svc.Create(ctx, "Clay Co", nil)
		assert.NoError(t, err)
		assert.Equal(t, 1, a.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmptyName", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, "   ", nil)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, 1).Return(&Artisan{ID: 1, Name: "Clay Co"}, nil)

		a, err := svc.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Clay Co", a.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, 99).Return(nil, sql.ErrNoRows)

		_, err := svc.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrArtisanNotFound)
		assert.EqualError(t, err, "Artisan not found")
	})
}
