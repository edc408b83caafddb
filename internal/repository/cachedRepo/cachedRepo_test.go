package cachedRepo_test

import (
	"context"
	"errors"
	"testing"

	"JerseyStoreAPI/internal/model"
	"JerseyStoreAPI/internal/repository/cachedRepo"
	"JerseyStoreAPI/internal/repository/redisCache"
	"JerseyStoreAPI/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJerseyRepo struct {
	mock.Mock
}

func (m *MockJerseyRepo) GetByID(ctx context.Context, id string) (*model.Jersey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Jersey), args.Error(1)
}

type MockJerseyCache struct {
	mock.Mock
}

func (m *MockJerseyCache) GetByID(ctx context.Context, id string) (*model.Jersey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Jersey), args.Error(1)
}

func (m *MockJerseyCache) Save(ctx context.Context, jersey *model.Jersey) error {
	args := m.Called(ctx, jersey)
	return args.Error(0)
}

func TestCachedJerseyRepo_GetByID(t *testing.T) {
	log := logger.NewTestLogger()
	jersey := &model.Jersey{JerseyID: "j1", Name: "Home Kit"}

	t.Run("cache hit skips the database", func(t *testing.T) {
		repo := new(MockJerseyRepo)
		cache := new(MockJerseyCache)
		cache.On("GetByID", mock.Anything, "j1").Return(jersey, nil).Once()

		r := cachedRepo.NewCachedJerseyRepo(repo, cache, log)
		got, err := r.GetByID(context.Background(), "j1")

		require.NoError(t, err)
		assert.Equal(t, jersey, got)
		repo.AssertNotCalled(t, "GetByID")
		cache.AssertExpectations(t)
	})

	t.Run("cache miss reads the database and backfills", func(t *testing.T) {
		repo := new(MockJerseyRepo)
		cache := new(MockJerseyCache)
		cache.On("GetByID", mock.Anything, "j1").Return(nil, redisCache.ErrCacheMiss).Once()
		repo.On("GetByID", mock.Anything, "j1").Return(jersey, nil).Once()
		cache.On("Save", mock.Anything, jersey).Return(nil).Once()

		r := cachedRepo.NewCachedJerseyRepo(repo, cache, log)
		got, err := r.GetByID(context.Background(), "j1")

		require.NoError(t, err)
		assert.Equal(t, jersey, got)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure falls back to the database", func(t *testing.T) {
		repo := new(MockJerseyRepo)
		cache := new(MockJerseyCache)
		cache.On("GetByID", mock.Anything, "j1").Return(nil, errors.New("redis down")).Once()
		repo.On("GetByID", mock.Anything, "j1").Return(jersey, nil).Once()
		cache.On("Save", mock.Anything, jersey).Return(errors.New("redis down")).Once()

		r := cachedRepo.NewCachedJerseyRepo(repo, cache, log)
		got, err := r.GetByID(context.Background(), "j1")

		require.NoError(t, err)
		assert.Equal(t, jersey, got)
	})

	t.Run("database miss propagates", func(t *testing.T) {
		repo := new(MockJerseyRepo)
		cache := new(MockJerseyCache)
		cache.On("GetByID", mock.Anything, "nope").Return(nil, redisCache.ErrCacheMiss).Once()
		repo.On("GetByID", mock.Anything, "nope").Return(nil, errors.New("jersey not found")).Once()

		r := cachedRepo.NewCachedJerseyRepo(repo, cache, log)
		_, err := r.GetByID(context.Background(), "nope")

		assert.Error(t, err)
	})
}
