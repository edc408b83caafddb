package services_test

import (
	"context"
	"testing"

	"JerseyStoreAPI/internal/model"
	"JerseyStoreAPI/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJerseyGetter struct {
	mock.Mock
}

func (m *MockJerseyGetter) GetByID(ctx context.Context, id string) (*model.Jersey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Jersey), args.Error(1)
}

func jerseyFixture(id string, price float64) *model.Jersey {
	return &model.Jersey{
		JerseyID: id,
		Name:     "Jersey " + id,
		Price:    price,
		Sizes:    []string{"S", "M", "L"},
	}
}

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("adding the same line twice merges quantities", func(t *testing.T) {
		getter := new(MockJerseyGetter)
		getter.On("GetByID", mock.Anything, "j1").Return(jerseyFixture("j1", 20.0), nil)
		cs := services.NewCartService(getter)

		session, err := cs.Add(ctx, "", "j1", "M", 2)
		require.NoError(t, err)
		require.NotEmpty(t, session)

		_, err = cs.Add(ctx, session, "j1", "M", 3)
		require.NoError(t, err)

		lines := cs.Lines(session)
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
		assert.Equal(t, 5, cs.TotalCount(session))
	})

	t.Run("same jersey in different sizes gives distinct lines", func(t *testing.T) {
		getter := new(MockJerseyGetter)
		getter.On("GetByID", mock.Anything, "j1").Return(jerseyFixture("j1", 20.0), nil)
		cs := services.NewCartService(getter)

		session, err := cs.Add(ctx, "", "j1", "M", 1)
		require.NoError(t, err)
		_, err = cs.Add(ctx, session, "j1", "L", 1)
		require.NoError(t, err)

		assert.Len(t, cs.Lines(session), 2)
	})

	t.Run("quantity below one is rejected and creates no line", func(t *testing.T) {
		getter := new(MockJerseyGetter)
		cs := services.NewCartService(getter)

		session, err := cs.Add(ctx, "", "j1", "M", 0)
		assert.Error(t, err)
		assert.Empty(t, cs.Lines(session))
		getter.AssertNotCalled(t, "GetByID")
	})

	t.Run("unknown size is rejected", func(t *testing.T) {
		getter := new(MockJerseyGetter)
		getter.On("GetByID", mock.Anything, "j1").Return(jerseyFixture("j1", 20.0), nil)
		cs := services.NewCartService(getter)

		_, err := cs.Add(ctx, "", "j1", "XXL", 1)
		assert.Error(t, err)
	})

	t.Run("unknown jersey is rejected", func(t *testing.T) {
		getter := new(MockJerseyGetter)
		getter.On("GetByID", mock.Anything, "nope").Return(nil, assert.AnError)
		cs := services.NewCartService(getter)

		_, err := cs.Add(ctx, "", "nope", "M", 1)
		assert.Error(t, err)
	})
}

func TestCartService_SetQuantity(t *testing.T) {
	ctx := context.Background()
	getter := new(MockJerseyGetter)
	getter.On("GetByID", mock.Anything, "j1").Return(jerseyFixture("j1", 20.0), nil)

	t.Run("quantity zero removes the line and totals follow", func(t *testing.T) {
		cs := services.NewCartService(getter)
		session, err := cs.Add(ctx, "", "j1", "M", 2)
		require.NoError(t, err)

		require.NoError(t, cs.SetQuantity(session, "j1", "M", 0))
		assert.Empty(t, cs.Lines(session))
		assert.Equal(t, 0, cs.TotalCount(session))
		assert.Equal(t, 0.0, cs.TotalPrice(session))
	})

	t.Run("positive quantity replaces", func(t *testing.T) {
		cs := services.NewCartService(getter)
		session, err := cs.Add(ctx, "", "j1", "M", 2)
		require.NoError(t, err)

		require.NoError(t, cs.SetQuantity(session, "j1", "M", 7))
		lines := cs.Lines(session)
		require.Len(t, lines, 1)
		assert.Equal(t, 7, lines[0].Quantity)
	})

	t.Run("missing line errors", func(t *testing.T) {
		cs := services.NewCartService(getter)
		assert.Error(t, cs.SetQuantity("no-session", "j1", "M", 2))
	})
}

func TestCartService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	getter := new(MockJerseyGetter)
	getter.On("GetByID", mock.Anything, "j1").Return(jerseyFixture("j1", 20.0), nil)
	getter.On("GetByID", mock.Anything, "j2").Return(jerseyFixture("j2", 15.5), nil)

	cs := services.NewCartService(getter)
	session, err := cs.Add(ctx, "", "j1", "M", 1)
	require.NoError(t, err)
	_, err = cs.Add(ctx, session, "j2", "S", 1)
	require.NoError(t, err)

	// removing an absent line is a no-op
	cs.Remove(session, "j1", "L")
	assert.Len(t, cs.Lines(session), 2)

	cs.Remove(session, "j1", "M")
	lines := cs.Lines(session)
	require.Len(t, lines, 1)
	assert.Equal(t, "j2", lines[0].JerseyID)

	cs.Clear(session)
	assert.Empty(t, cs.Lines(session))
}

func TestCartService_Totals(t *testing.T) {
	ctx := context.Background()
	getter := new(MockJerseyGetter)
	getter.On("GetByID", mock.Anything, "j1").Return(jerseyFixture("j1", 20.0), nil)
	getter.On("GetByID", mock.Anything, "j2").Return(jerseyFixture("j2", 15.5), nil)

	cs := services.NewCartService(getter)

	assert.Equal(t, 0.0, cs.TotalPrice("unknown"))
	assert.Equal(t, 0, cs.TotalCount("unknown"))

	session, err := cs.Add(ctx, "", "j1", "M", 2)
	require.NoError(t, err)
	_, err = cs.Add(ctx, session, "j2", "S", 1)
	require.NoError(t, err)

	assert.Equal(t, 55.5, cs.TotalPrice(session))
	assert.Equal(t, 3, cs.TotalCount(session))

	resp := cs.Get(session)
	require.Len(t, resp.Lines, 2)
	assert.Equal(t, 40.0, resp.Lines[0].Subtotal)
	assert.Equal(t, 15.5, resp.Lines[1].Subtotal)
	assert.Equal(t, 55.5, resp.Total)
	assert.Equal(t, 3, resp.Count)
}
