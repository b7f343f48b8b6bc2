package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayse/sweetshop/internal/catalog/domain"
)

type stubSweetRepository struct {
	sweets []domain.Sweet

	lastLimit  int
	lastOffset int
}

func (s *stubSweetRepository) Create(ctx context.Context, sweet *domain.Sweet) error { return nil }

func (s *stubSweetRepository) FindByID(ctx context.Context, id uint) (*domain.Sweet, error) {
	for i := range s.sweets {
		if s.sweets[i].ID == id {
			return &s.sweets[i], nil
		}
	}
	return nil, domain.ErrSweetNotFound
}

func (s *stubSweetRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Sweet, error) {
	s.lastLimit, s.lastOffset = limit, offset
	return s.sweets, nil
}

func (s *stubSweetRepository) FindByCategory(ctx context.Context, category string, limit, offset int) ([]domain.Sweet, error) {
	s.lastLimit, s.lastOffset = limit, offset
	var matched []domain.Sweet
	for _, sweet := range s.sweets {
		if sweet.Category == category {
			matched = append(matched, sweet)
		}
	}
	return matched, nil
}

func (s *stubSweetRepository) Update(ctx context.Context, sweet *domain.Sweet) error { return nil }

func (s *stubSweetRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	return nil
}

func (s *stubSweetRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(s.sweets)), nil
}

func TestGetSweetHandler_Handle(t *testing.T) {
	repo := &stubSweetRepository{sweets: []domain.Sweet{{ID: 1, Name: "Lokum"}}}
	handler := NewGetSweetHandler(repo)

	sweet, err := handler.Handle(context.Background(), GetSweetQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Lokum", sweet.Name)

	_, err = handler.Handle(context.Background(), GetSweetQuery{ID: 2})
	assert.ErrorIs(t, err, domain.ErrSweetNotFound)
}

func TestListSweetsHandler_Handle(t *testing.T) {
	repo := &stubSweetRepository{sweets: []domain.Sweet{
		{ID: 1, Name: "Lokum", Category: "turkish-delight"},
		{ID: 2, Name: "Baklava", Category: "pastry"},
		{ID: 3, Name: "Kadayif", Category: "pastry"},
	}}
	handler := NewListSweetsHandler(repo)
	ctx := context.Background()

	t.Run("defaults apply", func(t *testing.T) {
		page, err := handler.Handle(ctx, ListSweetsQuery{})

		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, defaultPageSize, page.Limit)
		assert.Equal(t, int64(3), page.TotalCount)
		assert.Equal(t, 0, repo.lastOffset)
	})

	t.Run("category filter", func(t *testing.T) {
		page, err := handler.Handle(ctx, ListSweetsQuery{Category: "pastry"})

		require.NoError(t, err)
		assert.Len(t, page.Sweets, 2)
	})

	t.Run("limit clamp and offset math", func(t *testing.T) {
		_, err := handler.Handle(ctx, ListSweetsQuery{Page: 3, Limit: 500})

		require.NoError(t, err)
		assert.Equal(t, maxPageSize, repo.lastLimit)
		assert.Equal(t, 2*maxPageSize, repo.lastOffset)
	})

	t.Run("empty result is a slice, not nil", func(t *testing.T) {
		empty := NewListSweetsHandler(&stubSweetRepository{})
		page, err := empty.Handle(ctx, ListSweetsQuery{})

		require.NoError(t, err)
		assert.NotNil(t, page.Sweets)
		assert.Empty(t, page.Sweets)
	})
}
