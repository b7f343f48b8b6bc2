package command

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayse/sweetshop/internal/catalog/domain"
)

type mockSweetRepository struct {
	mu     sync.Mutex
	sweets map[uint]*domain.Sweet
	nextID uint
}

func newMockSweetRepository() *mockSweetRepository {
	return &mockSweetRepository{sweets: make(map[uint]*domain.Sweet)}
}

func (m *mockSweetRepository) Create(ctx context.Context, sweet *domain.Sweet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	sweet.ID = m.nextID
	copied := *sweet
	m.sweets[sweet.ID] = &copied
	return nil
}

func (m *mockSweetRepository) FindByID(ctx context.Context, id uint) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sweet, ok := m.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	copied := *sweet
	return &copied, nil
}

func (m *mockSweetRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sweets []domain.Sweet
	for _, s := range m.sweets {
		sweets = append(sweets, *s)
	}
	return sweets, nil
}

func (m *mockSweetRepository) FindByCategory(ctx context.Context, category string, limit, offset int) ([]domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sweets []domain.Sweet
	for _, s := range m.sweets {
		if s.Category == category {
			sweets = append(sweets, *s)
		}
	}
	return sweets, nil
}

func (m *mockSweetRepository) Update(ctx context.Context, sweet *domain.Sweet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sweets[sweet.ID]; !ok {
		return domain.ErrSweetNotFound
	}
	copied := *sweet
	m.sweets[sweet.ID] = &copied
	return nil
}

func (m *mockSweetRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sweet, ok := m.sweets[id]
	if !ok {
		return domain.ErrSweetNotFound
	}
	sweet.Quantity = quantity
	return nil
}

func (m *mockSweetRepository) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.sweets)), nil
}

func TestCreateSweetHandler_Handle(t *testing.T) {
	t.Run("creates an active sweet", func(t *testing.T) {
		repo := newMockSweetRepository()
		handler := NewCreateSweetHandler(repo)

		sweet, err := handler.Handle(context.Background(), CreateSweetCommand{
			Name:     "Lokum",
			Category: "turkish-delight",
			Price:    3.75,
		})

		require.NoError(t, err)
		assert.NotZero(t, sweet.ID)
		assert.True(t, sweet.IsActive)
		assert.Equal(t, "Lokum", sweet.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		handler := NewCreateSweetHandler(newMockSweetRepository())

		_, err := handler.Handle(context.Background(), CreateSweetCommand{Price: 1.0})

		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		handler := NewCreateSweetHandler(newMockSweetRepository())

		_, err := handler.Handle(context.Background(), CreateSweetCommand{Name: "Baklava", Price: 0})

		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestUpdateSweetHandler_Handle(t *testing.T) {
	seed := func(t *testing.T) (*mockSweetRepository, uint) {
		t.Helper()
		repo := newMockSweetRepository()
		created, err := NewCreateSweetHandler(repo).Handle(context.Background(), CreateSweetCommand{
			Name: "Baklava", Category: "pastry", Price: 5.00,
		})
		require.NoError(t, err)
		return repo, created.ID
	}

	t.Run("updates only the provided fields", func(t *testing.T) {
		repo, id := seed(t)
		handler := NewUpdateSweetHandler(repo)

		price := 6.50
		sweet, err := handler.Handle(context.Background(), UpdateSweetCommand{ID: id, Price: &price})

		require.NoError(t, err)
		assert.InDelta(t, 6.50, sweet.Price, 0.001)
		assert.Equal(t, "Baklava", sweet.Name)
	})

	t.Run("unknown sweet", func(t *testing.T) {
		handler := NewUpdateSweetHandler(newMockSweetRepository())

		_, err := handler.Handle(context.Background(), UpdateSweetCommand{ID: 99})

		assert.ErrorIs(t, err, domain.ErrSweetNotFound)
	})

	t.Run("rejects invalid updates", func(t *testing.T) {
		repo, id := seed(t)
		handler := NewUpdateSweetHandler(repo)

		empty := ""
		_, err := handler.Handle(context.Background(), UpdateSweetCommand{ID: id, Name: &empty})
		assert.ErrorIs(t, err, ErrInvalidName)

		negative := -1.0
		_, err = handler.Handle(context.Background(), UpdateSweetCommand{ID: id, Price: &negative})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestSyncQuantityHandler_Handle(t *testing.T) {
	repo := newMockSweetRepository()
	created, err := NewCreateSweetHandler(repo).Handle(context.Background(), CreateSweetCommand{
		Name: "Helva", Price: 2.00,
	})
	require.NoError(t, err)

	handler := NewSyncQuantityHandler(repo)
	err = handler.Handle(context.Background(), SyncQuantityCommand{SweetID: created.ID, Quantity: 17})
	require.NoError(t, err)

	sweet, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 17, sweet.Quantity)
}
