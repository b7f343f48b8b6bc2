package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayse/sweetshop/internal/ledger/domain"
)

type fakeLedgerRepository struct {
	mu      sync.Mutex
	records map[uint]*domain.InventoryRecord
	txns    []domain.Transaction
	nextID  uint
}

func newFakeLedgerRepository() *fakeLedgerRepository {
	return &fakeLedgerRepository{records: make(map[uint]*domain.InventoryRecord)}
}

func (f *fakeLedgerRepository) seed(sweetID uint, quantity int, unitPrice float64) {
	f.records[sweetID] = &domain.InventoryRecord{
		ID: sweetID, SweetID: sweetID, Quantity: quantity, UnitPrice: unitPrice,
	}
}

func (f *fakeLedgerRepository) ApplyPurchase(ctx context.Context, sweetID, userID uint, quantity int) (*domain.Transaction, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[sweetID]
	if !ok {
		return nil, 0, domain.ErrItemNotFound
	}
	if rec.Quantity < quantity {
		return nil, 0, &domain.InsufficientStockError{SweetID: sweetID, Requested: quantity, Available: rec.Quantity}
	}
	rec.Quantity -= quantity
	value := rec.UnitPrice * float64(quantity)
	f.nextID++
	txn := domain.Transaction{ID: f.nextID, SweetID: sweetID, UserID: userID, Kind: domain.KindPurchase, Quantity: quantity, Value: &value}
	f.txns = append(f.txns, txn)
	return &txn, rec.Quantity, nil
}

func (f *fakeLedgerRepository) ApplyRestock(ctx context.Context, sweetID, userID uint, quantity int, unitPrice float64) (*domain.Transaction, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[sweetID]
	if !ok {
		rec = &domain.InventoryRecord{SweetID: sweetID}
		f.records[sweetID] = rec
	}
	rec.Quantity += quantity
	rec.UnitPrice = unitPrice
	f.nextID++
	txn := domain.Transaction{ID: f.nextID, SweetID: sweetID, UserID: userID, Kind: domain.KindRestock, Quantity: quantity}
	f.txns = append(f.txns, txn)
	return &txn, rec.Quantity, nil
}

func (f *fakeLedgerRepository) FindRecordBySweetID(ctx context.Context, sweetID uint) (*domain.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[sweetID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeLedgerRepository) FindAllRecords(ctx context.Context) ([]domain.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := make([]domain.InventoryRecord, 0, len(f.records))
	for _, rec := range f.records {
		records = append(records, *rec)
	}
	return records, nil
}

func (f *fakeLedgerRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []domain.Transaction
	for _, txn := range f.txns {
		if filter.UserID != nil && txn.UserID != *filter.UserID {
			continue
		}
		if filter.Kind != nil && txn.Kind != *filter.Kind {
			continue
		}
		matched = append(matched, txn)
	}
	return matched, int64(len(matched)), nil
}

type fakeCatalog struct {
	prices map[uint]float64
}

func (f *fakeCatalog) UnitPrice(ctx context.Context, sweetID uint) (float64, error) {
	price, ok := f.prices[sweetID]
	if !ok {
		return 0, domain.ErrItemNotFound
	}
	return price, nil
}

func setupRouter(repo *fakeLedgerRepository) *mux.Router {
	handler := NewLedgerHandler(repo, &fakeCatalog{prices: map[uint]float64{1: 2.50, 2: 4.00}})
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func doRequest(router *mux.Router, method, target, userID string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLedgerHandler_Purchase(t *testing.T) {
	t.Run("successful purchase", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		repo.seed(1, 10, 2.50)
		router := setupRouter(repo)

		rec := doRequest(router, http.MethodPost, "/api/inventory/1/purchase", "7", map[string]int{"quantity": 3})

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(7), data["remaining_stock"])
	})

	t.Run("insufficient stock returns both amounts", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		repo.seed(1, 2, 2.50)
		router := setupRouter(repo)

		rec := doRequest(router, http.MethodPost, "/api/inventory/1/purchase", "7", map[string]int{"quantity": 5})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(5), data["requested"])
		assert.Equal(t, float64(2), data["available"])
	})

	t.Run("unknown sweet returns 404", func(t *testing.T) {
		router := setupRouter(newFakeLedgerRepository())

		rec := doRequest(router, http.MethodPost, "/api/inventory/42/purchase", "7", map[string]int{"quantity": 1})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing actor header returns 401", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		repo.seed(1, 10, 2.50)
		router := setupRouter(repo)

		rec := doRequest(router, http.MethodPost, "/api/inventory/1/purchase", "", map[string]int{"quantity": 1})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-positive quantity returns 400", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		repo.seed(1, 10, 2.50)
		router := setupRouter(repo)

		rec := doRequest(router, http.MethodPost, "/api/inventory/1/purchase", "7", map[string]int{"quantity": -1})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed sweet id returns 400", func(t *testing.T) {
		router := setupRouter(newFakeLedgerRepository())

		rec := doRequest(router, http.MethodPost, "/api/inventory/candy/purchase", "7", map[string]int{"quantity": 1})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLedgerHandler_Restock(t *testing.T) {
	t.Run("restock materializes missing record", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		router := setupRouter(repo)

		rec := doRequest(router, http.MethodPost, "/api/inventory/2/restock", "9", map[string]int{"quantity": 5})

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(5), data["new_stock"])
	})

	t.Run("restock of unknown catalog item returns 404", func(t *testing.T) {
		router := setupRouter(newFakeLedgerRepository())

		rec := doRequest(router, http.MethodPost, "/api/inventory/42/restock", "9", map[string]int{"quantity": 5})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLedgerHandler_GetStockStatus(t *testing.T) {
	repo := newFakeLedgerRepository()
	repo.seed(1, 0, 2.50)
	repo.seed(2, 12, 4.00)
	router := setupRouter(repo)

	rec := doRequest(router, http.MethodGet, "/api/inventory/status", "7", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.([]interface{}), 2)
}

func TestLedgerHandler_GetStockAlerts(t *testing.T) {
	repo := newFakeLedgerRepository()
	repo.seed(1, 0, 2.50)
	repo.seed(2, 3, 4.00)
	repo.seed(3, 50, 1.00)
	router := setupRouter(repo)

	t.Run("default threshold", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/inventory/alerts", "7", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(2), data["alert_count"])
		assert.Equal(t, float64(domain.DefaultLowStockThreshold), data["threshold"])
	})

	t.Run("non-numeric threshold returns 400", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/inventory/alerts?threshold=lots", "7", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative threshold returns 400", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/inventory/alerts?threshold=-3", "7", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLedgerHandler_Transactions(t *testing.T) {
	repo := newFakeLedgerRepository()
	repo.seed(1, 100, 2.50)
	router := setupRouter(repo)

	doRequest(router, http.MethodPost, "/api/inventory/1/purchase", "7", map[string]int{"quantity": 2})
	doRequest(router, http.MethodPost, "/api/inventory/1/purchase", "8", map[string]int{"quantity": 3})
	doRequest(router, http.MethodPost, "/api/inventory/1/restock", "9", map[string]int{"quantity": 10})

	t.Run("full history", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/inventory/transactions", "9", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(3), data["total_count"])
	})

	t.Run("kind filter", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/inventory/transactions?kind=restock", "9", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(1), data["total_count"])
	})

	t.Run("unknown kind returns 400", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/inventory/transactions?kind=refund", "9", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("my history is scoped to the caller", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/inventory/transactions/my", "7", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(1), data["total_count"])
	})

	t.Run("my history without actor returns 401", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/inventory/transactions/my", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
