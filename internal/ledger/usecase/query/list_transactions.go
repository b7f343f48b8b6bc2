package query

import (
	"context"
	"fmt"

	"github.com/ayse/sweetshop/internal/ledger/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListTransactionsQuery represents the query for the movement history.
// Nil filter fields are not applied.
type ListTransactionsQuery struct {
	SweetID *uint
	UserID  *uint
	Kind    *string
	Page    int
	Limit   int
}

// TransactionPage is one page of movement history plus paging metadata
type TransactionPage struct {
	Transactions []domain.Transaction `json:"transactions"`
	TotalCount   int64                `json:"total_count"`
	TotalPages   int                  `json:"total_pages"`
	Page         int                  `json:"page"`
	Limit        int                  `json:"limit"`
	HasNext      bool                 `json:"has_next"`
	HasPrev      bool                 `json:"has_prev"`
}

// ListTransactionsHandler handles the transaction history query
type ListTransactionsHandler struct {
	repo domain.LedgerRepository
}

// NewListTransactionsHandler creates a new list transactions handler
func NewListTransactionsHandler(repo domain.LedgerRepository) *ListTransactionsHandler {
	return &ListTransactionsHandler{repo: repo}
}

// Handle executes the transaction history query
func (h *ListTransactionsHandler) Handle(ctx context.Context, q ListTransactionsQuery) (*TransactionPage, error) {
	if q.Kind != nil && *q.Kind != domain.KindPurchase && *q.Kind != domain.KindRestock {
		return nil, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidFilter, *q.Kind)
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultPageSize
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}

	filter := domain.TransactionFilter{
		SweetID: q.SweetID,
		UserID:  q.UserID,
		Kind:    q.Kind,
		Limit:   q.Limit,
		Offset:  (q.Page - 1) * q.Limit,
	}

	txns, total, err := h.repo.FindTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))

	return &TransactionPage{
		Transactions: txns,
		TotalCount:   total,
		TotalPages:   totalPages,
		Page:         q.Page,
		Limit:        q.Limit,
		HasNext:      q.Page < totalPages,
		HasPrev:      q.Page > 1,
	}, nil
}
