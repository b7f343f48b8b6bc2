package query

import (
	"context"

	"github.com/ayse/sweetshop/internal/ledger/domain"
)

// GetMyTransactionsQuery represents the query for the caller's own history
type GetMyTransactionsQuery struct {
	UserID  uint
	SweetID *uint
	Kind    *string
	Page    int
	Limit   int
}

// GetMyTransactionsHandler handles the my-transactions query. The filter
// logic is the same as the full history query; the actor restriction is the
// only difference, the broader access gating happens at the API surface.
type GetMyTransactionsHandler struct {
	list *ListTransactionsHandler
}

// NewGetMyTransactionsHandler creates a new get my transactions handler
func NewGetMyTransactionsHandler(repo domain.LedgerRepository) *GetMyTransactionsHandler {
	return &GetMyTransactionsHandler{list: NewListTransactionsHandler(repo)}
}

// Handle executes the my-transactions query pinned to the caller's identity
func (h *GetMyTransactionsHandler) Handle(ctx context.Context, q GetMyTransactionsQuery) (*TransactionPage, error) {
	if q.UserID == 0 {
		return nil, domain.ErrMissingActor
	}

	return h.list.Handle(ctx, ListTransactionsQuery{
		SweetID: q.SweetID,
		UserID:  &q.UserID,
		Kind:    q.Kind,
		Page:    q.Page,
		Limit:   q.Limit,
	})
}
