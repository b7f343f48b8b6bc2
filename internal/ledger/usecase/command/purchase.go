package command

import (
	"context"
	"fmt"

	"github.com/ayse/sweetshop/internal/ledger/domain"
)

// PurchaseCommand represents the command to purchase a sweet
type PurchaseCommand struct {
	SweetID  uint
	UserID   uint
	Quantity int
}

// PurchaseResult carries the appended movement and the post-decrement stock
type PurchaseResult struct {
	Transaction    *domain.Transaction `json:"transaction"`
	RemainingStock int                 `json:"remaining_stock"`
}

// PurchaseHandler handles the purchase command
type PurchaseHandler struct {
	repo domain.LedgerRepository
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(repo domain.LedgerRepository) *PurchaseHandler {
	return &PurchaseHandler{repo: repo}
}

// Handle executes the purchase command. Either the decrement and the movement
// row are both applied or neither is; a rejected purchase leaves no trace.
func (h *PurchaseHandler) Handle(ctx context.Context, cmd PurchaseCommand) (*PurchaseResult, error) {
	if cmd.SweetID == 0 {
		return nil, domain.ErrItemNotFound
	}
	if cmd.UserID == 0 {
		return nil, domain.ErrMissingActor
	}
	if cmd.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	txn, remaining, err := h.repo.ApplyPurchase(ctx, cmd.SweetID, cmd.UserID, cmd.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to apply purchase: %w", err)
	}

	return &PurchaseResult{
		Transaction:    txn,
		RemainingStock: remaining,
	}, nil
}
