package command

import (
	"context"
	"fmt"

	"github.com/ayse/sweetshop/internal/ledger/domain"
)

// RestockCommand represents the command to restock a sweet
type RestockCommand struct {
	SweetID  uint
	UserID   uint
	Quantity int
}

// RestockResult carries the appended movement and the post-increment stock
type RestockResult struct {
	Transaction *domain.Transaction `json:"transaction"`
	NewStock    int                 `json:"new_stock"`
}

// RestockHandler handles the restock command
type RestockHandler struct {
	repo    domain.LedgerRepository
	catalog domain.CatalogReader
}

// NewRestockHandler creates a new restock handler
func NewRestockHandler(repo domain.LedgerRepository, catalog domain.CatalogReader) *RestockHandler {
	return &RestockHandler{repo: repo, catalog: catalog}
}

// Handle executes the restock command. The inventory record is materialized
// on first restock; the unit price captured here values all purchases until
// the next restock.
func (h *RestockHandler) Handle(ctx context.Context, cmd RestockCommand) (*RestockResult, error) {
	if cmd.SweetID == 0 {
		return nil, domain.ErrItemNotFound
	}
	if cmd.UserID == 0 {
		return nil, domain.ErrMissingActor
	}
	if cmd.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	unitPrice, err := h.catalog.UnitPrice(ctx, cmd.SweetID)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit price: %w", err)
	}

	txn, newStock, err := h.repo.ApplyRestock(ctx, cmd.SweetID, cmd.UserID, cmd.Quantity, unitPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to apply restock: %w", err)
	}

	return &RestockResult{
		Transaction: txn,
		NewStock:    newStock,
	}, nil
}
