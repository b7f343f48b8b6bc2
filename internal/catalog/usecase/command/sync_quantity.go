package command

import (
	"context"

	"github.com/ayse/sweetshop/internal/catalog/domain"
)

// SyncQuantityCommand carries the authoritative stock level from a ledger
// movement event into the denormalized browse count.
type SyncQuantityCommand struct {
	SweetID  uint
	Quantity int
}

// SyncQuantityHandler handles quantity sync commands
type SyncQuantityHandler struct {
	repo domain.SweetRepository
}

func NewSyncQuantityHandler(repo domain.SweetRepository) *SyncQuantityHandler {
	return &SyncQuantityHandler{repo: repo}
}

func (h *SyncQuantityHandler) Handle(ctx context.Context, cmd SyncQuantityCommand) error {
	return h.repo.UpdateQuantity(ctx, cmd.SweetID, cmd.Quantity)
}
