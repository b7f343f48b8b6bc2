package query

import (
	"context"
	"fmt"

	"github.com/ayse/sweetshop/internal/ledger/domain"
)

// ItemStatus is one inventory record with its derived stock tier
type ItemStatus struct {
	domain.InventoryRecord
	Tier string `json:"tier"`
}

// GetStockStatusHandler handles the stock status query
type GetStockStatusHandler struct {
	repo domain.LedgerRepository
}

// NewGetStockStatusHandler creates a new get stock status handler
func NewGetStockStatusHandler(repo domain.LedgerRepository) *GetStockStatusHandler {
	return &GetStockStatusHandler{repo: repo}
}

// Handle returns every inventory record with its tier at the default threshold
func (h *GetStockStatusHandler) Handle(ctx context.Context) ([]ItemStatus, error) {
	records, err := h.repo.FindAllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory records: %w", err)
	}

	statuses := make([]ItemStatus, 0, len(records))
	for _, rec := range records {
		statuses = append(statuses, ItemStatus{
			InventoryRecord: rec,
			Tier:            rec.Tier(domain.DefaultLowStockThreshold),
		})
	}

	return statuses, nil
}
