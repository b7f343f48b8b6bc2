package query

import (
	"context"
	"fmt"

	"github.com/ayse/sweetshop/internal/ledger/domain"
)

// StockAlertsQuery represents the query for stock alerts
type StockAlertsQuery struct {
	Threshold int
}

// StockAlerts partitions all inventory records into alert tiers
type StockAlerts struct {
	LowStock   []domain.InventoryRecord `json:"low_stock"`
	OutOfStock []domain.InventoryRecord `json:"out_of_stock"`
	AlertCount int                      `json:"alert_count"`
	Threshold  int                      `json:"threshold"`
}

// GetStockAlertsHandler handles the stock alerts query
type GetStockAlertsHandler struct {
	repo domain.LedgerRepository
}

// NewGetStockAlertsHandler creates a new get stock alerts handler
func NewGetStockAlertsHandler(repo domain.LedgerRepository) *GetStockAlertsHandler {
	return &GetStockAlertsHandler{repo: repo}
}

// Handle derives the alert tiers from a snapshot of current records. The
// snapshot is taken without locking; writers are never blocked by alerting.
func (h *GetStockAlertsHandler) Handle(ctx context.Context, q StockAlertsQuery) (*StockAlerts, error) {
	if q.Threshold < 0 {
		return nil, domain.ErrInvalidThreshold
	}

	records, err := h.repo.FindAllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory records: %w", err)
	}

	alerts := &StockAlerts{
		LowStock:   []domain.InventoryRecord{},
		OutOfStock: []domain.InventoryRecord{},
		Threshold:  q.Threshold,
	}

	for _, rec := range records {
		switch rec.Tier(q.Threshold) {
		case domain.TierOutOfStock:
			alerts.OutOfStock = append(alerts.OutOfStock, rec)
		case domain.TierLowStock:
			alerts.LowStock = append(alerts.LowStock, rec)
		}
	}

	alerts.AlertCount = len(alerts.LowStock) + len(alerts.OutOfStock)
	return alerts, nil
}
