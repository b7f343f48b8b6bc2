package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Transaction kinds
const (
	KindPurchase = "purchase"
	KindRestock  = "restock"
)

// Stock tiers derived from the current quantity
const (
	TierInStock    = "in_stock"
	TierLowStock   = "low"
	TierOutOfStock = "out_of_stock"
)

// DefaultLowStockThreshold is used when the caller does not supply one
const DefaultLowStockThreshold = 5

// InventoryRecord holds the authoritative on-hand count for one sweet.
// Quantity can never go negative; every change to it is paired with a
// Transaction row written in the same database transaction.
type InventoryRecord struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	SweetID         uint       `json:"sweet_id" gorm:"not null;uniqueIndex"`
	Quantity        int        `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	UnitPrice       float64    `json:"unit_price" gorm:"not null;default:0"`
	LastRestockedAt *time.Time `json:"last_restocked_at,omitempty"`
	LastRestockedBy *uint      `json:"last_restocked_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName specifies the table name
func (InventoryRecord) TableName() string {
	return "inventory_records"
}

// Tier classifies the record against a low-stock threshold
func (r *InventoryRecord) Tier(threshold int) string {
	switch {
	case r.Quantity == 0:
		return TierOutOfStock
	case r.Quantity <= threshold:
		return TierLowStock
	default:
		return TierInStock
	}
}

// Transaction is one immutable stock movement. Rows are only ever inserted;
// there is no update or delete path for them.
type Transaction struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	SweetID  uint   `json:"sweet_id" gorm:"not null;index"`
	UserID   uint   `json:"user_id" gorm:"not null;index"`
	Kind     string `json:"kind" gorm:"not null;index"`
	Quantity int    `json:"quantity" gorm:"not null"`
	// Value is unit price x quantity for purchases, null for restocks
	Value     *float64  `json:"value,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name
func (Transaction) TableName() string {
	return "stock_transactions"
}

var (
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrItemNotFound     = errors.New("inventory record not found")
	ErrInvalidThreshold = errors.New("threshold cannot be negative")
	ErrInvalidFilter    = errors.New("invalid transaction filter")
	ErrMissingActor     = errors.New("actor is required")
)

// InsufficientStockError reports a purchase that exceeds the on-hand quantity.
// It carries both amounts so the caller can present a precise message.
type InsufficientStockError struct {
	SweetID   uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for sweet %d: requested %d, available %d",
		e.SweetID, e.Requested, e.Available)
}

// TransactionFilter is the closed set of supported history filters.
// Nil pointer fields are not applied; set fields are AND-combined.
type TransactionFilter struct {
	SweetID *uint
	UserID  *uint
	Kind    *string
	Limit   int
	Offset  int
}

// LedgerRepository defines the contract for ledger data access.
// ApplyPurchase and ApplyRestock update the quantity counter and append the
// movement row as a single atomic unit scoped to one sweet.
type LedgerRepository interface {
	ApplyPurchase(ctx context.Context, sweetID, userID uint, quantity int) (*Transaction, int, error)
	ApplyRestock(ctx context.Context, sweetID, userID uint, quantity int, unitPrice float64) (*Transaction, int, error)
	FindRecordBySweetID(ctx context.Context, sweetID uint) (*InventoryRecord, error)
	FindAllRecords(ctx context.Context) ([]InventoryRecord, error)
	FindTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, int64, error)
}

// CatalogReader exposes the catalog price lookup the ledger needs at restock time
type CatalogReader interface {
	UnitPrice(ctx context.Context, sweetID uint) (float64, error)
}
