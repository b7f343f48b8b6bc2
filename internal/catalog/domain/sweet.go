package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSweetNotFound = errors.New("sweet not found")

// Sweet represents one catalog entry. Quantity is a denormalized browse
// count refreshed from ledger movement events; the ledger's own counter is
// the authoritative one.
type Sweet struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Category    string         `json:"category" gorm:"index"`
	Price       float64        `json:"price" gorm:"not null"`
	Quantity    int            `json:"quantity" gorm:"not null;default:0"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Sweet) TableName() string {
	return "sweets"
}

// SweetRepository defines the contract for catalog data access
type SweetRepository interface {
	Create(ctx context.Context, sweet *Sweet) error
	FindByID(ctx context.Context, id uint) (*Sweet, error)
	FindAll(ctx context.Context, limit, offset int) ([]Sweet, error)
	FindByCategory(ctx context.Context, category string, limit, offset int) ([]Sweet, error)
	Update(ctx context.Context, sweet *Sweet) error
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
	Count(ctx context.Context) (int64, error)
}
