package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ayse/sweetshop/internal/ledger/domain"
)

type GormLedgerRepository struct {
	db *gorm.DB
}

func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

func (r *GormLedgerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.InventoryRecord{}, &domain.Transaction{})
}

// ApplyPurchase decrements the on-hand quantity and appends the purchase
// movement in one database transaction. The decrement is conditional
// (quantity >= requested), so two concurrent purchases against the same sweet
// serialize on the row and can never drive the counter negative.
func (r *GormLedgerRepository) ApplyPurchase(ctx context.Context, sweetID, userID uint, quantity int) (*domain.Transaction, int, error) {
	var (
		txn       *domain.Transaction
		remaining int
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec domain.InventoryRecord
		if err := tx.Where("sweet_id = ?", sweetID).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}

		res := tx.Model(&domain.InventoryRecord{}).
			Where("sweet_id = ? AND quantity >= ?", sweetID, quantity).
			UpdateColumns(map[string]interface{}{
				"quantity":   gorm.Expr("quantity - ?", quantity),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &domain.InsufficientStockError{
				SweetID:   sweetID,
				Requested: quantity,
				Available: rec.Quantity,
			}
		}

		// Re-read inside the transaction so the returned remaining stock is
		// exactly what the conditional update produced.
		if err := tx.Where("sweet_id = ?", sweetID).First(&rec).Error; err != nil {
			return err
		}
		remaining = rec.Quantity

		value := rec.UnitPrice * float64(quantity)
		txn = &domain.Transaction{
			SweetID:  sweetID,
			UserID:   userID,
			Kind:     domain.KindPurchase,
			Quantity: quantity,
			Value:    &value,
		}
		return tx.Create(txn).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return txn, remaining, nil
}

// ApplyRestock lazily materializes the inventory record and increments its
// quantity as a single upsert, then appends the restock movement in the same
// database transaction. Two concurrent first restocks cannot both insert.
func (r *GormLedgerRepository) ApplyRestock(ctx context.Context, sweetID, userID uint, quantity int, unitPrice float64) (*domain.Transaction, int, error) {
	var (
		txn      *domain.Transaction
		newStock int
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		rec := domain.InventoryRecord{
			SweetID:         sweetID,
			Quantity:        quantity,
			UnitPrice:       unitPrice,
			LastRestockedAt: &now,
			LastRestockedBy: &userID,
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "sweet_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":          gorm.Expr("inventory_records.quantity + ?", quantity),
				"unit_price":        unitPrice,
				"last_restocked_at": now,
				"last_restocked_by": userID,
				"updated_at":        now,
			}),
		}).Create(&rec).Error; err != nil {
			return err
		}

		var fresh domain.InventoryRecord
		if err := tx.Where("sweet_id = ?", sweetID).First(&fresh).Error; err != nil {
			return err
		}
		newStock = fresh.Quantity

		txn = &domain.Transaction{
			SweetID:  sweetID,
			UserID:   userID,
			Kind:     domain.KindRestock,
			Quantity: quantity,
		}
		return tx.Create(txn).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return txn, newStock, nil
}

func (r *GormLedgerRepository) FindRecordBySweetID(ctx context.Context, sweetID uint) (*domain.InventoryRecord, error) {
	var rec domain.InventoryRecord
	err := r.db.WithContext(ctx).Where("sweet_id = ?", sweetID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *GormLedgerRepository) FindAllRecords(ctx context.Context) ([]domain.InventoryRecord, error) {
	var records []domain.InventoryRecord
	err := r.db.WithContext(ctx).Order("sweet_id ASC").Find(&records).Error
	return records, err
}

// FindTransactions applies the filter, counts the full match set and returns
// one page ordered newest first (id breaks occurred-at ties so pagination
// stays deterministic).
func (r *GormLedgerRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Transaction{})

	if filter.SweetID != nil {
		q = q.Where("sweet_id = ?", *filter.SweetID)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Kind != nil {
		q = q.Where("kind = ?", *filter.Kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txns []domain.Transaction
	err := q.Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&txns).Error
	if err != nil {
		return nil, 0, err
	}

	return txns, total, nil
}
