package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ayse/sweetshop/internal/catalog/domain"
)

type GormSweetRepository struct {
	db *gorm.DB
}

func NewGormSweetRepository(db *gorm.DB) *GormSweetRepository {
	return &GormSweetRepository{db: db}
}

func (r *GormSweetRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Sweet{})
}

func (r *GormSweetRepository) Create(ctx context.Context, sweet *domain.Sweet) error {
	return r.db.WithContext(ctx).Create(sweet).Error
}

func (r *GormSweetRepository) FindByID(ctx context.Context, id uint) (*domain.Sweet, error) {
	var sweet domain.Sweet
	err := r.db.WithContext(ctx).First(&sweet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, err
	}
	return &sweet, nil
}

func (r *GormSweetRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Sweet, error) {
	var sweets []domain.Sweet
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("name ASC").Find(&sweets).Error
	return sweets, err
}

func (r *GormSweetRepository) FindByCategory(ctx context.Context, category string, limit, offset int) ([]domain.Sweet, error) {
	var sweets []domain.Sweet
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Limit(limit).Offset(offset).
		Order("name ASC").
		Find(&sweets).Error
	return sweets, err
}

func (r *GormSweetRepository) Update(ctx context.Context, sweet *domain.Sweet) error {
	return r.db.WithContext(ctx).Save(sweet).Error
}

// UpdateQuantity refreshes the denormalized browse count from a ledger event
func (r *GormSweetRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&domain.Sweet{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *GormSweetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Sweet{}).Count(&count).Error
	return count, err
}
