package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/ayse/sweetshop/internal/ledger/domain"
)

var tracer = otel.Tracer("ledger-repository")

// GormLedgerRepositoryWithTracing wraps GormLedgerRepository with tracing
type GormLedgerRepositoryWithTracing struct {
	*GormLedgerRepository
}

// NewGormLedgerRepositoryWithTracing creates a new repository with tracing
func NewGormLedgerRepositoryWithTracing(db *gorm.DB) *GormLedgerRepositoryWithTracing {
	return &GormLedgerRepositoryWithTracing{
		GormLedgerRepository: NewGormLedgerRepository(db),
	}
}

func (r *GormLedgerRepositoryWithTracing) ApplyPurchase(ctx context.Context, sweetID, userID uint, quantity int) (*domain.Transaction, int, error) {
	ctx, span := tracer.Start(ctx, "repository.ApplyPurchase",
		trace.WithAttributes(
			attribute.Int("sweet.id", int(sweetID)),
			attribute.Int("actor.id", int(userID)),
			attribute.Int("movement.quantity", quantity),
		),
	)
	defer span.End()

	txn, remaining, err := r.GormLedgerRepository.ApplyPurchase(ctx, sweetID, userID, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.Int("transaction.id", int(txn.ID)),
		attribute.Int("stock.remaining", remaining),
	)
	return txn, remaining, nil
}

func (r *GormLedgerRepositoryWithTracing) ApplyRestock(ctx context.Context, sweetID, userID uint, quantity int, unitPrice float64) (*domain.Transaction, int, error) {
	ctx, span := tracer.Start(ctx, "repository.ApplyRestock",
		trace.WithAttributes(
			attribute.Int("sweet.id", int(sweetID)),
			attribute.Int("actor.id", int(userID)),
			attribute.Int("movement.quantity", quantity),
			attribute.Float64("sweet.unit_price", unitPrice),
		),
	)
	defer span.End()

	txn, newStock, err := r.GormLedgerRepository.ApplyRestock(ctx, sweetID, userID, quantity, unitPrice)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.Int("transaction.id", int(txn.ID)),
		attribute.Int("stock.new", newStock),
	)
	return txn, newStock, nil
}

func (r *GormLedgerRepositoryWithTracing) FindAllRecords(ctx context.Context) ([]domain.InventoryRecord, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAllRecords")
	defer span.End()

	records, err := r.GormLedgerRepository.FindAllRecords(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(records)))
	return records, nil
}

func (r *GormLedgerRepositoryWithTracing) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int64, error) {
	ctx, span := tracer.Start(ctx, "repository.FindTransactions",
		trace.WithAttributes(
			attribute.Int("query.limit", filter.Limit),
			attribute.Int("query.offset", filter.Offset),
		),
	)
	defer span.End()

	txns, total, err := r.GormLedgerRepository.FindTransactions(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.Int("result.count", len(txns)),
		attribute.Int64("result.total", total),
	)
	return txns, total, nil
}
