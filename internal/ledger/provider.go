package ledger

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogrepo "github.com/ayse/sweetshop/internal/catalog/repository"
	"github.com/ayse/sweetshop/internal/ledger/domain"
	"github.com/ayse/sweetshop/internal/ledger/repository"
	"github.com/ayse/sweetshop/internal/ledger/usecase/command"
	"github.com/ayse/sweetshop/internal/ledger/usecase/query"
)

// ProvideLedgerRepository provides the ledger repository with tracing
func ProvideLedgerRepository(db *gorm.DB) domain.LedgerRepository {
	return repository.NewGormLedgerRepositoryWithTracing(db)
}

// ProvideCatalogReader provides the catalog price lookup used at restock time
func ProvideCatalogReader(db *gorm.DB) domain.CatalogReader {
	return &catalogPriceReader{sweets: catalogrepo.NewGormSweetRepository(db)}
}

// Command handler providers
func ProvidePurchaseHandler(repo domain.LedgerRepository) *command.PurchaseHandler {
	return command.NewPurchaseHandler(repo)
}

func ProvideRestockHandler(repo domain.LedgerRepository, catalog domain.CatalogReader) *command.RestockHandler {
	return command.NewRestockHandler(repo, catalog)
}

// Query handler providers
func ProvideListTransactionsHandler(repo domain.LedgerRepository) *query.ListTransactionsHandler {
	return query.NewListTransactionsHandler(repo)
}

func ProvideGetMyTransactionsHandler(repo domain.LedgerRepository) *query.GetMyTransactionsHandler {
	return query.NewGetMyTransactionsHandler(repo)
}

func ProvideGetStockAlertsHandler(repo domain.LedgerRepository) *query.GetStockAlertsHandler {
	return query.NewGetStockAlertsHandler(repo)
}

func ProvideGetStockStatusHandler(repo domain.LedgerRepository) *query.GetStockStatusHandler {
	return query.NewGetStockStatusHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideLedgerRepository,
	ProvideCatalogReader,
)

var CommandHandlerSet = wire.NewSet(
	ProvidePurchaseHandler,
	ProvideRestockHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListTransactionsHandler,
	ProvideGetMyTransactionsHandler,
	ProvideGetStockAlertsHandler,
	ProvideGetStockStatusHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)
