package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/ayse/sweetshop/internal/catalog/domain"
	"github.com/ayse/sweetshop/internal/catalog/repository"
	"github.com/ayse/sweetshop/internal/catalog/usecase/command"
	"github.com/ayse/sweetshop/internal/catalog/usecase/query"
)

// ProvideSweetRepository provides the catalog repository
func ProvideSweetRepository(db *gorm.DB) domain.SweetRepository {
	return repository.NewGormSweetRepository(db)
}

// Command handler providers
func ProvideCreateSweetHandler(repo domain.SweetRepository) *command.CreateSweetHandler {
	return command.NewCreateSweetHandler(repo)
}

func ProvideUpdateSweetHandler(repo domain.SweetRepository) *command.UpdateSweetHandler {
	return command.NewUpdateSweetHandler(repo)
}

func ProvideSyncQuantityHandler(repo domain.SweetRepository) *command.SyncQuantityHandler {
	return command.NewSyncQuantityHandler(repo)
}

// Query handler providers
func ProvideGetSweetHandler(repo domain.SweetRepository) *query.GetSweetHandler {
	return query.NewGetSweetHandler(repo)
}

func ProvideListSweetsHandler(repo domain.SweetRepository) *query.ListSweetsHandler {
	return query.NewListSweetsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSweetRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateSweetHandler,
	ProvideUpdateSweetHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetSweetHandler,
	ProvideListSweetsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)
