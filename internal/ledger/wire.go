//go:build wireinject
// +build wireinject

package ledger

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/ayse/sweetshop/internal/ledger/delivery/http"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.LedgerHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewLedgerHandlerWithDI,
	)
	return nil, nil
}
