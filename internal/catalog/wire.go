//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/ayse/sweetshop/internal/catalog/delivery/http"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.SweetHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewSweetHandlerWithDI,
	)
	return nil, nil
}
