package ledger

import (
	"context"
	"errors"

	catalogdomain "github.com/ayse/sweetshop/internal/catalog/domain"
	catalogrepo "github.com/ayse/sweetshop/internal/catalog/repository"
	"github.com/ayse/sweetshop/internal/ledger/domain"
)

// catalogPriceReader adapts the catalog repository to the ledger's
// CatalogReader port. Restocks price against the catalog, so an unknown
// sweet surfaces as the ledger's own not-found error.
type catalogPriceReader struct {
	sweets *catalogrepo.GormSweetRepository
}

func (c *catalogPriceReader) UnitPrice(ctx context.Context, sweetID uint) (float64, error) {
	sweet, err := c.sweets.FindByID(ctx, sweetID)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrSweetNotFound) {
			return 0, domain.ErrItemNotFound
		}
		return 0, err
	}
	return sweet.Price, nil
}
