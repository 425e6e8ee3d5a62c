package repositories

import (
	"context"

	"github.com/currexo/currency_catalog_app/internal/core/domain"
)

// CurrencyUnitReader defines read operations for catalog data.
type CurrencyUnitReader interface {
	// FindUnitByCode retrieves a specific catalog entry by its code.
	FindUnitByCode(ctx context.Context, code domain.UnitCode) (*domain.CatalogEntry, error)

	// ListUnits retrieves all persisted catalog entries.
	ListUnits(ctx context.Context) ([]domain.CatalogEntry, error)
}

// CurrencyUnitWriter defines write operations for catalog data.
type CurrencyUnitWriter interface {
	// SaveUnit inserts or updates a catalog entry.
	SaveUnit(ctx context.Context, entry domain.CatalogEntry) error
}

// CurrencyUnitRepositoryFacade combines all catalog repository interfaces.
type CurrencyUnitRepositoryFacade interface {
	CurrencyUnitReader
	CurrencyUnitWriter
}
