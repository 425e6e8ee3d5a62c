package services

import (
	"context"

	"github.com/currexo/currency_catalog_app/internal/core/domain"
	"github.com/currexo/currency_catalog_app/internal/dto"
)

// CatalogReaderSvc defines read operations for the currency catalog.
type CatalogReaderSvc interface {
	// GetUnitByCode retrieves a specific catalog entry by its code.
	GetUnitByCode(ctx context.Context, code string) (*domain.CatalogEntry, error)

	// ListUnits retrieves all catalog entries.
	ListUnits(ctx context.Context) ([]domain.CatalogEntry, error)
}

// CatalogWriterSvc defines write operations for the currency catalog.
type CatalogWriterSvc interface {
	// UpsertUnit persists a catalog entry override.
	UpsertUnit(ctx context.Context, req dto.UpsertCurrencyUnitRequest, creatorUserID string) (*domain.CatalogEntry, error)

	// SeedCatalog upserts the canonical catalog constants.
	SeedCatalog(ctx context.Context, creatorUserID string) error
}

// CatalogSvcFacade combines all catalog service interfaces.
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}

// ConversionSvc converts amounts between catalog currencies.
type ConversionSvc interface {
	// Convert rescales an amount from one currency into another.
	Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConvertResult, error)
}

// ServiceContainer holds instances of all the application services. Handlers
// depend on it rather than on concrete service types.
type ServiceContainer struct {
	Catalog    CatalogSvcFacade
	Conversion ConversionSvc
}
