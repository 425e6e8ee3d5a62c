package services

import (
	portsrepo "github.com/currexo/currency_catalog_app/internal/core/ports/repositories"
	portssvc "github.com/currexo/currency_catalog_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Catalog first since the conversion service depends on it.
	container.Catalog = NewCatalogService(repos.CurrencyUnitRepo)
	container.Conversion = NewConversionService(container.Catalog)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.CatalogSvcFacade = (*CatalogService)(nil)
	_ portssvc.ConversionSvc    = (*ConversionService)(nil)
)
