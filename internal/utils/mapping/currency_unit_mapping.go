package mapping

import (
	"github.com/currexo/currency_catalog_app/internal/core/domain"
	"github.com/currexo/currency_catalog_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelCurrencyUnit converts a domain CatalogEntry to a persistence model.
func ToModelCurrencyUnit(d domain.CatalogEntry) models.CurrencyUnit {
	return models.CurrencyUnit{
		UnitCode:    d.Code,
		Symbol:      d.Symbol,
		Coefficient: decimal.NewFromFloat(d.Coefficient),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainCatalogEntry converts a persistence model to a domain CatalogEntry.
func ToDomainCatalogEntry(m models.CurrencyUnit) domain.CatalogEntry {
	return domain.CatalogEntry{
		Code:        m.UnitCode,
		Symbol:      m.Symbol,
		Coefficient: m.Coefficient.InexactFloat64(),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainCatalogEntrySlice converts a slice of models to domain entries.
func ToDomainCatalogEntrySlice(ms []models.CurrencyUnit) []domain.CatalogEntry {
	ds := make([]domain.CatalogEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCatalogEntry(m)
	}
	return ds
}
