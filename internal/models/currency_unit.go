package models

import (
	"time"

	"github.com/currexo/currency_catalog_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for persisted rows.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// CurrencyUnit is the persistence model for a catalog row. The coefficient is
// stored as NUMERIC and scanned through decimal to avoid float text
// round-trips at the database boundary; the domain works in float64.
type CurrencyUnit struct {
	UnitCode    domain.UnitCode `db:"unit_code"` // Primary key (e.g. "USD")
	Symbol      string          `db:"symbol"`
	Coefficient decimal.Decimal `db:"coefficient"`
	AuditFields
}
