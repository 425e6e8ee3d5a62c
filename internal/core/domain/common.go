package domain

import "time"

// AuditFields holds standard audit information for persisted catalog rows.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// CatalogEntry is a persisted view of a currency unit: the unit's parts plus
// an audit trail. Unlike CurrencyUnit it is a plain record, not an immutable
// value; repositories and services trade in it.
type CatalogEntry struct {
	Code        UnitCode `json:"code"`
	Symbol      string   `json:"symbol"`
	Coefficient float64  `json:"coefficient"`
	AuditFields
}

// Unit reconstructs the currency unit this entry describes.
func (e CatalogEntry) Unit() CurrencyUnit {
	return NewCurrencyUnit(e.Symbol, e.Code, e.Coefficient)
}
