package dto

import (
	"time"

	"github.com/currexo/currency_catalog_app/internal/core/domain"
)

// UpsertCurrencyUnitRequest defines the data needed to override a persisted
// catalog row. The code must belong to the closed catalog set (enforced by
// the custom "unitcode" binding validator).
type UpsertCurrencyUnitRequest struct {
	Code        string  `json:"code" binding:"required,uppercase,len=3,unitcode"`
	Symbol      string  `json:"symbol" binding:"required"`
	Coefficient float64 `json:"coefficient" binding:"required,gt=0"`
}

// CurrencyUnitResponse defines the data returned for a catalog entry.
type CurrencyUnitResponse struct {
	Code          string    `json:"code"`
	Symbol        string    `json:"symbol"`
	Coefficient   float64   `json:"coefficient"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCurrencyUnitResponse converts a domain.CatalogEntry to its response DTO.
func ToCurrencyUnitResponse(entry *domain.CatalogEntry) CurrencyUnitResponse {
	return CurrencyUnitResponse{
		Code:          string(entry.Code),
		Symbol:        entry.Symbol,
		Coefficient:   entry.Coefficient,
		CreatedAt:     entry.CreatedAt,
		CreatedBy:     entry.CreatedBy,
		LastUpdatedAt: entry.LastUpdatedAt,
		LastUpdatedBy: entry.LastUpdatedBy,
	}
}

// ToListCurrencyUnitResponse converts a slice of catalog entries to DTOs.
func ToListCurrencyUnitResponse(entries []domain.CatalogEntry) []CurrencyUnitResponse {
	res := make([]CurrencyUnitResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToCurrencyUnitResponse(&entry)
	}
	return res
}
