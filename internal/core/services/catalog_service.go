package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/currexo/currency_catalog_app/internal/apperrors"
	"github.com/currexo/currency_catalog_app/internal/core/domain"
	portsrepo "github.com/currexo/currency_catalog_app/internal/core/ports/repositories"
	"github.com/currexo/currency_catalog_app/internal/dto"
)

// CatalogService provides business logic for the persisted currency catalog.
type CatalogService struct {
	unitRepo portsrepo.CurrencyUnitRepositoryFacade
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(unitRepo portsrepo.CurrencyUnitRepositoryFacade) *CatalogService {
	return &CatalogService{unitRepo: unitRepo}
}

// GetUnitByCode retrieves the persisted catalog entry for a code.
func (s *CatalogService) GetUnitByCode(ctx context.Context, code string) (*domain.CatalogEntry, error) {
	code = strings.ToUpper(code)
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	entry, err := s.unitRepo.FindUnitByCode(ctx, domain.UnitCode(code))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency unit by code in service: %w", err)
	}
	return entry, nil
}

// ListUnits retrieves all persisted catalog entries.
func (s *CatalogService) ListUnits(ctx context.Context) ([]domain.CatalogEntry, error) {
	entries, err := s.unitRepo.ListUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency units in service: %w", err)
	}
	// Return empty slice if no entries found, not nil
	if entries == nil {
		return []domain.CatalogEntry{}, nil
	}
	return entries, nil
}

// UpsertUnit overrides the persisted row for a code. The in-process catalog
// constants stay untouched; the persisted row is an audit trail of intended
// overrides, served back by the read endpoints.
func (s *CatalogService) UpsertUnit(ctx context.Context, req dto.UpsertCurrencyUnitRequest, creatorUserID string) (*domain.CatalogEntry, error) {
	if _, ok := domain.CatalogUnit(domain.UnitCode(req.Code)); !ok {
		return nil, fmt.Errorf("%w: currency code %q is not in the catalog", apperrors.ErrValidation, req.Code)
	}

	now := time.Now()
	entry := domain.CatalogEntry{
		Code:        domain.UnitCode(req.Code),
		Symbol:      req.Symbol,
		Coefficient: req.Coefficient,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.unitRepo.SaveUnit(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to upsert currency unit in service: %w", err)
	}
	return &entry, nil
}

// SeedCatalog upserts the eight canonical constants so the table always
// reflects at least the static catalog. Intended for startup.
func (s *CatalogService) SeedCatalog(ctx context.Context, creatorUserID string) error {
	now := time.Now()
	for _, unit := range domain.CatalogUnits() {
		entry := domain.CatalogEntry{
			Code:        unit.Code(),
			Symbol:      unit.Symbol(),
			Coefficient: unit.Coefficient(),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
		if err := s.unitRepo.SaveUnit(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed currency unit %s: %w", unit.Code(), err)
		}
	}
	return nil
}
