package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/currexo/currency_catalog_app/internal/apperrors"
	"github.com/currexo/currency_catalog_app/internal/core/domain"
	portssvc "github.com/currexo/currency_catalog_app/internal/core/ports/services"
	"github.com/currexo/currency_catalog_app/internal/dto"
	"github.com/currexo/currency_catalog_app/internal/utils"
)

// ConversionService converts amounts between catalog currencies. The math
// always runs on the canonical catalog constants; the catalog service is
// consulted so that requests against codes missing from the persisted table
// fail the same way the read endpoints do.
type ConversionService struct {
	catalogService portssvc.CatalogReaderSvc
}

// NewConversionService creates a new ConversionService.
func NewConversionService(catalogService portssvc.CatalogReaderSvc) *ConversionService {
	return &ConversionService{catalogService: catalogService}
}

// Convert rescales req.Amount from the source into the target currency,
// pivoting through the base unit.
func (s *ConversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConvertResult, error) {
	fromCode := strings.ToUpper(req.FromCode)
	toCode := strings.ToUpper(req.ToCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	if _, err := s.catalogService.GetUnitByCode(ctx, fromCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'from' currency code %q not found", apperrors.ErrValidation, fromCode)
		}
		return nil, fmt.Errorf("failed to validate 'from' currency %q: %w", fromCode, err)
	}
	if _, err := s.catalogService.GetUnitByCode(ctx, toCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'to' currency code %q not found", apperrors.ErrValidation, toCode)
		}
		return nil, fmt.Errorf("failed to validate 'to' currency %q: %w", toCode, err)
	}

	from, ok := domain.CatalogUnit(domain.UnitCode(fromCode))
	if !ok {
		return nil, fmt.Errorf("%w: 'from' currency code %q is not in the catalog", apperrors.ErrValidation, fromCode)
	}
	to, ok := domain.CatalogUnit(domain.UnitCode(toCode))
	if !ok {
		return nil, fmt.Errorf("%w: 'to' currency code %q is not in the catalog", apperrors.ErrValidation, toCode)
	}

	measurement := domain.NewMeasurement(req.Amount, from)
	measurement.Convert(to)

	return &dto.ConvertResult{
		FromCode:  fromCode,
		ToCode:    toCode,
		Amount:    req.Amount,
		Converted: measurement.Value(),
		Formatted: utils.FormatAmount(measurement.Value()),
	}, nil
}
