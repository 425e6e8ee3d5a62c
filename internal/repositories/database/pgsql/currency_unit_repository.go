package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/currexo/currency_catalog_app/internal/apperrors"
	"github.com/currexo/currency_catalog_app/internal/core/domain"
	portsrepo "github.com/currexo/currency_catalog_app/internal/core/ports/repositories"
	"github.com/currexo/currency_catalog_app/internal/models"
	"github.com/currexo/currency_catalog_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyUnitRepository struct {
	BaseRepository
}

// newPgxCurrencyUnitRepository creates a new repository for catalog data.
func newPgxCurrencyUnitRepository(pool *pgxpool.Pool) portsrepo.CurrencyUnitRepositoryFacade {
	return &PgxCurrencyUnitRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyUnitRepositoryFacade = (*PgxCurrencyUnitRepository)(nil)

// SaveUnit inserts or updates a catalog row (primarily for catalog seeding).
func (r *PgxCurrencyUnitRepository) SaveUnit(ctx context.Context, entry domain.CatalogEntry) error {
	modelUnit := mapping.ToModelCurrencyUnit(entry)

	query := `
		INSERT INTO currency_units (unit_code, symbol, coefficient, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (unit_code) DO UPDATE SET
			symbol = EXCLUDED.symbol,
			coefficient = EXCLUDED.coefficient,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelUnit.UnitCode,
		modelUnit.Symbol,
		modelUnit.Coefficient,
		modelUnit.CreatedAt,
		modelUnit.CreatedBy,
		modelUnit.LastUpdatedAt,
		modelUnit.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save currency unit %s: %w", modelUnit.UnitCode, err)
	}
	return nil
}

// FindUnitByCode retrieves a catalog row by its 3-letter code.
func (r *PgxCurrencyUnitRepository) FindUnitByCode(ctx context.Context, code domain.UnitCode) (*domain.CatalogEntry, error) {
	query := `
		SELECT unit_code, symbol, coefficient, created_at, created_by, last_updated_at, last_updated_by
		FROM currency_units
		WHERE unit_code = $1;
	`
	var modelUnit models.CurrencyUnit
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&modelUnit.UnitCode,
		&modelUnit.Symbol,
		&modelUnit.Coefficient,
		&modelUnit.CreatedAt,
		&modelUnit.CreatedBy,
		&modelUnit.LastUpdatedAt,
		&modelUnit.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency unit by code %s: %w", code, err)
	}

	entry := mapping.ToDomainCatalogEntry(modelUnit)
	return &entry, nil
}

// ListUnits retrieves all catalog rows.
func (r *PgxCurrencyUnitRepository) ListUnits(ctx context.Context) ([]domain.CatalogEntry, error) {
	query := `
		SELECT unit_code, symbol, coefficient, created_at, created_by, last_updated_at, last_updated_by
		FROM currency_units
		ORDER BY unit_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency units: %w", err)
	}
	defer rows.Close()

	modelUnits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyUnit, error) {
		var unit models.CurrencyUnit
		err := row.Scan(
			&unit.UnitCode,
			&unit.Symbol,
			&unit.Coefficient,
			&unit.CreatedAt,
			&unit.CreatedBy,
			&unit.LastUpdatedAt,
			&unit.LastUpdatedBy,
		)
		return unit, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CatalogEntry{}, nil
		}
		return nil, fmt.Errorf("failed to scan currency units: %w", err)
	}

	return mapping.ToDomainCatalogEntrySlice(modelUnits), nil
}
