package pgsql

import (
	portsrepo "github.com/currexo/currency_catalog_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyUnitRepo: newPgxCurrencyUnitRepository(dbPool),
	}
}
