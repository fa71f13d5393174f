package pgsql

import (
	portsrepo "github.com/Bugian/unit-conversion-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ConversionRepo: NewPgxConversionRepository(dbPool),
	}
}
