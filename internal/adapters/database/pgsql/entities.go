package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
	"github.com/swiftbill/invoicing_app/internal/core/ports/repositories"
)

// Per-entity constructors binding each domain type to its storage namespace
// and list index.

func NewPgxClientRepository(pool *pgxpool.Pool) repositories.ClientRepository {
	return NewPgxEntityRepository[domain.Client](pool, "client", "clients")
}

func NewPgxInvoiceRepository(pool *pgxpool.Pool) repositories.InvoiceRepository {
	return NewPgxEntityRepository[domain.Invoice](pool, "invoice", "invoices")
}

func NewPgxEstimateRepository(pool *pgxpool.Pool) repositories.EstimateRepository {
	return NewPgxEntityRepository[domain.Estimate](pool, "estimate", "estimates")
}

func NewPgxBusinessProfileRepository(pool *pgxpool.Pool) repositories.BusinessProfileRepository {
	return NewPgxEntityRepository[domain.BusinessProfile](pool, "business-profile", "business-profiles")
}
