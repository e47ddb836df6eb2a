package pgsql

import (
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	productRepo := newPgxProductRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool)
	cashMovementRepo := newPgxCashMovementRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool, productRepo, voucherRepo, cashMovementRepo, auditRepo)
	closureRepo := newPgxClosureRepository(dbPool)
	depositRepo := newPgxDepositRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	operatorRepo := newPgxOperatorRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SaleRepo:         saleRepo,
		ProductRepo:      productRepo,
		VoucherRepo:      voucherRepo,
		CashMovementRepo: cashMovementRepo,
		ClosureRepo:      closureRepo,
		DepositRepo:      depositRepo,
		ClientRepo:       clientRepo,
		OperatorRepo:     operatorRepo,
		AuditRepo:        auditRepo,
	}
}
