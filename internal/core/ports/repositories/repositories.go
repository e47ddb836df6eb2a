package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SaleRepo         SaleRepositoryWithTx
	ProductRepo      ProductRepositoryFacade
	VoucherRepo      VoucherRepositoryFacade
	CashMovementRepo CashMovementRepositoryFacade
	ClosureRepo      ClosureRepositoryWithTx
	DepositRepo      DepositRepositoryFacade
	ClientRepo       ClientRepositoryFacade
	OperatorRepo     OperatorRepositoryFacade
	AuditRepo        AuditRepositoryFacade
}
