package services

import (
	"github.com/shopspring/decimal"

	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/platform/config"
	"github.com/caisse-pos/caisse_backend/internal/printing"
	"github.com/caisse-pos/caisse_backend/internal/ticket"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	renderer := ticket.NewRenderer(ticket.ShopInfo{
		Name:    cfg.ShopName,
		Address: cfg.ShopAddress,
		City:    cfg.ShopCity,
		Phone:   cfg.ShopPhone,
		SIRET:   cfg.ShopSIRET,
	})

	var printer printing.Dispatcher = printing.NopDispatcher{}
	if cfg.PrinterName != "" {
		printer = printing.NewLPDispatcher(cfg.PrinterName)
	}

	openingFloat, err := decimal.NewFromString(cfg.OpeningFloat)
	if err != nil {
		openingFloat = decimal.Zero
	}

	container := &portssvc.ServiceContainer{}
	container.Auth = NewAuthService(repos.OperatorRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	container.Product = NewProductService(repos.ProductRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.ClientRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.ProductRepo, repos.VoucherRepo, repos.ClientRepo, renderer, printer, cfg.StrictVoucherRedeem)
	container.CashMovement = NewCashMovementService(repos.CashMovementRepo, repos.SaleRepo, repos.DepositRepo, repos.ClosureRepo, openingFloat)
	container.Deposit = NewDepositService(repos.DepositRepo, repos.ClientRepo)
	container.Closure = NewClosureService(repos.ClosureRepo, repos.SaleRepo, repos.CashMovementRepo, repos.DepositRepo, repos.ClientRepo, renderer, printer, openingFloat)
	container.Audit = NewAuditService(repos.AuditRepo)

	return container
}
