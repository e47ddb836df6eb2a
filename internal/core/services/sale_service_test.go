package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/caisse-pos/caisse_backend/internal/apperrors"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/core/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
	"github.com/caisse-pos/caisse_backend/internal/ticket"
)

// MockSaleRepository is a mock implementation of portsrepo.SaleRepositoryWithTx.
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSalesBetween(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListRecentSales(ctx context.Context, limit int) ([]domain.Sale, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, soldQuantities map[string]int, redeemVoucher *domain.Voucher, issueVoucher *domain.Voucher) error {
	args := m.Called(ctx, sale, soldQuantities, redeemVoucher, issueVoucher)
	return args.Error(0)
}

func (m *MockSaleRepository) CancelSale(ctx context.Context, sale domain.Sale, restockQuantities map[string]int, refunds []domain.CashMovement, issueVoucher *domain.Voucher) error {
	args := m.Called(ctx, sale, restockQuantities, refunds, issueVoucher)
	return args.Error(0)
}

func (m *MockSaleRepository) RefundLine(ctx context.Context, sale domain.Sale, saleLineID string, restockQuantities map[string]int, refund *domain.CashMovement, issueVoucher *domain.Voucher) error {
	args := m.Called(ctx, sale, saleLineID, restockQuantities, refund, issueVoucher)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, sale domain.Sale, restockQuantities map[string]int) error {
	args := m.Called(ctx, sale, restockQuantities)
	return args.Error(0)
}

func (m *MockSaleRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSaleRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSaleRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of portsrepo.ProductRepositoryFacade.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) DecrementStockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, quantities, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockProductRepository) RestockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, quantities, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockProductRepository) ReviveZeroStock(ctx context.Context, productID string, updatedAt time.Time) error {
	args := m.Called(ctx, productID, updatedAt)
	return args.Error(0)
}

// MockVoucherRepository is a mock implementation of portsrepo.VoucherRepositoryFacade.
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchersByClient(ctx context.Context, clientID string) ([]domain.Voucher, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListRedeemableVouchers(ctx context.Context, cutoff time.Time) ([]domain.Voucher, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) SaveVoucherInTx(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error {
	args := m.Called(ctx, tx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) MarkRedeemedInTx(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error {
	args := m.Called(ctx, tx, voucher)
	return args.Error(0)
}

// MockClientRepository is a mock implementation of portsrepo.ClientRepositoryFacade.
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) SearchClients(ctx context.Context, query string, limit int) ([]domain.Client, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

// SaleServiceTestSuite defines the test suite for SaleService.
type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo    *MockSaleRepository
	mockProductRepo *MockProductRepository
	mockVoucherRepo *MockVoucherRepository
	mockClientRepo  *MockClientRepository
	service         portssvc.SaleSvcFacade
	ctx             context.Context
}

// SetupTest runs before each test in the suite.
func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewSaleService(
		suite.mockSaleRepo,
		suite.mockProductRepo,
		suite.mockVoucherRepo,
		suite.mockClientRepo,
		ticket.NewRenderer(ticket.ShopInfo{Name: "VINTAGE ROYAN"}),
		nil,
		false,
	)
	suite.ctx = context.Background()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (suite *SaleServiceTestSuite) usedProduct() *domain.Product {
	return &domain.Product{
		ProductID: "p-used",
		Name:      "Veste en cuir",
		Condition: domain.ConditionUsed,
		Price:     dec("40.00"),
		Stock:     3,
	}
}

func (suite *SaleServiceTestSuite) newProduct() *domain.Product {
	return &domain.Product{
		ProductID: "p-new",
		Name:      "Ceinture",
		Condition: domain.ConditionNew,
		Price:     dec("20.00"),
		Stock:     5,
	}
}

// twoLineCart is a cart worth 60.00 gross: 40.00 at 10% off plus 20.00,
// with a 6.00 flat discount prorated across both lines. Net total 50.00.
func twoLineCart() []dto.CreateSaleLineRequest {
	return []dto.CreateSaleLineRequest{
		{ProductID: "p-used", Quantity: 1, UnitPrice: dec("40.00"), DiscountPct: dec("10")},
		{ProductID: "p-new", Quantity: 1, UnitPrice: dec("20.00"), DiscountPct: decimal.Zero},
	}
}

func (suite *SaleServiceTestSuite) expectCartProducts() {
	suite.mockProductRepo.On("FindProductByID", suite.ctx, "p-used").Return(suite.usedProduct(), nil).Once()
	suite.mockProductRepo.On("FindProductByID", suite.ctx, "p-new").Return(suite.newProduct(), nil).Once()
}

func (suite *SaleServiceTestSuite) TestCreateSaleSuccess() {
	suite.expectCartProducts()
	suite.mockSaleRepo.On("SaveSale", suite.ctx,
		mock.MatchedBy(func(sale domain.Sale) bool {
			return sale.GrossTotal.Equal(dec("60.00")) &&
				sale.NetTotal.Equal(dec("50.00")) &&
				sale.VoucherApplied.IsZero() &&
				len(sale.Lines) == 2
		}),
		map[string]int{"p-used": 1, "p-new": 1},
		(*domain.Voucher)(nil),
		(*domain.Voucher)(nil),
	).Return(nil).Once()

	sale, err := suite.service.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines:        twoLineCart(),
		FlatDiscount: dec("6.00"),
		Card:         dec("30.00"),
		Cash:         dec("25.00"),
	}, "op-1")

	suite.Require().NoError(err)
	suite.True(sale.NetTotal.Equal(dec("50.00")))
	suite.True(sale.GrossTotal.Equal(dec("60.00")))
	suite.Equal("op-1", sale.CreatedBy)
	suite.Equal("Veste en cuir", sale.Lines[0].ProductName)
	suite.Equal(domain.ConditionNew, sale.Lines[1].ProductCondition)
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSaleInsufficientTender() {
	suite.expectCartProducts()

	_, err := suite.service.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines:        twoLineCart(),
		FlatDiscount: dec("6.00"),
		Cash:         dec("10.00"),
	}, "op-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInsufficientTender)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSaleNoPayment() {
	suite.expectCartProducts()

	_, err := suite.service.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines: twoLineCart(),
	}, "op-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNoPayment)
}

func (suite *SaleServiceTestSuite) TestCreateSaleRejectsDiscountOutOfRange() {
	_, err := suite.service.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines: []dto.CreateSaleLineRequest{
			{ProductID: "p-used", Quantity: 1, UnitPrice: dec("40.00"), DiscountPct: dec("150")},
		},
		Cash: dec("40.00"),
	}, "op-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDiscountRange)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "FindProductByID", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSaleRejectsFlatDiscountAboveTotal() {
	suite.expectCartProducts()

	_, err := suite.service.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines:        twoLineCart(),
		FlatDiscount: dec("100.00"),
		Cash:         dec("60.00"),
	}, "op-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrFlatDiscountTooLarge)
}

func (suite *SaleServiceTestSuite) TestCreateSaleRedeemsVoucherWithCarryForward() {
	suite.expectCartProducts()
	voucherID := "v-1"
	voucher := &domain.Voucher{
		VoucherID: voucherID,
		ClientID:  "c-1",
		Amount:    dec("80.00"),
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().Add(-30 * 24 * time.Hour),
		},
	}
	suite.mockVoucherRepo.On("FindVoucherByID", suite.ctx, voucherID).Return(voucher, nil).Once()
	suite.mockSaleRepo.On("SaveSale", suite.ctx,
		mock.MatchedBy(func(sale domain.Sale) bool {
			return sale.NetTotal.Equal(dec("50.00")) && sale.VoucherApplied.Equal(dec("50.00"))
		}),
		map[string]int{"p-used": 1, "p-new": 1},
		mock.MatchedBy(func(redeemed *domain.Voucher) bool {
			return redeemed != nil && redeemed.Redeemed && redeemed.RedeemingSaleID != nil
		}),
		mock.MatchedBy(func(issued *domain.Voucher) bool {
			return issued != nil && issued.ClientID == "c-1" && issued.Amount.Equal(dec("30.00"))
		}),
	).Return(nil).Once()

	sale, err := suite.service.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines:        twoLineCart(),
		FlatDiscount: dec("6.00"),
		VoucherID:    &voucherID,
	}, "op-1")

	suite.Require().NoError(err)
	suite.True(sale.VoucherApplied.Equal(dec("50.00")))
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSaleIgnoresSpentVoucher() {
	suite.expectCartProducts()
	voucherID := "v-spent"
	voucher := &domain.Voucher{
		VoucherID: voucherID,
		ClientID:  "c-1",
		Amount:    dec("10.00"),
		Redeemed:  true,
	}
	suite.mockVoucherRepo.On("FindVoucherByID", suite.ctx, voucherID).Return(voucher, nil).Once()
	suite.mockSaleRepo.On("SaveSale", suite.ctx,
		mock.MatchedBy(func(sale domain.Sale) bool { return sale.VoucherApplied.IsZero() }),
		mock.Anything,
		(*domain.Voucher)(nil),
		(*domain.Voucher)(nil),
	).Return(nil).Once()

	_, err := suite.service.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines:        twoLineCart(),
		FlatDiscount: dec("6.00"),
		VoucherID:    &voucherID,
		Cash:         dec("50.00"),
	}, "op-1")

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSaleStrictModeRejectsSpentVoucher() {
	strict := services.NewSaleService(
		suite.mockSaleRepo,
		suite.mockProductRepo,
		suite.mockVoucherRepo,
		suite.mockClientRepo,
		ticket.NewRenderer(ticket.ShopInfo{Name: "VINTAGE ROYAN"}),
		nil,
		true,
	)
	suite.expectCartProducts()
	voucherID := "v-spent"
	suite.mockVoucherRepo.On("FindVoucherByID", suite.ctx, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, Amount: dec("10.00"), Redeemed: true}, nil).Once()

	_, err := strict.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines:        twoLineCart(),
		FlatDiscount: dec("6.00"),
		VoucherID:    &voucherID,
		Cash:         dec("50.00"),
	}, "op-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrVoucherNotRedeemable)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSaleExpiredVoucherStrictMode() {
	strict := services.NewSaleService(
		suite.mockSaleRepo,
		suite.mockProductRepo,
		suite.mockVoucherRepo,
		suite.mockClientRepo,
		ticket.NewRenderer(ticket.ShopInfo{Name: "VINTAGE ROYAN"}),
		nil,
		true,
	)
	suite.expectCartProducts()
	voucherID := "v-old"
	suite.mockVoucherRepo.On("FindVoucherByID", suite.ctx, voucherID).
		Return(&domain.Voucher{
			VoucherID: voucherID,
			Amount:    dec("10.00"),
			AuditFields: domain.AuditFields{
				CreatedAt: time.Now().Add(-400 * 24 * time.Hour),
			},
		}, nil).Once()

	_, err := strict.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines:        twoLineCart(),
		FlatDiscount: dec("6.00"),
		VoucherID:    &voucherID,
		Cash:         dec("50.00"),
	}, "op-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrVoucherNotRedeemable)
}

func (suite *SaleServiceTestSuite) TestCreateSaleUnknownProduct() {
	suite.mockProductRepo.On("FindProductByID", suite.ctx, "p-missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines: []dto.CreateSaleLineRequest{
			{ProductID: "p-missing", Quantity: 1, UnitPrice: dec("10.00")},
		},
		Cash: dec("10.00"),
	}, "op-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SaleServiceTestSuite) TestCreateSaleRepositoryError() {
	suite.expectCartProducts()
	suite.mockSaleRepo.On("SaveSale", suite.ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	_, err := suite.service.CreateSale(suite.ctx, dto.CreateSaleRequest{
		Lines:        twoLineCart(),
		FlatDiscount: dec("6.00"),
		Cash:         dec("50.00"),
	}, "op-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func storedSale() *domain.Sale {
	clientID := "c-1"
	return &domain.Sale{
		SaleID:       "s-1",
		SaleDate:     time.Date(2026, 3, 5, 11, 30, 0, 0, time.Local),
		ClientID:     &clientID,
		GrossTotal:   dec("60.00"),
		NetTotal:     dec("50.00"),
		FlatDiscount: dec("6.00"),
		Cash:         dec("50.00"),
		Lines: []domain.SaleLine{
			{
				SaleLineID:       "l-1",
				SaleID:           "s-1",
				ProductID:        "p-used",
				Quantity:         1,
				UnitPrice:        dec("40.00"),
				DiscountPct:      dec("10"),
				ProductName:      "Veste en cuir",
				ProductCondition: domain.ConditionUsed,
			},
			{
				SaleLineID:       "l-2",
				SaleID:           "s-1",
				ProductID:        "p-new",
				Quantity:         1,
				UnitPrice:        dec("20.00"),
				DiscountPct:      decimal.Zero,
				ProductName:      "Ceinture",
				ProductCondition: domain.ConditionNew,
			},
		},
	}
}

func (suite *SaleServiceTestSuite) TestCancelSaleCashRefund() {
	sale := storedSale()
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()
	suite.mockSaleRepo.On("CancelSale", suite.ctx,
		mock.MatchedBy(func(cancelled domain.Sale) bool {
			return cancelled.Cancelled && cancelled.CancellationReason == "article défectueux"
		}),
		map[string]int{"p-used": 1, "p-new": 1},
		mock.MatchedBy(func(refunds []domain.CashMovement) bool {
			return len(refunds) == 1 &&
				refunds[0].Direction == domain.MovementOut &&
				refunds[0].Amount.Equal(dec("50.00"))
		}),
		(*domain.Voucher)(nil),
	).Return(nil).Once()

	cancelled, err := suite.service.CancelSale(suite.ctx, "s-1", dto.CancelSaleRequest{
		Reason:       "article défectueux",
		RefundMethod: "cash",
	}, "op-2")

	suite.Require().NoError(err)
	suite.True(cancelled.Cancelled)
	suite.Equal("op-2", cancelled.LastUpdatedBy)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCancelSaleCashRefundExcludesVoucherPortion() {
	sale := storedSale()
	sale.VoucherApplied = dec("10.00")
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()
	suite.mockSaleRepo.On("CancelSale", suite.ctx, mock.Anything, mock.Anything,
		mock.MatchedBy(func(refunds []domain.CashMovement) bool {
			return len(refunds) == 1 && refunds[0].Amount.Equal(dec("40.00"))
		}),
		(*domain.Voucher)(nil),
	).Return(nil).Once()

	_, err := suite.service.CancelSale(suite.ctx, "s-1", dto.CancelSaleRequest{
		Reason:       "erreur de saisie",
		RefundMethod: "cash",
	}, "op-2")

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCancelSaleVoucherRefund() {
	sale := storedSale()
	sale.Cash = decimal.Zero
	sale.Card = dec("50.00")
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()
	suite.mockSaleRepo.On("CancelSale", suite.ctx, mock.Anything, mock.Anything,
		mock.MatchedBy(func(refunds []domain.CashMovement) bool {
			return len(refunds) == 0
		}),
		mock.MatchedBy(func(issued *domain.Voucher) bool {
			return issued != nil && issued.ClientID == "c-1" && issued.Amount.Equal(dec("50.00"))
		}),
	).Return(nil).Once()

	_, err := suite.service.CancelSale(suite.ctx, "s-1", dto.CancelSaleRequest{
		Reason:       "changement d'avis",
		RefundMethod: "voucher",
	}, "op-2")

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

// A sale paid in cash empties the drawer on cancellation even when the
// customer asks for no refund; the known customer still gets the voucher.
func (suite *SaleServiceTestSuite) TestCancelSaleCashPaidAlwaysMovesDrawer() {
	sale := storedSale()
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()
	suite.mockSaleRepo.On("CancelSale", suite.ctx, mock.Anything, mock.Anything,
		mock.MatchedBy(func(refunds []domain.CashMovement) bool {
			return len(refunds) == 1 &&
				refunds[0].Direction == domain.MovementOut &&
				refunds[0].Amount.Equal(dec("50.00"))
		}),
		mock.MatchedBy(func(issued *domain.Voucher) bool {
			return issued != nil && issued.ClientID == "c-1" && issued.Amount.Equal(dec("50.00"))
		}),
	).Return(nil).Once()

	_, err := suite.service.CancelSale(suite.ctx, "s-1", dto.CancelSaleRequest{
		Reason:       "litige",
		RefundMethod: "none",
	}, "op-2")

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCancelSaleCardPaidRefundedInCash() {
	sale := storedSale()
	sale.Cash = decimal.Zero
	sale.Card = dec("50.00")
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()
	suite.mockSaleRepo.On("CancelSale", suite.ctx, mock.Anything, mock.Anything,
		mock.MatchedBy(func(refunds []domain.CashMovement) bool {
			if len(refunds) != 2 {
				return false
			}
			return refunds[0].Amount.Equal(dec("50.00")) &&
				refunds[1].Amount.Equal(dec("50.00")) &&
				refunds[1].Reason == "Remboursement CB en espèces vente n°s-1"
		}),
		(*domain.Voucher)(nil),
	).Return(nil).Once()

	_, err := suite.service.CancelSale(suite.ctx, "s-1", dto.CancelSaleRequest{
		Reason:       "article défectueux",
		RefundMethod: "cash",
	}, "op-2")

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCancelSaleVoucherRefundNeedsClient() {
	sale := storedSale()
	sale.ClientID = nil
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()

	_, err := suite.service.CancelSale(suite.ctx, "s-1", dto.CancelSaleRequest{
		Reason:       "changement d'avis",
		RefundMethod: "voucher",
	}, "op-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRefundNeedsClient)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "CancelSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCancelSaleAlreadyCancelled() {
	sale := storedSale()
	sale.Cancelled = true
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()

	_, err := suite.service.CancelSale(suite.ctx, "s-1", dto.CancelSaleRequest{
		Reason:       "doublon",
		RefundMethod: "none",
	}, "op-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSaleAlreadyCancelled)
}

func (suite *SaleServiceTestSuite) TestRefundSaleLineAdjustsTotals() {
	sale := storedSale()
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()
	// Line l-1 nets 32.14 after its 10% discount and its prorated share of
	// the 6.00 flat discount.
	suite.mockSaleRepo.On("RefundLine", suite.ctx,
		mock.MatchedBy(func(refunded domain.Sale) bool {
			return refunded.GrossTotal.Equal(dec("20.00")) &&
				refunded.NetTotal.Equal(dec("17.86")) &&
				!refunded.Cancelled
		}),
		"l-1",
		map[string]int{"p-used": 1},
		mock.MatchedBy(func(refund *domain.CashMovement) bool {
			return refund != nil &&
				refund.Direction == domain.MovementOut &&
				refund.Amount.Equal(dec("32.14"))
		}),
		(*domain.Voucher)(nil),
	).Return(nil).Once()

	err := suite.service.RefundSaleLine(suite.ctx, "s-1", "l-1", dto.RefundLineRequest{
		RefundMethod: "cash",
	}, "op-2")

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestRefundSaleLineUnknownLine() {
	sale := storedSale()
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()

	err := suite.service.RefundSaleLine(suite.ctx, "s-1", "l-99", dto.RefundLineRequest{
		RefundMethod: "cash",
	}, "op-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SaleServiceTestSuite) TestDeleteSaleRestocks() {
	sale := storedSale()
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()
	suite.mockSaleRepo.On("DeleteSale", suite.ctx,
		mock.MatchedBy(func(deleted domain.Sale) bool {
			return deleted.SaleID == "s-1" && deleted.LastUpdatedBy == "op-2"
		}),
		map[string]int{"p-used": 1, "p-new": 1},
	).Return(nil).Once()

	err := suite.service.DeleteSale(suite.ctx, "s-1", "op-2")

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestDeleteSaleCancelledSkipsRestock() {
	sale := storedSale()
	sale.Cancelled = true
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()
	suite.mockSaleRepo.On("DeleteSale", suite.ctx, mock.Anything, map[string]int{}).
		Return(nil).Once()

	err := suite.service.DeleteSale(suite.ctx, "s-1", "op-2")

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestDeleteSaleWithPayoutConflicts() {
	sale := storedSale()
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()
	suite.mockSaleRepo.On("DeleteSale", suite.ctx, mock.Anything, mock.Anything).
		Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteSale(suite.ctx, "s-1", "op-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *SaleServiceTestSuite) TestPreviewSale() {
	suite.expectCartProducts()

	preview, err := suite.service.PreviewSale(suite.ctx, dto.PreviewSaleRequest{
		Lines:        twoLineCart(),
		FlatDiscount: dec("6.00"),
		Cash:         dec("60.00"),
	})

	suite.Require().NoError(err)
	suite.True(preview.GrossTotal.Equal(dec("60.00")))
	suite.True(preview.NetTotal.Equal(dec("50.00")))
	suite.True(preview.TotalDiscounts.Equal(dec("10.00")))
	suite.True(preview.AmountDue.Equal(dec("50.00")))
	suite.True(preview.ChangeDue.Equal(dec("10.00")))
	suite.True(preview.CashRetained.Equal(dec("50.00")))
	// The used line (32.14) lands in the 0% bucket, the new line (17.86)
	// in the 20% bucket.
	suite.True(preview.TTC0.Equal(dec("32.14")))
	suite.True(preview.TTC20.Equal(dec("17.86")))
	suite.True(preview.HT20.Equal(dec("14.88")))
	suite.True(preview.TVA20.Equal(dec("2.98")))
}

func (suite *SaleServiceTestSuite) TestGetSaleByIDNotFound() {
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetSaleByID(suite.ctx, "s-missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SaleServiceTestSuite) TestListSalesExcludesCancelledFromSummary() {
	active := *storedSale()
	cancelled := *storedSale()
	cancelled.SaleID = "s-2"
	cancelled.Cancelled = true
	suite.mockSaleRepo.On("ListRecentSales", suite.ctx, 50).
		Return([]domain.Sale{active, cancelled}, nil).Once()

	resp, err := suite.service.ListSales(suite.ctx, dto.ListSalesParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Sales, 2)
	suite.Equal(1, resp.Summary.SaleCount)
	suite.True(resp.Summary.TotalTTC.Equal(dec("50.00")))
	suite.Equal(2, resp.Summary.ItemCount)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestGetSaleTicket() {
	sale := storedSale()
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(sale, nil).Once()
	suite.mockClientRepo.On("FindClientByID", suite.ctx, "c-1").
		Return(&domain.Client{ClientID: "c-1", FirstName: "Marie", LastName: "Durand"}, nil).Once()

	text, err := suite.service.GetSaleTicket(suite.ctx, "s-1")

	suite.Require().NoError(err)
	suite.Contains(text, "Client : Marie Durand")
	suite.Contains(text, "TOTAL TTC")
	suite.Contains(text, "50.00 €")
}

// recordingDispatcher captures every ticket handed to the printer.
type recordingDispatcher struct {
	texts []string
}

func (d *recordingDispatcher) Print(_ context.Context, text string) {
	d.texts = append(d.texts, text)
}

func (suite *SaleServiceTestSuite) TestPrintSaleTicketDispatches() {
	printer := &recordingDispatcher{}
	service := services.NewSaleService(
		suite.mockSaleRepo,
		suite.mockProductRepo,
		suite.mockVoucherRepo,
		suite.mockClientRepo,
		ticket.NewRenderer(ticket.ShopInfo{Name: "VINTAGE ROYAN"}),
		printer,
		false,
	)
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-1").Return(storedSale(), nil).Once()
	suite.mockClientRepo.On("FindClientByID", suite.ctx, "c-1").
		Return(&domain.Client{ClientID: "c-1", FirstName: "Marie", LastName: "Durand"}, nil).Once()

	err := service.PrintSaleTicket(suite.ctx, "s-1")

	suite.Require().NoError(err)
	suite.Require().Len(printer.texts, 1)
	suite.Contains(printer.texts[0], "TOTAL TTC")
}

func (suite *SaleServiceTestSuite) TestPrintSaleTicketUnknownSale() {
	printer := &recordingDispatcher{}
	service := services.NewSaleService(
		suite.mockSaleRepo,
		suite.mockProductRepo,
		suite.mockVoucherRepo,
		suite.mockClientRepo,
		ticket.NewRenderer(ticket.ShopInfo{Name: "VINTAGE ROYAN"}),
		printer,
		false,
	)
	suite.mockSaleRepo.On("FindSaleByID", suite.ctx, "s-missing").
		Return(nil, apperrors.ErrNotFound).Once()

	err := service.PrintSaleTicket(suite.ctx, "s-missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(printer.texts)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
