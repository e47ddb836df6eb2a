package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/core/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

// CashMovementServiceTestSuite defines the test suite for CashMovementService.
type CashMovementServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockCashMovementRepository
	mockSaleRepo     *MockSaleRepository
	mockDepositRepo  *MockDepositRepository
	mockClosureRepo  *MockClosureRepository
	service          portssvc.CashMovementSvcFacade
	ctx              context.Context
}

// SetupTest runs before each test in the suite.
func (suite *CashMovementServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockCashMovementRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockDepositRepo = new(MockDepositRepository)
	suite.mockClosureRepo = new(MockClosureRepository)
	suite.service = services.NewCashMovementService(
		suite.mockMovementRepo,
		suite.mockSaleRepo,
		suite.mockDepositRepo,
		suite.mockClosureRepo,
		dec("100.00"),
	)
	suite.ctx = context.Background()
}

func (suite *CashMovementServiceTestSuite) TestRecordMovement() {
	suite.mockMovementRepo.On("SaveMovement", suite.ctx,
		mock.MatchedBy(func(m domain.CashMovement) bool {
			return m.Direction == domain.MovementOut &&
				m.Amount.Equal(dec("25.00")) &&
				m.Reason == "achat fournitures" &&
				m.CreatedBy == "op-1"
		}),
	).Return(nil).Once()

	movement, err := suite.service.RecordMovement(suite.ctx, dto.CreateMovementRequest{
		Direction: "out",
		Amount:    dec("25.00"),
		Reason:    "achat fournitures",
	}, "op-1")

	suite.Require().NoError(err)
	suite.NotEmpty(movement.MovementID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *CashMovementServiceTestSuite) TestRecordMovementRejectsNonPositiveAmount() {
	_, err := suite.service.RecordMovement(suite.ctx, dto.CreateMovementRequest{
		Direction: "in",
		Amount:    dec("0.00"),
		Reason:    "rien",
	}, "op-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrMovementAmount)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *CashMovementServiceTestSuite) TestGetDrawerStatus() {
	day := time.Date(2026, 3, 5, 14, 45, 0, 0, time.Local)
	from := time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 1)

	suite.mockClosureRepo.On("ListClosures", suite.ctx, domain.ClosureDaily, 1).
		Return([]domain.Closure{{ClosureID: "z-prev", DrawerCounted: dec("120.00")}}, nil).Once()
	suite.mockMovementRepo.On("ListMovementsBetween", suite.ctx, from, to).
		Return([]domain.CashMovement{
			{Direction: domain.MovementIn, Amount: dec("10.00")},
			{Direction: domain.MovementOut, Amount: dec("5.00")},
		}, nil).Once()
	suite.mockDepositRepo.On("ListDepositPaymentsBetween", suite.ctx, from, to).
		Return([]domain.DepositPayment{
			{DepositID: "d-1", Amount: dec("15.00"), PaymentMethod: "Espèces"},
			{DepositID: "d-2", Amount: dec("20.00"), PaymentMethod: "Chèque"},
		}, nil).Once()
	// One cash sale of 50.00 and a cancelled one that must not count.
	active := *storedSale()
	cancelled := *storedSale()
	cancelled.SaleID = "s-2"
	cancelled.Cancelled = true
	suite.mockSaleRepo.On("ListSalesBetween", suite.ctx, from, to).
		Return([]domain.Sale{active, cancelled}, nil).Once()

	status, err := suite.service.GetDrawerStatus(suite.ctx, day)

	suite.Require().NoError(err)
	suite.True(status.Opening.Equal(dec("120.00")))
	suite.True(status.MovementsIn.Equal(dec("10.00")))
	suite.True(status.MovementsOut.Equal(dec("5.00")))
	suite.True(status.DepositPayouts.Equal(dec("15.00")))
	suite.True(status.CashRetained.Equal(dec("50.00")))
	suite.True(status.Theoretical.Equal(dec("160.00")))
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func TestCashMovementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashMovementServiceTestSuite))
}
