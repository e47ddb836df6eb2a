package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/caisse-pos/caisse_backend/internal/apperrors"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/core/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
)

type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockClientRepo  *MockClientRepository
	service         portssvc.VoucherSvcFacade
	ctx             context.Context
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockClientRepo)
	suite.ctx = context.Background()
}

func (suite *VoucherServiceTestSuite) freshVoucher(amount string) *domain.Voucher {
	v := &domain.Voucher{
		VoucherID: "v-1",
		ClientID:  "c-1",
		Amount:    dec(amount),
	}
	v.CreatedAt = time.Now().AddDate(0, -2, 0)
	return v
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher() {
	suite.mockClientRepo.On("FindClientByID", suite.ctx, "c-1").
		Return(&domain.Client{ClientID: "c-1"}, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", suite.ctx,
		mock.MatchedBy(func(v domain.Voucher) bool {
			return v.ClientID == "c-1" && v.Amount.Equal(dec("25.00")) && !v.Redeemed
		}),
	).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(suite.ctx, dto.CreateVoucherRequest{
		ClientID: "c-1",
		Amount:   dec("25.00"),
		Remarks:  "geste commercial",
	}, "op-1")

	suite.Require().NoError(err)
	suite.NotEmpty(voucher.VoucherID)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucherRejectsNonPositiveAmount() {
	_, err := suite.service.CreateVoucher(suite.ctx, dto.CreateVoucherRequest{
		ClientID: "c-1",
		Amount:   dec("0.00"),
	}, "op-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrVoucherAmount)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestVerifyVoucherCoversTotal() {
	suite.mockVoucherRepo.On("FindVoucherByID", suite.ctx, "v-1").
		Return(suite.freshVoucher("80.00"), nil).Once()

	resp, err := suite.service.VerifyVoucher(suite.ctx, "v-1", dec("50.00"))

	suite.Require().NoError(err)
	suite.True(resp.Redeemable)
	suite.True(resp.AppliedAmount.Equal(dec("50.00")))
	suite.True(resp.AmountDueAfter.IsZero())
	suite.True(resp.CarryForward.Equal(dec("30.00")))
}

func (suite *VoucherServiceTestSuite) TestVerifyVoucherPartialCover() {
	suite.mockVoucherRepo.On("FindVoucherByID", suite.ctx, "v-1").
		Return(suite.freshVoucher("20.00"), nil).Once()

	resp, err := suite.service.VerifyVoucher(suite.ctx, "v-1", dec("50.00"))

	suite.Require().NoError(err)
	suite.True(resp.Redeemable)
	suite.True(resp.AppliedAmount.Equal(dec("20.00")))
	suite.True(resp.AmountDueAfter.Equal(dec("30.00")))
	suite.True(resp.CarryForward.IsZero())
}

func (suite *VoucherServiceTestSuite) TestVerifyExpiredVoucher() {
	expired := suite.freshVoucher("80.00")
	expired.CreatedAt = time.Now().AddDate(-1, 0, -1)
	suite.mockVoucherRepo.On("FindVoucherByID", suite.ctx, "v-1").
		Return(expired, nil).Once()

	resp, err := suite.service.VerifyVoucher(suite.ctx, "v-1", dec("50.00"))

	suite.Require().NoError(err)
	suite.False(resp.Redeemable)
	suite.True(resp.AppliedAmount.IsZero())
	suite.True(resp.AmountDueAfter.Equal(dec("50.00")))
}

func (suite *VoucherServiceTestSuite) TestVerifyVoucherNotFound() {
	suite.mockVoucherRepo.On("FindVoucherByID", suite.ctx, "v-404").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.VerifyVoucher(suite.ctx, "v-404", dec("50.00"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *VoucherServiceTestSuite) TestListRedeemableVouchers() {
	suite.mockVoucherRepo.On("ListRedeemableVouchers", suite.ctx,
		mock.MatchedBy(func(cutoff time.Time) bool {
			// The cutoff trails now by the validity window.
			return time.Since(cutoff) >= domain.VoucherValidityWindow
		}),
	).Return([]domain.Voucher{*suite.freshVoucher("80.00")}, nil).Once()

	vouchers, err := suite.service.ListRedeemableVouchers(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(vouchers, 1)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func TestVoucherServiceSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
