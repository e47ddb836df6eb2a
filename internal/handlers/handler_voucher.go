package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
)

// voucherHandler handles HTTP requests related to store credit.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs}
}

// registerVoucherRoutes registers routes related to vouchers.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listRedeemableVouchers)
		vouchers.GET("/:voucherID", h.getVoucherByID)
		vouchers.GET("/:voucherID/verify", h.verifyVoucher)
	}
}

func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req, operatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create voucher")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher, time.Now()))
}

func (h *voucherHandler) listRedeemableVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vouchers, err := h.voucherService.ListRedeemableVouchers(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list redeemable vouchers")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponses(vouchers, time.Now()))
}

// verifyVoucher dry-runs a voucher against a prospective total, passed as the
// "total" query parameter.
func (h *voucherHandler) verifyVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	total, err := decimal.NewFromString(c.Query("total"))
	if err != nil || total.IsNegative() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid total amount"})
		return
	}

	verification, err := h.voucherService.VerifyVoucher(c.Request.Context(), voucherID, total)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify voucher")
		return
	}

	c.JSON(http.StatusOK, verification)
}

func (h *voucherHandler) getVoucherByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), voucherID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher, time.Now()))
}
