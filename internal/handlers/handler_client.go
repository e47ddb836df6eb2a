package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService  portssvc.ClientSvcFacade
	voucherService portssvc.VoucherSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade, vs portssvc.VoucherSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs, voucherService: vs}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade, voucherService portssvc.VoucherSvcFacade) {
	h := newClientHandler(clientService, voucherService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.searchClients)
		clients.GET("/:clientID", h.getClientByID)
		clients.GET("/:clientID/vouchers", h.listClientVouchers)
	}
}

func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req, operatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *clientHandler) searchClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	clients, err := h.clientService.SearchClients(c.Request.Context(), query, limit)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to search clients")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

func (h *clientHandler) getClientByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *clientHandler) listClientVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	vouchers, err := h.voucherService.ListVouchersByClient(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list vouchers")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponses(vouchers, time.Now()))
}
