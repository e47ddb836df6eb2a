package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
)

// cashMovementHandler handles HTTP requests related to the cash drawer.
type cashMovementHandler struct {
	movementService portssvc.CashMovementSvcFacade
}

func newCashMovementHandler(ms portssvc.CashMovementSvcFacade) *cashMovementHandler {
	return &cashMovementHandler{movementService: ms}
}

// registerCashMovementRoutes registers drawer movement and status routes.
func registerCashMovementRoutes(rg *gin.RouterGroup, movementService portssvc.CashMovementSvcFacade) {
	h := newCashMovementHandler(movementService)

	movements := rg.Group("/movements")
	{
		movements.POST("", h.recordMovement)
		movements.GET("", h.listMovements)
	}
	rg.GET("/drawer", h.getDrawerStatus)
}

// dayParam parses the optional ?date=YYYY-MM-DD query, defaulting to today.
func dayParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}

func (h *cashMovementHandler) recordMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	movement, err := h.movementService.RecordMovement(c.Request.Context(), req, operatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record movement")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

func (h *cashMovementHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	day, ok := dayParam(c)
	if !ok {
		return
	}

	movements, err := h.movementService.ListMovements(c.Request.Context(), day)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list movements")
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponses(movements))
}

func (h *cashMovementHandler) getDrawerStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	day, ok := dayParam(c)
	if !ok {
		return
	}

	status, err := h.movementService.GetDrawerStatus(c.Request.Context(), day)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute drawer status")
		return
	}

	c.JSON(http.StatusOK, status)
}
