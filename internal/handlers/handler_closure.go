package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
)

// closureHandler handles HTTP requests related to Z reports and monthly
// closures.
type closureHandler struct {
	closureService portssvc.ClosureSvcFacade
}

func newClosureHandler(cs portssvc.ClosureSvcFacade) *closureHandler {
	return &closureHandler{closureService: cs}
}

// registerClosureRoutes registers routes related to closures.
func registerClosureRoutes(rg *gin.RouterGroup, closureService portssvc.ClosureSvcFacade) {
	h := newClosureHandler(closureService)

	closures := rg.Group("/closures")
	{
		closures.POST("/daily", h.createDailyClosure)
		closures.POST("/monthly", h.createMonthlyClosure)
		closures.GET("", h.listClosures)
		closures.GET("/:closureID", h.getClosureByID)
		closures.GET("/:closureID/ticket", h.getClosureTicket)
		closures.POST("/:closureID/ticket/print", h.printClosureTicket)
	}

	// Registered outside the group: a static /closures/preview would clash
	// with the :closureID wildcard in the router tree.
	rg.GET("/closure-preview", h.previewDay)
}

func (h *closureHandler) createDailyClosure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDailyClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDailyClosure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	closure, err := h.closureService.CreateDailyClosure(c.Request.Context(), req, operatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create daily closure")
		return
	}

	logger.Info("Daily closure created", slog.String("closure_id", closure.ClosureID))
	c.JSON(http.StatusCreated, dto.ToClosureResponse(closure))
}

func (h *closureHandler) createMonthlyClosure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMonthlyClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMonthlyClosure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	closure, err := h.closureService.CreateMonthlyClosure(c.Request.Context(), req, operatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create monthly closure")
		return
	}

	logger.Info("Monthly closure created", slog.String("closure_id", closure.ClosureID))
	c.JSON(http.StatusCreated, dto.ToClosureResponse(closure))
}

func (h *closureHandler) listClosures(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	category := domain.ClosureCategory(c.DefaultQuery("category", string(domain.ClosureDaily)))
	if category != domain.ClosureDaily && category != domain.ClosureMonthly {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid category, expected daily or monthly"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	closures, err := h.closureService.ListClosures(c.Request.Context(), category, limit)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list closures")
		return
	}

	c.JSON(http.StatusOK, dto.ToClosureResponses(closures))
}

func (h *closureHandler) previewDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw := c.Query("date")
	if raw == "" {
		raw = time.Now().Format("2006-01-02")
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	preview, err := h.closureService.PreviewDay(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to preview day")
		return
	}

	c.JSON(http.StatusOK, preview)
}

func (h *closureHandler) getClosureByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closureID := c.Param("closureID")

	closure, err := h.closureService.GetClosureByID(c.Request.Context(), closureID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve closure")
		return
	}

	c.JSON(http.StatusOK, dto.ToClosureResponse(closure))
}

func (h *closureHandler) getClosureTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closureID := c.Param("closureID")

	text, err := h.closureService.GetClosureTicket(c.Request.Context(), closureID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to render closure ticket")
		return
	}

	c.JSON(http.StatusOK, dto.TicketResponse{Text: text})
}

func (h *closureHandler) printClosureTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closureID := c.Param("closureID")

	if err := h.closureService.PrintClosureTicket(c.Request.Context(), closureID); err != nil {
		respondServiceError(c, logger, err, "Failed to print closure ticket")
		return
	}

	c.Status(http.StatusNoContent)
}
