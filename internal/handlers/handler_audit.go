package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
)

// auditHandler handles HTTP requests related to the audit log.
type auditHandler struct {
	auditService portssvc.AuditSvc
}

func newAuditHandler(as portssvc.AuditSvc) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers routes related to the audit log.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvc) {
	h := newAuditHandler(auditService)

	audit := rg.Group("/audit")
	{
		audit.GET("/events", h.listEvents)
		audit.GET("/verify", h.verifyChain)
	}
}

func (h *auditHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	events, err := h.auditService.ListEvents(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list audit events")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditEventResponses(events))
}

func (h *auditHandler) verifyChain(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status, err := h.auditService.VerifyChain(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify audit chain")
		return
	}

	c.JSON(http.StatusOK, status)
}
