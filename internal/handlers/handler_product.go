package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/dto"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
)

// productHandler handles HTTP requests related to the catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers catalog lookup routes.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.GET("/:productID", h.getProductByID)
	}

	// Registered outside the group: a static /products/barcode would clash
	// with the :productID wildcard in the router tree.
	rg.GET("/barcode/:barcode", h.lookupBarcode)
}

func (h *productHandler) getProductByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// lookupBarcode resolves a scanned barcode, AZERTY garbage included.
func (h *productHandler) lookupBarcode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	barcode := c.Param("barcode")

	product, err := h.productService.LookupBarcode(c.Request.Context(), barcode)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to look up barcode")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}
