package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skillswap-api/internal/repository"
	"github.com/noah-isme/skillswap-api/pkg/response"
)

// CatalogHandler exposes the static roster, catalog, and category taxonomy.
type CatalogHandler struct {
	catalog *repository.CatalogRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog *repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Categories godoc
// @Summary List skill categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.Categories())
}

// Skills godoc
// @Summary List skill listings
// @Tags Catalog
// @Produce json
// @Param category query string false "Filter by category name"
// @Param q query string false "Free-text search over title and description"
// @Success 200 {object} response.Envelope
// @Router /skills [get]
func (h *CatalogHandler) Skills(c *gin.Context) {
	category := c.Query("category")
	query := c.Query("q")
	if category == "" && query == "" {
		response.JSON(c, http.StatusOK, h.catalog.Listings())
		return
	}
	response.JSON(c, http.StatusOK, h.catalog.SearchListings(category, query))
}

// Teachers godoc
// @Summary List the provider roster
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *CatalogHandler) Teachers(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.Providers())
}
