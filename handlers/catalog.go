package handlers

import (
	"net/http"
	"strconv"

	"vintagevault-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogHandler serves the public storefront pages: read-only listings
// over available inventory.
type CatalogHandler struct {
	DB *gorm.DB
}

func (h *CatalogHandler) Index(c *gin.Context) {
	items, ok := h.listAvailable(c, "")
	if !ok {
		return
	}
	render(c, http.StatusOK, "index.html", gin.H{
		"Title": "Home",
		"Items": items,
	})
}

func (h *CatalogHandler) Hats(c *gin.Context) {
	h.categoryPage(c, "Hats")
}

func (h *CatalogHandler) Clothing(c *gin.Context) {
	h.categoryPage(c, "Clothing")
}

func (h *CatalogHandler) categoryPage(c *gin.Context, category string) {
	items, ok := h.listAvailable(c, category)
	if !ok {
		return
	}
	render(c, http.StatusOK, "category.html", gin.H{
		"Title": category,
		"Items": items,
	})
}

func (h *CatalogHandler) listAvailable(c *gin.Context, category string) ([]models.Item, bool) {
	query := h.DB.Where("status = ?", "Available")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch items")
		return nil, false
	}
	return items, true
}

// parseID reads the numeric :id route param. A non-numeric id behaves
// like an unknown one.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "404 page not found")
	c.Abort()
}
