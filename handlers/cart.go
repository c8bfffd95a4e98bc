package handlers

import (
	"net/http"
	"strconv"
	"time"

	"vintagevault-backend/middleware"
	"vintagevault-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxCartQuantity bounds what the update path accepts per line.
const MaxCartQuantity = 10

// CartHandler manages the anonymous session cart.
type CartHandler struct {
	DB *gorm.DB
}

func cartSessionID(c *gin.Context) string {
	return c.GetString(middleware.CartSessionKey)
}

func (h *CartHandler) ViewCart(c *gin.Context) {
	sessionID := cartSessionID(c)

	var lines []models.CartLine
	if err := h.DB.Preload("Item").Where("session_id = ?", sessionID).Find(&lines).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	var total float64
	var totalCount int
	for _, line := range lines {
		total += line.Item.Price * float64(line.Quantity)
		totalCount += line.Quantity
	}

	render(c, http.StatusOK, "cart.html", gin.H{
		"Title":      "Your Cart",
		"Lines":      lines,
		"Total":      total,
		"TotalCount": totalCount,
	})
}

// AddToCart adds one unit of the item to the session cart. The insert
// and the increment are a single upsert against the (session, item)
// unique index, so concurrent identical requests cannot lose updates or
// duplicate lines.
func (h *CartHandler) AddToCart(c *gin.Context) {
	itemID, ok := parseID(c)
	if !ok {
		return
	}
	sessionID := cartSessionID(c)

	var item models.Item
	if err := h.DB.First(&item, itemID).Error; err != nil {
		notFound(c)
		return
	}

	line := models.CartLine{SessionID: sessionID, ItemID: itemID, Quantity: 1}
	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&line).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	setFlash(c, "success", "Item added to cart!")
	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}

// UpdateLine sets the quantity of an existing line. Quantities outside
// [1,10] are accepted and ignored - no change, no error - matching the
// storefront's silent-degradation policy.
func (h *CartHandler) UpdateLine(c *gin.Context) {
	itemID, ok := parseID(c)
	if !ok {
		return
	}
	sessionID := cartSessionID(c)

	var line models.CartLine
	if err := h.DB.Where("session_id = ? AND item_id = ?", sessionID, itemID).First(&line).Error; err != nil {
		notFound(c)
		return
	}

	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err == nil && quantity >= 1 && quantity <= MaxCartQuantity {
		line.Quantity = quantity
		if err := h.DB.Save(&line).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to update cart")
			return
		}
		setFlash(c, "success", "Cart updated!")
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *CartHandler) RemoveLine(c *gin.Context) {
	itemID, ok := parseID(c)
	if !ok {
		return
	}
	sessionID := cartSessionID(c)

	var line models.CartLine
	if err := h.DB.Where("session_id = ? AND item_id = ?", sessionID, itemID).First(&line).Error; err != nil {
		notFound(c)
		return
	}

	if err := h.DB.Delete(&line).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to remove item from cart")
		return
	}

	setFlash(c, "success", "Item removed from cart!")
	c.Redirect(http.StatusSeeOther, "/cart")
}
