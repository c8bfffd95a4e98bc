package handlers

import (
	"net/http"

	"vintagevault-backend/config"
	"vintagevault-backend/middleware"
	"vintagevault-backend/models"
	"vintagevault-backend/storage"
	"vintagevault-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler is the back-office: credential check plus inventory CRUD
// with image uploads.
type AdminHandler struct {
	DB      *gorm.DB
	Storage storage.Store
	Creds   config.AdminCreds
}

func (h *AdminHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "admin_login.html", gin.H{"Title": "Admin Login"})
}

func (h *AdminHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !h.Creds.Check(username, password) {
		setFlash(c, "error", "Invalid credentials")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.SetCookie(middleware.AdminCookie, token, int(utils.AdminSessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	var items []models.Item
	if err := h.DB.Find(&items).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Title": "Inventory",
		"Items": items,
	})
}

func (h *AdminHandler) ShowAdd(c *gin.Context) {
	render(c, http.StatusOK, "admin_add.html", gin.H{"Title": "Add Item"})
}

func (h *AdminHandler) AddItem(c *gin.Context) {
	name := c.PostForm("name")
	category := c.PostForm("category")
	if name == "" || category == "" {
		h.addError(c, "Name and category are required")
		return
	}

	price, err := utils.ParsePrice(c.PostForm("price"))
	if err != nil {
		h.addError(c, err.Error())
		return
	}

	// Selling price defaults to the baseline price when omitted.
	sellingPrice := price
	if s := c.PostForm("selling_price"); s != "" {
		sellingPrice, err = utils.ParsePrice(s)
		if err != nil {
			h.addError(c, "selling "+err.Error())
			return
		}
	}

	condition := c.DefaultPostForm("condition", "Good")
	if condition == "" {
		condition = "Good"
	}

	var imageURL string
	if fh, err := c.FormFile("image"); err == nil && fh.Filename != "" {
		imageURL, err = h.Storage.Accept(fh)
		if err != nil {
			c.String(http.StatusInternalServerError, "Image upload failed")
			return
		}
	}

	item := models.Item{
		Name:         name,
		Category:     category,
		Price:        price,
		SellingPrice: sellingPrice,
		Description:  c.PostForm("description"),
		Condition:    condition,
		Status:       "Available",
		ImageURL:     imageURL,
	}

	if err := h.DB.Create(&item).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to create item")
		return
	}

	setFlash(c, "success", "Item added successfully!")
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) addError(c *gin.Context, msg string) {
	render(c, http.StatusBadRequest, "admin_add.html", gin.H{
		"Title": "Add Item",
		"Error": msg,
	})
}

func (h *AdminHandler) ShowEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item models.Item
	if err := h.DB.First(&item, id).Error; err != nil {
		notFound(c)
		return
	}

	render(c, http.StatusOK, "admin_edit.html", gin.H{
		"Title": "Edit Item",
		"Item":  item,
	})
}

// EditItem updates name, category, price and description. Selling
// price, condition and status are fixed at creation time.
func (h *AdminHandler) EditItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item models.Item
	if err := h.DB.First(&item, id).Error; err != nil {
		notFound(c)
		return
	}

	price, err := utils.ParsePrice(c.PostForm("price"))
	if err != nil {
		render(c, http.StatusBadRequest, "admin_edit.html", gin.H{
			"Title": "Edit Item",
			"Item":  item,
			"Error": err.Error(),
		})
		return
	}

	item.Name = c.PostForm("name")
	item.Category = c.PostForm("category")
	item.Price = price
	item.Description = c.PostForm("description")

	if fh, err := c.FormFile("image"); err == nil && fh.Filename != "" {
		// The old asset is removed before the new upload is accepted;
		// a rejected replacement leaves the item without an image.
		newRef, err := h.Storage.Replace(item.ImageURL, fh)
		if err != nil {
			c.String(http.StatusInternalServerError, "Image upload failed")
			return
		}
		item.ImageURL = newRef
	}

	if err := h.DB.Save(&item).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to update item")
		return
	}

	setFlash(c, "success", "Item updated successfully!")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// DeleteItem removes the item, its stored image and any cart lines
// still referencing it.
func (h *AdminHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item models.Item
	if err := h.DB.First(&item, id).Error; err != nil {
		notFound(c)
		return
	}

	if err := h.Storage.Remove(item.ImageURL); err != nil {
		c.String(http.StatusInternalServerError, "Failed to remove item image")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", item.ID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to delete item")
		return
	}

	setFlash(c, "success", "Item deleted successfully!")
	c.Redirect(http.StatusSeeOther, "/admin")
}
