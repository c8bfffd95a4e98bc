package middleware

import (
	"net/http"

	"vintagevault-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminCookie holds the signed admin session token.
const AdminCookie = "admin_session"

// AdminRequired gates the back-office routes. A missing, invalid or
// expired token redirects to the login page rather than erroring - this
// is a capability check, not an authorization system.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil || claims.Role != "admin" {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
