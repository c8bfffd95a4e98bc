package middleware

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

// CartCookie carries the anonymous shopper's cart identity.
const CartCookie = "cart_session"

// CartSessionKey is the context key the cart handlers read.
const CartSessionKey = "cart_session_id"

// CartSession attaches a cart identity to every request through the
// cart routes. First contact mints a 16-byte random token and sets it
// as a session cookie; the token is the sole correlation key between a
// browser and its cart lines.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(CartCookie)
		if err != nil || sid == "" {
			sid = newCartToken()
			c.SetCookie(CartCookie, sid, 0, "/", "", false, true)
		}
		c.Set(CartSessionKey, sid)
		c.Next()
	}
}

func newCartToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken
		panic("unable to generate cart session token: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
