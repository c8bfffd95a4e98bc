package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash is a one-shot notice carried across a redirect in a short-lived
// cookie and cleared on first render.
type Flash struct {
	Kind    string
	Message string
}

func setFlash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, kind+"|"+message, 60, "/", "", false, true)
}

func popFlash(c *gin.Context) *Flash {
	v, err := c.Cookie(flashCookie)
	if err != nil || v == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	kind, msg, ok := strings.Cut(v, "|")
	if !ok {
		return &Flash{Kind: "info", Message: v}
	}
	return &Flash{Kind: kind, Message: msg}
}

// render merges the pending flash notice into the template data.
func render(c *gin.Context, code int, name string, data gin.H) {
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(c)
	}
	c.HTML(code, name, data)
}
