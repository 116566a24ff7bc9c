package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash is a one-shot notice carried across a redirect in a short-lived
// cookie. Category matches the css classes the templates style on
// (success, danger, warning).
type Flash struct {
	Category string
	Message  string
}

func setFlash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookie, category+"|"+message, 60, "/", "", false, true)
}

// takeFlash reads and clears the pending flash message, so it is shown at
// most once.
func takeFlash(c *gin.Context) (Flash, bool) {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return Flash{}, false
	}

	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	category, message, found := strings.Cut(value, "|")
	if !found {
		return Flash{Category: "info", Message: value}, true
	}
	return Flash{Category: category, Message: message}, true
}
