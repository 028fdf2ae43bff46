package handlers

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// flashCookie holds a one-time notice for the next rendered page.
const flashCookie = "corkboard_flash"

func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, url.QueryEscape(msg), 60, "/", "", false, true)
}

// takeFlash returns the pending flash message and clears it, so it renders
// at most once.
func takeFlash(c *gin.Context) string {
	v, err := c.Cookie(flashCookie)
	if err != nil || v == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(v)
	if err != nil {
		return ""
	}
	return msg
}
