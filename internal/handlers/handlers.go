package handlers

import (
	"strconv"

	"github.com/brycehall/stache/internal/constants"
	"github.com/gin-gonic/gin"
)

// render injects the logged-in user into the template data so the nav
// can show who is signed in.
func render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := c.Get(constants.ContextKeyCurrentUser); ok {
		data["User"] = user
	}
	c.HTML(code, name, data)
}

// pageData returns the base data for pages rendered outside the normal
// flow, such as error pages.
func pageData(c *gin.Context) gin.H {
	data := gin.H{}
	if user, ok := c.Get(constants.ContextKeyCurrentUser); ok {
		data["User"] = user
	}
	return data
}

// parseID reads a numeric path parameter. Garbage IDs are treated the
// same as IDs that do not exist.
func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
