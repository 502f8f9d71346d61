// Package errors renders the error pages shared by all handlers. Every
// error here is scoped to a single request; nothing is fatal to the
// process.
package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound renders the opaque 404 page. Entities that exist but belong
// to someone else go through here too, so the response never reveals
// existence.
func NotFound(c *gin.Context, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	c.HTML(http.StatusNotFound, "404.html", data)
}

// Internal renders the 500 page.
func Internal(c *gin.Context, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	c.HTML(http.StatusInternalServerError, "500.html", data)
}
