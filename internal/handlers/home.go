package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler renders the landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home shows the landing page.
func (h *HomeHandler) Home(c *gin.Context) {
	render(c, http.StatusOK, "home.html", nil)
}
