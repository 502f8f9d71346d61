package handlers

import (
	"errors"
	"net/http"

	weberrors "github.com/brycehall/stache/internal/errors"
	"github.com/brycehall/stache/internal/middleware"
	"github.com/brycehall/stache/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AccountHandler coordinates the profile, settings, and account
// deletion pages.
type AccountHandler struct {
	authService *services.AuthService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(authService *services.AuthService) *AccountHandler {
	return &AccountHandler{
		authService: authService,
	}
}

// Profile shows the account page with ownership counts.
func (h *AccountHandler) Profile(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	stats, err := h.authService.Stats(userID)
	if err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	render(c, http.StatusOK, "profile.html", gin.H{
		"Stats": stats,
	})
}

// ShowSettings renders the change-password page.
func (h *AccountHandler) ShowSettings(c *gin.Context) {
	render(c, http.StatusOK, "settings.html", nil)
}

// ChangePassword handles the settings form.
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	err := h.authService.ChangePassword(userID, services.ChangePasswordInput{
		Current:    c.PostForm("current_password"),
		New:        c.PostForm("new_password"),
		NewConfirm: c.PostForm("confirm_password"),
	})
	if err != nil {
		render(c, http.StatusOK, "settings.html", gin.H{
			"Error": settingsErrorMessage(err),
		})
		return
	}

	render(c, http.StatusOK, "settings.html", gin.H{
		"Success": "Password updated.",
	})
}

// ShowDeleteAccount renders the confirmation page.
func (h *AccountHandler) ShowDeleteAccount(c *gin.Context) {
	render(c, http.StatusOK, "account_delete.html", nil)
}

// DeleteAccount removes the account and everything it owns, then ends
// the session.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.authService.DeleteAccount(userID); err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func settingsErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return "Current password is incorrect."
	case errors.Is(err, services.ErrPasswordTooShort):
		return "New password must be at least 8 characters."
	case errors.Is(err, services.ErrPasswordMismatch):
		return "New passwords do not match."
	default:
		return "Something went wrong. Please try again."
	}
}
