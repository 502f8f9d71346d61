package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/brycehall/stache/internal/constants"
	weberrors "github.com/brycehall/stache/internal/errors"
	"github.com/brycehall/stache/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates the login and registration pages.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// ShowLogin renders the login page.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(constants.ContextKeyUserID) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "login.html", nil)
}

// Login authenticates the posted credentials and starts a session.
// Whatever went wrong, the page shows the same generic message.
func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.authService.Login(services.LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		render(c, http.StatusOK, "login.html", gin.H{
			"Error":    "Invalid username or password.",
			"Username": username,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ShowRegister renders the registration page.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(constants.ContextKeyUserID) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "register.html", nil)
}

// Register creates a new account and logs it in.
func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))

	user, err := h.authService.Signup(services.SignupInput{
		Username:        username,
		Password:        c.PostForm("password"),
		PasswordConfirm: c.PostForm("password_confirm"),
	})
	if err != nil {
		render(c, http.StatusOK, "register.html", gin.H{
			"Error":    registerErrorMessage(err),
			"Username": username,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		weberrors.Internal(c, pageData(c))
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func registerErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidUsername):
		return "Username must be 3-32 characters: letters, digits, or underscores."
	case errors.Is(err, services.ErrPasswordTooShort):
		return "Password must be at least 8 characters."
	case errors.Is(err, services.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, services.ErrUsernameTaken):
		return "That username is already taken."
	default:
		return "Something went wrong. Please try again."
	}
}
