package middleware

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/brycehall/stache/internal/constants"
	"github.com/brycehall/stache/internal/database"
	"github.com/brycehall/stache/internal/models"
	"github.com/brycehall/stache/internal/repository"
	"github.com/brycehall/stache/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type middlewareTestEnv struct {
	db          *gorm.DB
	sqlDB       *sql.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupMiddlewareTest(t *testing.T) *middlewareTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	require.NoError(t, database.MigrateDB(db))

	authService := services.NewAuthService(repository.NewUserRepository(db))

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")

	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.POST("/session", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.PostForm("user_id"), 10, 64)
		require.NoError(t, err)
		session := sessions.Default(c)
		session.Set(constants.ContextKeyUserID, id)
		require.NoError(t, session.Save())
		c.Status(http.StatusNoContent)
	})

	authed := r.Group("/")
	authed.Use(RequireAuth(), LoadCurrentUser(authService))
	authed.GET("/me", func(c *gin.Context) {
		user, _ := c.Get(constants.ContextKeyCurrentUser)
		c.String(http.StatusOK, user.(*models.User).Username)
	})

	return &middlewareTestEnv{
		db:          db,
		sqlDB:       sqlDB,
		router:      r,
		authService: authService,
	}
}

// sessionFor issues a cookie-backed session for the given user ID.
func (env *middlewareTestEnv) sessionFor(t *testing.T, userID uint64) []*http.Cookie {
	t.Helper()
	form := url.Values{"user_id": {strconv.FormatUint(userID, 10)}}
	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	return w.Result().Cookies()
}

func (env *middlewareTestEnv) get(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestLoadCurrentUserResolvesSessionUser(t *testing.T) {
	env := setupMiddlewareTest(t)

	user, err := env.authService.Signup(services.SignupInput{Username: "alice", Password: "supersecret", PasswordConfirm: "supersecret"})
	require.NoError(t, err)

	w := env.get("/me", env.sessionFor(t, user.ID))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice", w.Body.String())
}

func TestLoadCurrentUserClearsDeletedAccountSession(t *testing.T) {
	env := setupMiddlewareTest(t)

	user, err := env.authService.Signup(services.SignupInput{Username: "alice", Password: "supersecret", PasswordConfirm: "supersecret"})
	require.NoError(t, err)
	cookies := env.sessionFor(t, user.ID)

	require.NoError(t, env.authService.DeleteAccount(user.ID))

	w := env.get("/me", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoadCurrentUserDatabaseErrorIsNotALogout(t *testing.T) {
	env := setupMiddlewareTest(t)

	user, err := env.authService.Signup(services.SignupInput{Username: "alice", Password: "supersecret", PasswordConfirm: "supersecret"})
	require.NoError(t, err)
	cookies := env.sessionFor(t, user.ID)

	// A failing lookup is a server error, not a sign the account is
	// gone. The session must not be cleared.
	require.NoError(t, env.sqlDB.Close())

	w := env.get("/me", cookies)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.SessionCookieName {
			require.NotEqual(t, -1, c.MaxAge)
		}
	}
}
