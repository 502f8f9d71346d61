package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/brycehall/stache/internal/constants"
	"github.com/brycehall/stache/internal/database"
	"github.com/brycehall/stache/internal/middleware"
	"github.com/brycehall/stache/internal/repository"
	"github.com/brycehall/stache/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	authService    *services.AuthService
	stacheService  *services.StacheService
	itemService    *services.ItemService
	projectService *services.ProjectService
}

// setupTestEnv wires the full router against an in-memory database, the
// same way main does.
func setupTestEnv(t *testing.T) *testEnv {
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

	userRepo := repository.NewUserRepository(db)
	stacheRepo := repository.NewStacheRepository(db)
	itemRepo := repository.NewItemRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	env := &testEnv{
		db:             db,
		authService:    services.NewAuthService(userRepo),
		stacheService:  services.NewStacheService(stacheRepo),
		itemService:    services.NewItemService(itemRepo, stacheRepo),
		projectService: services.NewProjectService(projectRepo, stacheRepo, itemRepo),
	}

	homeHandler := NewHomeHandler()
	authHandler := NewAuthHandler(env.authService)
	accountHandler := NewAccountHandler(env.authService)
	stacheHandler := NewStacheHandler(env.stacheService)
	itemHandler := NewItemHandler(env.itemService, env.stacheService)
	projectHandler := NewProjectHandler(env.projectService, env.stacheService, env.itemService)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")

	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(), middleware.LoadCurrentUser(env.authService))
	{
		authed.GET("/", homeHandler.Home)
		authed.GET("/logout", authHandler.Logout)

		authed.GET("/staches", stacheHandler.List)
		authed.GET("/staches/new", stacheHandler.ShowNew)
		authed.POST("/staches/new", stacheHandler.Create)
		authed.GET("/staches/:slug", stacheHandler.Detail)
		authed.GET("/staches/:slug/edit", stacheHandler.ShowEdit)
		authed.POST("/staches/:slug/edit", stacheHandler.Edit)
		authed.POST("/staches/:slug/delete", stacheHandler.Delete)

		authed.GET("/items", itemHandler.List)
		authed.GET("/items/new", itemHandler.ShowNew)
		authed.POST("/items/new", itemHandler.Create)
		authed.GET("/items/:id", itemHandler.Detail)
		authed.GET("/items/:id/edit", itemHandler.ShowEdit)
		authed.POST("/items/:id/edit", itemHandler.Edit)
		authed.POST("/items/:id/delete", itemHandler.Delete)

		authed.GET("/projects", projectHandler.List)
		authed.GET("/projects/new", projectHandler.ShowNew)
		authed.POST("/projects/new", projectHandler.Create)
		authed.GET("/projects/:id", projectHandler.Detail)
		authed.GET("/projects/:id/edit", projectHandler.ShowEdit)
		authed.POST("/projects/:id/edit", projectHandler.Edit)
		authed.POST("/projects/:id/tasks", projectHandler.AddTask)
		authed.POST("/projects/:id/tasks/:taskId/toggle", projectHandler.ToggleTask)
		authed.POST("/projects/:id/status", projectHandler.SetStatus)
		authed.POST("/projects/:id/delete", projectHandler.Delete)

		authed.GET("/account/profile", accountHandler.Profile)
		authed.GET("/account/settings", accountHandler.ShowSettings)
		authed.POST("/account/settings", accountHandler.ChangePassword)
		authed.GET("/account/delete", accountHandler.ShowDeleteAccount)
		authed.POST("/account/delete", accountHandler.DeleteAccount)
	}

	env.router = r
	return env
}

func (env *testEnv) get(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) postForm(path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// registerUser signs up through the real endpoint and returns the
// session cookies.
func (env *testEnv) registerUser(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()
	w := env.postForm("/register", url.Values{
		"username":         {username},
		"password":         {password},
		"password_confirm": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}
