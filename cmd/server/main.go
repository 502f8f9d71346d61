package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/brycehall/stache/internal/config"
	"github.com/brycehall/stache/internal/constants"
	"github.com/brycehall/stache/internal/database"
	"github.com/brycehall/stache/internal/handlers"
	"github.com/brycehall/stache/internal/logger"
	"github.com/brycehall/stache/internal/middleware"
	"github.com/brycehall/stache/internal/repository"
	"github.com/brycehall/stache/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.GinMode)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("database ready")

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	stacheRepo := repository.NewStacheRepository(db)
	itemRepo := repository.NewItemRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	stacheService := services.NewStacheService(stacheRepo)
	itemService := services.NewItemService(itemRepo, stacheRepo)
	projectService := services.NewProjectService(projectRepo, stacheRepo, itemRepo)

	// Handlers
	homeHandler := handlers.NewHomeHandler()
	authHandler := handlers.NewAuthHandler(authService)
	accountHandler := handlers.NewAccountHandler(authService)
	stacheHandler := handlers.NewStacheHandler(stacheService)
	itemHandler := handlers.NewItemHandler(itemService, stacheService)
	projectHandler := handlers.NewProjectHandler(projectService, stacheService, itemService)

	// Router
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger(log))

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	// Session cookie: HttpOnly, SameSite=Lax, Secure when serving HTTPS
	// in release mode.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Public routes
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)

	// Everything else needs a session
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(), middleware.LoadCurrentUser(authService))
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

	// Start server
	log.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
