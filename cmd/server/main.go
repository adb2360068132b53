package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"adminpanel/internal/cache"
	"adminpanel/internal/config"
	"adminpanel/internal/db"
	"adminpanel/internal/handler"
	"adminpanel/internal/repository"
	"adminpanel/internal/router"
	"adminpanel/internal/service"
	"adminpanel/internal/session"
	"adminpanel/internal/view"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := session.NewManager(cfg.SessionSecret)

	// Initialize repositories
	repos := repository.New(gormDB)

	// Initialize services
	authService := service.NewAuthService(repos, cacheClient)
	auditService := service.NewAuditService(repos)
	userService := service.NewUserService(repos)
	postService := service.NewPostService(repos)
	adminService := service.NewAdminService(repos, cacheClient)

	// Initialize handlers
	siteHandler := handler.NewSiteHandler(postService, userService, adminService, auditService)
	authHandler := handler.NewAuthHandler(authService, sessions)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	adminHandler := handler.NewAdminHandler(adminService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Register routes
	router.Register(
		e,
		sessions,
		authService,
		siteHandler,
		authHandler,
		userHandler,
		postHandler,
		adminHandler,
		auditHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
