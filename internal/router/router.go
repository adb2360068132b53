package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"adminpanel/internal/handler"
	"adminpanel/internal/service"
	"adminpanel/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *session.Manager,
	authService service.AuthService,
	siteHandler *handler.SiteHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	postHandler *handler.PostHandler,
	adminHandler *handler.AdminHandler,
	auditHandler *handler.AuditHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public marketing pages
	e.GET("/", siteHandler.Index)
	e.GET("/about", siteHandler.About)
	e.GET("/contact", siteHandler.Contact)

	// Login surface
	e.GET("/admin/login", authHandler.LoginPage)
	e.POST("/admin/login", authHandler.Login)
	e.POST("/admin/logout", authHandler.Logout)

	// Authenticated admin screens
	admin := e.Group("/admin", RequireAdmin(authService, sessions))
	admin.GET("/dashboard", siteHandler.Dashboard)
	admin.GET("/users", userHandler.Users)
	admin.POST("/users", userHandler.UserAction)
	admin.GET("/posts", postHandler.Posts)
	admin.POST("/posts", postHandler.PostAction)
	admin.GET("/audit-logs", auditHandler.AuditLogs)

	// Super tier only
	super := admin.Group("", RequireSuperAdmin())
	super.GET("/admins", adminHandler.Admins)
	super.POST("/admins", adminHandler.AdminAction)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
