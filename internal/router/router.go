package router

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"dailyfood/internal/auth"
	"dailyfood/internal/handler"
	"dailyfood/internal/logging"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Food       *handler.FoodHandler
	BloodSugar *handler.BloodSugarHandler
	Catalog    *handler.CatalogHandler
	Seed       *handler.SeedHandler
	Nutrition  *handler.NutritionHandler
	AuthGate   *handler.AuthMiddleware
}

// Register wires routes and middleware.
func Register(e *echo.Echo, jwtService *auth.JWTService, log logrus.FieldLogger, h Handlers) {
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(log)
	e.Validator = NewValidator()

	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", handler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/food-database", h.Catalog.List)
	api.GET("/nutrition/targets", h.Nutrition.Targets)

	// Secured routes (require a valid, unrevoked token of an existing user)
	secured := api.Group("", bearerAuth(jwtService), h.AuthGate.RequireUser(tokenContextKey))

	secured.GET("/auth/me", h.Auth.Me)
	secured.POST("/auth/change-password", h.Auth.ChangePassword)
	secured.POST("/auth/logout", h.Auth.Logout)

	secured.GET("/food", h.Food.List)
	secured.POST("/food", h.Food.Create)
	secured.PUT("/food/:id", h.Food.Update)
	secured.DELETE("/food/:id", h.Food.Delete)

	secured.GET("/blood-sugar", h.BloodSugar.List)
	secured.POST("/blood-sugar", h.BloodSugar.Create)
	secured.PUT("/blood-sugar/:id", h.BloodSugar.Update)
	secured.DELETE("/blood-sugar/:id", h.BloodSugar.Delete)

	secured.GET("/nutrition/daily", h.Nutrition.Daily)
	secured.GET("/calendar", h.Nutrition.Calendar)

	// Admin routes
	admin := secured.Group("", h.AuthGate.RequireAdmin)

	admin.POST("/food-database", h.Catalog.Create)
	admin.POST("/food-database/seed-defaults", h.Seed.SeedDefaults)
	admin.POST("/food-database/import", h.Seed.Import)
	admin.PUT("/food-database/:id", h.Catalog.Update)
	admin.DELETE("/food-database/:id", h.Catalog.Delete)

	admin.GET("/users", h.User.ListUsers)
	admin.POST("/users", h.User.CreateUser)
	admin.PUT("/users/:id", h.User.UpdateUser)
	admin.DELETE("/users/:id", h.User.DeleteUser)
}

const tokenContextKey = "user"

// bearerAuth verifies the Authorization bearer token with jwtService and stores
// its claims under tokenContextKey. Every failure is a 401.
func bearerAuth(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  tokenContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthenticated(err)
		},
	})
}
