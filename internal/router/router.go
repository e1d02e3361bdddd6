package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fintrack/internal/auth"
	"fintrack/internal/handler"
)

// Register wires routes and middleware. Every record and stats route sits
// behind the access gate; only signup, login, health, and docs are public.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	incomeHandler *handler.IncomeHandler,
	expenseHandler *handler.ExpenseHandler,
	budgetHandler *handler.BudgetHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// Secured routes
	secured := e.Group("", auth.RequireAuth(jwtService)...)

	secured.POST("/income", incomeHandler.Create)
	secured.GET("/income", incomeHandler.List)
	secured.PUT("/income/:id", incomeHandler.Update)
	secured.DELETE("/income/:id", incomeHandler.Delete)

	secured.POST("/expense", expenseHandler.Create)
	secured.GET("/expense", expenseHandler.List)
	secured.PUT("/expense/:id", expenseHandler.Update)
	secured.DELETE("/expense/:id", expenseHandler.Delete)

	secured.POST("/budget", budgetHandler.Create)
	secured.GET("/budget", budgetHandler.List)
	secured.PUT("/budget/:id", budgetHandler.Update)
	secured.DELETE("/budget/:id", budgetHandler.Delete)

	secured.GET("/stats/summary", statsHandler.Summary)
	secured.GET("/stats/monthly", statsHandler.Monthly)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
